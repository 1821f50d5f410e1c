// Package opencritic is the client for the critic-aggregation provider.
//
// This provider supplies the authoritative base list for every sync run:
// aggregate critic scores, review counts, recommendation percentages, and
// tier labels. Listings come in fixed 20-item pages addressed by a skip
// offset, authenticated with a static API-key header pair.
package opencritic
