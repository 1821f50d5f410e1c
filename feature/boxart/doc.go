// Package boxart mirrors game box-art images from the provider CDN into
// the local object store after a catalog sync.
package boxart
