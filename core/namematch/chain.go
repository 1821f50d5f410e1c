package namematch

import (
	"context"
	"regexp"
	"strings"
)

// Transform rewrites a title into a candidate lookup name.
// Transforms are tried in order; the first candidate that resolves wins.
type Transform struct {
	// Name identifies the transform in logs and tests.
	Name string
	// Apply rewrites the title. Returning the input unchanged is allowed;
	// the chain deduplicates candidates so no lookup is issued twice.
	Apply func(title string) string
}

// Lookup resolves a candidate name to an external id.
// An empty id means no match; an error counts as a failed attempt.
type Lookup func(ctx context.Context, name string) (string, error)

var trailingNumber = regexp.MustCompile(`\s(\d+)$`)

// romanNumerals maps trailing Arabic numerals to their Roman spelling.
// Sequels beyond 5 are rare enough in top lists that the table stops there.
var romanNumerals = map[string]string{
	" 2": " II",
	" 3": " III",
	" 4": " IV",
	" 5": " V",
}

// DefaultTransforms returns the standard fallback chain, in resolution order:
//
//  1. the title verbatim
//  2. the space before a trailing integer removed ("Title 2" -> "Title2")
//  3. a trailing 2-5 replaced by its Roman numeral ("Title 2" -> "Title II")
//  4. the literal " Remastered" removed
//
// The ordering is a heuristic tuned to catalog naming conventions, not
// guaranteed-correct matching: false negatives are expected, and an
// ambiguous short title can in principle match the wrong entry.
func DefaultTransforms() []Transform {
	return []Transform{
		{
			Name:  "verbatim",
			Apply: func(title string) string { return title },
		},
		{
			Name: "no_space_before_number",
			Apply: func(title string) string {
				return trailingNumber.ReplaceAllString(title, "$1")
			},
		},
		{
			Name: "roman_numeral",
			Apply: func(title string) string {
				for arabic, roman := range romanNumerals {
					if strings.HasSuffix(title, arabic) {
						return strings.TrimSuffix(title, arabic) + roman
					}
				}
				return title
			},
		},
		{
			Name: "drop_remastered",
			Apply: func(title string) string {
				return strings.ReplaceAll(title, " Remastered", "")
			},
		},
	}
}

// Resolve runs the fallback chain for a title against the given lookup.
// It short-circuits on the first successful resolution. Candidates already
// tried by an earlier transform are skipped so each external request is
// unique. It returns an empty id after all transforms fail; lookup errors
// are swallowed as failed attempts since later variants may still resolve.
func Resolve(ctx context.Context, title string, transforms []Transform, lookup Lookup) (string, error) {
	tried := make(map[string]struct{}, len(transforms))

	for _, tr := range transforms {
		candidate := tr.Apply(title)
		if candidate == "" {
			continue
		}
		if _, seen := tried[candidate]; seen {
			continue
		}
		tried[candidate] = struct{}{}

		if err := ctx.Err(); err != nil {
			return "", err
		}

		id, err := lookup(ctx, candidate)
		if err != nil {
			continue
		}
		if id != "" {
			return id, nil
		}
	}

	return "", nil
}
