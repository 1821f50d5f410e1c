package namematch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLookup returns a Lookup that records every candidate it was asked
// to resolve and answers from the given table.
func recordingLookup(table map[string]string, calls *[]string) Lookup {
	return func(_ context.Context, name string) (string, error) {
		*calls = append(*calls, name)
		return table[name], nil
	}
}

func TestResolve_VerbatimHit(t *testing.T) {
	var calls []string
	lookup := recordingLookup(map[string]string{"Elden Ring": "512710"}, &calls)

	id, err := Resolve(context.Background(), "Elden Ring", DefaultTransforms(), lookup)
	require.NoError(t, err)
	assert.Equal(t, "512710", id)
	assert.Equal(t, []string{"Elden Ring"}, calls)
}

func TestResolve_AttemptOrderAndShortCircuit(t *testing.T) {
	// "Title 2" is unresolvable verbatim and as "Title2", but resolves as
	// "Title II". The no-space variant must be attempted before the Roman
	// variant, and no call may follow the hit.
	var calls []string
	lookup := recordingLookup(map[string]string{"Title II": "42"}, &calls)

	id, err := Resolve(context.Background(), "Title 2", DefaultTransforms(), lookup)
	require.NoError(t, err)
	assert.Equal(t, "42", id)
	assert.Equal(t, []string{"Title 2", "Title2", "Title II"}, calls)
}

func TestResolve_RemasteredFallback(t *testing.T) {
	var calls []string
	lookup := recordingLookup(map[string]string{"Dark Souls": "7"}, &calls)

	id, err := Resolve(context.Background(), "Dark Souls Remastered", DefaultTransforms(), lookup)
	require.NoError(t, err)
	assert.Equal(t, "7", id)
	assert.Equal(t, []string{"Dark Souls Remastered", "Dark Souls"}, calls)
}

func TestResolve_AllAttemptsFail(t *testing.T) {
	var calls []string
	lookup := recordingLookup(map[string]string{}, &calls)

	id, err := Resolve(context.Background(), "Game 3", DefaultTransforms(), lookup)
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Equal(t, []string{"Game 3", "Game3", "Game III"}, calls)
}

func TestResolve_DeduplicatesCandidates(t *testing.T) {
	// No trailing number and no "Remastered": every transform yields the
	// same candidate, so exactly one lookup is made.
	var calls []string
	lookup := recordingLookup(map[string]string{}, &calls)

	id, err := Resolve(context.Background(), "Hades", DefaultTransforms(), lookup)
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Equal(t, []string{"Hades"}, calls)
}

func TestResolve_LookupErrorContinuesChain(t *testing.T) {
	var calls []string
	lookup := func(_ context.Context, name string) (string, error) {
		calls = append(calls, name)
		if name == "Title 4" {
			return "", errors.New("upstream unavailable")
		}
		if name == "Title IV" {
			return "99", nil
		}
		return "", nil
	}

	id, err := Resolve(context.Background(), "Title 4", DefaultTransforms(), lookup)
	require.NoError(t, err)
	assert.Equal(t, "99", id)
	assert.Equal(t, []string{"Title 4", "Title4", "Title IV"}, calls)
}

func TestResolve_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls []string
	_, err := Resolve(ctx, "Hades", DefaultTransforms(), recordingLookup(nil, &calls))
	assert.Error(t, err)
	assert.Empty(t, calls)
}
