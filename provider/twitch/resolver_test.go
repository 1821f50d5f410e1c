package twitch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolver_FallbackChainAgainstProvider(t *testing.T) {
	// The provider only knows the Roman-numeral spelling.
	f := &fakeProvider{games: map[string]string{"Overcooked II": "512953"}}
	c := newTestClient(t, f)
	r := NewResolver(c, zap.NewNop())

	id, err := r.ResolveID(context.Background(), "Overcooked 2")
	require.NoError(t, err)
	assert.Equal(t, "512953", id)

	// The whole chain shares one cached token.
	assert.Equal(t, int64(1), f.tokenExchanges.Load())
}

func TestResolver_Unresolvable(t *testing.T) {
	f := &fakeProvider{}
	c := newTestClient(t, f)
	r := NewResolver(c, zap.NewNop())

	id, err := r.ResolveID(context.Background(), "Totally Unknown 3")
	require.NoError(t, err)
	assert.Empty(t, id)
}
