package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGame_TwitchIDFresh(t *testing.T) {
	now := time.Now()
	id := "512710"

	t.Run("fresh within window", func(t *testing.T) {
		checked := now.Add(-6 * 24 * time.Hour)
		g := Game{TwitchID: &id, TwitchIDCheckedAt: &checked}
		assert.True(t, g.TwitchIDFresh(now))
	})

	t.Run("stale after seven days", func(t *testing.T) {
		checked := now.Add(-8 * 24 * time.Hour)
		g := Game{TwitchID: &id, TwitchIDCheckedAt: &checked}
		assert.False(t, g.TwitchIDFresh(now))
	})

	t.Run("never resolved", func(t *testing.T) {
		g := Game{}
		assert.False(t, g.TwitchIDFresh(now))
	})

	t.Run("timestamp without id", func(t *testing.T) {
		checked := now
		g := Game{TwitchIDCheckedAt: &checked}
		assert.False(t, g.TwitchIDFresh(now))
	})
}
