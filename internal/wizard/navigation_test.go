package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigator(t *testing.T) {
	t.Run("starts at one", func(t *testing.T) {
		n := NewNavigator()
		assert.Equal(t, 1, n.Position())
	})

	t.Run("advance stops at last", func(t *testing.T) {
		n := NewNavigator()
		assert.True(t, n.Advance(3))
		assert.True(t, n.Advance(3))
		assert.True(t, n.OnLast(3))
		assert.False(t, n.Advance(3))
		assert.Equal(t, 3, n.Position())
	})

	t.Run("retreat stops at first", func(t *testing.T) {
		n := NewNavigator()
		assert.False(t, n.Retreat())
		assert.Equal(t, 1, n.Position())
		n.Advance(2)
		assert.True(t, n.Retreat())
		assert.Equal(t, 1, n.Position())
	})

	t.Run("clamp shrinks to new last", func(t *testing.T) {
		n := NewNavigator()
		for i := 0; i < 4; i++ {
			n.Advance(5)
		}
		assert.Equal(t, 5, n.Position())
		n.Clamp(2)
		assert.Equal(t, 2, n.Position())
	})

	t.Run("clamp never drops below one", func(t *testing.T) {
		n := NewNavigator()
		n.Clamp(0)
		assert.Equal(t, 1, n.Position())
	})

	t.Run("reanchor", func(t *testing.T) {
		n := NewNavigator()
		n.Advance(4)
		n.Advance(4)
		n.Reanchor()
		assert.Equal(t, 1, n.Position())
	})

	t.Run("single step is first and last", func(t *testing.T) {
		n := NewNavigator()
		assert.True(t, n.OnLast(1))
		assert.False(t, n.Advance(1))
	})
}
