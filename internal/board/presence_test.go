package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceSetFlipOnOff(t *testing.T) {
	p := NewPresenceSet(9)
	assert.Equal(t, 0, p.Count())
	assert.False(t, p.Check(5))

	was := p.Flip(5)
	assert.False(t, was)
	assert.True(t, p.Check(5))
	assert.Equal(t, 1, p.Count())

	was = p.Flip(5)
	assert.True(t, was)
	assert.False(t, p.Check(5))
	assert.Equal(t, 0, p.Count())

	p.On(3)
	p.On(3) // idempotent
	assert.Equal(t, 1, p.Count())
	p.Off(3)
	p.Off(3)
	assert.Equal(t, 0, p.Count())
}

func TestPresenceSetBounds(t *testing.T) {
	p := NewPresenceSet(4)
	assert.Panics(t, func() { p.Check(0) })
	assert.Panics(t, func() { p.Check(5) })
	assert.Panics(t, func() { p.On(-1) })
	assert.Panics(t, func() { NewPresenceSet(0) })
}

func TestPresenceSetCopyIndependence(t *testing.T) {
	src := NewPresenceSet(9)
	src.On(1)
	src.On(7)

	dst := NewPresenceSet(9)
	dst.On(4)
	dst.CopyFrom(src)
	require.Equal(t, 2, dst.Count())
	assert.True(t, dst.Check(1))
	assert.True(t, dst.Check(7))
	assert.False(t, dst.Check(4))

	// mutating one never changes the other
	dst.Off(1)
	assert.True(t, src.Check(1))
	src.On(2)
	assert.False(t, dst.Check(2))

	other := NewPresenceSet(4)
	assert.Panics(t, func() { other.CopyFrom(src) })
}
