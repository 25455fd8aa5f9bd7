package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPillar_Bounds(t *testing.T) {
	p := Pillar{Base: mgl64.Vec3{1.5, 0, 1.2}, Size: 0.5, Height: 3}
	b := p.Bounds()
	assert.True(t, b.Min.ApproxEqual(mgl64.Vec3{1.25, 0, 0.95}))
	assert.True(t, b.Max.ApproxEqual(mgl64.Vec3{1.75, 3, 1.45}))
}

func TestPillarRows(t *testing.T) {
	pillars := PillarRows([]float64{-3, 0, 3}, 1.2, 0.5, 3)
	require.Len(t, pillars, 6)
	assert.Equal(t, mgl64.Vec3{-3, 0, 1.2}, pillars[0].Base)
	assert.Equal(t, mgl64.Vec3{-3, 0, -1.2}, pillars[1].Base)

	boxes := PillarBounds(pillars)
	require.Len(t, boxes, 6)
	assert.Equal(t, pillars[5].Bounds(), boxes[5])
}
