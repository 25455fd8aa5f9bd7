package actor

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/collision"
)

// Pillar is a static square column standing on the floor
type Pillar struct {
	Base   mgl64.Vec3
	Size   float64
	Height float64
}

// Bounds is the pillar box, centered half its height above the base
func (p Pillar) Bounds() collision.AABB {
	center := p.Base.Add(mgl64.Vec3{0, p.Height / 2, 0})
	half := mgl64.Vec3{p.Size / 2, p.Height / 2, p.Size / 2}
	return collision.FromCenter(center, half)
}

// PillarRows builds one pillar per column on each of the rows at +rowZ and -rowZ
func PillarRows(columns []float64, rowZ, size, height float64) []Pillar {
	pillars := make([]Pillar, 0, 2*len(columns))
	for _, x := range columns {
		for _, z := range [2]float64{rowZ, -rowZ} {
			pillars = append(pillars, Pillar{Base: mgl64.Vec3{x, 0, z}, Size: size, Height: height})
		}
	}
	return pillars
}

// PillarBounds collects the boxes of all pillars, in order
func PillarBounds(pillars []Pillar) []collision.AABB {
	boxes := make([]collision.AABB, len(pillars))
	for i, p := range pillars {
		boxes[i] = p.Bounds()
	}
	return boxes
}
