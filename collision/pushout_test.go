package collision

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushOutAABB_EastPillarPushesWestAlongX(t *testing.T) {
	ext := mgl64.Vec3{0.1, 0.1, 0.1}
	// Pillar footprint 0.5, starting 0.05 east of the origin: 0.05 overlap with the box
	pillar := FromCenter(mgl64.Vec3{0.3, 0, 0}, mgl64.Vec3{0.25, 1.5, 0.25})

	pos, axis, hit := PushOutAABB(mgl64.Vec3{}, ext, pillar)

	require.True(t, hit)
	assert.Equal(t, AxisX, axis)
	assert.InDelta(t, -0.05, pos.X(), 1e-12)
	assert.Equal(t, 0.0, pos.Y())
	assert.Equal(t, 0.0, pos.Z())
}

func TestPushOutAABB_NoOverlap(t *testing.T) {
	ext := mgl64.Vec3{0.1, 0.1, 0.1}
	obstacle := FromCenter(mgl64.Vec3{5, 0, 0}, mgl64.Vec3{1, 1, 1})
	start := mgl64.Vec3{1, 2, 3}

	pos, axis, hit := PushOutAABB(start, ext, obstacle)

	assert.False(t, hit)
	assert.Equal(t, AxisNone, axis)
	assert.Equal(t, start, pos)
}

func TestPushOutAABB_AxisSelection(t *testing.T) {
	obstacle := FromCenter(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1})
	ext := mgl64.Vec3{0.5, 0.5, 0.5}

	tests := []struct {
		name string
		pos  mgl64.Vec3
		axis Axis
		want mgl64.Vec3
	}{
		{"shallow on +x", mgl64.Vec3{1.4, 0, 0}, AxisX, mgl64.Vec3{1.5, 0, 0}},
		{"shallow on -x", mgl64.Vec3{-1.4, 0.2, 0.1}, AxisX, mgl64.Vec3{-1.5, 0.2, 0.1}},
		{"shallow on +y", mgl64.Vec3{0.2, 1.3, 0}, AxisY, mgl64.Vec3{0.2, 1.5, 0}},
		{"shallow on -z", mgl64.Vec3{0, 0.1, -1.45}, AxisZ, mgl64.Vec3{0, 0.1, -1.5}},
		// x and y tie: x is not strictly smallest, y is below z => y
		{"x/y tie goes past x", mgl64.Vec3{1.4, 1.4, 0}, AxisY, mgl64.Vec3{1.4, 1.5, 0}},
		// y and z tie, x deeper: y is not strictly below z => z
		{"y/z tie resolves on z", mgl64.Vec3{0, 1.4, 1.4}, AxisZ, mgl64.Vec3{0, 1.4, 1.5}},
		// x and z tie, y deeper: x not strictly below z, y not below z => z
		{"x/z tie resolves on z", mgl64.Vec3{1.4, 0, 1.4}, AxisZ, mgl64.Vec3{1.4, 0, 1.5}},
		{"centered pushes positive", mgl64.Vec3{0, 0, 0}, AxisZ, mgl64.Vec3{0, 0, 1.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, axis, hit := PushOutAABB(tt.pos, ext, obstacle)
			require.True(t, hit)
			assert.Equal(t, tt.axis, axis)
			assert.True(t, pos.ApproxEqualThreshold(tt.want, 1e-12), "got %v want %v", pos, tt.want)
		})
	}
}

func TestPushOutAABB_ResultIsTouching(t *testing.T) {
	obstacle := FromCenter(mgl64.Vec3{1, 1.5, -1}, mgl64.Vec3{0.25, 1.5, 0.25})
	ext := mgl64.Vec3{0.15, 0.15, 0.15}

	pos, _, hit := PushOutAABB(mgl64.Vec3{0.8, 0.1, -0.9}, ext, obstacle)
	require.True(t, hit)

	d := PenetrationDepths(pos, ext, obstacle)
	minDepth := d.X()
	if d.Y() < minDepth {
		minDepth = d.Y()
	}
	if d.Z() < minDepth {
		minDepth = d.Z()
	}
	assert.InDelta(t, 0, minDepth, 1e-12, "resolved axis should be exactly touching")
}

func TestPushOutSphere(t *testing.T) {
	s := Sphere{Center: mgl64.Vec3{-3.5, 0, 0}, Radius: 0.55}

	pos, hit := PushOutSphere(mgl64.Vec3{-3.2, 0, 0}, s, 0.01)
	require.True(t, hit)
	assert.InDelta(t, -3.5+0.56, pos.X(), 1e-12)
	assert.False(t, TestPointSphere(pos, s.Center, s.Radius))

	pos, hit = PushOutSphere(s.Center, s, 0.01)
	require.True(t, hit)
	assert.InDelta(t, -3.5+0.56, pos.X(), 1e-12, "coincident point falls back to +x")

	outside := mgl64.Vec3{0, 0, 0}
	pos, hit = PushOutSphere(outside, s, 0.01)
	assert.False(t, hit)
	assert.Equal(t, outside, pos)
}

func TestPlaneSignedDistance(t *testing.T) {
	p := Plane{Normal: mgl64.Vec3{0, 1, 0}, D: -2}
	assert.Equal(t, mgl64.Vec4{0, 1, 0, -2}, p.Vec4())
	assert.Equal(t, 1.0, p.SignedDistance(mgl64.Vec3{7, 3, -4}))
	assert.Equal(t, -2.0, p.SignedDistance(mgl64.Vec3{}))
	assert.Equal(t, 0.0, Ground.SignedDistance(mgl64.Vec3{1, 0, 1}))
}
