package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/pillar-arena/vmath"
)

// Viewport maps the arena's XZ rectangle onto a block of terminal cells.
// X grows to the right; Z grows downward.
type Viewport struct {
	Left, Top     int
	Width, Height int

	MinX, MaxX float64
	MinZ, MaxZ float64
}

// Fit centers the arena inside a width x height cell area, one border cell on each side.
// Cells are roughly twice as tall as wide, so one world unit takes twice as many columns as rows.
func Fit(left, top, width, height int, minX, maxX, minZ, maxZ float64) Viewport {
	v := Viewport{MinX: minX, MaxX: maxX, MinZ: minZ, MaxZ: maxZ}

	innerW := width - 2
	innerH := height - 2
	if innerW < 1 || innerH < 1 || maxX <= minX || maxZ <= minZ {
		return v
	}

	// Rows per world unit limited by both directions
	scale := math.Min(float64(innerH)/(maxZ-minZ), float64(innerW)/(2*(maxX-minX)))
	v.Width = max(int(math.Round(2*scale*(maxX-minX))), 1)
	v.Height = max(int(math.Round(scale*(maxZ-minZ))), 1)
	v.Left = left + 1 + (innerW-v.Width)/2
	v.Top = top + 1 + (innerH-v.Height)/2
	return v
}

// Empty reports whether the viewport has no cells to draw into
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Project returns the cell under p; ok is false outside the viewport
func (v Viewport) Project(p mgl64.Vec3) (col, row int, ok bool) {
	if v.Empty() {
		return 0, 0, false
	}
	fx := (p.X() - v.MinX) / (v.MaxX - v.MinX)
	fz := (p.Z() - v.MinZ) / (v.MaxZ - v.MinZ)

	col = int(math.Floor(fx * float64(v.Width)))
	row = int(math.Floor(fz * float64(v.Height)))
	// The far edges belong to the last cell
	if fx == 1 {
		col = v.Width - 1
	}
	if fz == 1 {
		row = v.Height - 1
	}
	if col < 0 || col >= v.Width || row < 0 || row >= v.Height {
		return 0, 0, false
	}
	return v.Left + col, v.Top + row, true
}

// Cell returns the world point at the center of a screen cell
func (v Viewport) Cell(col, row int) mgl64.Vec3 {
	fx := (float64(col-v.Left) + 0.5) / float64(v.Width)
	fz := (float64(row-v.Top) + 0.5) / float64(v.Height)
	return mgl64.Vec3{
		v.MinX + fx*(v.MaxX-v.MinX),
		0,
		v.MinZ + fz*(v.MaxZ-v.MinZ),
	}
}

// ProjectClamped is Project with p pinned to the arena edge first
func (v Viewport) ProjectClamped(p mgl64.Vec3) (col, row int) {
	p[0] = vmath.Clamp(p.X(), v.MinX, v.MaxX)
	p[2] = vmath.Clamp(p.Z(), v.MinZ, v.MaxZ)
	col, row, _ = v.Project(p)
	return col, row
}
