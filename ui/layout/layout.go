// Package layout maps grid cells to screen pixels. It has no drawing
// dependency so the math can be exercised headless.
package layout

import "impulse-snake/game/types"

// Rect is a pixel rectangle.
type Rect struct {
	X, Y, W, H float32
}

// Center returns the midpoint of r.
func (r Rect) Center() (float32, float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Layout places a square board centered in the available area.
type Layout struct {
	Grid     types.Grid
	CellSize float32
	Board    Rect
	// Scale is the device pixel ratio applied to logical sizes.
	Scale float32
}

// Compute fits grid into a screenW×screenH logical area, leaving padding on
// every side. Sizes are multiplied by scale to land on device pixels.
func Compute(screenW, screenH int, scale float32, padding int, grid types.Grid) Layout {
	if scale <= 0 {
		scale = 1
	}
	availW := float32(screenW-2*padding) * scale
	availH := float32(screenH-2*padding) * scale
	if availW < 0 {
		availW = 0
	}
	if availH < 0 {
		availH = 0
	}

	cell := availW / float32(grid.Width)
	if h := availH / float32(grid.Height); h < cell {
		cell = h
	}

	boardW := cell * float32(grid.Width)
	boardH := cell * float32(grid.Height)
	return Layout{
		Grid:     grid,
		CellSize: cell,
		Scale:    scale,
		Board: Rect{
			X: (float32(screenW)*scale - boardW) / 2,
			Y: (float32(screenH)*scale - boardH) / 2,
			W: boardW,
			H: boardH,
		},
	}
}

// Cell returns the pixel rectangle of grid cell p.
func (l Layout) Cell(p types.Point) Rect {
	return Rect{
		X: l.Board.X + float32(p.X)*l.CellSize,
		Y: l.Board.Y + float32(p.Y)*l.CellSize,
		W: l.CellSize,
		H: l.CellSize,
	}
}

// BodyAlpha fades segments toward the tail, from 1 at the head down to 0.5.
func BodyAlpha(index, length int) float32 {
	if length <= 0 {
		return 1
	}
	return 1 - float32(index)/float32(length)*0.5
}
