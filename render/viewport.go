package render

import "math"

// CellAspect is the height/width ratio of a terminal cell, characters are about twice as tall as wide
const CellAspect = 2.0

// Viewport maps container-local coordinates onto a block of terminal cells
// Scale is chosen so a circle in the container stays round on screen
type Viewport struct {
	OriginX, OriginY int     // Top-left cell
	ScaleX, ScaleY   float64 // Cells per container unit
	Cols, Rows       int     // Cells actually covered
}

// Fit centers a width x height container inside a cols x rows cell area
func Fit(width, height float64, cols, rows int) Viewport {
	if width <= 0 || height <= 0 || cols <= 0 || rows <= 0 {
		return Viewport{}
	}

	// Try filling the width, fall back to filling the height
	sx := float64(cols) / width
	sy := sx / CellAspect
	if height*sy > float64(rows) {
		sy = float64(rows) / height
		sx = sy * CellAspect
	}

	usedCols := int(math.Round(width * sx))
	usedRows := int(math.Round(height * sy))
	return Viewport{
		OriginX: (cols - usedCols) / 2,
		OriginY: (rows - usedRows) / 2,
		ScaleX:  sx,
		ScaleY:  sy,
		Cols:    usedCols,
		Rows:    usedRows,
	}
}

// Cell converts a container coordinate into a terminal cell
func (v Viewport) Cell(x, y float64) (int, int) {
	return v.OriginX + int(math.Floor(x*v.ScaleX)), v.OriginY + int(math.Floor(y*v.ScaleY))
}

// Contains reports whether a cell lies inside the viewport
func (v Viewport) Contains(col, row int) bool {
	return col >= v.OriginX && col < v.OriginX+v.Cols && row >= v.OriginY && row < v.OriginY+v.Rows
}
