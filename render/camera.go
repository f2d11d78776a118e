package render

import (
	"math"

	"github.com/lixenwraith/platform-fighter/parameter"
	"github.com/lixenwraith/platform-fighter/vmath"
)

// Camera maps world units (y up) to terminal cells (y down)
type Camera struct {
	Zoom float64
	// Center is the world point drawn at the middle of the viewport
	Center vmath.Point2D
}

// NewCamera creates a camera centred on x = 0 at the given height
func NewCamera(zoom, centerY float64) Camera {
	return Camera{
		Zoom:   vmath.Clamp(zoom, parameter.MinZoom, parameter.MaxZoom),
		Center: vmath.Pt(0, centerY),
	}
}

// WorldToCell projects p into a viewport of w by h cells whose top row is top
func (c Camera) WorldToCell(p vmath.Point2D, top, w, h int) (int, int) {
	col := float64(w)/2 + (p.X-c.Center.X)*c.Zoom
	row := float64(top) + float64(h)/2 - (p.Y-c.Center.Y)*c.Zoom*parameter.CellAspect
	return int(math.Floor(col)), int(math.Floor(row))
}

// ZoomIn scales by ZoomStep up to MaxZoom
func (c *Camera) ZoomIn() {
	c.Zoom = vmath.Clamp(c.Zoom*parameter.ZoomStep, parameter.MinZoom, parameter.MaxZoom)
}

// ZoomOut scales by 1/ZoomStep down to MinZoom
func (c *Camera) ZoomOut() {
	c.Zoom = vmath.Clamp(c.Zoom/parameter.ZoomStep, parameter.MinZoom, parameter.MaxZoom)
}

// Pan moves the centre by a number of cells at the current zoom
func (c *Camera) Pan(cellsX, cellsY int) {
	c.Center.X += float64(cellsX) / c.Zoom
	c.Center.Y += float64(cellsY) / (c.Zoom * parameter.CellAspect)
}
