package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Tcell converts to a tcell true color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Palette (Tokyo Night)
var (
	RGBBlack      = RGB{0, 0, 0}
	RgbBackground = RGB{26, 27, 38}
	RgbGround     = RGB{169, 177, 214}
	RgbPlatform   = RGB{122, 162, 247}
	RgbWall       = RGB{86, 95, 137}
	RgbCeiling    = RGB{187, 154, 247}
	RgbBlastLine  = RGB{80, 30, 30}

	RgbECBIdle     = RGB{158, 206, 106}
	RgbECBAirborne = RGB{125, 207, 255}
	RgbECBDodge    = RGB{255, 255, 255}
	RgbECBLag      = RGB{247, 118, 142}
	RgbECBFast     = RGB{255, 158, 100}
	RgbFacing      = RGB{224, 175, 104}

	RgbStatusBar  = RGB{255, 255, 255}
	RgbStatusText = RGB{0, 0, 0}
	RgbHUDText    = RGB{192, 202, 245}
	RgbPausedBg   = RGB{255, 165, 0}
)
