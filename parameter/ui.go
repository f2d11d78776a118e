package parameter

// Camera
const (
	// DefaultZoom is terminal cells per world unit horizontally
	DefaultZoom = 0.6

	// CellAspect compensates for terminal cells being roughly twice as tall as wide
	CellAspect = 0.5

	// DefaultCameraY is the world y kept at the vertical centre of the screen
	DefaultCameraY = 20.0

	// ZoomStep is the multiplicative zoom change per key press
	ZoomStep = 1.25

	// MinZoom and MaxZoom bound interactive zoom
	MinZoom = 0.1
	MaxZoom = 8.0

	// PanStepCells is the vertical camera pan per key press
	PanStepCells = 4
)

// HUD
const (
	// HUDLines is the number of rows reserved at the top for debug text
	HUDLines = 3

	// PausedText is drawn in the HUD while the simulation is paused
	PausedText = " PAUSED "

	// Glyphs
	StageGlyph    = '█'
	PlatformGlyph = '▀'
	WallGlyph     = '▌'
	ECBGlyph      = '◆'
	FighterGlyph  = '@'
)
