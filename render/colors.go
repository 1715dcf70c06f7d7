package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-factory/world"
)

// RGB palette for the playfield and status bar
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloor      = tcell.NewRGBColor(70, 72, 94)    // Muted gray-blue
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusDim  = tcell.NewRGBColor(140, 140, 140) // Gray
	RgbPending    = tcell.NewRGBColor(255, 165, 0)   // Orange, matches the cursor of a pending prefix
	RgbItem       = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbPiston     = tcell.NewRGBColor(200, 200, 200) // Light gray
	RgbPistonBg   = tcell.NewRGBColor(60, 60, 60)    // Dark gray
	RgbRobohand   = tcell.NewRGBColor(0, 200, 0)     // Green
	RgbRobohandBg = tcell.NewRGBColor(20, 40, 20)    // Very dark green
)

var pairStyles = map[world.ColorPair]tcell.Style{
	world.PairBackground: tcell.StyleDefault.Foreground(RgbFloor).Background(RgbBackground),
	world.PairPlayer:     tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
	world.PairError:      tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorRed),
	world.PairTransport:  tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorDarkCyan),
	world.PairPiston:     tcell.StyleDefault.Foreground(RgbPiston).Background(RgbPistonBg),
	world.PairRobohand:   tcell.StyleDefault.Foreground(RgbRobohand).Background(RgbRobohandBg),
	world.PairItem:       tcell.StyleDefault.Foreground(RgbItem).Background(RgbBackground),
}

// StyleFor maps an entity color pair to its terminal style.
// Unknown pairs render with the error style.
func StyleFor(p world.ColorPair) tcell.Style {
	if s, ok := pairStyles[p]; ok {
		return s
	}
	return pairStyles[world.PairError]
}
