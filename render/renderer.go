package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-factory/constants"
	"github.com/lixenwraith/vi-factory/world"
)

// Status is the per-frame state shown in the status bar
type Status struct {
	PlayerX, PlayerY int
	Pending          string // pending prefix key, empty when none
	SoundOn          bool
	Picked           int
}

// Renderer draws the world onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one frame: the top entity of every visible cell, then the status bar
func (r *Renderer) Draw(w *world.World, status Status) {
	r.screen.Clear()
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	screenW, screenH := r.screen.Size()
	viewW := min(w.Width(), screenW)
	viewH := min(w.Height(), screenH-constants.StatusBarHeight)

	for y := 0; y < viewH; y++ {
		for x := 0; x < viewW; x++ {
			r.drawCell(x, y, w.TopAt(x, y))
		}
	}

	if viewH >= 0 && viewH < screenH {
		r.drawStatusBar(viewH, screenW, w.Turns(), status, defaultStyle)
	}

	r.screen.Show()
}

func (r *Renderer) drawCell(x, y int, e world.Entity) {
	if e == nil {
		r.screen.SetContent(x, y, constants.ErrorChar, nil, StyleFor(world.PairError))
		return
	}
	ch := e.Glyph()
	if ch == 0 {
		r.screen.SetContent(x, y, constants.ErrorChar, nil, StyleFor(world.PairError))
		return
	}
	r.screen.SetContent(x, y, ch, nil, StyleFor(e.ColorPair()))
}

// drawStatusBar writes turn, position, pending prefix and sound state on row y
func (r *Renderer) drawStatusBar(y, width, turns int, status Status, defaultStyle tcell.Style) {
	text := fmt.Sprintf("T:%d (%d,%d) $%d ", turns, status.PlayerX, status.PlayerY, status.Picked)
	x := r.drawText(0, y, width, text, defaultStyle.Foreground(RgbStatusBar))

	if status.Pending != "" {
		x = r.drawText(x, y, width, status.Pending+" ", defaultStyle.Foreground(tcell.ColorBlack).Background(RgbPending))
		x = r.drawText(x, y, width, " ", defaultStyle)
	}

	sound := constants.SoundOffText
	if status.SoundOn {
		sound = constants.SoundOnText
	}
	r.drawText(x, y, width, sound, defaultStyle.Foreground(RgbStatusDim))
}

func (r *Renderer) drawText(x, y, width int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
