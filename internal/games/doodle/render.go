package doodle

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-doodle/internal/config"
	"github.com/vovakirdan/tui-doodle/internal/core"
)

// Terminal cells are roughly twice as tall as they are wide.
const cellAspect = 2.0

// Board units between background stars.
const starSpacing = 32.0

// Visual characters for rendering
const (
	PlatformChar = '▀'
	ActorChar    = '█'
	FaceRight    = '▶'
	FaceLeft     = '◀'
	BorderChar   = '│'
)

type tierStyle struct {
	star  rune
	color core.Color
}

// One background style per tier; tiers beyond the list reuse the last one.
var tierStyles = []tierStyle{
	{'·', core.ColorCyan},
	{'·', core.ColorMagenta},
	{'*', core.ColorBlue},
	{'✦', core.ColorWhite},
	{'✧', core.ColorBrightMagenta},
}

// viewport is the board's projection onto the screen.
type viewport struct {
	x, y, w, h int
	sx, sy     float64
}

// Renderer projects a World into a character screen. The board keeps its
// aspect ratio and is centered horizontally.
type Renderer struct {
	boardW     float64
	boardH     float64
	difficulty *config.DifficultyManager
}

// NewRenderer creates a renderer for the configured board.
func NewRenderer(cfg config.DoodleConfig, diff *config.DifficultyManager) *Renderer {
	return &Renderer{
		boardW:     cfg.Board.Width,
		boardH:     cfg.Board.Height,
		difficulty: diff,
	}
}

// Render draws the world. During game over the frozen world is drawn with
// the game over message on top.
func (r *Renderer) Render(dst *core.Screen, w *World) {
	dst.Clear()
	vp, ok := r.viewport(dst.Width(), dst.Height())
	if !ok {
		return
	}

	r.drawBorders(dst, vp)
	r.drawBackground(dst, vp, w)
	for _, p := range w.Platforms {
		b := core.Box{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
		if b.Scale(vp.sx, vp.sy).Intersects(vp.bounds()) {
			r.fill(dst, vp, b, PlatformChar, core.ColorGreen)
		}
	}
	r.drawActor(dst, vp, w.Actor)
	r.drawScoreCard(dst, vp, w.Score)

	if w.GameOver {
		r.drawGameOver(dst, vp, w)
	}
}

// bounds is the viewport in its own cell coordinates.
func (vp viewport) bounds() core.Rect {
	return core.NewRect(0, 0, vp.w, vp.h)
}

func (r *Renderer) viewport(screenW, screenH int) (viewport, bool) {
	ratio := r.boardW / r.boardH * cellAspect
	h := screenH
	w := int(math.Round(float64(h) * ratio))
	if w > screenW-2 {
		w = screenW - 2
		h = int(float64(w) / ratio)
	}
	if w < 1 || h < 1 {
		return viewport{}, false
	}
	return viewport{
		x:  (screenW - w) / 2,
		y:  (screenH - h) / 2,
		w:  w,
		h:  h,
		sx: float64(w) / r.boardW,
		sy: float64(h) / r.boardH,
	}, true
}

// set draws one cell in viewport coordinates, clipped to the viewport.
func (r *Renderer) set(dst *core.Screen, vp viewport, cx, cy int, ch rune, c core.Color) {
	if !vp.bounds().Contains(cx, cy) {
		return
	}
	dst.SetColored(vp.x+cx, vp.y+cy, ch, c)
}

// fill draws a box given in screen-space board units.
func (r *Renderer) fill(dst *core.Screen, vp viewport, b core.Box, ch rune, c core.Color) core.Rect {
	rect := b.Scale(vp.sx, vp.sy)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			r.set(dst, vp, x, y, ch, c)
		}
	}
	return rect
}

func (r *Renderer) drawBorders(dst *core.Screen, vp viewport) {
	for y := vp.y; y < vp.y+vp.h; y++ {
		dst.SetColored(vp.x-1, y, BorderChar, core.ColorGray)
		dst.SetColored(vp.x+vp.w, y, BorderChar, core.ColorGray)
	}
}

// drawBackground scatters one star per starSpacing band of world height, so
// the sky scrolls with the camera.
func (r *Renderer) drawBackground(dst *core.Screen, vp viewport, w *World) {
	style := tierStyles[core.Clamp(w.Tier, 0, len(tierStyles)-1)]
	first := int64(math.Floor(w.CameraY / starSpacing))
	last := int64(math.Ceil((w.CameraY + r.boardH) / starSpacing))
	for band := first; band <= last; band++ {
		h := uint64(band) * 2654435761
		col := int(h % uint64(vp.w))
		row := int(math.Floor((float64(band)*starSpacing - w.CameraY) * vp.sy))
		r.set(dst, vp, col, row, style.star, style.color)
	}
}

func (r *Renderer) drawActor(dst *core.Screen, vp viewport, a Actor) {
	rect := r.fill(dst, vp, core.Box{X: a.X, Y: a.Y, W: a.Width, H: a.Height}, ActorChar, core.ColorBrightYellow)
	if a.Facing == FacingLeft {
		r.set(dst, vp, rect.X, rect.Y, FaceLeft, core.ColorOrange)
	} else {
		r.set(dst, vp, rect.Right()-1, rect.Y, FaceRight, core.ColorOrange)
	}
}

func (r *Renderer) drawScoreCard(dst *core.Screen, vp viewport, score int) {
	text := fmt.Sprintf("%d", score)
	box := core.NewRect(vp.x, vp.y, max(len(text)+4, 7), 3)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawTextCentered(box, box.Y+1, text, core.ColorBrightWhite)
}

func (r *Renderer) drawGameOver(dst *core.Screen, vp viewport, w *World) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d  Best: %d", w.Score, w.HighScore),
		"Reached " + r.difficulty.TierName(w.Tier),
		"Press Space to restart",
	}
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}

	boxW := width + 4
	boxH := len(lines)*2 + 1
	box := core.NewRect(vp.x+(vp.w-boxW)/2, vp.y+(vp.h-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)
	dst.DrawHLine(box.X+1, box.Y+2, boxW-2, '─', core.ColorGray)

	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorRed
		}
		dst.DrawTextCentered(box, box.Y+1+i*2, l, c)
	}
}
