package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Danjb1/hovership/core"
	"github.com/Danjb1/hovership/engine"
	"github.com/Danjb1/hovership/level"
	"github.com/Danjb1/hovership/vmath"
)

// Terminal cells are about twice as tall as wide
const (
	colsPerMetre = 2.0
	rowsPerMetre = 1.0
)

var (
	styleVoid    = tcell.StyleDefault.Background(tcell.NewRGBColor(16, 16, 24))
	styleHUD     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 200, 200)).Background(tcell.NewRGBColor(26, 27, 38))
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	styleShard   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 255)).Bold(true)
	styleKey     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 200, 0)).Bold(true)
	styleCamera  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 255))
	headingGlyph = []rune("↑↗→↘↓↙←↖")
)

// frame is what the loop hands to the renderer, copied on the loop goroutine
type frame struct {
	snap   engine.Snapshot
	shards []level.Shard
	key    *vmath.Vec3
}

type view struct {
	screen  tcell.Screen
	world   *level.World
	groundY float64
	name    string
}

// project maps a world point to a cell, centred on origin
func (v *view) project(p, origin vmath.Vec3) (x, y int) {
	w, h := v.screen.Size()
	cx, cy := w/2, (h-2)/2+1
	x = cx + int(math.Round((p.X-origin.X)*colsPerMetre))
	y = cy - int(math.Round((p.Z-origin.Z)*rowsPerMetre))
	return x, y
}

// unproject maps a cell centre back to world X and Z
func (v *view) unproject(x, y int, origin vmath.Vec3) (float64, float64) {
	w, h := v.screen.Size()
	cx, cy := w/2, (h-2)/2+1
	return origin.X + float64(x-cx)/colsPerMetre, origin.Z - float64(y-cy)/rowsPerMetre
}

func (v *view) terrainStyle(height float64) tcell.Style {
	shade := vmath.Clamp((height-v.groundY+2)/12, 0, 1)
	g := int32(60 + shade*140)
	return tcell.StyleDefault.Background(tcell.NewRGBColor(g/3, g, g/2))
}

func (v *view) draw(f frame) {
	s := v.screen
	s.Clear()
	w, h := s.Size()
	snap := f.snap
	body := snap.Vehicle.Pose

	for y := 1; y < h-1; y++ {
		for x := 0; x < w; x++ {
			wx, wz := v.unproject(x, y, body.Position)
			if top, ok := v.world.HeightAt(wx, wz); ok {
				s.SetContent(x, y, ' ', nil, v.terrainStyle(top))
			} else {
				s.SetContent(x, y, ' ', nil, styleVoid)
			}
		}
	}

	for _, shard := range f.shards {
		x, y := v.project(shard.Position, body.Position)
		v.put(x, y, '*', styleShard)
	}
	if f.key != nil {
		x, y := v.project(*f.key, body.Position)
		v.put(x, y, 'K', styleKey)
	}
	cx, cy := v.project(snap.Camera.Position, body.Position)
	v.put(cx, cy, 'c', styleCamera)

	sector := int(math.Round(body.Yaw/45)) % len(headingGlyph)
	bx, by := v.project(body.Position, body.Position)
	shipStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	if snap.Vehicle.SlideDirection != 0 {
		shipStyle = shipStyle.Foreground(tcell.ColorRed)
	}
	v.put(bx, by, headingGlyph[sector], shipStyle)

	hud := fmt.Sprintf(" %s | %-11s %5.1fs | %-8s | speed %5.1f | height %6.2f | cam %3.0f | shards %d/%d | tick %d",
		v.name, snap.Mode, snap.ModeTime.Seconds(), snap.Vehicle.Phase, snap.Vehicle.Velocity.Forward,
		body.Position.Y, snap.Camera.Heading, snap.ShardsCollected, snap.ShardsTotal, snap.Tick)
	v.text(0, 0, w, hud, styleHUD)
	v.text(0, h-1, w, " arrows/wasd move | space jump | p pause | r restart | q quit", styleHUD)

	switch snap.Mode {
	case core.ModePaused:
		v.banner(h/2, " PAUSED ")
	case core.ModeCelebrating:
		v.banner(h/2, fmt.Sprintf(" LEVEL COMPLETE %d/%d  press r ", snap.ShardsCollected, snap.ShardsTotal))
	}
	s.Show()
}

func (v *view) put(x, y int, r rune, style tcell.Style) {
	w, h := v.screen.Size()
	if x < 0 || y < 1 || x >= w || y >= h-1 {
		return
	}
	_, _, bg, _ := v.screen.GetContent(x, y)
	_, bgColor, _ := bg.Decompose()
	v.screen.SetContent(x, y, r, nil, style.Background(bgColor))
}

// text writes a full-width line, padded with the style's background
func (v *view) text(x, y, width int, s string, style tcell.Style) {
	runes := []rune(s)
	for i := 0; i < width-x; i++ {
		r := ' '
		if i < len(runes) {
			r = runes[i]
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *view) banner(y int, s string) {
	w, _ := v.screen.Size()
	runes := []rune(s)
	x := (w - len(runes)) / 2
	for i, r := range runes {
		v.screen.SetContent(x+i, y, r, nil, styleBanner)
	}
}
