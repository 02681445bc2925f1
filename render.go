package main

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/lwhmiao/fruit/game"
)

// Palette for everything the core does not color itself.
var (
	colorBackground = color.NRGBA{R: 16, G: 14, B: 28, A: 255}
	colorTrail      = color.NRGBA{R: 240, G: 240, B: 255, A: 255}
	colorBombBody   = color.NRGBA{R: 38, G: 38, B: 44, A: 255}
	colorBombFuse   = color.NRGBA{R: 255, G: 150, B: 40, A: 255}
	colorIceBody    = color.NRGBA{R: 150, G: 205, B: 250, A: 255}
	colorIceCore    = color.NRGBA{R: 230, G: 245, B: 255, A: 255}
	colorShade      = color.NRGBA{R: 0, G: 0, B: 0, A: 70}
)

const (
	shakeAmplitude = 4.0
	hudMargin      = 8
)

// drawScene renders one snapshot. While the shake signal is live the
// whole scene is drawn at a small random offset.
func (a *App) drawScene(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(colorBackground)

	var off vec2
	if snap.Shaking {
		off.x = (rand.Float64() - 0.5) * 2 * shakeAmplitude
		off.y = (rand.Float64() - 0.5) * 2 * shakeAmplitude
	}

	for _, e := range snap.Entities {
		a.drawEntity(screen, e, off)
	}
	for _, p := range snap.Particles {
		drawParticle(screen, p, off)
	}
	drawTrail(screen, snap.Trail, off)
	a.drawHUD(screen, snap)
}

// drawEntity renders one toss target as layered primitives.
func (a *App) drawEntity(screen *ebiten.Image, e game.EntitySnapshot, off vec2) {
	x := e.X + off.x
	y := e.Y + off.y

	switch e.Kind {
	case game.KindFruit:
		body := game.FruitPalette[e.Variant%len(game.FruitPalette)]
		drawFilledCircle(screen, x, y, e.Radius, body)
		// shaded half sells the spin
		markX := x + math.Cos(e.Rotation)*e.Radius*0.5
		markY := y + math.Sin(e.Rotation)*e.Radius*0.5
		drawFilledCircle(screen, markX, markY, e.Radius*0.35, colorShade)

	case game.KindBomb:
		drawFilledCircle(screen, x, y, e.Radius, colorBombBody)
		fuseX := x + math.Cos(e.Rotation-math.Pi/2)*e.Radius*1.3
		fuseY := y + math.Sin(e.Rotation-math.Pi/2)*e.Radius*1.3
		ebitenutil.DrawLine(screen, x, y, fuseX, fuseY, colorBombFuse)
		drawFilledCircle(screen, fuseX, fuseY, 3, colorBombFuse)

	case game.KindIce:
		drawFilledCircle(screen, x, y, e.Radius, colorIceBody)
		coreX := x + math.Cos(e.Rotation)*e.Radius*0.3
		coreY := y + math.Sin(e.Rotation)*e.Radius*0.3
		drawFilledCircle(screen, coreX, coreY, e.Radius*0.4, colorIceCore)
	}
}

func drawParticle(screen *ebiten.Image, p game.ParticleSnapshot, off vec2) {
	clr := p.Color
	clr.A = uint8(float64(clr.A) * clampUnit(p.Opacity))
	x := p.X + off.x
	y := p.Y + off.y
	if p.Shape == game.ShapeSquare {
		ebitenutil.DrawRect(screen, x-2, y-2, 4, 4, clr)
		return
	}
	drawFilledCircle(screen, x, y, 2.5, clr)
}

// drawTrail renders the blade as a polyline whose segments fade with
// the older point's remaining life.
func drawTrail(screen *ebiten.Image, points []game.TrailPoint, off vec2) {
	for i := 0; i+1 < len(points); i++ {
		p1 := points[i]
		p2 := points[i+1]
		clr := colorTrail
		clr.A = uint8(255 * clampUnit(p1.Life))
		ebitenutil.DrawLine(screen, p1.X+off.x, p1.Y+off.y, p2.X+off.x, p2.Y+off.y, clr)
	}
}

// drawHUD prints the score line and the per-state overlay text.
func (a *App) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	w := a.cfg.ScreenWidth
	h := a.cfg.ScreenHeight

	switch snap.State {
	case game.StateMenu:
		drawCenteredText(screen, w, h/3, "F R U I T   S L I C E")
		drawCenteredText(screen, w, h/3+24, "click or press space to start")

	case game.StatePlaying, game.StatePaused:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("score %d", snap.Score), hudMargin, hudMargin)
		ebitenutil.DebugPrintAt(screen, "lives "+strings.Repeat("<3 ", snap.Lives), hudMargin, hudMargin+16)
		if snap.FreezeSeconds > 0 {
			ebitenutil.DebugPrintAt(screen, fmt.Sprintf("blade frozen %.1fs", snap.FreezeSeconds), hudMargin, hudMargin+32)
		}
		if snap.State == game.StatePaused {
			drawCenteredText(screen, w, h/2, "P A U S E D")
			drawCenteredText(screen, w, h/2+24, "p resume / h home")
		}

	case game.StateGameOver:
		drawCenteredText(screen, w, h/4, "G A M E   O V E R")
		drawCenteredText(screen, w, h/4+24, fmt.Sprintf("score %d", snap.Score))
		y := h/4 + 56
		for i, e := range a.entries {
			drawCenteredText(screen, w, y+i*16, fmt.Sprintf("%d. %-8s %6d  %s", i+1, e.Name, e.Score, e.Date))
		}
		y += len(a.entries)*16 + 24
		if a.submitted {
			drawCenteredText(screen, w, y, "saved! space to restart / esc for menu")
		} else {
			drawCenteredText(screen, w, y, fmt.Sprintf("name: %s_", string(a.name)))
			drawCenteredText(screen, w, y+16, "enter to save, space to restart, esc for menu")
		}
	}
}

// vec2 is a screen-space offset.
type vec2 struct {
	x float64
	y float64
}

// drawFilledCircle fills a circle with horizontal scanlines.
func drawFilledCircle(dst *ebiten.Image, cx, cy, radius float64, clr color.Color) {
	for dy := -radius; dy <= radius; dy++ {
		half := math.Sqrt(radius*radius - dy*dy)
		ebitenutil.DrawRect(dst, cx-half, cy+dy, half*2, 1, clr)
	}
}

// drawCenteredText approximates centering for the debug font (6px per
// glyph), which is plenty for a primitive-shape HUD.
func drawCenteredText(dst *ebiten.Image, screenWidth, y int, text string) {
	x := screenWidth/2 - len(text)*6/2
	ebitenutil.DebugPrintAt(dst, text, x, y)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
