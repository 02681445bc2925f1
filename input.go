package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lwhmiao/fruit/game"
	"github.com/lwhmiao/fruit/leaderboard"
)

// handleInput polls ebiten input once per frame and translates it into
// core operations. The core silently ignores anything invalid for the
// current state, so forwarding is unconditional where convenient.
func (a *App) handleInput(state game.State) {
	a.forwardPointerSamples()

	switch state {
	case game.StateMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
			inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			a.game.StartGame()
		}

	case game.StatePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			a.game.PauseGame()
		}

	case game.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
			a.game.ResumeGame()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyH) {
			a.game.GoHome()
		}

	case game.StateGameOver:
		a.handleGameOverInput()
	}
}

// forwardPointerSamples feeds every live pointer position to the blade.
// Mouse drags and touches are both just (x, y) samples to the core.
func (a *App) forwardPointerSamples() {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.game.OnPointerSample(float64(x), float64(y))
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		a.game.OnPointerSample(float64(x), float64(y))
	}
}

// handleGameOverInput runs the name-entry prompt plus restart/home keys.
func (a *App) handleGameOverInput() {
	if !a.submitted {
		// name entry; space stays free as the restart key
		for _, r := range ebiten.AppendInputChars(nil) {
			if r > ' ' && len(a.name) < leaderboard.MaxNameLen {
				a.name = append(a.name, r)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(a.name) > 0 {
			a.name = a.name[:len(a.name)-1]
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && len(a.name) > 0 {
			if err := a.game.SubmitScore(string(a.name)); err == nil {
				a.submitted = true
				a.refreshEntries()
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.game.StartGame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.game.GoHome()
	}
}
