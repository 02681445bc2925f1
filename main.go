package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lwhmiao/fruit/game"
	"github.com/lwhmiao/fruit/leaderboard"
)

func main() {
	cfg := game.LoadConfig("fruit.yaml")

	board, err := leaderboard.Open("fruit")
	if err != nil {
		log.Printf("leaderboard disabled: %v", err)
		board = nil
	}
	var sink game.ScoreStore
	if board != nil {
		sink = board
	}

	app := &App{
		cfg:   cfg,
		game:  game.NewGame(cfg, sink),
		board: board,
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle("Fruit Slice")

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

// App is the ebiten shell around the simulation core. It forwards
// input, drives one simulation tick per frame and renders snapshots.
type App struct {
	cfg   game.Config
	game  *game.Game
	board *leaderboard.Store

	// game-over screen state
	name      []rune
	submitted bool
	entries   []leaderboard.Entry

	lastState game.State
}

// Update runs one frame: input first, then one simulation tick.
func (a *App) Update() error {
	state := a.game.State()
	if state != a.lastState {
		if state == game.StateGameOver {
			a.name = a.name[:0]
			a.submitted = false
			a.refreshEntries()
		}
		a.lastState = state
	}

	a.handleInput(state)
	a.game.Tick()
	return nil
}

// Draw renders the current snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	a.drawScene(screen, a.game.Snapshot())
}

// Layout keeps the logical resolution fixed.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.ScreenWidth, a.cfg.ScreenHeight
}

func (a *App) refreshEntries() {
	a.entries = nil
	if a.board != nil {
		a.entries = a.board.Load()
	}
}
