package main

import (
	"time"

	"impulse-snake/config"
	"impulse-snake/game"
	"impulse-snake/game/types"
	"impulse-snake/input"
	"impulse-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Raylib key codes and the key names the dispatcher understands.
var keyNames = []struct {
	code int32
	name string
}{
	{rl.KeyW, "w"},
	{rl.KeyA, "a"},
	{rl.KeyS, "s"},
	{rl.KeyD, "d"},
	{rl.KeyUp, input.KeyArrowUp},
	{rl.KeyDown, input.KeyArrowDown},
	{rl.KeyLeft, input.KeyArrowLeft},
	{rl.KeyRight, input.KeyArrowRight},
	{rl.KeySpace, input.KeySpace},
	{rl.KeyEscape, input.KeyEscape},
}

func hostClock() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}

func runWindow(cfg *config.Config, log *zap.SugaredLogger) error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "Impulse Snake")
	defer rl.CloseWindow()
	// Escape resets the game instead of closing the window.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	eng, err := game.NewEngine(cfg.Engine(),
		game.WithClock(hostClock),
		game.WithLogger(log.Named("engine")),
	)
	if err != nil {
		return err
	}
	defer eng.Stop()

	disp := input.NewDispatcher(eng,
		input.WithStartDebounce(cfg.Input.StartDebounce),
		input.WithLogger(log.Named("input")),
	)
	renderer := ui.NewRenderer()
	var name input.NameField

	for !rl.WindowShouldClose() {
		now := hostClock()
		pollKeys(disp, &name, eng.Status(), now)
		eng.Tick(now)
		renderer.Draw(eng.Snapshot(), eng.Grid(), ui.HUD{
			PlayerName:  name.Text(),
			EditingName: name.Focused(),
		})
	}
	return nil
}

// pollKeys feeds this frame's key presses to the dispatcher, then lets the
// name field consume whatever was passed through to it.
func pollKeys(disp *input.Dispatcher, name *input.NameField, status types.Status, now time.Duration) {
	for _, k := range keyNames {
		if !rl.IsKeyPressed(k.code) {
			continue
		}
		res := disp.Dispatch(input.Event{Key: k.name, Active: name.Element(), At: now})
		if res == input.Passthrough && k.code == rl.KeyEscape {
			name.Blur()
		}
	}

	if !name.Focused() {
		if status == types.Idle && rl.IsKeyPressed(rl.KeyTab) {
			name.Focus()
		}
		return
	}

	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		name.Insert(rune(ch))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		name.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyTab) {
		name.Blur()
	}
}
