package ui

import (
	"fmt"

	"impulse-snake/game"
	"impulse-snake/game/types"
	"impulse-snake/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 40 // Space reserved above the board for the HUD
)

var (
	backgroundColor = rl.NewColor(10, 10, 10, 255)
	gridColor       = rl.Fade(rl.White, 0.05)
	foodColor       = rl.NewColor(245, 158, 11, 255)
	snakeColor      = rl.NewColor(34, 197, 94, 255)
	panelColor      = rl.Fade(rl.NewColor(24, 24, 27, 255), 0.95)
	mutedColor      = rl.NewColor(161, 161, 170, 255)
	dangerColor     = rl.NewColor(239, 68, 68, 255)
)

// HUD carries the cosmetic, non-game state shown around the board.
type HUD struct {
	PlayerName  string
	EditingName bool
}

// Renderer draws engine snapshots with raylib. It only reads the snapshot
// and may be called any number of times per tick.
type Renderer struct {
	screenWidth  int
	screenHeight int
	fontSize     int32
	layout       layout.Layout
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions(types.NewSquareGrid(types.DefaultGridSize))
	return r
}

// UpdateDimensions re-reads the window size and recomputes the board layout.
func (r *Renderer) UpdateDimensions(grid types.Grid) {
	r.screenWidth = rl.GetScreenWidth()
	r.screenHeight = rl.GetScreenHeight()
	r.fontSize = int32(r.screenHeight / 30)
	if r.fontSize < 10 {
		r.fontSize = 10
	}

	// raylib applies the HiDPI scale itself, so the layout stays in logical
	// pixels.
	l := layout.Compute(r.screenWidth, r.screenHeight-hudHeight, 1, borderPadding, grid)
	l.Board.Y += hudHeight
	r.layout = l
}

func (r *Renderer) Draw(snap game.Snapshot, grid types.Grid, hud HUD) {
	r.UpdateDimensions(grid)
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(backgroundColor)

	if snap.Status == types.Idle {
		r.drawStartScreen(hud)
		return
	}

	r.drawBoard()
	r.drawFood(snap.Food)
	r.drawSnake(snap.Snake)
	r.drawHUD(snap.Score, hud.PlayerName)

	if snap.Status == types.GameOver {
		r.drawGameOver(snap.Score, hud.PlayerName)
	}
}

func (r *Renderer) drawBoard() {
	board := r.layout.Board
	cell := r.layout.CellSize

	// Draw grid lines
	for i := 0; i <= r.layout.Grid.Width; i++ {
		x := board.X + float32(i)*cell
		rl.DrawLineV(rl.NewVector2(x, board.Y), rl.NewVector2(x, board.Y+board.H), gridColor)
	}
	for i := 0; i <= r.layout.Grid.Height; i++ {
		y := board.Y + float32(i)*cell
		rl.DrawLineV(rl.NewVector2(board.X, y), rl.NewVector2(board.X+board.W, y), gridColor)
	}

	rl.DrawRectangleLinesEx(rl.NewRectangle(board.X-2, board.Y-2, board.W+4, board.H+4), 2, snakeColor)
}

func (r *Renderer) drawFood(food types.Point) {
	cell := r.layout.Cell(food)
	cx, cy := cell.Center()
	radius := cell.W/2 - 2
	if radius < 1 {
		radius = 1
	}
	// Glow
	rl.DrawCircleV(rl.NewVector2(cx, cy), radius+3, rl.Fade(foodColor, 0.25))
	rl.DrawCircleV(rl.NewVector2(cx, cy), radius, foodColor)
}

func (r *Renderer) drawSnake(body []types.Point) {
	// Tail first so the head stays on top.
	for i := len(body) - 1; i >= 0; i-- {
		cell := r.layout.Cell(body[i]).Inset(1)
		rect := rl.NewRectangle(cell.X, cell.Y, cell.W, cell.H)
		if i == 0 {
			glow := r.layout.Cell(body[i]).Inset(-2)
			rl.DrawRectangleRec(rl.NewRectangle(glow.X, glow.Y, glow.W, glow.H), rl.Fade(snakeColor, 0.3))
			rl.DrawRectangleRec(rect, snakeColor)
			continue
		}
		rl.DrawRectangleRec(rect, rl.Fade(snakeColor, layout.BodyAlpha(i, len(body))))
	}
}

func (r *Renderer) drawHUD(score int, playerName string) {
	y := int32(r.layout.Board.Y) - hudHeight + (hudHeight-r.fontSize)/2
	x := int32(r.layout.Board.X)
	if playerName != "" {
		rl.DrawText(playerName, x, y, r.fontSize, rl.White)
	}
	label := fmt.Sprintf("Score: %d", score)
	width := rl.MeasureText(label, r.fontSize)
	rl.DrawText(label, int32(r.layout.Board.X+r.layout.Board.W)-width, y, r.fontSize, rl.White)
}

func (r *Renderer) drawGameOver(score int, playerName string) {
	board := r.layout.Board
	w := board.W * 0.8
	h := float32(r.fontSize) * 8
	panel := rl.NewRectangle(board.X+(board.W-w)/2, board.Y+(board.H-h)/2, w, h)
	rl.DrawRectangleRec(panel, panelColor)

	lines := []struct {
		text  string
		size  int32
		color rl.Color
	}{
		{"Game Over!", r.fontSize * 2, dangerColor},
		{fmt.Sprintf("Final Score: %d", score), r.fontSize, rl.White},
		{"Press SPACE to play again", r.fontSize, mutedColor},
	}
	if playerName != "" {
		lines[0].text = fmt.Sprintf("Game Over, %s!", playerName)
	}

	y := int32(panel.Y) + r.fontSize
	for _, line := range lines {
		r.drawCentered(line.text, y, line.size, line.color)
		y += line.size + r.fontSize/2
	}
}

func (r *Renderer) drawStartScreen(hud HUD) {
	y := int32(r.screenHeight) / 6
	r.drawCentered("Impulse Snake", y, r.fontSize*2, snakeColor)
	y += r.fontSize * 3
	r.drawCentered("Guide your snake, eat the food, and grow as long as you can.", y, r.fontSize*2/3, mutedColor)
	y += r.fontSize * 2

	// Name field
	name := hud.PlayerName
	if hud.EditingName {
		name += "_"
	} else if name == "" {
		name = "TAB to enter your name"
	}
	fieldW := float32(r.screenWidth) * 0.5
	field := rl.NewRectangle((float32(r.screenWidth)-fieldW)/2, float32(y), fieldW, float32(r.fontSize)*1.6)
	border := mutedColor
	if hud.EditingName {
		border = snakeColor
	}
	rl.DrawRectangleLinesEx(field, 2, border)
	rl.DrawText(name, int32(field.X)+8, int32(field.Y)+r.fontSize/3, r.fontSize, rl.White)
	y += r.fontSize * 3

	// Control legend
	for _, line := range []string{"W / Up  -  Up", "S / Down  -  Down", "A / Left  -  Left", "D / Right  -  Right", "ESC  -  Back to this screen"} {
		r.drawCentered(line, y, r.fontSize*3/4, mutedColor)
		y += r.fontSize
	}
	y += r.fontSize
	r.drawCentered("Press SPACE to begin", y, r.fontSize, rl.White)
}

func (r *Renderer) drawCentered(text string, y, size int32, color rl.Color) {
	width := rl.MeasureText(text, size)
	rl.DrawText(text, (int32(r.screenWidth)-width)/2, y, size, color)
}
