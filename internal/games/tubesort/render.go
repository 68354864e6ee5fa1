package tubesort

import (
	"fmt"

	"github.com/vovakirdan/tubesort/internal/core"
)

const (
	tubeWidth  = 5 // "│███│"
	hudHeight  = 3
	footHeight = 2
)

// layout holds the on-screen placement of every tube.
type layout struct {
	tubes  []core.Rect // Full clickable area per tube
	height int         // Interior rows per tube
	top    int         // Y of the selection marker row
}

// relayout recomputes tube positions for the current board and screen.
func (g *Game) relayout() {
	if g.session == nil {
		return
	}
	board := g.session.Board()
	n := len(board)

	// Interior height fits the tallest stack the board can build.
	rows := max(TubesForLevel(g.session.Level()), board.Tallest()) + 1

	gap := 2
	if n*tubeWidth+(n-1)*gap > g.screenW {
		gap = 1
	}
	boardW := n*tubeWidth + (n-1)*gap
	// marker row + interior + bottom + label row
	boardH := 1 + rows + 1 + 1

	g.tooSmall = boardW > g.screenW || hudHeight+boardH+footHeight > g.screenH

	x0 := (g.screenW - boardW) / 2
	top := hudHeight + max(0, (g.screenH-hudHeight-footHeight-boardH)/2)

	g.layout = layout{
		tubes:  make([]core.Rect, n),
		height: rows,
		top:    top,
	}
	for i := range n {
		g.layout.tubes[i] = core.NewRect(x0+i*(tubeWidth+gap), top, tubeWidth, boardH)
	}
}

// tubeAt maps a screen position to a tube index.
func (g *Game) tubeAt(x, y int) (int, bool) {
	for i, r := range g.layout.tubes {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	g.renderTubes(dst)
	g.renderFooter(dst)
	g.renderOverlays(dst)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, "T U B E   S O R T")

	var info string
	switch {
	case g.session.CustomName() != "":
		info = fmt.Sprintf("Puzzle: %s", g.session.CustomName())
	case g.mode == ModeCampaign && g.session.opts.MaxLevel > 0:
		info = fmt.Sprintf("Level %d/%d  %s", g.session.Level(), g.session.opts.MaxLevel, LevelName(g.session.Level()))
	default:
		info = fmt.Sprintf("Level %d", g.session.Level())
	}
	dst.DrawText(1, 1, info)

	stats := fmt.Sprintf("Moves: %d  Score: %d", g.session.Moves(), g.session.Score())
	dst.DrawText(g.screenW-len(stats)-1, 1, stats)

	if g.session.Verdict() == VerdictUnsolvable && !g.session.Won() {
		warn := "No solution for this deal - press R"
		dst.DrawTextColored((g.screenW-len(warn))/2, 2, warn, core.ColorOrange)
	}
}

func (g *Game) renderTubes(dst *core.Screen) {
	board := g.session.Board()
	selected := g.session.Selected()

	for i, r := range g.layout.tubes {
		wall := core.ColorGray
		if i == selected {
			wall = core.ColorBrightWhite
		}
		if g.hint != nil && (i == g.hint.From || i == g.hint.To) {
			wall = core.ColorYellow
		}

		// Marker row: selected tube is lifted, cursor shown as a caret.
		cx := r.X + tubeWidth/2
		switch {
		case i == selected:
			dst.SetColored(cx, r.Y, '▼', core.ColorBrightWhite)
		case i == g.cursor:
			dst.SetColored(cx, r.Y, '▽', core.ColorWhite)
		}

		interiorTop := r.Y + 1
		bottom := interiorTop + g.layout.height
		dst.DrawVLine(r.X, interiorTop, g.layout.height, '│', wall)
		dst.DrawVLine(r.Right()-1, interiorTop, g.layout.height, '│', wall)
		dst.SetColored(r.X, bottom, '└', wall)
		dst.DrawHLine(r.X+1, bottom, tubeWidth-2, '─', wall)
		dst.SetColored(r.Right()-1, bottom, '┘', wall)

		// Units fill from the bottom up.
		for j, u := range board[i] {
			y := bottom - 1 - j
			if y < interiorTop {
				break
			}
			c := u.ScreenColor()
			dst.SetColored(r.X+1, y, '█', c)
			dst.SetColored(r.X+2, y, u.Char(), c)
			dst.SetColored(r.X+3, y, '█', c)
		}

		label := fmt.Sprintf("%d", i+1)
		dst.DrawText(cx-(len(label)-1)/2, bottom+1, label)
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	if g.message != "" {
		dst.DrawTextCentered(g.screenH-2, g.message)
	}
	dst.DrawTextCentered(g.screenH-1, g.Controls())
}

func (g *Game) renderOverlays(dst *core.Screen) {
	centerX := g.screenW / 2
	centerY := hudHeight + (g.screenH-hudHeight-footHeight)/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.session.Complete():
		g.drawOverlay(dst, centerX, centerY,
			fmt.Sprintf("You win level %d!", g.session.Level()),
			"All levels complete!",
			fmt.Sprintf("Final score: %d", g.session.Score()),
			"R: Replay  B: Menu")
	case g.session.Won():
		g.drawOverlay(dst, centerX, centerY,
			fmt.Sprintf("You win level %d!", g.session.Level()),
			fmt.Sprintf("Solved in %d moves", g.session.Moves()),
			"N: Next level  R: Replay")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
