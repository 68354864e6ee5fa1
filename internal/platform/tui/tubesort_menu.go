package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tubesort/internal/core"
	"github.com/vovakirdan/tubesort/internal/games/tubesort"
	"github.com/vovakirdan/tubesort/internal/games/tubesort/levels"
)

// TubeSortMode represents the selected game mode.
type TubeSortMode int

const (
	TubeSortModeCampaign TubeSortMode = iota
	TubeSortModeEndless
	TubeSortModePack
)

// TubeSortSelection holds the user's selection from the mode menu.
type TubeSortSelection struct {
	Mode  TubeSortMode
	Level int           // 0 = config default, otherwise the level to start on
	Pack  *levels.Level // Set for TubeSortModePack
}

// NewGame creates a game configured for the selection. Settings are kept
// on the instance, so concurrent sessions do not interfere.
func (s TubeSortSelection) NewGame() *tubesort.Game {
	switch s.Mode {
	case TubeSortModeEndless:
		g := tubesort.NewEndless()
		g.StartAt(s.Level)
		return g
	case TubeSortModePack:
		g := tubesort.New()
		if s.Pack != nil {
			g.UseBoard(s.Pack.Name, s.Pack.Board)
		}
		return g
	default:
		g := tubesort.New()
		g.StartAt(s.Level)
		return g
	}
}

type modeOption int

const (
	optionCampaign modeOption = iota
	optionContinue
	optionEndless
	optionSelectLevel
	optionPacks
)

// TubeSortModeModel lets users choose mode, starting level or pack puzzle.
type TubeSortModeModel struct {
	options     []modeOption
	cursor      int
	listCursor  int
	inLevelList bool
	inPackList  bool
	progress    int // Furthest campaign level reached, 0 if unknown
	packs       []levels.Level
	width       int
	height      int
	keyMapper   *KeyMapper
	selection   TubeSortSelection
	choosing    bool
	quitting    bool
	back        bool
}

// NewTubeSortModeModel creates a new mode selection model. Continue is
// offered when progress is past level 1, the pack list when packs is non-empty.
func NewTubeSortModeModel(width, height, progress int, packs []levels.Level) TubeSortModeModel {
	options := []modeOption{optionCampaign}
	if progress > 1 {
		options = append(options, optionContinue)
	}
	options = append(options, optionEndless, optionSelectLevel)
	if len(packs) > 0 {
		options = append(options, optionPacks)
	}

	return TubeSortModeModel{
		options:   options,
		progress:  min(progress, tubesort.LevelCount()),
		packs:     packs,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m TubeSortModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TubeSortModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m TubeSortModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch {
	case m.inLevelList:
		return m.handleListKey(action, tubesort.LevelCount(), func(i int) TubeSortSelection {
			return TubeSortSelection{Mode: TubeSortModeCampaign, Level: i + 1}
		})
	case m.inPackList:
		return m.handleListKey(action, len(m.packs), func(i int) TubeSortSelection {
			return TubeSortSelection{Mode: TubeSortModePack, Pack: &m.packs[i]}
		})
	}
	return m.handleModeKey(action)
}

func (m TubeSortModeModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		switch m.options[m.cursor] {
		case optionCampaign:
			return m.choose(TubeSortSelection{Mode: TubeSortModeCampaign})
		case optionContinue:
			return m.choose(TubeSortSelection{Mode: TubeSortModeCampaign, Level: m.progress})
		case optionEndless:
			return m.choose(TubeSortSelection{Mode: TubeSortModeEndless})
		case optionSelectLevel:
			m.inLevelList = true
			m.listCursor = 0
		case optionPacks:
			m.inPackList = true
			m.listCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m TubeSortModeModel) handleListKey(action MenuAction, n int, pick func(int) TubeSortSelection) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.listCursor > 0 {
			m.listCursor--
		}
	case MenuActionDown:
		if m.listCursor < n-1 {
			m.listCursor++
		}
	case MenuActionSelect:
		if n > 0 {
			return m.choose(pick(m.listCursor))
		}
	case MenuActionBack:
		m.inLevelList = false
		m.inPackList = false
	}

	return m, nil
}

func (m TubeSortModeModel) choose(sel TubeSortSelection) (tea.Model, tea.Cmd) {
	m.choosing = false
	m.selection = sel
	return m, tea.Quit
}

// View renders the mode/level selection.
func (m TubeSortModeModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.inLevelList:
		return m.viewLevelList()
	case m.inPackList:
		return m.viewPackList()
	}
	return m.viewModeSelect()
}

func (m TubeSortModeModel) optionLabel(o modeOption) string {
	switch o {
	case optionCampaign:
		return fmt.Sprintf("Campaign (%d levels)", tubesort.LevelCount())
	case optionContinue:
		return fmt.Sprintf("Continue (level %d)", m.progress)
	case optionEndless:
		return "Endless Mode"
	case optionSelectLevel:
		return "Select Level..."
	default:
		return fmt.Sprintf("Puzzle Packs (%d)...", len(m.packs))
	}
}

func (m TubeSortModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T U B E   S O R T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	for i, o := range m.options {
		b.WriteString(centerText(cursorPrefix(i == m.cursor)+m.optionLabel(o), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m TubeSortModeModel) viewLevelList() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, name := range tubesort.LevelNames() {
		lvl := tubesort.GetLevel(i)
		line := fmt.Sprintf("%s%2d. %-14s %2d tubes", cursorPrefix(i == m.listCursor), i+1, name, lvl.Tubes())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m TubeSortModeModel) viewPackList() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("PUZZLE PACKS", m.width))
	b.WriteString("\n\n")

	for i, p := range m.packs {
		line := fmt.Sprintf("%s%-20s %2d tubes", cursorPrefix(i == m.listCursor), p.Name, len(p.Board))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func cursorPrefix(active bool) string {
	if active {
		return "> "
	}
	return "  "
}

// Selected returns the selection, or nil if still choosing.
func (m TubeSortModeModel) Selected() *TubeSortSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m TubeSortModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m TubeSortModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m TubeSortModeModel) WantsBack() bool {
	return m.back
}

// RunTubeSortModeSelector runs the mode selection and returns the selection,
// or nil when the user backed out or quit.
func RunTubeSortModeSelector(cfg core.RuntimeConfig, progress int, packs []levels.Level) (*TubeSortSelection, error) {
	p := tea.NewProgram(
		NewTubeSortModeModel(cfg.ScreenW, cfg.ScreenH, progress, packs),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(TubeSortModeModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
