package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tubesort/internal/registry"
	"github.com/vovakirdan/tubesort/internal/storage"
)

const (
	scoreLimit        = 100 // rows loaded per mode
	progressLimit     = 12  // players listed in the progress panel
	progressWidth     = 24
	minWidthForPanel  = 90
	scoreColumnsWidth = 51
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tabStyle     = mutedStyle.Padding(0, 1)
	activeTab    = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextMode, k.Back, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextMode, k.PrevMode},
		{k.Back, k.Quit, k.Help},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

// ScoreboardModel shows the best runs of each mode and how far every
// player got in it.
type ScoreboardModel struct {
	modes    []registry.GameInfo
	mode     int
	store    *storage.Store
	scores   []storage.ScoreEntry
	progress []storage.ProgressEntry
	stats    *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel opens the scoreboard on gameID, or on the first
// registered mode when gameID is empty or unknown.
func NewScoreboardModel(store *storage.Store, width, height int, gameID string) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for i, g := range m.modes {
		if g.ID == gameID {
			m.mode = i
		}
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForPanel
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 10},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 12},
	}

	avail := m.width - 4
	if m.wide() {
		avail -= progressWidth + 6
	}
	if spare := avail - scoreColumnsWidth; spare > 0 {
		columns[1].Width += min(spare, 14)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches scores, stats and progress for the current mode.
func (m *ScoreboardModel) reload() {
	m.scores, m.progress, m.stats = nil, nil, nil
	if m.store != nil && len(m.modes) > 0 {
		id := m.modes[m.mode].ID
		var err error
		if m.scores, err = m.store.TopScores(id, scoreLimit); err != nil {
			log.Warn("could not load scores", "game", id, "error", err)
		}
		if m.stats, err = m.store.GetGameStats(id); err != nil {
			log.Warn("could not load stats", "game", id, "error", err)
		}
		if m.progress, err = m.store.AllProgress(id); err != nil {
			log.Warn("could not load progress", "game", id, "error", err)
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.modes); n > 0 {
		m.mode = (m.mode + delta + n) % n
		m.reload()
	}
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.NextMode):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	body := boxStyle.Render(m.scoresView())
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", boxStyle.Width(progressWidth).Render(m.progressView()))
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	if len(m.modes) == 0 {
		return ""
	}
	parts := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.mode {
			parts[i] = activeTab.Render(g.Title)
		} else {
			parts[i] = tabStyle.Render(g.Title)
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		return activeTab.Render("< " + m.modes[m.mode].Title + " >")
	}
	return line
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d runs  ·  best %d  ·  avg %.0f  ·  furthest level %d",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.BestLevel)
}

func (m ScoreboardModel) scoresView() string {
	if len(m.scores) == 0 {
		return mutedStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nSolve a level to set a high score!")
	}
	return m.table.View()
}

// progressView lists the furthest level of each player, best first.
func (m ScoreboardModel) progressView() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Progress"))
	b.WriteString("\n")
	if len(m.progress) == 0 {
		b.WriteString(mutedStyle.Render("nobody yet"))
		return b.String()
	}
	nameWidth := progressWidth - 12
	for i, p := range m.progress {
		if i == progressLimit {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("+%d more", len(m.progress)-i)))
			break
		}
		name := p.Player
		if r := []rune(name); len(r) > nameWidth {
			name = string(r[:nameWidth-1]) + "…"
		}
		fmt.Fprintf(&b, "%-*s lvl %2d\n", nameWidth, name, p.Level)
	}
	return strings.TrimRight(b.String(), "\n")
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// goBack is true when the user pressed back rather than quit.
func RunScoreboard(store *storage.Store, width, height int, gameID string) (goBack bool, err error) {
	final, err := tea.NewProgram(
		NewScoreboardModel(store, width, height, gameID),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
