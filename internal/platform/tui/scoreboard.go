package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rocket/internal/registry"
	"github.com/vovakirdan/tui-rocket/internal/storage"
)

const (
	maxScores       = 100 // rows loaded per level
	statsPanelWidth = 22
	seedColumnWidth = 20 // fits any int64 seed
	baseTableWidth  = 45 // rank, score, pilot and date columns with padding
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardPanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type scoreboardKeys struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Mine      key.Binding
	Back      key.Binding
	Quit      key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.Mine, k.Back}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Mine, k.Back, k.Quit},
	}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		NextLevel: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next level")),
		PrevLevel: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev level")),
		Mine:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "my runs")),
		Back:      key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of each level with a stats panel.
// The seed column lets a run be replayed with --seed.
type ScoreboardModel struct {
	levels   []registry.GameInfo
	level    int
	store    *storage.Store
	player   string
	mineOnly bool
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	table    table.Model
	help     help.Model
	keys     scoreboardKeys
	width    int
	height   int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard for player, starting on the first
// registered level. A nil store shows empty tables.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		levels: registry.List(),
		store:  store,
		player: player,
		keys:   newScoreboardKeys(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) showStats() bool {
	return m.width >= baseTableWidth+statsPanelWidth+8
}

func (m ScoreboardModel) showSeed() bool {
	avail := m.width - 4
	if m.showStats() {
		avail -= statsPanelWidth + 4
	}
	return avail >= baseTableWidth+seedColumnWidth+2
}

func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 8},
		{Title: "Pilot", Width: 12},
		{Title: "Date", Width: 12},
	}
	if m.showSeed() {
		columns = append(columns, table.Column{Title: "Seed", Width: seedColumnWidth})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
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

// load fetches scores and stats for the current level. Store errors show
// as an empty table.
func (m *ScoreboardModel) load() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.levels) > 0 {
		id := m.levels[m.level].ID

		var scores []storage.ScoreEntry
		var err error
		if m.mineOnly {
			scores, err = m.store.PlayerScores(id, m.player, maxScores)
		} else {
			scores, err = m.store.TopScores(id, maxScores)
		}
		if err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}
	m.fillRows()
}

func (m *ScoreboardModel) fillRows() {
	seed := m.showSeed()
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			player,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
		if seed {
			row = append(row, fmt.Sprintf("%d", s.Seed))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) switchLevel(delta int) {
	if len(m.levels) == 0 {
		return
	}
	m.level = (m.level + delta + len(m.levels)) % len(m.levels)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
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
		case key.Matches(msg, m.keys.NextLevel):
			m.switchLevel(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevLevel):
			m.switchLevel(-1)
			return m, nil
		case key.Matches(msg, m.keys.Mine):
			if m.player != "" {
				m.mineOnly = !m.mineOnly
				m.load()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillRows()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	title := "HIGH SCORES"
	if m.mineOnly {
		title = "MY RUNS - " + m.player
	}
	b.WriteString(centerText(boardTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := boardPanelStyle.Render(m.tableContent())
	if m.showStats() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.statsPanel())
	}
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.levels))
	for i, l := range m.levels {
		if i == m.level {
			tabs[i] = boardActiveTab.Render(l.Title)
		} else {
			tabs[i] = boardTabStyle.Render(l.Title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) tableContent() string {
	if len(m.scores) == 0 {
		msg := "No scores recorded yet.\nFly a run to set a high score!"
		if m.mineOnly {
			msg = "You have no runs on this level yet."
		}
		return boardDimStyle.Italic(true).Padding(2, 4).Render(msg)
	}
	return m.table.View()
}

// statsPanel summarises every run of the current level.
func (m ScoreboardModel) statsPanel() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return boardPanelStyle.Width(statsPanelWidth).Render("No runs yet")
	}

	lines := []string{
		boardTitleStyle.Render("Stats"),
		"",
		fmt.Sprintf("Best     %d", m.stats.HighScore),
		fmt.Sprintf("Runs     %d", m.stats.GamesCount),
		fmt.Sprintf("Pilots   %d", m.stats.Players),
		fmt.Sprintf("Average  %.0f", m.stats.AvgScore),
		"Last     " + m.stats.LastPlayed.Format("Jan 02"),
	}
	return boardPanelStyle.Width(statsPanelWidth).Render(strings.Join(lines, "\n"))
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen for the local player.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, localPlayer(), width, height),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
