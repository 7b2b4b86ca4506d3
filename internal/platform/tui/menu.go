package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-rocket/internal/core"
	"github.com/vovakirdan/tui-rocket/internal/registry"
	"github.com/vovakirdan/tui-rocket/internal/storage"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// difficulties lists the presets the menu cycles through. The empty entry
// keeps whatever --difficulty or the config file chose.
var difficulties = []string{"", "easy", "normal", "hard", "fixed"}

// MenuItem is one level in the picker.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
	HighScore   int
}

// MenuModel lets the player pick a level and a difficulty.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	difficulty int // index into difficulties
	config     core.RuntimeConfig
	keys       *KeyMapper

	selected   *MenuItem
	scoreboard bool
	quitting   bool
}

// NewMenuModel lists every registered level with its best score.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, len(games))
	for i, g := range games {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title, Description: g.Description}
		if store == nil {
			continue
		}
		if high, err := store.HighScore(g.ID); err == nil {
			items[i].HighScore = high
		}
	}

	return MenuModel{items: items, config: cfg, keys: NewKeyMapper()}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu. Every way out of the menu quits
// its program; callers read the outcome from the final model.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height

	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.items)-1)
		case MenuActionEasier:
			m.difficulty = (m.difficulty + len(difficulties) - 1) % len(difficulties)
		case MenuActionHarder:
			m.difficulty = (m.difficulty + 1) % len(difficulties)
		case MenuActionSelect:
			if len(m.items) > 0 {
				item := m.items[m.cursor]
				m.selected = &item
				return m, tea.Quit
			}
		case MenuActionScoreboard:
			m.scoreboard = true
			return m, tea.Quit
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	w := m.config.ScreenW

	lines := []string{
		"",
		menuTitleStyle.Render("  R O C K E T  "),
		"",
		"Select a level",
		"",
	}
	for i, item := range m.items {
		line := item.Title
		if item.HighScore > 0 {
			line += fmt.Sprintf("  (best %d)", item.HighScore)
		}
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	if len(m.items) > 0 {
		lines = append(lines, "", menuDimStyle.Render(m.items[m.cursor].Description))
	}
	lines = append(lines,
		"",
		"Difficulty: < "+m.difficultyLabel()+" >",
		"",
		menuDimStyle.Render("Up/Down: Level  |  Left/Right: Difficulty  |  Enter: Fly  |  Tab: Scores  |  Q: Quit"),
	)

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(centerText(line, w))
		b.WriteString("\n")
	}
	return b.String()
}

func (m MenuModel) difficultyLabel() string {
	if d := difficulties[m.difficulty]; d != "" {
		return d
	}
	return "default"
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// WithDifficulty returns the menu with preset preselected. Unknown presets
// select the default.
func (m MenuModel) WithDifficulty(preset string) MenuModel {
	m.difficulty = max(slices.Index(difficulties, preset), 0)
	return m
}

// Difficulty returns the chosen preset, or "" to keep the default.
func (m MenuModel) Difficulty() string {
	return difficulties[m.difficulty]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width. Styled text is measured
// without its escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu with difficulty preselected and returns the
// selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, difficulty string) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, cfg).WithDifficulty(difficulty), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: difficulty, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config(), Difficulty: m.Difficulty()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
	}
	return result, nil
}

// ApplyDifficulty hands a menu choice to games that support it.
func ApplyDifficulty(g registry.Game, preset string) {
	if t, ok := g.(registry.Tunable); ok && preset != "" {
		t.SetDifficulty(preset)
	}
}
