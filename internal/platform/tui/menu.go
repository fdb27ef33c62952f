package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lavabreak/internal/config"
	"github.com/vovakirdan/lavabreak/internal/core"
	"github.com/vovakirdan/lavabreak/internal/registry"
)

// MenuItem represents a selectable game variant in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// difficultyOption is one row of the difficulty picker.
type difficultyOption struct {
	Label  string
	Preset config.DifficultyPreset
}

var difficultyOptions = []difficultyOption{
	{"As configured", ""},
	{"Easy", config.DifficultyEasy},
	{"Normal", config.DifficultyNormal},
	{"Hard", config.DifficultyHard},
}

// MenuModel is the Bubble Tea model for the launcher: pick a variant,
// then a difficulty.
type MenuModel struct {
	items            []MenuItem
	cursor           int
	difficultyCursor int
	inDifficulty     bool
	width            int
	height           int
	config           core.RuntimeConfig
	keyMapper        *KeyMapper
	quitting         bool
	selected         *MenuItem
	openHistory      bool
}

// NewMenuModel creates a menu listing every registered game. The cursor
// starts on lastGameID when it is registered.
func NewMenuModel(cfg core.RuntimeConfig, lastGameID string) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	cursor := 0
	for i, g := range games {
		if g.ID == lastGameID {
			cursor = i
		}
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.TermW,
		height:    cfg.TermH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.TermW = msg.Width
		m.config.TermH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if m.inDifficulty {
		return m.handleDifficultyKey(action)
	}

	switch action {
	case MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			m.inDifficulty = true
		}

	case MenuActionHistory:
		m.openHistory = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionUp:
		if m.difficultyCursor > 0 {
			m.difficultyCursor--
		}
	case MenuActionDown:
		if m.difficultyCursor < len(difficultyOptions)-1 {
			m.difficultyCursor++
		}
	case MenuActionSelect:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit // Exit menu to start game
	case MenuActionBack:
		m.inDifficulty = false
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inDifficulty {
		return m.viewDifficulty()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("L A V A   B R E A K O U T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a variant", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Title, m.width))
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: History  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewDifficulty() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.items[m.cursor].Title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, opt := range difficultyOptions {
		cursor := "  "
		if i == m.difficultyCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, opt.Label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the highlighted difficulty preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return difficultyOptions[m.difficultyCursor].Preset
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID       string
	Difficulty   config.DifficultyPreset
	Config       core.RuntimeConfig
	WantsHistory bool
	Quit         bool
}

// result converts the final menu state.
func (m MenuModel) result() MenuResult {
	res := MenuResult{Config: m.config}
	switch {
	case m.openHistory:
		res.WantsHistory = true
	case m.selected != nil:
		res.GameID = m.selected.GameID
		res.Difficulty = m.Difficulty()
	default:
		res.Quit = true
	}
	return res
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, lastGameID string) (MenuResult, error) {
	model := NewMenuModel(cfg, lastGameID)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
