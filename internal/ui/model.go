package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-knifefight/internal/game"
	"github.com/amalg/go-knifefight/internal/level"
)

// snapshotMsg carries a new world snapshot from the engine.
type snapshotMsg game.Snapshot

// errMsg carries an error.
type errMsg struct{ err error }

func (e errMsg) Error() string { return e.err.Error() }

// Model is the Bubbletea model driving the game: it decodes key events
// into engine actions, renders snapshots, and sequences levels
// (restart on death, advance on exit, victory when levels run out).
type Model struct {
	loader     *level.Loader
	cfg        game.Config
	engine     *game.Engine
	snap       *game.Snapshot
	levelIndex int
	victory    bool
	err        error
	quitting   bool
}

// NewModel creates the game model starting at the given level index.
func NewModel(loader *level.Loader, cfg game.Config, startLevel int) Model {
	return Model{
		loader:     loader,
		cfg:        cfg,
		levelIndex: startLevel,
	}
}

// Init boots the first level.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startLevelMsg{} }
}

// startLevelMsg asks the model to (re)load the current level index.
type startLevelMsg struct{}

// Update handles incoming messages (key presses, snapshots, transitions).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case startLevelMsg:
		return m.startLevel()

	case snapshotMsg:
		snap := game.Snapshot(msg)
		m.snap = &snap
		switch snap.Status {
		case game.StatusPlayerDied:
			// Reload the current level from its initial layout.
			m.engine.Stop()
			return m, func() tea.Msg { return startLevelMsg{} }
		case game.StatusLevelComplete:
			m.engine.Stop()
			m.levelIndex++
			return m, func() tea.Msg { return startLevelMsg{} }
		}
		return m, waitForSnapshot(m.engine)

	case errMsg:
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

// startLevel loads the current level index and spins up a fresh engine.
// Running out of levels is victory; anything else wrong with the layout
// is fatal.
func (m Model) startLevel() (tea.Model, tea.Cmd) {
	world, err := m.loader.Load(m.levelIndex, m.cfg)
	if errors.Is(err, level.ErrNoSuchLevel) {
		m.victory = true
		return m, nil
	}
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.engine = game.NewEngine(world, m.cfg)
	go m.engine.Run()
	return m, waitForSnapshot(m.engine)
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye! 👋\n"
	}

	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Render("Error: "+m.err.Error()) + "\n"
	}

	if m.victory {
		return RenderVictory()
	}

	board := RenderBoard(m.snap)
	hud := RenderHUD(m.snap, m.levelIndex)

	// Layout: board on the left, HUD on the right
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		board,
		"  ",
		hud,
	) + "\n"
}

// handleKey decodes keyboard input into engine actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		if m.engine != nil {
			m.engine.Stop()
		}
		return m, tea.Quit
	}

	if m.engine == nil {
		return m, nil
	}

	switch msg.String() {
	case "up", "w":
		m.engine.EnqueueAction(game.Action{Type: game.ActionMove, Dir: game.DirUp})
	case "down", "s":
		m.engine.EnqueueAction(game.Action{Type: game.ActionMove, Dir: game.DirDown})
	case "left", "a":
		m.engine.EnqueueAction(game.Action{Type: game.ActionMove, Dir: game.DirLeft})
	case "right", "d":
		m.engine.EnqueueAction(game.Action{Type: game.ActionMove, Dir: game.DirRight})
	case " ":
		m.engine.EnqueueAction(game.Action{Type: game.ActionSwing})
	}

	return m, nil
}

// waitForSnapshot returns a Cmd that waits for the engine's next snapshot.
func waitForSnapshot(engine *game.Engine) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-engine.Snapshots()
		if !ok {
			return errMsg{err: fmt.Errorf("engine stopped unexpectedly")}
		}
		return snapshotMsg(snap)
	}
}
