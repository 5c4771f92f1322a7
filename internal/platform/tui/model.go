package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/darkpath/internal/config"
	"github.com/vovakirdan/darkpath/internal/core"
	"github.com/vovakirdan/darkpath/internal/game"
	"github.com/vovakirdan/darkpath/internal/world"
)

// footerRows is the number of rows below the game screen used by the help line.
const footerRows = 1

// Options configures a Model.
type Options struct {
	Config  config.DarkPathConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Metrics *Metrics
	// SessionID tags log lines of SSH sessions.
	SessionID string
	// ScreenshotDir overrides where screenshots are written.
	ScreenshotDir string
}

// Model is the Bubble Tea model running one Dark Path session.
type Model struct {
	game      *game.Game
	screen    *core.Screen
	cfg       config.DarkPathConfig
	runtime   core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	hold      *HoldTracker
	pending   core.InputFrame // One-shot actions since the last tick
	lastTick  time.Time
	logger    *log.Logger
	metrics   *Metrics
	shotDir   string

	altScreen    bool
	showOverview bool
	overview     table.Model
	quitting     bool
}

// NewModel creates a new Bubble Tea model with a fresh world.
func NewModel(opts Options) Model {
	cfg := opts.Config
	cfg.Normalize()

	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Host.TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.SessionID != "" {
		logger = logger.With("session", opts.SessionID)
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if dir := config.UserDir(); dir != "" {
			shotDir = filepath.Join(dir, "screenshots")
		}
	}

	m := Model{
		screen:    core.NewScreen(rt.ScreenW, gameHeight(rt.ScreenH)),
		cfg:       cfg,
		runtime:   rt,
		keyMapper: NewKeyMapper(NewKeyMap(cfg.Keys)),
		help:      help.New(),
		hold:      NewHoldTracker(cfg.Host.HoldWindow),
		pending:   core.NewInputFrame(),
		logger:    logger,
		metrics:   opts.Metrics,
		shotDir:   shotDir,
		altScreen: true,
		overview:  newOverviewTable(rt.ScreenW, rt.ScreenH),
	}

	m.game = game.New(game.Options{
		CellWidth:     cfg.Display.CellWidth,
		CellHeight:    cfg.Display.CellHeight,
		ShowMezzanine: cfg.Display.ShowMezzanine,
		PauseKey:      m.keyMapper.Keys().Pause.Help().Key,
		OnEvent:       m.onEvent,
	})
	m.game.Reset(core.RuntimeConfig{
		ScreenW:  rt.ScreenW,
		ScreenH:  gameHeight(rt.ScreenH),
		TickRate: rt.TickRate,
		Seed:     rt.Seed,
	})
	return m
}

func gameHeight(h int) int {
	if h-footerRows < 1 {
		return 1
	}
	return h - footerRows
}

// onEvent logs world events and feeds the metrics. The model is copied on
// every update, so it only touches shared pointers.
func (m Model) onEvent(ev world.Event) {
	m.logger.Debug("world event", "event", ev.String())
	m.metrics.Observe(ev)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showOverview {
			return m.handleOverviewKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input while playing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch m.keyMapper.MapKey(msg) {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandLeft:
		m.hold.Press(core.ActionLeft, now)
	case CommandRight:
		m.hold.Press(core.ActionRight, now)
	case CommandStop:
		m.hold.Release()
	case CommandInteract:
		m.pending.Set(core.ActionInteract)
	case CommandPause:
		m.pending.Set(core.ActionPause)
		m.hold.Release()
	case CommandScreenshot:
		if path, err := m.saveScreenshot(now); err != nil {
			m.logger.Error("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case CommandFullscreen:
		m.altScreen = !m.altScreen
		if m.altScreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen
	case CommandOverview:
		m.openOverview()
	}

	return m, nil
}

// handleOverviewKey processes keyboard input while the level overview is shown.
func (m Model) handleOverviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Overview), msg.String() == "esc":
		m.showOverview = false
		return m, nil
	case msg.String() == "ctrl+c", msg.String() == "q":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.overview, cmd = m.overview.Update(msg)
	return m, cmd
}

func (m *Model) openOverview() {
	rows := m.game.Overview()
	m.overview.SetRows(overviewRows(rows))
	m.overview.SetCursor(activeRow(rows))
	m.showOverview = true
	m.hold.Release()
}

// handleResize keeps the world and only resizes the view.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.game.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	rows := m.overview.Rows()
	cursor := m.overview.Cursor()
	m.overview = newOverviewTable(msg.Width, msg.Height)
	m.overview.SetRows(rows)
	m.overview.SetCursor(cursor)
	return m, nil
}

// handleTick processes simulation ticks. The world runs while the overview
// is open, with no input.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameTime(m.lastTick, now, m.runtime.TickRate, m.cfg.Host.MaxFrameTime)
	m.lastTick = now

	frame := m.pending.Clone()
	m.hold.Apply(&frame, now)

	m.game.Step(frame, dt)

	m.pending.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// saveScreenshot writes the current frame as text and returns its path.
func (m *Model) saveScreenshot(now time.Time) (string, error) {
	if m.shotDir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot directory: %w", err)
	}

	m.game.Render(m.screen)

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), now.Format("20060102_150405"))
	path := filepath.Join(m.shotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showOverview {
		return renderOverview(m.overview, m.help.ShortHelpView([]key.Binding{
			m.keyMapper.Keys().Overview,
			m.overview.KeyMap.LineUp,
			m.overview.KeyMap.LineDown,
		}))
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMapper.Keys())
}

// Game returns the hosted game.
func (m Model) Game() *game.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
