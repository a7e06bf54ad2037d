package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/magic-tree/internal/assets"
	"github.com/vovakirdan/magic-tree/internal/audio"
	"github.com/vovakirdan/magic-tree/internal/core"
	"github.com/vovakirdan/magic-tree/internal/games/magictree"
)

// statusTTL is how long a status message stays in the HUD.
const statusTTL = 2 * time.Second

// Options configure the terminal host.
type Options struct {
	Runtime       core.RuntimeConfig
	Logger        *log.Logger
	Catalog       *assets.Catalog
	Mixer         *audio.Mixer       // Optional; shows what music is playing
	ScreenshotDir string             // Defaults to ~/.magictree/screenshots
	HoldTimeout   time.Duration      // Key release timeout; defaults to 150ms
	Clipboard     func(string) error // Defaults to the system clipboard
	Width, Height int                // Initial terminal size
}

// runStats counts what happened during the current run.
type runStats struct {
	Kills    int
	Diamonds int
	Drops    int
	Hits     int
}

// Model is the Bubble Tea model running a Magic Tree session.
type Model struct {
	game     *magictree.Game
	screen   *core.Screen
	renderer *Renderer
	opts     Options
	logger   *log.Logger
	keys     KeyMap
	help     help.Model
	held     *HeldKeys
	frame    core.InputFrame
	state    core.GameState
	stats    *runStats
	status   string
	statusAt time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *magictree.Game, opts Options) Model {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.HoldTimeout <= 0 {
		opts.HoldTimeout = 150 * time.Millisecond
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.ScreenshotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.ScreenshotDir = filepath.Join(home, ".magictree", "screenshots")
		}
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	tiers := make([]string, 0, len(game.Config().Collectible.Tiers))
	for _, t := range game.Config().Collectible.Tiers {
		tiers = append(tiers, t.Name)
	}

	m := Model{
		game:     game,
		renderer: NewRenderer(opts.Catalog, tiers),
		opts:     opts,
		logger:   opts.Logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		held:     NewHeldKeys(opts.HoldTimeout),
		frame:    core.NewInputFrame(),
		stats:    &runStats{},
	}
	m.screen = core.NewScreen(opts.Width, m.playfieldHeight(opts.Height))
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	m.logger.Info("session ready", "seed", m.opts.Runtime.Seed, "tps", m.opts.Runtime.TickRate)
	return tickCmd(m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case msg.String() == "ctrl+y":
		m.copyScreen()
		return m, nil
	case msg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.screen.Width(), m.playfieldHeight(m.opts.Height))
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.state.Score)
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		m.held.Press(action, time.Now())
	case core.ActionNone:
	default:
		m.frame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. World units are
// independent of the terminal size, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Width = msg.Width
	m.opts.Height = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, m.playfieldHeight(msg.Height))
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.held.Apply(&m.frame, now)

	prev := m.state.Phase
	result := m.game.Step(m.frame)
	m.state = result.State
	m.recordEvents(result.Events)

	if m.state.Phase != prev {
		m.logger.Info("phase changed", "from", prev, "to", m.state.Phase, "score", m.state.Score)
		if !m.state.Phase.Finished() {
			m.held.Reset()
		}
	}

	if m.status != "" && now.Sub(m.statusAt) > statusTTL {
		m.status = ""
	}

	// Clear input for next frame
	m.frame.Clear()

	return m, tickCmd(m.opts.Runtime.TickRate)
}

func (m *Model) recordEvents(events []core.Event) {
	for _, e := range events {
		m.logger.Debug("event", "kind", e.Kind, "value", e.Value)
		switch e.Kind {
		case core.EventStart, core.EventReset:
			*m.stats = runStats{}
		case core.EventKill:
			m.stats.Kills++
		case core.EventPickup:
			m.stats.Diamonds++
		case core.EventDrop:
			m.stats.Drops++
		case core.EventDamage:
			m.stats.Hits++
		case core.EventSection:
			m.logger.Info("entered section", "section", e.Value+1)
		}
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		m.setStatus("screenshot failed")
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(m.opts.ScreenshotDir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Error("screenshot failed", "err", err)
		m.setStatus("screenshot failed")
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.setStatus("screenshot saved")
}

// copyScreen puts the plain-text screen on the system clipboard.
func (m *Model) copyScreen() {
	m.render()
	if err := m.opts.Clipboard(m.screen.String()); err != nil {
		m.logger.Warn("clipboard unavailable", "err", err)
		m.setStatus("copy failed")
		return
	}
	m.setStatus("copied")
}

func (m *Model) playfieldHeight(total int) int {
	helpRows := 1
	if m.help.ShowAll {
		helpRows = len(m.keys.FullHelp()[0])
	}
	return max(total-helpRows, hudRows+1)
}

func (m *Model) nowPlaying() string {
	if m.opts.Mixer == nil {
		return ""
	}
	for _, clip := range m.opts.Mixer.Playing() {
		if !clip.IsMusic() {
			continue
		}
		if m.opts.Catalog != nil {
			if snd, err := m.opts.Catalog.Sound(clip); err == nil {
				return snd.Title
			}
		}
		return string(clip)
	}
	return ""
}

// summary renders the end-of-run statistics as plain table lines.
func (m *Model) summary() []string {
	rows := []table.Row{
		{"Score", strconv.Itoa(m.state.Score)},
		{"Section", strconv.Itoa(m.state.Section + 1)},
		{"Kills", strconv.Itoa(m.stats.Kills)},
		{"Diamonds", strconv.Itoa(m.stats.Diamonds)},
		{"Apples", strconv.Itoa(m.stats.Drops)},
		{"Hits", strconv.Itoa(m.stats.Hits)},
	}
	plain := lipgloss.NewStyle()
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Run", Width: 10},
			{Title: "", Width: 8},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithStyles(table.Styles{Header: plain, Cell: plain, Selected: plain}),
	)
	return strings.Split(t.View(), "\n")
}

func (m *Model) render() {
	snap := m.game.Snapshot()
	hud := HUD{NowPlaying: m.nowPlaying(), Status: m.status}
	if m.state.Phase.Finished() {
		hud.Summary = m.summary()
	}
	m.renderer.Render(m.screen, &snap, hud)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen, hudRows), m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game *magictree.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
