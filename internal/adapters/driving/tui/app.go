package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/notecal/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/notecal/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/notecal/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/notecal/internal/adapters/driving/tui/views/day"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings shared by all views.
	keymap *keymap.KeyMap

	// dayView shows the selected day with its notes.
	dayView *day.View

	// help renders the keybinding reference.
	help help.Model

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		dayView:     day.NewView(s, km, ports.Notes, ports.Holiday),
		help:        help.New(),
		currentView: messages.ViewDay,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.dayView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("notecal"),
		a.dayView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.currentView == messages.ViewHelp {
			switch msg.String() {
			case "esc", "?", "q":
				a.currentView = messages.ViewDay
			}
			return a, nil
		}

		a.dayView, cmd = a.dayView.Update(msg)
		a.syncErr()
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.dayView, cmd = a.dayView.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Loaded data always belongs to the day view, even while help is shown.
	a.dayView, cmd = a.dayView.Update(msg)
	a.syncErr()
	return a, cmd
}

// syncErr copies the day view's last error.
func (a *App) syncErr() {
	if err := a.dayView.Err(); err != nil {
		a.err = err
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewDay:
		return a.dayView.View()
	default:
		return a.dayView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		a.styles.Title.Render("Help"),
		"",
		a.help.FullHelpView(a.keymap.FullHelp()),
		"",
		a.styles.Help.Render("[esc] back"),
	)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// DayView returns the day view.
func (a *App) DayView() *day.View {
	return a.dayView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.dayView.SetDimensions(width, height)
}
