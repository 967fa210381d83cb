package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/filter"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/rocket"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/text"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/ui/filterview"
)

// mode is the top-level view state.
type mode int

const (
	modeList mode = iota
	modeFilters
)

// AppConfig carries the command functions the App depends on.
// IMPORTANT: App does NOT hold the repository. It receives rockets via
// messages produced by these functions.
type AppConfig struct {
	// LoadRockets returns a Cmd that loads the catalog, forcing a network
	// refresh when force is true. The Cmd must produce a RocketsLoaded.
	LoadRockets func(force bool) tea.Cmd

	// Catalog resolves display-text handles. Defaults to text.English.
	Catalog text.Catalog
}

// App is the root Bubble Tea model.
type App struct {
	cfg AppConfig

	rockets    []rocket.Rocket   // most recent full catalog
	visible    []rocket.Rocket   // after search + filters
	categories []filter.Category // rebuilt per catalog load
	state      filter.State      // current selections

	search    textinput.Model
	searching bool

	mode    mode
	filters filterview.Model

	cursor  int
	width   int
	height  int
	loading bool
	notice  string // transient status note, cleared on the next key press
	err     error
}

// NewApp creates the root model.
func NewApp(cfg AppConfig) App {
	if cfg.Catalog == nil {
		cfg.Catalog = text.English
	}

	search := textinput.New()
	search.Placeholder = "search by name..."
	search.CharLimit = 60
	search.Width = 40

	return App{
		cfg:     cfg,
		state:   filter.NewState(),
		search:  search,
		loading: cfg.LoadRockets != nil,
	}
}

// Init loads the catalog (cache-first).
func (a App) Init() tea.Cmd {
	if a.cfg.LoadRockets != nil {
		return a.cfg.LoadRockets(false)
	}
	return nil
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// The filter view only exists while open; it is rebuilt with the
		// current dimensions on "f".
		if a.mode == modeFilters {
			a.filters.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case RocketsLoaded:
		a.loading = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.notice = ""
		if msg.Refreshed {
			a.notice = "catalog updated"
		}
		a.rockets = msg.Rockets
		a.categories = filter.BuildCategories(msg.Rockets)
		// A new catalog invalidates old selections.
		a.state = filter.NewState()
		if a.mode == modeFilters {
			a.filters = filterview.New(a.categories, a.state, a.cfg.Catalog)
			a.filters.SetSize(a.width, a.height)
		}
		a.recompute()
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)
	}

	return a, nil
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.mode == modeFilters {
		return a.updateFilters(msg)
	}

	if a.searching {
		return a.updateSearch(msg)
	}

	// Clear any existing error or notice on key press
	if a.err != nil {
		a.err = nil
	}
	a.notice = ""

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "j", "down":
		if a.cursor < len(a.visible)-1 {
			a.cursor++
		}
		return a, nil

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "/":
		a.searching = true
		a.search.Focus()
		return a, textinput.Blink

	case "f":
		a.mode = modeFilters
		a.filters = filterview.New(a.categories, a.state, a.cfg.Catalog)
		a.filters.SetSize(a.width, a.height)
		return a, nil

	case "r":
		if a.cfg.LoadRockets != nil {
			a.loading = true
			return a, a.cfg.LoadRockets(true)
		}
		return a, nil

	case "esc":
		if a.search.Value() != "" {
			a.search.SetValue("")
			a.recompute()
		}
		return a, nil
	}

	return a, nil
}

// updateSearch routes keys to the search input.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.searching = false
		a.search.Blur()
		return a, nil
	case "esc":
		a.searching = false
		a.search.Blur()
		a.search.SetValue("")
		a.recompute()
		return a, nil
	}

	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	a.recompute()
	return a, cmd
}

// updateFilters routes keys to the filter view and applies selection
// changes live.
func (a App) updateFilters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.filters, cmd = a.filters.Update(msg)
	a.state = a.filters.State()
	a.recompute()

	if a.filters.IsQuitting() {
		a.mode = modeList
	}
	return a, cmd
}

// recompute reapplies search and filters to the current catalog.
// Always runs against the most recently loaded rockets and the most
// recently accumulated selection, never stale copies.
func (a *App) recompute() {
	a.visible = filter.Apply(filter.Search(a.rockets, a.search.Value()), a.state)
	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// Visible exposes the rockets currently shown, in display order.
func (a App) Visible() []rocket.Rocket {
	return a.visible
}

// View renders the application.
func (a App) View() string {
	if a.mode == modeFilters {
		return a.filters.View()
	}

	var b strings.Builder

	title := fmt.Sprintf("Rockets (%d/%d)", len(a.visible), len(a.rockets))
	if a.loading {
		title += " · refreshing..."
	}
	b.WriteString(Header.Render(title))
	b.WriteString("\n")

	if a.searching || a.search.Value() != "" {
		b.WriteString("  " + a.search.View() + "\n")
	}

	if a.err != nil {
		b.WriteString(StatusBarText.Render(fmt.Sprintf("  error: %v (press r to retry)", a.err)))
		b.WriteString("\n")
	}

	if a.notice != "" {
		b.WriteString(StatusBarText.Render("  " + a.notice))
		b.WriteString("\n")
	}

	if len(a.visible) == 0 && !a.loading {
		b.WriteString(StatusBarText.Render("  no rockets match"))
		b.WriteString("\n")
	}

	for i, r := range a.visible {
		b.WriteString(a.renderRocket(r, i == a.cursor))
		b.WriteString("\n")
	}

	if len(a.visible) > 0 && a.cursor < len(a.visible) {
		b.WriteString(a.renderDetail(a.visible[a.cursor]))
	}

	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

// renderRocket renders one list line.
func (a App) renderRocket(r rocket.Rocket, selected bool) string {
	badge := "  "
	if r.Active {
		badge = ActiveBadge.Render("● ")
	}
	line := fmt.Sprintf("%s%-14s  %s  %s m × %s m  %s kg",
		badge,
		r.Name,
		r.FirstFlight,
		text.Number(r.HeightM),
		text.Number(r.DiameterM),
		text.Number(r.MassKg),
	)

	switch {
	case selected:
		return SelectedItem.Render(line)
	case !r.Active:
		return InactiveItem.Render(line)
	default:
		return NormalItem.Render(line)
	}
}

// renderDetail renders the description block for the selected rocket.
func (a App) renderDetail(r rocket.Rocket) string {
	detail := r.Description
	if r.Country != "" {
		detail = r.Country + " · " + detail
	}
	return DetailPane.Render(detail)
}

// renderStatusBar renders the bottom key hints.
func (a App) renderStatusBar() string {
	hints := []string{
		StatusBarKey.Render("/") + StatusBarText.Render(" search"),
		StatusBarKey.Render("f") + StatusBarText.Render(" filters"),
		StatusBarKey.Render("r") + StatusBarText.Render(" refresh"),
		StatusBarKey.Render("q") + StatusBarText.Render(" quit"),
	}
	bar := strings.Join(hints, StatusBarText.Render(" · "))
	if n := a.state.Count(); n > 0 {
		bar += StatusBarText.Render(fmt.Sprintf(" · %d filter(s) active", n))
	}
	return StatusBar.Render(bar)
}
