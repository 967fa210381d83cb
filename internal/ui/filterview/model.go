// Package filterview is the filter chip management view: every available
// predicate grouped by category, toggled on and off with enter or space.
package filterview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/filter"
	"github.com/VladimirMikulas/ExampleSpaceXapp/internal/text"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// predicateItem implements list.Item for one selectable predicate.
type predicateItem struct {
	category filter.Category
	pred     filter.Predicate
	selected bool
	catalog  text.Catalog
}

func (i predicateItem) Title() string {
	checkbox := "[ ]"
	if i.selected {
		checkbox = "[✓]"
	}
	label := i.pred.Label().Resolve(i.catalog)
	if unit := i.category.Unit.Resolve(i.catalog); unit != "" {
		label += " " + unit
	}
	return fmt.Sprintf("%s %s", checkbox, label)
}

func (i predicateItem) Description() string {
	return i.category.Label.Resolve(i.catalog)
}

func (i predicateItem) FilterValue() string {
	return i.category.Label.Resolve(i.catalog) + " " + i.pred.Label().Resolve(i.catalog)
}

// Model is the filter management view.
type Model struct {
	list       list.Model
	categories []filter.Category
	state      filter.State
	catalog    text.Catalog
	width      int
	height     int
	quitting   bool
}

// New creates the view for the given categories and current selection.
func New(categories []filter.Category, state filter.State, catalog text.Catalog) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.Color("212")).
		BorderForeground(lipgloss.Color("212"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.Color("241"))

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Filters"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle

	m := Model{
		list:       l,
		categories: categories,
		state:      state,
		catalog:    catalog,
	}
	m.refreshItems()
	return m
}

// refreshItems rebuilds the list entries from categories and selection,
// keeping the cursor where it was.
func (m *Model) refreshItems() {
	var items []list.Item
	for _, c := range m.categories {
		for _, p := range c.Predicates {
			items = append(items, predicateItem{
				category: c,
				pred:     p,
				selected: m.state[c.Key].Has(p),
				catalog:  m.catalog,
			})
		}
	}

	cursor := m.list.Index()
	m.list.SetItems(items)
	if cursor < len(items) {
		m.list.Select(cursor)
	}
}

// State returns the current selection.
func (m Model) State() filter.State {
	return m.state
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width-4, height-4)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "f":
			m.quitting = true
			return m, nil

		case "enter", " ":
			if item, ok := m.list.SelectedItem().(predicateItem); ok {
				m.state = m.state.Toggle(item.category.Key, item.pred, !item.selected)
				m.refreshItems()
			}
			return m, nil

		case "c":
			// Clear every selection.
			m.state = filter.NewState()
			m.refreshItems()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the filter management UI.
func (m Model) View() string {
	help := helpStyle.Render("\n  [↑↓] navigate · [enter/space] toggle · [c] clear all · [esc] close")
	return m.list.View() + help
}

// IsQuitting returns true if the user wants to close the filter view.
func (m Model) IsQuitting() bool {
	return m.quitting
}
