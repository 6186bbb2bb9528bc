// Package picker implements an interactive terminal menu, used when rofi isn't available.
package picker

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is a selectable menu entry.
type Item struct {
	Name string
	Path string
}

// Title implements list.DefaultItem.
func (i Item) Title() string { return i.Name }

// Description implements list.DefaultItem.
func (i Item) Description() string { return i.Path }

// FilterValue implements list.Item.
func (i Item) FilterValue() string { return i.Name + " " + i.Path }

var (
	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)

// model is the bubbletea model backing Pick.
type model struct {
	list   list.Model
	chosen *Item
}

func newModel(title string, items []Item) model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}
	delegate := list.NewDefaultDelegate()
	l := list.New(listItems, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = titleStyle
	return model{list: l}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(Item); ok {
				m.chosen = &item
			}
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m model) View() string {
	return docStyle.Render(m.list.View())
}

var errUnexpectedModel = errors.New("unexpected picker model")

// Pick displays the items and blocks until the user chooses one or exits. The boolean is false if
// the user exited without choosing.
func Pick(ctx context.Context, title string, items []Item) (Item, bool, error) {
	prog := tea.NewProgram(newModel(title, items), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := prog.Run()
	if err != nil {
		return Item{}, false, err
	}
	m, ok := final.(model)
	if !ok {
		return Item{}, false, fmt.Errorf("%w: %T", errUnexpectedModel, final)
	}
	if m.chosen == nil {
		return Item{}, false, nil
	}
	return *m.chosen, true, nil
}
