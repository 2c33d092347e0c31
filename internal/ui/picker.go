package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	pickerWidth  = 60
	pickerHeight = 16
)

// pickerItem adapts an Option to the bubbles list item interface
type pickerItem struct {
	index  int
	option Option
}

func (i pickerItem) Title() string       { return i.option.Title }
func (i pickerItem) Description() string { return i.option.Description }
func (i pickerItem) FilterValue() string { return i.option.Title + " " + i.option.Description }

// pickerModel is the bubbletea model for the filterable option picker
type pickerModel struct {
	list      list.Model
	choice    int
	quitting  bool
	cancelled bool
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the filter input is focused the list owns every key
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.cancelled = true
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(pickerItem); ok {
				m.choice = item.index
				m.quitting = true
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}
	return m.list.View()
}

// runPicker shows a filterable list and returns the index of the chosen option
func runPicker(title string, options []Option) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("no options to select from")
	}

	items := make([]list.Item, len(options))
	for i, option := range options {
		items[i] = pickerItem{index: i, option: option}
	}

	l := list.New(items, list.NewDefaultDelegate(), pickerWidth, pickerHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.FilterInput.Placeholder = "Type to filter"
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	m := pickerModel{list: l, choice: -1}

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return -1, err
	}

	fm := finalModel.(pickerModel)
	if fm.cancelled || fm.choice < 0 {
		return -1, ErrCancelled
	}
	return fm.choice, nil
}
