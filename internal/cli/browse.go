package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/wayfare/internal/cli/formatter"
	"github.com/alexanderramin/wayfare/internal/repository"
)

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse saved itineraries interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("browse needs an interactive terminal; use list instead")
			}
			list, err := app.Trips.List(context.Background())
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newBrowseModel(app, list), tea.WithAltScreen()).Run()
			return err
		},
	}
}

type browseKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Open key.Binding
	Back key.Binding
	Quit key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k")),
		Down: key.NewBinding(key.WithKeys("down", "j")),
		Open: key.NewBinding(key.WithKeys("enter")),
		Back: key.NewBinding(key.WithKeys("esc")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// browseModel is a two-mode model: a cursor list of summaries, and a
// scrollable viewport showing one rendered itinerary.
type browseModel struct {
	app    *App
	keys   browseKeyMap
	list   []repository.ItinerarySummary
	cursor int

	detail  viewport.Model
	showing bool
	loadErr error
	width   int
	height  int
}

func newBrowseModel(app *App, list []repository.ItinerarySummary) browseModel {
	return browseModel{
		app:    app,
		keys:   defaultBrowseKeys(),
		list:   list,
		detail: viewport.New(0, 0),
	}
}

func (m browseModel) Init() tea.Cmd { return nil }

type itineraryLoadedMsg struct {
	content string
	err     error
}

func (m browseModel) openSelected() tea.Cmd {
	id := m.list[m.cursor].ID
	return func() tea.Msg {
		it, err := m.app.Trips.Get(context.Background(), id)
		if err != nil {
			return itineraryLoadedMsg{err: err}
		}
		return itineraryLoadedMsg{content: formatter.FormatItinerary(it)}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = msg.Width
		m.detail.Height = msg.Height - 2
		return m, nil

	case itineraryLoadedMsg:
		m.loadErr = msg.err
		if msg.err == nil {
			m.detail.SetContent(msg.content)
			m.detail.GotoTop()
			m.showing = true
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			if m.showing {
				m.showing = false
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up) && !m.showing:
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down) && !m.showing:
			if m.cursor < len(m.list)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.Open) && !m.showing && len(m.list) > 0:
			return m, m.openSelected()
		}
	}

	if m.showing {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browseModel) View() string {
	if m.showing {
		return m.detail.View() + "\n" + formatter.Dim("esc back · q quit")
	}

	if len(m.list) == 0 {
		return formatter.Dim("No itineraries yet. Try: wayfare plan") + "\n"
	}

	s := formatter.Header("Itineraries") + "\n"
	for i, item := range m.list {
		line := fmt.Sprintf("%s  %s (%dd, %s)",
			item.Name,
			item.Destination,
			item.Days,
			formatter.Money(item.TotalCost, ""),
		)
		if i == m.cursor {
			s += formatter.StyleHeader.Render("> "+line) + "\n"
		} else {
			s += "  " + formatter.StyleFg.Render(line) + "\n"
		}
	}
	if m.loadErr != nil {
		s += "\n" + formatter.StyleRed.Render("Error: "+m.loadErr.Error()) + "\n"
	}
	s += "\n" + formatter.Dim("enter open · j/k move · q quit")
	return s
}
