// Package tui renders the live fasting timer.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/Stevedee925/phoenix/internal/constants"
	"github.com/Stevedee925/phoenix/internal/fasting"
	"github.com/Stevedee925/phoenix/internal/storage"
	"github.com/Stevedee925/phoenix/internal/utils"
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type model struct {
	engine *fasting.Engine
	status *fasting.Status
	bar    progress.Model

	width        int
	height       int
	endRequested bool
	err          error
}

func newModel(engine *fasting.Engine) model {
	return model{
		engine: engine,
		bar:    progress.New(progress.WithDefaultGradient()),
	}
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = 40
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "e":
			m.endRequested = true
			return m, tea.Quit
		}

	case TickMsg:
		status, err := m.engine.Tick(time.Time(msg))
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.status = status
		if status == nil || !status.Session.Active() {
			// Fast finished, show the completion frame and stop
			return m, tea.Quit
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	if m.err != nil {
		return dimStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.status == nil {
		return dimStyle.Render("Loading...")
	}

	if !m.status.Session.Active() {
		return doneStyle.Render("🎉 Fast complete! Congratulations.")
	}

	s := m.status
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(fmt.Sprintf("Fasting: %dh target", s.Session.TargetHours())),
		clockStyle.Render(utils.FormatClock(s.ElapsedMs)),
		m.bar.ViewAs(s.Ratio),
		dimStyle.Render(fmt.Sprintf("%d%%, %s remaining (until %s)",
			s.Percent, utils.FormatClock(s.RemainingMs), s.Session.TargetEnd().Local().Format("Mon 15:04"))),
		dimStyle.Render("e: end fast  q: quit"),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// RunTimer drives the live timer. When no fast is active it first prompts
// for a fasting window; ending early asks for confirmation.
func RunTimer(store storage.Provider) error {
	engine := fasting.NewEngine(store, nil)

	active, err := engine.Active()
	if err != nil {
		return err
	}
	if active == nil {
		hours, err := pickFastingWindow()
		if err != nil {
			return err
		}
		if hours == 0 {
			return nil
		}
		if _, err := engine.Start(hours, time.Now()); err != nil {
			return err
		}
	}

	p := tea.NewProgram(newModel(engine), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(model); ok {
		if m.err != nil {
			return m.err
		}
		if m.endRequested {
			return confirmEnd(engine)
		}
	}
	return nil
}

func pickFastingWindow() (int, error) {
	var hours int
	options := make([]huh.Option[int], 0, len(constants.FastingWindows)+1)
	for _, w := range constants.FastingWindows {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%dh)", w.Label, w.Hours), w.Hours))
	}
	options = append(options, huh.NewOption("Cancel", 0))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Choose a fasting window").
				Options(options...).
				Value(&hours),
		),
	)
	if err := form.Run(); err != nil {
		return 0, err
	}
	return hours, nil
}

func confirmEnd(engine *fasting.Engine) error {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("End the fast early?").
				Affirmative("End it").
				Negative("Keep fasting").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	session, err := engine.End(time.Now())
	if err != nil {
		return err
	}
	elapsed := *session.EndTime - session.StartTime
	fmt.Printf("Fast ended after %s.\n", utils.FormatClock(elapsed))
	return nil
}
