// Package tui provides the Bubble Tea play screen.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abhisek/mathsprint/internal/session"
)

var (
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	comboStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model drives one practice session through the engine.
type Model struct {
	engine *session.Engine
	state  *session.State
	input  textinput.Model

	feedback   string
	feedbackOK bool

	// Summary is set once the session ended normally; Aborted when the
	// player quit mid-session. Err records a failed engine call.
	Summary *session.Summary
	Aborted bool
	Err     error

	width int
}

// NewModel builds the play screen around an already-started session.
func NewModel(engine *session.Engine, state *session.State) *Model {
	input := textinput.New()
	input.Placeholder = "answer"
	input.CharLimit = 32
	input.Width = 24
	input.Focus()

	return &Model{
		engine: engine,
		state:  state,
		input:  input,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		// Redraw so the sprint countdown moves.
		return m, tick()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	answer := strings.TrimSpace(m.input.Value())
	if answer == "" {
		return m, nil
	}

	result, err := m.engine.SubmitAnswer(context.Background(), m.state, answer)
	if err != nil {
		m.Err = err
		return m, tea.Quit
	}

	if result.IsCorrect {
		m.feedback = fmt.Sprintf("correct  (%.1fs)", result.TimeTaken)
		m.feedbackOK = true
	} else {
		m.feedback = fmt.Sprintf("wrong, answer was %s", result.Question.CorrectAnswer)
		m.feedbackOK = false
	}
	m.input.Reset()

	if m.state.IsComplete {
		summary, err := m.engine.EndSession(context.Background(), m.state)
		if err != nil {
			m.Err = err
		} else {
			m.Summary = summary
		}
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.state.CurrentQuestion == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(m.header()))
	b.WriteString("\n\n")
	b.WriteString(questionStyle.Render(m.state.CurrentQuestion.Text))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.feedback != "" {
		style := wrongStyle
		if m.feedbackOK {
			style = correctStyle
		}
		b.WriteString(style.Render(m.feedback))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("enter submit · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) header() string {
	parts := []string{
		fmt.Sprintf("%s/%s/%s", m.state.Config.Mode, m.state.Config.Category, m.state.CurrentQuestion.Difficulty),
		fmt.Sprintf("q%d", len(m.state.Answered)+1),
		fmt.Sprintf("score %d", m.state.TotalScore),
	}
	if m.state.ComboCount >= 3 {
		parts = append(parts, comboStyle.Render(fmt.Sprintf("combo x%d", m.state.ComboCount)))
	}
	if m.state.Config.Mode == session.ModeSprint {
		left := m.state.Config.Duration - time.Since(m.state.StartTime)
		if left < 0 {
			left = 0
		}
		parts = append(parts, fmt.Sprintf("%ds left", int(left.Seconds())))
	} else {
		target := m.state.Config.QuestionCount
		if m.state.Config.Mode == session.ModeTargeted && target == 0 {
			target = session.DefaultTargetedCount
		}
		parts = append(parts, fmt.Sprintf("%d of %d", len(m.state.Answered), target))
	}
	return strings.Join(parts, "  ·  ")
}
