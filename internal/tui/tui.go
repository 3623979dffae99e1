// Package tui is an interactive terminal frontend for playing one match
// at a time against a running rpsarena server. Both players share the
// keyboard; moves are hidden until the round resolves.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/rpsarena/internal/client"
	"github.com/lox/rpsarena/internal/game"
)

type phase int

const (
	phaseNames phase = iota
	phaseStarting
	phasePicking
	phaseResolving
	phaseFinished
)

type stateMsg game.Summary

type errMsg struct{ err error }

// Model is the bubbletea model for the play command.
type Model struct {
	client *client.Client

	phase   phase
	inputs  [2]textinput.Model
	focus   int
	state   game.Summary
	picking int // 0 = p1's turn to pick, 1 = p2's
	moves   [2]string
	errText string
	width   int
}

// New creates a model. Non-empty p1/p2 skip the name entry screen.
func New(c *client.Client, p1, p2 string) Model {
	m := Model{client: c}
	for i, placeholder := range []string{"Player 1", "Player 2"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 40
		m.inputs[i] = in
	}
	m.inputs[0].SetValue(p1)
	m.inputs[1].SetValue(p2)
	m.inputs[0].Focus()

	if p1 != "" && p2 != "" {
		m.phase = phaseStarting
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.phase == phaseStarting {
		return m.startMatch()
	}
	return textinput.Blink
}

func (m Model) startMatch() tea.Cmd {
	p1, p2 := m.inputs[0].Value(), m.inputs[1].Value()
	return func() tea.Msg {
		state, err := m.client.StartMatch(context.Background(), p1, p2)
		if err != nil {
			return errMsg{err}
		}
		return stateMsg(*state)
	}
}

func (m Model) playRound() tea.Cmd {
	p1Move, p2Move := m.moves[0], m.moves[1]
	return func() tea.Msg {
		state, err := m.client.PlayRound(context.Background(), p1Move, p2Move)
		if err != nil {
			return errMsg{err}
		}
		return stateMsg(*state)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case errMsg:
		m.errText = msg.err.Error()
		switch m.phase {
		case phaseStarting:
			m.phase = phaseNames
			m.focus = 0
			m.inputs[0].Focus()
			m.inputs[1].Blur()
		case phaseResolving:
			m.phase = phasePicking
			m.picking = 0
			m.moves = [2]string{}
		}
		return m, nil

	case stateMsg:
		m.state = game.Summary(msg)
		m.errText = ""
		if !m.state.Active {
			m.phase = phaseFinished
		} else {
			m.phase = phasePicking
			m.picking = 0
			m.moves = [2]string{}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseNames:
		switch msg.Type {
		case tea.KeyEnter:
			if m.focus == 0 {
				m.focus = 1
				m.inputs[0].Blur()
				m.inputs[1].Focus()
				return m, nil
			}
			m.phase = phaseStarting
			return m, m.startMatch()
		case tea.KeyTab, tea.KeyShiftTab:
			m.focus = 1 - m.focus
			m.inputs[m.focus].Focus()
			m.inputs[1-m.focus].Blur()
			return m, nil
		case tea.KeyEsc:
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd

	case phasePicking:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "r", "p", "s":
			m.moves[m.picking] = map[string]string{"r": "rock", "p": "paper", "s": "scissors"}[msg.String()]
			if m.picking == 0 {
				m.picking = 1
				return m, nil
			}
			m.phase = phaseResolving
			return m, m.playRound()
		}

	case phaseFinished:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "n":
			// Winner stays on: the server keeps the winner in the p1
			// slot, so only the challenger name matters now.
			m.phase = phaseNames
			m.focus = 1
			m.inputs[0].SetValue(m.state.P1)
			m.inputs[1].SetValue("")
			m.inputs[0].Blur()
			m.inputs[1].Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("rps arena") + "\n\n")

	switch m.phase {
	case phaseNames:
		b.WriteString("Who's playing?\n\n")
		b.WriteString(m.inputs[0].View() + "\n")
		b.WriteString(m.inputs[1].View() + "\n\n")
		b.WriteString(DimStyle.Render("enter: next/start · tab: switch · esc: quit") + "\n")

	case phaseStarting, phaseResolving:
		b.WriteString(DimStyle.Render("...") + "\n")

	case phasePicking:
		b.WriteString(m.scoreboard())
		name := m.state.P1
		if m.picking == 1 {
			name = m.state.P2
		}
		if m.picking == 1 {
			b.WriteString(DimStyle.Render(fmt.Sprintf("%s has chosen.", m.state.P1)) + "\n")
		}
		b.WriteString(PromptStyle.Render(fmt.Sprintf("%s, pick your move:", name)) + " ")
		b.WriteString("[r]ock  [p]aper  [s]cissors\n")

	case phaseFinished:
		b.WriteString(m.scoreboard())
		if m.state.OverallTie {
			b.WriteString(TieStyle.Render("The match is a draw!") + "\n")
		} else {
			b.WriteString(WinnerStyle.Render(fmt.Sprintf("%s wins the match!", m.state.Winner)) + "\n")
		}
		b.WriteString("\n" + DimStyle.Render("n: next match (winner keeps the table) · q: quit") + "\n")
	}

	if m.errText != "" {
		b.WriteString("\n" + ErrorStyle.Render(m.errText) + "\n")
	}
	return b.String()
}

func (m Model) scoreboard() string {
	var b strings.Builder
	b.WriteString(ScoreStyle.Render(fmt.Sprintf("Round %d/%d", m.state.Round, m.state.MaxRounds)))
	p2 := m.state.P2
	if p2 == "" {
		p2 = "—"
	}
	b.WriteString("   ")
	b.WriteString(fmt.Sprintf("%s %d : %d %s\n", m.state.P1, m.state.P1RoundWins, m.state.P2RoundWins, p2))

	if n := len(m.state.RoundHistory); n > 0 {
		start := n - 3
		if start < 0 {
			start = 0
		}
		for _, rec := range m.state.RoundHistory[start:] {
			line := fmt.Sprintf("  #%d  %s vs %s", rec.Round, rec.P1Move, rec.P2Move)
			if rec.RoundWinner != "" {
				line += "  → " + rec.RoundWinner
			} else {
				line += "  → tie"
			}
			b.WriteString(HistoryStyle.Render(line) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}
