// Package tui provides the Bubble Tea passphrase picker.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/pass-phrase/internal/entropy"
	"github.com/verte-zerg/pass-phrase/internal/generator"
	"github.com/verte-zerg/pass-phrase/internal/model"
)

var (
	phraseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F0F0F0"))
	slotStyles  = [model.SlotCount]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#7FB3D5")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
	}
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	keptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Model implements the Bubble Tea picker. Each keypress draws a fresh
// phrase; accepted phrases are collected for printing after exit.
type Model struct {
	gen    *generator.Generator
	lists  model.WordLists
	report entropy.Report
	keys   keyMap
	help   help.Model

	width  int
	height int

	current  model.Passphrase
	accepted []model.Passphrase
	err      error
}

// NewModel constructs a picker and draws the first phrase.
func NewModel(gen *generator.Generator, lists model.WordLists) (*Model, error) {
	m := &Model{
		gen:    gen,
		lists:  lists,
		report: entropy.ForLists(lists),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	if err := m.next(); err != nil {
		return nil, err
	}
	return m, nil
}

// Accepted returns the phrases kept with enter, in order.
func (m *Model) Accepted() []model.Passphrase {
	return m.accepted
}

// Err returns the error that stopped the picker, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			m.accepted = append(m.accepted, m.current)
			return m.advance()
		case key.Matches(msg, m.keys.Next):
			return m.advance()
		}
	}
	return m, nil
}

func (m *Model) advance() (tea.Model, tea.Cmd) {
	if err := m.next(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) next() error {
	phrase, err := m.gen.One(m.lists)
	if err != nil {
		return err
	}
	m.current = phrase
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderPhrase())
	b.WriteString("\n\n")
	if n := len(m.accepted); n > 0 {
		b.WriteString(keptStyle.Render(fmt.Sprintf("Kept %d", n)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.renderFooter())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	content := b.String()
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderPhrase() string {
	parts := make([]string, len(m.current))
	for i, word := range m.current {
		parts[i] = slotStyles[i].Render(word)
	}
	return phraseStyle.Render(strings.Join(parts, " "))
}

func (m *Model) renderFooter() string {
	summary := fmt.Sprintf("~%s bits of entropy, %s to crack at %d guesses/s",
		entropy.FormatBits(m.report.TotalBits), m.report.CrackTime, entropy.GuessesPerSecond)

	rows := make([][]string, 0, len(model.Roles))
	for _, role := range model.Roles {
		rows = append(rows, []string{
			string(role),
			fmt.Sprintf("%d", m.report.Sizes[role]),
			entropy.FormatBits(m.report.PerRoleBits[role]),
			m.lists.Paths[role],
		})
	}
	lines := formatTable([]string{"Role", "Words", "Bits", "List"}, rows, map[int]bool{1: true, 2: true})
	for i, line := range lines {
		lines[i] = m.truncateLine(line)
	}
	return footerStyle.Render(summary + "\n" + strings.Join(lines, "\n"))
}

func (m *Model) truncateLine(line string) string {
	if m.width <= 0 {
		return line
	}
	return runewidth.Truncate(line, m.width, "…")
}
