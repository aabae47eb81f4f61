package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/pass-phrase/internal/generator"
	"github.com/verte-zerg/pass-phrase/internal/model"
)

type countingSampler struct {
	n int
}

func (s *countingSampler) Intn(n int) (int, error) {
	v := s.n % n
	s.n++
	return v, nil
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	lists := model.WordLists{
		Adjectives: []string{"red", "blue"},
		Nouns:      []string{"fox", "owl"},
		Verbs:      []string{"jumps", "sings"},
		Paths: map[model.Role]string{
			model.Adjectives: "/usr/share/pass-phrase/adjectives.txt",
			model.Nouns:      "nouns.txt",
			model.Verbs:      "verbs.txt",
		},
	}
	m, err := NewModel(generator.New(&countingSampler{}), lists)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func TestPickerAcceptAndNext(t *testing.T) {
	m := newTestModel(t)
	first := m.current
	if first.String() != "red owl jumps blue fox" {
		t.Fatalf("unexpected first phrase: %q", first.String())
	}

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if m.current == first {
		t.Fatalf("expected a new phrase after space")
	}
	second := m.current

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("expected no command after accept")
	}
	accepted := m.Accepted()
	if len(accepted) != 1 || accepted[0] != second {
		t.Fatalf("unexpected accepted phrases: %v", accepted)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if len(m.Accepted()) != 1 {
		t.Fatalf("expected n not to accept")
	}
}

func TestPickerQuit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := newTestModel(t)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("expected quit command for %s", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected quit message for %s", msg.String())
		}
	}
}

func TestPickerFooter(t *testing.T) {
	m := newTestModel(t)
	out := m.renderFooter()
	for _, want := range []string{"~5 bits of entropy", "less than a minute", "Role       Words Bits List", "adjectives     2    1 /usr/share/pass-phrase/adjectives.txt", "verbs          2    1 verbs.txt"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}

func TestPickerTruncatesToWindow(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 12})
	if got := m.truncateLine("adjectives     2    1 /usr/share/pass-phrase/adjectives.txt"); got != "adjectives     2    1 /usr/sh…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if !strings.Contains(m.View(), "red") {
		t.Fatalf("expected phrase in view")
	}
}
