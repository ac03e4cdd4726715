package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/timeaxis/pkg/pipeline"
)

func newTestExplore(t *testing.T) exploreModel {
	t.Helper()
	runner := pipeline.NewRunner(nil, nil, nil)
	m, err := newExploreModel(context.Background(), runner, pipeline.Options{
		Kind:      pipeline.KindDate,
		Begin:     "2021-01-01",
		End:       "2021-01-31",
		MaxPoints: 5,
	})
	if err != nil {
		t.Fatalf("newExploreModel() error = %v", err)
	}
	return m
}

func TestExploreResize(t *testing.T) {
	m := newTestExplore(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 61, Height: 20})
	m = next.(exploreModel)
	if m.layout.Lo != 0 || m.layout.Hi != 60 {
		t.Errorf("pixels = %d..%d, want 0..60", m.layout.Lo, m.layout.Hi)
	}
	last := m.layout.Ticks[len(m.layout.Ticks)-1]
	if last.Pos > 60 {
		t.Errorf("last tick at %d, past the window", last.Pos)
	}

	// Narrow windows are clamped.
	next, _ = m.Update(tea.WindowSizeMsg{Width: 5})
	if got := next.(exploreModel).width; got != exploreMinWidth {
		t.Errorf("width = %d, want %d", got, exploreMinWidth)
	}
}

func TestExploreBudgetKeys(t *testing.T) {
	m := newTestExplore(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	if got := next.(exploreModel).opts.MaxPoints; got != 6 {
		t.Errorf("after + budget = %d, want 6", got)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if got := next.(exploreModel).opts.MaxPoints; got != 4 {
		t.Errorf("after - budget = %d, want 4", got)
	}
	// Date axes may include the end day as one extra point.
	if n := len(next.(exploreModel).layout.Ticks); n > 5 {
		t.Errorf("ticks = %d, want at most 5", n)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestExploreView(t *testing.T) {
	m := newTestExplore(t)
	m.opts.LabelFormat = "%Y-%m-%d"

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	view := next.(exploreModel).View()

	for _, want := range []string{"date axis", "┬", "budget 5", "t table"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
