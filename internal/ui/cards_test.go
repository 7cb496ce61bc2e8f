package ui

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/cardswap/internal/motion"
	"github.com/desertthunder/cardswap/internal/swap"
)

func newCards(t *testing.T) *CardsModel {
	t.Helper()
	c, err := swap.New([]string{"1", "2", "3", "4"}, []string{"5", "6"})
	if err != nil {
		t.Fatalf("swap.New() error = %v", err)
	}
	return NewCardsModel(c, CardsOptions{FPS: 60})
}

// click presses the left button over the center of the slot at index in row s.
func click(s swap.Side, index int) tea.MouseMsg {
	r := slotRect(s, index)
	return tea.MouseMsg{
		X:      int(r.X) + cardW/2,
		Y:      int(r.Y) + cardH/2 + boardTop,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func settle(t *testing.T, a *motion.Animator) {
	t.Helper()
	for range 2000 {
		if !a.Step() {
			return
		}
	}
	t.Fatal("animator never settled")
}

func TestCardsModel(t *testing.T) {
	t.Run("starts at rest in slots", func(t *testing.T) {
		m := newCards(t)
		if !m.animator.Settled() {
			t.Error("expected settled animator")
		}
		r, ok := m.animator.Rect("5")
		if !ok || r != slotRect(swap.Right, 0) {
			t.Errorf("rect(5) = %+v, %v", r, ok)
		}
	})

	t.Run("click runs request, commit and settle", func(t *testing.T) {
		m := newCards(t)

		_, cmd := m.Update(click(swap.Left, 1))
		if cmd == nil {
			t.Fatal("expected commit command")
		}
		if got := m.coord.Phase(); got != swap.Requested {
			t.Fatalf("phase = %v, want requested", got)
		}
		if r, _ := m.animator.Rect("2"); r != slotRect(swap.Left, 1) {
			t.Errorf("departure rect = %+v, want origin slot", r)
		}

		_, cmd = m.Update(commitMsg{})
		if cmd == nil {
			t.Fatal("expected settle and frame commands")
		}
		if got := m.coord.Row(swap.Right); !slices.Equal(got, []string{"5", "6", "2"}) {
			t.Errorf("right = %v", got)
		}
		if m.status != "2 → right" {
			t.Errorf("status = %q", m.status)
		}
		if !m.coord.Render("2").Overlay {
			t.Error("expected overlay while animating")
		}
		if m.animator.Settled() {
			t.Error("expected animator in motion after commit")
		}

		settle(t, m.animator)
		if r, _ := m.animator.Rect("2"); r != slotRect(swap.Right, 2) {
			t.Errorf("landed rect = %+v, want %+v", r, slotRect(swap.Right, 2))
		}
		if r, _ := m.animator.Rect("3"); r != slotRect(swap.Left, 1) {
			t.Errorf("rect(3) = %+v, want shifted into slot 1", r)
		}

		m.Update(settleMsg{gen: 1})
		if got := m.coord.Phase(); got != swap.Idle {
			t.Errorf("phase = %v, want idle", got)
		}
		if m.moves != 1 {
			t.Errorf("moves = %d, want 1", m.moves)
		}
	})

	t.Run("clicks while busy are ignored", func(t *testing.T) {
		m := newCards(t)
		m.Update(click(swap.Left, 0))
		m.Update(commitMsg{})

		_, cmd := m.Update(click(swap.Right, 0))
		if cmd != nil {
			t.Error("expected no command while busy")
		}
		if got := m.coord.Row(swap.Left); !slices.Equal(got, []string{"2", "3", "4"}) {
			t.Errorf("left = %v", got)
		}
		if !strings.Contains(m.status, "still moving") {
			t.Errorf("status = %q", m.status)
		}
	})

	t.Run("overlay is not hit tested", func(t *testing.T) {
		m := newCards(t)
		m.Update(click(swap.Left, 3))

		r := slotRect(swap.Left, 3)
		if id, ok := m.animator.HitTest(r.X+1, r.Y+1); ok {
			t.Errorf("HitTest over overlay = %q", id)
		}
		_, cmd := m.Update(click(swap.Left, 3))
		if cmd != nil {
			t.Error("expected click through overlay to do nothing")
		}
	})

	t.Run("stale settle is ignored", func(t *testing.T) {
		m := newCards(t)
		m.Update(click(swap.Left, 0))
		m.Update(commitMsg{})
		m.Update(settleMsg{gen: 99})
		if got := m.coord.Animating(); got != "1" {
			t.Errorf("animating = %q, want 1", got)
		}
	})

	t.Run("keyboard moves focused card", func(t *testing.T) {
		m := newCards(t)
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
		if id, _ := m.focused(); id != "6" {
			t.Fatalf("focused = %q, want 6", id)
		}

		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		m.Update(commitMsg{})
		if got := m.coord.Row(swap.Left); !slices.Equal(got, []string{"1", "2", "3", "4", "6"}) {
			t.Errorf("left = %v", got)
		}
		if id, _ := m.focused(); id != "5" {
			t.Errorf("focused after move = %q, want 5", id)
		}
	})

	t.Run("typing an id moves that card", func(t *testing.T) {
		m := newCards(t)
		m.Update(runes("4"))
		m.Update(commitMsg{})
		if got := m.coord.Row(swap.Right); !slices.Equal(got, []string{"5", "6", "4"}) {
			t.Errorf("right = %v", got)
		}
	})

	t.Run("quit", func(t *testing.T) {
		m := newCards(t)
		_, cmd := m.Update(runes("q"))
		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})

	t.Run("frame loop stops when settled", func(t *testing.T) {
		m := newCards(t)
		_, cmd := m.Update(frameMsg{})
		if cmd != nil {
			t.Error("expected no frame while settled")
		}
	})
}

func TestCardsView(t *testing.T) {
	m := newCards(t)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	board := m.board().plain()
	for _, want := range []string{"left", "right", "1", "4", "5", "6"} {
		if !strings.Contains(board, want) {
			t.Errorf("board missing %q:\n%s", want, board)
		}
	}
	if strings.Contains(board, "╌") {
		t.Error("expected no placeholder at rest")
	}

	m.Update(click(swap.Left, 0))
	m.Update(commitMsg{})
	if board := m.board().plain(); !strings.Contains(board, "╌") {
		t.Errorf("expected placeholder at destination:\n%s", board)
	}

	view := m.View()
	if !strings.Contains(view, "phase: committed") || !strings.Contains(view, "moves: 1") {
		t.Errorf("status line missing from view:\n%s", view)
	}
}
