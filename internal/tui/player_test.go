package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testFrames() []Frame {
	return []Frame{
		{Board: "board-zero", Label: "start"},
		{Board: "board-one", Label: "C down"},
		{Board: "board-two", Label: "Z right"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestPlayer_StartsAtFirstFrame(t *testing.T) {
	t.Parallel()
	p := NewPlayer("intro", testFrames())
	if p.Index() != 0 {
		t.Errorf("Index() = %d, want 0", p.Index())
	}
	view := p.View()
	if !strings.Contains(view, "board-zero") {
		t.Errorf("initial view missing first board:\n%s", view)
	}
	if !strings.Contains(view, "move 0/2") {
		t.Errorf("initial view missing position indicator:\n%s", view)
	}
}

func TestPlayer_StepsForwardAndBack(t *testing.T) {
	t.Parallel()
	var m tea.Model = NewPlayer("intro", testFrames())

	m, _ = m.Update(keyMsg("l"))
	p := m.(Player)
	if p.Index() != 1 {
		t.Fatalf("after next: Index() = %d, want 1", p.Index())
	}
	if !strings.Contains(p.View(), "C down") {
		t.Errorf("view missing move label:\n%s", p.View())
	}

	m, _ = m.Update(keyMsg("h"))
	p = m.(Player)
	if p.Index() != 0 {
		t.Errorf("after prev: Index() = %d, want 0", p.Index())
	}
}

func TestPlayer_ClampsAtEnds(t *testing.T) {
	t.Parallel()
	var m tea.Model = NewPlayer("intro", testFrames())

	// Back off the start.
	m, _ = m.Update(keyMsg("h"))
	if m.(Player).Index() != 0 {
		t.Errorf("prev at start moved: Index() = %d", m.(Player).Index())
	}

	// Forward past the end.
	for range 5 {
		m, _ = m.Update(keyMsg("l"))
	}
	if got := m.(Player).Index(); got != 2 {
		t.Errorf("next past end: Index() = %d, want 2", got)
	}
}

func TestPlayer_JumpKeys(t *testing.T) {
	t.Parallel()
	var m tea.Model = NewPlayer("intro", testFrames())

	m, _ = m.Update(keyMsg("G"))
	if got := m.(Player).Index(); got != 2 {
		t.Fatalf("last: Index() = %d, want 2", got)
	}
	if !strings.Contains(m.(Player).View(), "free") {
		t.Errorf("final frame view missing solved marker:\n%s", m.(Player).View())
	}

	m, _ = m.Update(keyMsg("g"))
	if got := m.(Player).Index(); got != 0 {
		t.Errorf("first: Index() = %d, want 0", got)
	}
}

func TestPlayer_QuitReturnsQuitCmd(t *testing.T) {
	t.Parallel()
	var m tea.Model = NewPlayer("intro", testFrames())

	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit key produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("quit key command = %T, want tea.QuitMsg", cmd())
	}
}

func TestPlayer_EmptyFrames(t *testing.T) {
	t.Parallel()
	p := NewPlayer("empty", nil)
	if view := p.View(); !strings.Contains(view, "no solution") {
		t.Errorf("empty player view = %q", view)
	}
}
