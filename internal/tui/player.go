// Package tui is a bubbletea step player for solved puzzles: it shows
// one board of the solution at a time and lets the user walk forward
// and backward through the moves.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Frame is one pre-rendered solution step.
type Frame struct {
	Board string // ASCII board, rendered once up front
	Label string // move that produced this board, or "start"
}

// Player implements tea.Model over a fixed sequence of frames.
type Player struct {
	title  string
	frames []Frame
	idx    int
	keys   KeyMap
	width  int
}

// NewPlayer creates a step player for the given solution frames.
func NewPlayer(title string, frames []Frame) Player {
	return Player{
		title:  title,
		frames: frames,
		keys:   DefaultKeyMap(),
	}
}

// Index returns the current frame position.
func (p Player) Index() int { return p.idx }

func (p Player) Init() tea.Cmd { return nil }

func (p Player) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Quit):
			return p, tea.Quit
		case key.Matches(msg, p.keys.Prev):
			if p.idx > 0 {
				p.idx--
			}
		case key.Matches(msg, p.keys.Next):
			if p.idx < len(p.frames)-1 {
				p.idx++
			}
		case key.Matches(msg, p.keys.First):
			p.idx = 0
		case key.Matches(msg, p.keys.Last):
			p.idx = len(p.frames) - 1
		}
	}
	return p, nil
}

func (p Player) View() string {
	if len(p.frames) == 0 {
		return "no solution to show\n"
	}

	var sb strings.Builder
	sb.WriteString(p.statusLine())
	sb.WriteString("\n\n")

	frame := p.frames[p.idx]
	label := styleMoveStart.Render(frame.Label)
	if p.idx > 0 {
		label = styleMoveLabel.Render(frame.Label)
	}
	board := styleBoard.Render(strings.TrimRight(frame.Board, "\n"))
	sb.WriteString(lipgloss.JoinVertical(lipgloss.Left, board, label))

	sb.WriteString("\n\n")
	sb.WriteString(p.footerLine())
	sb.WriteString("\n")
	return sb.String()
}

// statusLine renders the title and position indicator.
func (p Player) statusLine() string {
	pos := fmt.Sprintf("move %d/%d", p.idx, len(p.frames)-1)
	var tail string
	if p.idx == len(p.frames)-1 {
		tail = " " + styleStatusDone.Render("✓ free")
	}
	return styleStatusBar.Render(
		styleStatusLabel.Render(p.title) + "  " + styleStatusValue.Render(pos) + tail)
}

// footerLine renders the key help.
func (p Player) footerLine() string {
	bindings := []key.Binding{p.keys.Prev, p.keys.Next, p.keys.First, p.keys.Last, p.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, styleFooterKey.Render(h.Key)+" "+styleFooterDesc.Render(h.Desc))
	}
	return styleFooter.Render(strings.Join(parts, "  "))
}

// Run plays the frames in a full bubbletea program, blocking until the
// user quits.
func Run(title string, frames []Frame) error {
	_, err := tea.NewProgram(NewPlayer(title, frames)).Run()
	return err
}
