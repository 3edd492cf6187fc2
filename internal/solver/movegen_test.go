package solver

import (
	"testing"

	"github.com/papapumpkin/warden/internal/puzzle"
)

func successors(l puzzle.Layout) []Step {
	return Successors(l, l.Render())
}

func moveSet(steps []Step) map[puzzle.Move]bool {
	set := make(map[puzzle.Move]bool, len(steps))
	for _, s := range steps {
		set[s.Move] = true
	}
	return set
}

func TestSuccessors_OrientationRestrictsAxis(t *testing.T) {
	t.Parallel()

	// One horizontal and one vertical block, both surrounded by empty
	// space. Each gets exactly its axis-aligned pair of moves.
	l := puzzle.NewLayout([]puzzle.Block{
		{ID: 0, Row: 1, Col: 1, Horizontal: true, Kind: puzzle.TilePrisoner, Length: 2},
		{ID: 1, Row: 3, Col: 4, Horizontal: false, Kind: puzzle.TileBlock, Length: 2},
	})
	got := moveSet(successors(l))

	want := map[puzzle.Move]bool{
		{BlockID: 0, Dir: puzzle.Left}:  true,
		{BlockID: 0, Dir: puzzle.Right}: true,
		{BlockID: 1, Dir: puzzle.Up}:    true,
		{BlockID: 1, Dir: puzzle.Down}:  true,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d moves %v, want %d", len(got), got, len(want))
	}
	for m := range want {
		if !got[m] {
			t.Errorf("missing move %+v", m)
		}
	}
}

func TestSuccessors_WallsSuppressMoves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block puzzle.Block
		want  []puzzle.Direction
	}{
		{
			name:  "horizontal against left wall",
			block: puzzle.Block{ID: 0, Row: 2, Col: 0, Horizontal: true, Kind: puzzle.TilePrisoner, Length: 2},
			want:  []puzzle.Direction{puzzle.Right},
		},
		{
			name:  "horizontal against right wall",
			block: puzzle.Block{ID: 0, Row: 2, Col: 4, Horizontal: true, Kind: puzzle.TilePrisoner, Length: 2},
			want:  []puzzle.Direction{puzzle.Left},
		},
		{
			name:  "vertical spanning full column",
			block: puzzle.Block{ID: 0, Row: 0, Col: 3, Horizontal: false, Kind: puzzle.TilePrisoner, Length: 6},
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := puzzle.NewLayout([]puzzle.Block{tt.block})
			got := moveSet(successors(l))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d moves %v, want %d", len(got), got, len(tt.want))
			}
			for _, dir := range tt.want {
				if !got[puzzle.Move{BlockID: tt.block.ID, Dir: dir}] {
					t.Errorf("missing direction %s", dir)
				}
			}
		})
	}
}

func TestSuccessors_NeighborsSuppressMoves(t *testing.T) {
	t.Parallel()

	// Prisoner hemmed in on the right by a vertical block that itself
	// cannot move up past the top wall.
	l := puzzle.NewLayout([]puzzle.Block{
		{ID: 0, Row: 0, Col: 1, Horizontal: true, Kind: puzzle.TilePrisoner, Length: 2},
		{ID: 1, Row: 0, Col: 3, Horizontal: false, Kind: puzzle.TileBlock, Length: 2},
	})
	got := moveSet(successors(l))

	want := map[puzzle.Move]bool{
		{BlockID: 0, Dir: puzzle.Left}: true,
		{BlockID: 1, Dir: puzzle.Down}: true,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d moves %v, want %v", len(got), got, want)
	}
	for m := range want {
		if !got[m] {
			t.Errorf("missing move %+v", m)
		}
	}
}

func TestSuccessors_LeavesInputUntouched(t *testing.T) {
	t.Parallel()

	l := puzzle.NewLayout([]puzzle.Block{
		{ID: 0, Row: 2, Col: 2, Horizontal: true, Kind: puzzle.TilePrisoner, Length: 2},
	})
	steps := successors(l)
	if len(steps) == 0 {
		t.Fatal("no successors generated")
	}
	for _, s := range steps {
		if s.Layout.Render() == l.Render() {
			t.Errorf("successor for move %+v left the board unchanged", s.Move)
		}
	}
	b, _ := l.Block(0)
	if b.Row != 2 || b.Col != 2 {
		t.Errorf("input layout mutated: block at (%d,%d)", b.Row, b.Col)
	}
}
