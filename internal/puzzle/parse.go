package puzzle

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// ErrBadGrid is returned when an ASCII grid has the wrong shape or a
// letter's cells do not form a straight contiguous run.
var ErrBadGrid = errors.New("malformed grid")

// ErrBadOrientation is returned for an unrecognized orientation string.
var ErrBadOrientation = errors.New("bad orientation")

// Validation errors for layout invariants.
var (
	ErrNoPrisoner    = errors.New("no prisoner block")
	ErrManyPrisoners = errors.New("more than one prisoner block")
	ErrOverlap       = errors.New("blocks overlap")
	ErrOutOfBounds   = errors.New("block out of bounds")
	ErrShortBlock    = errors.New("block shorter than 2 tiles")
)

// Manifest is the on-disk TOML description of a puzzle. Either Grid or
// Blocks describes the starting position; Grid wins when both are set.
type Manifest struct {
	Name   string          `toml:"name"`
	Grid   string          `toml:"grid"`
	Blocks []ManifestBlock `toml:"blocks"`
}

// ManifestBlock is one block entry in a manifest.
type ManifestBlock struct {
	Row         int    `toml:"row"`
	Col         int    `toml:"col"`
	Orientation string `toml:"orientation"`
	Length      int    `toml:"length"`
	Prisoner    bool   `toml:"prisoner"`
}

// LoadFile reads and parses a puzzle manifest from disk.
func LoadFile(path string) (Layout, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, "", fmt.Errorf("puzzle: reading %s: %w", path, err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes a TOML manifest into a layout and its name.
func ParseManifest(data []byte) (Layout, string, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Layout{}, "", fmt.Errorf("puzzle: parsing manifest: %w", err)
	}

	if strings.TrimSpace(m.Grid) != "" {
		l, err := ParseGrid(m.Grid)
		return l, m.Name, err
	}

	alloc := NewIDAllocator()
	blocks := make([]Block, 0, len(m.Blocks))
	for i, mb := range m.Blocks {
		var horizontal bool
		switch mb.Orientation {
		case "horizontal":
			horizontal = true
		case "vertical":
			horizontal = false
		default:
			return Layout{}, "", fmt.Errorf("puzzle: block %d: %w: %q", i, ErrBadOrientation, mb.Orientation)
		}
		kind := TileBlock
		if mb.Prisoner {
			kind = TilePrisoner
		}
		blocks = append(blocks, Block{
			ID:         alloc.Next(),
			Row:        mb.Row,
			Col:        mb.Col,
			Horizontal: horizontal,
			Kind:       kind,
			Length:     mb.Length,
		})
	}
	return NewLayout(blocks), m.Name, nil
}

// ParseGrid scans an ASCII starting position into a layout. The grid is
// Size lines of Size runes: '.' for empty, 'Z' for the prisoner, any
// other letter for an ordinary block. Cells sharing a letter must form
// one straight run of length ≥ 2; abutting same-length blocks are
// written with distinct letters, so there is no run-splitting
// ambiguity. IDs are assigned in reading order of each letter's first
// cell.
func ParseGrid(s string) (Layout, error) {
	lines := gridLines(s)
	if len(lines) != Size {
		return Layout{}, fmt.Errorf("puzzle: %w: %d rows, want %d", ErrBadGrid, len(lines), Size)
	}

	type cell struct{ row, col int }
	cells := make(map[rune][]cell)
	var order []rune
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != Size {
			return Layout{}, fmt.Errorf("puzzle: %w: row %d has %d columns, want %d", ErrBadGrid, row, len(runes), Size)
		}
		for col, r := range runes {
			if r == '.' {
				continue
			}
			if _, seen := cells[r]; !seen {
				order = append(order, r)
			}
			cells[r] = append(cells[r], cell{row, col})
		}
	}

	alloc := NewIDAllocator()
	blocks := make([]Block, 0, len(order))
	for _, r := range order {
		run := cells[r]
		sort.Slice(run, func(i, j int) bool {
			if run[i].row != run[j].row {
				return run[i].row < run[j].row
			}
			return run[i].col < run[j].col
		})
		if len(run) < 2 {
			return Layout{}, fmt.Errorf("puzzle: letter %c: %w", r, ErrShortBlock)
		}

		first := run[0]
		horizontal := run[1].row == first.row && run[1].col == first.col+1
		for i, c := range run {
			var want cell
			if horizontal {
				want = cell{first.row, first.col + i}
			} else {
				want = cell{first.row + i, first.col}
			}
			if c != want {
				return Layout{}, fmt.Errorf("puzzle: letter %c: %w: cells are not one straight run", r, ErrBadGrid)
			}
		}

		kind := TileBlock
		if r == 'Z' {
			kind = TilePrisoner
		}
		blocks = append(blocks, Block{
			ID:         alloc.Next(),
			Row:        first.row,
			Col:        first.col,
			Horizontal: horizontal,
			Kind:       kind,
			Length:     len(run),
		})
	}
	return NewLayout(blocks), nil
}

// gridLines splits a grid string into its content lines, dropping
// leading/trailing blank lines so heredoc-style TOML strings parse
// cleanly.
func gridLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" && (len(lines) == 0) {
			continue
		}
		lines = append(lines, line)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Validate checks the layout invariants the solver assumes: in-bounds
// blocks of length ≥ 2, no overlapping cells, exactly one prisoner.
// The solver does not re-validate; this runs once at the input
// boundary.
func Validate(l Layout) []error {
	var errs []error

	var seen Board
	prisoners := 0
	for _, b := range l.Blocks() {
		if b.Kind == TilePrisoner {
			prisoners++
		}
		if b.Length < 2 {
			errs = append(errs, fmt.Errorf("block %d: %w", b.ID, ErrShortBlock))
			continue
		}

		endRow, endCol := b.Row, b.Col
		if b.Horizontal {
			endCol += b.Length - 1
		} else {
			endRow += b.Length - 1
		}
		if b.Row < 0 || b.Col < 0 || endRow >= Size || endCol >= Size {
			errs = append(errs, fmt.Errorf("block %d: %w", b.ID, ErrOutOfBounds))
			continue
		}

		for i := 0; i < b.Length; i++ {
			row, col := b.Row, b.Col
			if b.Horizontal {
				col += i
			} else {
				row += i
			}
			if seen.Occupied(row, col) {
				errs = append(errs, fmt.Errorf("block %d at (%d,%d): %w", b.ID, row, col, ErrOverlap))
				break
			}
			seen[row*Size+col] = b.Kind
		}
	}

	switch {
	case prisoners == 0:
		errs = append(errs, ErrNoPrisoner)
	case prisoners > 1:
		errs = append(errs, ErrManyPrisoners)
	}
	return errs
}
