package puzzle

import "fmt"

// Layout is the full description of every block's position at one point
// in time. It is immutable by convention: MoveBlock and Clone return
// fresh copies and never alias the receiver's backing storage.
type Layout struct {
	blocks []Block
}

// NewLayout builds a layout from the given blocks. The slice is copied;
// the caller keeps ownership of its argument. Input is assumed to
// satisfy the model invariants (see Validate for the boundary check).
func NewLayout(blocks []Block) Layout {
	own := make([]Block, len(blocks))
	copy(own, blocks)
	return Layout{blocks: own}
}

// Blocks returns a copy of the layout's blocks in construction order.
func (l Layout) Blocks() []Block {
	out := make([]Block, len(l.blocks))
	copy(out, l.blocks)
	return out
}

// Len returns the number of blocks.
func (l Layout) Len() int {
	return len(l.blocks)
}

// Block returns the block with the given ID.
func (l Layout) Block(id int) (Block, bool) {
	for _, b := range l.blocks {
		if b.ID == id {
			return b, true
		}
	}
	return Block{}, false
}

// Prisoner returns the layout's prisoner block.
func (l Layout) Prisoner() (Block, bool) {
	for _, b := range l.blocks {
		if b.Kind == TilePrisoner {
			return b, true
		}
	}
	return Block{}, false
}

// Clone returns a fully independent deep copy with the same block IDs.
func (l Layout) Clone() Layout {
	return NewLayout(l.blocks)
}

// MoveBlock returns a new layout with the identified block shifted one
// tile in the given direction. Legality is the move generator's
// concern; MoveBlock only relocates. An unknown ID is an invariant
// violation and panics, since it means the search history named a block
// that does not exist.
func (l Layout) MoveBlock(id int, dir Direction) Layout {
	next := l.Clone()
	dRow, dCol := dir.Delta()
	for i := range next.blocks {
		if next.blocks[i].ID == id {
			next.blocks[i].Row += dRow
			next.blocks[i].Col += dCol
			return next
		}
	}
	panic(fmt.Sprintf("puzzle: move of unknown block id %d", id))
}

// Render stamps every block's occupied cells onto a fresh Board. It is
// pure and deterministic; cost is linear in the number of occupied
// cells.
func (l Layout) Render() Board {
	var b Board
	for _, blk := range l.blocks {
		if blk.Horizontal {
			for i := 0; i < blk.Length; i++ {
				b[blk.Row*Size+blk.Col+i] = blk.Kind
			}
		} else {
			for i := 0; i < blk.Length; i++ {
				b[(blk.Row+i)*Size+blk.Col] = blk.Kind
			}
		}
	}
	return b
}
