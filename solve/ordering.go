package solve

import (
	"math/rand"
	"sort"

	"github.com/lazork/lazork/board"
)

// OrderSlots returns the board's open slots ordered by estimated
// usefulness: ascending by (distance to nearest emitter) + alpha ×
// (distance to nearest target), measured as Manhattan distance in lattice
// units from the slot center. Slots near beams and targets are tried
// first. The seed then shuffles contiguous windows of the sorted order so
// concurrent attempts diversify without losing the distance bias.
// Ordering affects only how fast a solution is found, never whether.
// Complexity: O(S×(E+T) + S log S), S = slots.
func OrderSlots(b *board.Board, seed int64, alpha float64, window int) []board.Cell {
	slots := b.Slots()
	if len(slots) == 0 {
		return slots
	}
	emitters := b.Emitters()
	targets := b.Targets()

	// 1. Score every slot from its lattice center.
	scores := make(map[board.Cell]float64, len(slots))
	for _, c := range slots {
		center := b.Center(c)
		var s1, s2 int
		if len(emitters) > 0 {
			s1 = manhattan(center, emitters[0].Pos)
			for _, e := range emitters[1:] {
				if d := manhattan(center, e.Pos); d < s1 {
					s1 = d
				}
			}
		}
		if len(targets) > 0 {
			s2 = manhattan(center, targets[0])
			for _, t := range targets[1:] {
				if d := manhattan(center, t); d < s2 {
					s2 = d
				}
			}
		}
		scores[c] = float64(s1) + alpha*float64(s2)
	}

	// 2. Stable sort keeps grid order between equal scores, so the same
	// seed always sees the same input.
	sort.SliceStable(slots, func(i, j int) bool {
		return scores[slots[i]] < scores[slots[j]]
	})

	// 3. Seeded tie-breaking: shuffle each window of the sorted order.
	if window > 1 {
		rng := rand.New(rand.NewSource(seed))
		for lo := 0; lo < len(slots); lo += window {
			hi := lo + window
			if hi > len(slots) {
				hi = len(slots)
			}
			seg := slots[lo:hi]
			rng.Shuffle(len(seg), func(i, j int) {
				seg[i], seg[j] = seg[j], seg[i]
			})
		}
	}

	return slots
}

// manhattan is |ax-bx| + |ay-by| in lattice units.
func manhattan(a, b board.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
