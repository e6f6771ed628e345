// Package rules decides whether a run of cards may be picked up and where it
// may be dropped. Nothing here mutates the cards it is given.
package rules

import "github.com/arcanaland/arachne/internal/card"

// CanLift reports whether seq may be dragged as one unit. seq is ordered top
// card first. Every card must be face-up, and each card must be the same suit
// as the next and exactly one rank above it. Empty sequences are not liftable.
func CanLift(seq []*card.PlayableCard) bool {
	if len(seq) == 0 {
		return false
	}

	for _, c := range seq {
		if !c.IsFaceUp() {
			return false
		}
	}

	for i := 0; i < len(seq)-1; i++ {
		if !follows(seq[i], seq[i+1]) {
			return false
		}
	}

	return true
}

// CanDrop reports whether moving may be dropped onto a pile whose top card is
// target. A nil target means an empty pile, which accepts any non-empty run.
// Only the lead card of moving is compared; suit does not matter. CanDrop does
// not check that moving is itself liftable.
func CanDrop(moving []*card.PlayableCard, target *card.PlayableCard) bool {
	if len(moving) == 0 {
		return false
	}

	if target == nil {
		return true
	}

	if !target.IsFaceUp() {
		return false
	}

	lead := moving[0]
	if lead == nil || lead.Card == nil {
		return false
	}

	return target.Rank.Above(lead.Rank)
}

// LiftableTail returns the index at which the longest liftable tail of pile
// begins. pile is ordered bottom card first, so its last element is the top of
// the pile. If the top card is missing or face-down the result is len(pile).
func LiftableTail(pile []*card.PlayableCard) int {
	n := len(pile)
	if n == 0 || !pile[n-1].IsFaceUp() {
		return n
	}

	start := n - 1
	for start > 0 {
		above := pile[start-1]
		if !above.IsFaceUp() || !follows(above, pile[start]) {
			break
		}
		start--
	}

	return start
}

func follows(current, next *card.PlayableCard) bool {
	if current == nil || current.Card == nil || next == nil || next.Card == nil {
		return false
	}
	return current.Suit == next.Suit && current.Rank.Above(next.Rank)
}
