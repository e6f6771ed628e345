package validator

import (
	"fmt"

	"github.com/arcanaland/arachne/internal/card"
	"github.com/arcanaland/arachne/internal/deck"
	"github.com/arcanaland/arachne/internal/layout"
	"github.com/arcanaland/arachne/internal/rules"
)

// TableauPiles is the number of piles dealt in Spider Solitaire
const TableauPiles = 10

type ValidationResults struct {
	Errors   []string
	Warnings []string
	Piles    []PileSummary
}

// PileSummary describes one pile of a valid layout
type PileSummary struct {
	Index    int
	Size     int
	FaceUp   int
	Liftable int // length of the longest liftable tail
	Top      string
}

type Validator struct {
	LayoutPath string
	Results    ValidationResults

	variant deck.Variant
	counts  map[suitRank]int
	total   int
}

type suitRank struct {
	suit card.Suit
	rank card.Rank
}

func NewValidator(layoutPath string) *Validator {
	return &Validator{
		LayoutPath: layoutPath,
		Results:    ValidationResults{},
	}
}

// Validate loads the layout file and checks it. A returned error means the
// file could not be read at all; rule violations go into the results.
func (v *Validator) Validate() (ValidationResults, error) {
	l, err := layout.Load(v.LayoutPath)
	if err != nil {
		return v.Results, err
	}
	return v.ValidateLayout(l), nil
}

// ValidateLayout checks an already decoded layout
func (v *Validator) ValidateLayout(l *layout.Layout) ValidationResults {
	variant, err := deck.ParseVariant(l.Variant)
	if err != nil {
		v.errorf("%v", err)
		return v.Results
	}
	v.variant = variant
	v.counts = make(map[suitRank]int)

	v.validateStock(l.Stock)
	v.validatePiles(l.Piles)
	v.validateCounts()
	v.validateTotals(l.Completed)

	return v.Results
}

func (v *Validator) validateStock(stock []string) {
	for i, code := range stock {
		if c := v.parse(fmt.Sprintf("stock[%d]", i), code); c != nil {
			v.count(c)
		}
	}
}

func (v *Validator) validatePiles(piles []layout.Pile) {
	if len(piles) != TableauPiles {
		v.warnf("layout has %d piles, expected %d", len(piles), TableauPiles)
	}

	for i, p := range piles {
		ok := true
		for j, code := range p.Down {
			if c := v.parse(fmt.Sprintf("piles[%d].down[%d]", i, j), code); c != nil {
				v.count(c)
			} else {
				ok = false
			}
		}
		for j, code := range p.Up {
			if c := v.parse(fmt.Sprintf("piles[%d].up[%d]", i, j), code); c != nil {
				v.count(c)
			} else {
				ok = false
			}
		}

		if len(p.Down) > 0 && len(p.Up) == 0 {
			v.warnf("piles[%d] has face-down cards but no face-up card", i)
		}

		if !ok {
			continue
		}
		cards, err := p.Cards()
		if err != nil {
			continue
		}
		v.Results.Piles = append(v.Results.Piles, summarize(i, cards))
	}
}

func (v *Validator) validateCounts() {
	copies := v.variant.Copies()
	for _, s := range card.Suits() {
		for _, r := range card.Ranks() {
			n := v.counts[suitRank{s, r}]
			if n == 0 {
				continue
			}
			if !v.variant.Uses(s) {
				v.errorf("%s is not part of a %s deck", s.Name(), v.variant)
				break
			}
			if n > copies {
				v.errorf("%s%s appears %d times, a %s deck has %d", r.Token(), s.Letter(), n, v.variant, copies)
			}
		}
	}
}

func (v *Validator) validateTotals(completed int) {
	size := v.variant.Size()
	maxRuns := size / deck.RunLength

	if completed < 0 || completed > maxRuns {
		v.errorf("completed must be between 0 and %d, got %d", maxRuns, completed)
		completed = 0
	}

	if v.total > size {
		v.errorf("layout has %d cards, a %s deck has %d", v.total, v.variant, size)
		return
	}

	accounted := v.total + completed*deck.RunLength
	if accounted != size {
		v.warnf("layout accounts for %d of %d cards", accounted, size)
	}
}

func (v *Validator) parse(where, code string) *card.Card {
	c, err := card.ParseCode(code)
	if err != nil {
		v.errorf("%s: %v", where, err)
		return nil
	}
	return c
}

func (v *Validator) count(c *card.Card) {
	v.counts[suitRank{c.Suit, c.Rank}]++
	v.total++
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func summarize(index int, cards []*card.PlayableCard) PileSummary {
	sum := PileSummary{Index: index, Size: len(cards)}
	for _, c := range cards {
		if c.IsFaceUp() {
			sum.FaceUp++
		}
	}
	sum.Liftable = len(cards) - rules.LiftableTail(cards)
	if len(cards) > 0 {
		sum.Top = cards[len(cards)-1].String()
	}
	return sum
}
