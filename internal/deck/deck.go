package deck

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/arachne/internal/card"
	"github.com/google/uuid"
)

// ErrInvalidVariant is returned when a game variant is not recognized
var ErrInvalidVariant = errors.New("invalid variant")

// RunLength is the number of cards in one suit, Ace through King
const RunLength = 13

const suitCount = 4

// Variant is a Spider Solitaire game mode
type Variant string

const (
	OneSuit  Variant = "one-suit"
	TwoSuit  Variant = "two-suit"
	FourSuit Variant = "four-suit"
)

// DefaultVariant is used when no variant is configured
const DefaultVariant = TwoSuit

type variantDef struct {
	suits  []card.Suit
	copies int
}

var variants = map[Variant]variantDef{
	OneSuit:  {suits: []card.Suit{card.Club}, copies: 8},
	TwoSuit:  {suits: []card.Suit{card.Club, card.Heart}, copies: 4},
	FourSuit: {suits: card.Suits(), copies: 2},
}

// templates holds one canonical Ace..King run per suit. Read-only after init.
var templates = buildTemplates()

func buildTemplates() [suitCount][RunLength]card.Card {
	var t [suitCount][RunLength]card.Card
	for _, s := range card.Suits() {
		for i, r := range card.Ranks() {
			t[s][i] = card.Card{
				Suit: s,
				Rank: r,
				Face: card.FaceKey(s, r),
			}
		}
	}
	return t
}

// Variants returns the recognized variants
func Variants() []Variant {
	return []Variant{OneSuit, TwoSuit, FourSuit}
}

// ParseVariant resolves a variant token. The empty string means DefaultVariant.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultVariant, nil
	}
	v := Variant(s)
	if _, ok := variants[v]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidVariant, s)
	}
	return v, nil
}

func (v Variant) Valid() bool {
	_, ok := variants[v]
	return ok
}

// Suits returns the suits used by the variant in canonical order
func (v Variant) Suits() []card.Suit {
	def, ok := variants[v]
	if !ok {
		return nil
	}
	return append([]card.Suit(nil), def.suits...)
}

// Copies returns how many times each suit's run appears in the deck
func (v Variant) Copies() int {
	return variants[v].copies
}

// Size returns the total number of cards in the variant's deck
func (v Variant) Size() int {
	def := variants[v]
	return def.copies * len(def.suits) * RunLength
}

// Uses reports whether cards of suit s belong to the variant
func (v Variant) Uses(s card.Suit) bool {
	for _, vs := range variants[v].suits {
		if vs == s {
			return true
		}
	}
	return false
}

func (v Variant) String() string { return string(v) }

// Build returns a freshly allocated, unshuffled deck for the variant. Suits
// come in canonical order, each suit's copies back to back, Ace..King within
// each copy. Every card is a new instance with its own ID.
func Build(v Variant) ([]*card.Card, error) {
	def, ok := variants[v]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVariant, string(v))
	}

	cards := make([]*card.Card, 0, v.Size())
	for _, s := range def.suits {
		for i := 0; i < def.copies; i++ {
			cards = appendRun(cards, s)
		}
	}

	return cards, nil
}

// Template returns a copy of the canonical run for a suit
func Template(s card.Suit) []card.Card {
	if !s.Valid() {
		return nil
	}
	run := templates[s]
	return run[:]
}

func appendRun(cards []*card.Card, s card.Suit) []*card.Card {
	for _, tmpl := range templates[s] {
		c := tmpl
		c.ID = uuid.New()
		cards = append(cards, &c)
	}
	return cards
}
