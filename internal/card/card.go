package card

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Suit represents a card suit. The zero value is Club.
type Suit uint8

const (
	Club Suit = iota
	Diamond
	Heart
	Spade
)

var suitNames = [...]string{"Clubs", "Diamonds", "Hearts", "Spades"}
var suitLetters = [...]string{"C", "D", "H", "S"}
var suitSymbols = [...]string{"♣", "♦", "♥", "♠"}

// Suits returns all suits in canonical order
func Suits() []Suit {
	return []Suit{Club, Diamond, Heart, Spade}
}

func (s Suit) Valid() bool { return s <= Spade }

// Name returns the plural suit name (e.g., Clubs)
func (s Suit) Name() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", uint8(s))
	}
	return suitNames[s]
}

func (s Suit) Letter() string {
	if !s.Valid() {
		return "?"
	}
	return suitLetters[s]
}

func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Red reports whether the suit is printed in red on a standard deck
func (s Suit) Red() bool { return s == Diamond || s == Heart }

func (s Suit) String() string { return s.Name() }

// ParseSuit accepts a suit letter, singular or plural name, or pip symbol.
func ParseSuit(str string) (Suit, error) {
	key := strings.ToLower(strings.TrimSpace(str))
	for _, s := range Suits() {
		name := strings.ToLower(s.Name())
		switch key {
		case strings.ToLower(s.Letter()), name, strings.TrimSuffix(name, "s"), s.Symbol():
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown suit: %q", str)
}

// Rank is a card rank from Ace (1) to King (13). The zero value is invalid.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankTokens = [...]string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Ranks returns Ace through King
func Ranks() []Rank {
	ranks := make([]Rank, 0, King)
	for r := Ace; r <= King; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

func (r Rank) Valid() bool { return r >= Ace && r <= King }

// Succ returns the next rank up. ok is false for King and invalid ranks.
func (r Rank) Succ() (Rank, bool) {
	if !r.Valid() || r == King {
		return 0, false
	}
	return r + 1, true
}

// Pred returns the next rank down. ok is false for Ace and invalid ranks.
func (r Rank) Pred() (Rank, bool) {
	if !r.Valid() || r == Ace {
		return 0, false
	}
	return r - 1, true
}

// Above reports whether r is exactly one rank above other.
func (r Rank) Above(other Rank) bool {
	next, ok := other.Succ()
	return ok && next == r
}

// Token returns the short rank token used in card codes and face keys
func (r Rank) Token() string {
	if !r.Valid() {
		return "?"
	}
	return rankTokens[r]
}

func (r Rank) String() string { return r.Token() }

// ParseRank parses a rank token (A, 2-10, J, Q, K). "1" is accepted for Ace.
func ParseRank(str string) (Rank, error) {
	key := strings.ToUpper(strings.TrimSpace(str))
	if key == "1" {
		return Ace, nil
	}
	for r := Ace; r <= King; r++ {
		if rankTokens[r] == key {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rank: %q", str)
}

// Card represents one physical playing card. Two cards with the same suit and
// rank are still different cards; use the pointer or ID to tell them apart.
type Card struct {
	ID   uuid.UUID
	Suit Suit
	Rank Rank
	Face string // Opaque key handed to the asset resolver
}

// New creates a card with a fresh ID
func New(suit Suit, rank Rank) *Card {
	return &Card{
		ID:   uuid.New(),
		Suit: suit,
		Rank: rank,
		Face: FaceKey(suit, rank),
	}
}

// Code returns the compact card code (e.g., 10H, KS)
func (c *Card) Code() string {
	return c.Rank.Token() + c.Suit.Letter()
}

func (c *Card) String() string {
	return c.Rank.Token() + c.Suit.Symbol()
}

// PlayableCard is a card on the table. FaceUp is owned by whoever manages the
// piles; the rules only read it.
type PlayableCard struct {
	*Card
	FaceUp bool
}

// NewPlayable wraps c for play
func NewPlayable(c *Card, faceUp bool) *PlayableCard {
	return &PlayableCard{Card: c, FaceUp: faceUp}
}

// IsFaceUp is nil-safe: a missing card is never face-up.
func (p *PlayableCard) IsFaceUp() bool {
	return p != nil && p.Card != nil && p.FaceUp
}

func (p *PlayableCard) String() string {
	if p == nil || p.Card == nil {
		return "<nil>"
	}
	if !p.FaceUp {
		return "[" + p.Card.String() + "]"
	}
	return p.Card.String()
}
