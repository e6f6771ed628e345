package card

import (
	"fmt"
	"path"
	"strings"
)

// FaceDownPrefix marks a face-down card in a card token (e.g., _8C)
const FaceDownPrefix = "_"

const faceDir = "cards"

// FaceKey returns the asset lookup key for a suit and rank, e.g.
// cards/A-Clubs.svg. The key is opaque; nothing here checks that the file exists.
func FaceKey(suit Suit, rank Rank) string {
	return path.Join(faceDir, fmt.Sprintf("%s-%s.svg", rank.Token(), suit.Name()))
}

// ParseCode parses a card code such as 7H, 10s or K♠ into a new card.
func ParseCode(code string) (*Card, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, fmt.Errorf("empty card code")
	}

	// The suit is the last rune; everything before it is the rank
	runes := []rune(code)
	if len(runes) < 2 {
		return nil, fmt.Errorf("invalid card code: %q", code)
	}
	rank, err := ParseRank(string(runes[:len(runes)-1]))
	if err != nil {
		return nil, fmt.Errorf("invalid card code %q: %w", code, err)
	}
	suit, err := ParseSuit(string(runes[len(runes)-1]))
	if err != nil {
		return nil, fmt.Errorf("invalid card code %q: %w", code, err)
	}

	return New(suit, rank), nil
}

// ParseToken parses a card code with an optional face-down prefix.
func ParseToken(token string) (*PlayableCard, error) {
	token = strings.TrimSpace(token)
	faceUp := !strings.HasPrefix(token, FaceDownPrefix)
	c, err := ParseCode(strings.TrimPrefix(token, FaceDownPrefix))
	if err != nil {
		return nil, err
	}
	return NewPlayable(c, faceUp), nil
}

// ParseTokens parses a list of card tokens, stopping at the first bad one
func ParseTokens(tokens []string) ([]*PlayableCard, error) {
	cards := make([]*PlayableCard, 0, len(tokens))
	for _, t := range tokens {
		pc, err := ParseToken(t)
		if err != nil {
			return nil, err
		}
		cards = append(cards, pc)
	}
	return cards, nil
}
