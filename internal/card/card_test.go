package card

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CardTestSuite struct {
	suite.Suite
}

func TestCardSuite(t *testing.T) {
	suite.Run(t, new(CardTestSuite))
}

func (s *CardTestSuite) TestRankBounds() {
	next, ok := King.Succ()
	s.False(ok, "King has no successor")
	s.Zero(next)

	prev, ok := Ace.Pred()
	s.False(ok, "Ace has no predecessor")
	s.Zero(prev)

	next, ok = Ten.Succ()
	s.True(ok)
	s.Equal(Jack, next)

	_, ok = Rank(0).Succ()
	s.False(ok, "invalid rank has no successor")
	_, ok = Rank(14).Pred()
	s.False(ok, "invalid rank has no predecessor")
}

func (s *CardTestSuite) TestRankAbove() {
	testCases := []struct {
		name     string
		r, other Rank
		expected bool
	}{
		{name: "eight above seven", r: Eight, other: Seven, expected: true},
		{name: "two above ace", r: Two, other: Ace, expected: true},
		{name: "king above queen", r: King, other: Queen, expected: true},
		{name: "equal ranks", r: Seven, other: Seven, expected: false},
		{name: "gap of two", r: Nine, other: Seven, expected: false},
		{name: "below", r: Six, other: Seven, expected: false},
		{name: "ace does not wrap above king", r: Ace, other: King, expected: false},
		{name: "out of range", r: Rank(14), other: King, expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.r.Above(tc.other))
		})
	}
}

func (s *CardTestSuite) TestParseRank() {
	for _, r := range Ranks() {
		parsed, err := ParseRank(r.Token())
		s.Require().NoError(err)
		s.Equal(r, parsed)
	}

	parsed, err := ParseRank("q")
	s.NoError(err)
	s.Equal(Queen, parsed)

	_, err = ParseRank("11")
	s.Error(err)
	_, err = ParseRank("")
	s.Error(err)
}

func (s *CardTestSuite) TestParseSuit() {
	testCases := []struct {
		input    string
		expected Suit
	}{
		{"C", Club},
		{"d", Diamond},
		{"Hearts", Heart},
		{"spade", Spade},
		{"♠", Spade},
		{"♦", Diamond},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			suit, err := ParseSuit(tc.input)
			s.Require().NoError(err)
			s.Equal(tc.expected, suit)
		})
	}

	_, err := ParseSuit("X")
	s.Error(err)
}

func (s *CardTestSuite) TestFaceKey() {
	s.Equal("cards/A-Clubs.svg", FaceKey(Club, Ace))
	s.Equal("cards/10-Hearts.svg", FaceKey(Heart, Ten))
	s.Equal("cards/K-Spades.svg", FaceKey(Spade, King))

	// Total and unique over all 52 pairs
	seen := make(map[string]bool)
	for _, suit := range Suits() {
		for _, r := range Ranks() {
			key := FaceKey(suit, r)
			s.False(seen[key], "duplicate face key %s", key)
			seen[key] = true
		}
	}
	s.Len(seen, 52)
}

func (s *CardTestSuite) TestParseToken() {
	testCases := []struct {
		name   string
		token  string
		suit   Suit
		rank   Rank
		faceUp bool
	}{
		{name: "face up", token: "7H", suit: Heart, rank: Seven, faceUp: true},
		{name: "ten", token: "10s", suit: Spade, rank: Ten, faceUp: true},
		{name: "face down", token: "_8C", suit: Club, rank: Eight, faceUp: false},
		{name: "symbol", token: "K♦", suit: Diamond, rank: King, faceUp: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			pc, err := ParseToken(tc.token)
			s.Require().NoError(err)
			s.Equal(tc.suit, pc.Suit)
			s.Equal(tc.rank, pc.Rank)
			s.Equal(tc.faceUp, pc.FaceUp)
			s.NotEqual(uuid.Nil, pc.ID)
		})
	}

	for _, bad := range []string{"", "H", "1X", "ZZ", "_"} {
		_, err := ParseToken(bad)
		s.Error(err, "token %q should not parse", bad)
	}
}

func (s *CardTestSuite) TestParseTokensDistinctInstances() {
	cards, err := ParseTokens([]string{"5C", "5C"})
	s.Require().NoError(err)
	s.Require().Len(cards, 2)
	s.NotSame(cards[0].Card, cards[1].Card)
	s.NotEqual(cards[0].ID, cards[1].ID)
}

func (s *CardTestSuite) TestIsFaceUp() {
	var missing *PlayableCard
	s.False(missing.IsFaceUp())
	s.False((&PlayableCard{FaceUp: true}).IsFaceUp(), "no underlying card")
	s.False(NewPlayable(New(Club, Five), false).IsFaceUp())
	s.True(NewPlayable(New(Club, Five), true).IsFaceUp())
}

func (s *CardTestSuite) TestString() {
	c := New(Heart, Queen)
	s.Equal("QH", c.Code())
	s.Equal("Q♥", c.String())
	s.Equal("[Q♥]", NewPlayable(c, false).String())
	s.Equal("cards/Q-Hearts.svg", c.Face)
}
