// Package layout reads saved Spider Solitaire tableaus from TOML.
package layout

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/arachne/internal/card"
)

// Layout is a saved tableau as written in a layout file
type Layout struct {
	Variant   string   `toml:"variant"`
	Completed int      `toml:"completed"`
	Stock     []string `toml:"stock"`
	Piles     []Pile   `toml:"piles"`
}

// Pile lists face-down cards then face-up cards, bottom first
type Pile struct {
	Down []string `toml:"down"`
	Up   []string `toml:"up"`
}

// Load decodes a layout file
func Load(path string) (*Layout, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("layout file not found: %s", path)
	}

	var l Layout
	md, err := toml.DecodeFile(path, &l)
	if err != nil {
		return nil, fmt.Errorf("error parsing layout file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in layout file: %v", undecoded)
	}

	return &l, nil
}

// Cards parses the pile into playable cards, bottom first
func (p Pile) Cards() ([]*card.PlayableCard, error) {
	cards := make([]*card.PlayableCard, 0, len(p.Down)+len(p.Up))
	for _, code := range p.Down {
		c, err := card.ParseCode(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card.NewPlayable(c, false))
	}
	for _, code := range p.Up {
		c, err := card.ParseCode(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card.NewPlayable(c, true))
	}
	return cards, nil
}

// Size returns the number of card codes in the pile
func (p Pile) Size() int { return len(p.Down) + len(p.Up) }
