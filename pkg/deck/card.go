package deck

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// UnknownCard is the text form of a card whose identity has not been revealed
const UnknownCard = "??"

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

const rankChars = "23456789TJQKA"

// Card is an individual playing card
type Card struct {
	Rank int
	Suit Suit
}

// String returns the two-character text form of the card, i.e., "Ah" or "Td"
func (c *Card) String() string {
	if c == nil {
		return UnknownCard
	}

	if c.Rank < 2 || c.Rank > Ace {
		panic(fmt.Sprintf("unknown rank: %d", c.Rank))
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "c"
	case Diamonds:
		suit = "d"
	case Hearts:
		suit = "h"
	case Spades:
		suit = "s"
	default:
		panic("unknown suit")
	}

	return string(rankChars[c.Rank-2]) + suit
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// AceLowRank returns the rank where Ace is considered low instead of high
func (c *Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

// MarshalJSON encodes the card as its text form
func (c *Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes the card from its text form
func (c *Card) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	card, err := ParseCard(s)
	if err != nil {
		return err
	}

	*c = *card
	return nil
}

// ParseCard returns a Card from a two-character string like "Ah" or "Td".
// The rank must be in "23456789TJQKA" and the suit in "cdhs".
func ParseCard(s string) (*Card, error) {
	if len(s) != 2 {
		return nil, fmt.Errorf("could not parse card: %s", s)
	}

	rank := strings.IndexByte(rankChars, s[0])
	if rank < 0 {
		return nil, fmt.Errorf("could not parse card rank: %s", s)
	}

	var suit Suit
	switch s[1] {
	case 'c':
		suit = Clubs
	case 'd':
		suit = Diamonds
	case 'h':
		suit = Hearts
	case 's':
		suit = Spades
	default:
		return nil, fmt.Errorf("could not parse card suit: %s", s)
	}

	return &Card{
		Rank: rank + 2,
		Suit: suit,
	}, nil
}

// CardFromString returns a Card from the string and panics if the string cannot
// be parsed. Intended for tests and static declarations.
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString will return a slice of cards from a string like "Ah,Td,2c"
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
