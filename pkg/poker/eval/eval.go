package eval

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"holdem-server/pkg/deck"
)

// ErrInvalidHandSize is an error when the evaluator is invoked with the wrong number of cards
var ErrInvalidHandSize = errors.New("invalid hand size")

// Score is a comparable rank for a five-card hand.
// Scores compare by category first and then by the tiebreak ranks,
// most significant first.
type Score struct {
	Category Category
	Tiebreak []int
}

// Compare returns a negative number if s is weaker than other, a positive
// number if s is stronger, and 0 on an exact tie
func (s Score) Compare(other Score) int {
	if s.Category != other.Category {
		return int(s.Category) - int(other.Category)
	}

	for i, rank := range s.Tiebreak {
		if i >= len(other.Tiebreak) {
			break
		}

		if rank != other.Tiebreak[i] {
			return rank - other.Tiebreak[i]
		}
	}

	return 0
}

// Beats returns true if s is strictly stronger than other
func (s Score) Beats(other Score) bool {
	return s.Compare(other) > 0
}

// Ties returns true if the two scores split a pot
func (s Score) Ties(other Score) bool {
	return s.Compare(other) == 0
}

func (s Score) String() string {
	if len(s.Tiebreak) == 0 {
		return s.Category.String()
	}

	ranks := make([]string, len(s.Tiebreak))
	for i, rank := range s.Tiebreak {
		ranks[i] = strconv.Itoa(rank)
	}

	return fmt.Sprintf("%s (%s)", s.Category, strings.Join(ranks, ","))
}

// ScoreFive ranks exactly five distinct cards.
// Returns ErrInvalidHandSize if the input is not exactly five cards.
func ScoreFive(cards []*deck.Card) (Score, error) {
	if len(cards) != 5 {
		return Score{}, ErrInvalidHandSize
	}

	ranks := make([]int, 5)
	flush := true
	for i, card := range cards {
		ranks[i] = card.Rank
		if card.Suit != cards[0].Suit {
			flush = false
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	straightHigh := straightHighCard(ranks)

	switch {
	case flush && straightHigh == deck.Ace:
		return Score{Category: RoyalFlush, Tiebreak: []int{}}, nil
	case flush && straightHigh > 0:
		return Score{Category: StraightFlush, Tiebreak: []int{straightHigh}}, nil
	}

	groups := groupByRank(ranks)

	switch {
	case groups[0].count == 4:
		return Score{Category: FourOfAKind, Tiebreak: []int{groups[0].rank, groups[1].rank}}, nil
	case groups[0].count == 3 && groups[1].count == 2:
		return Score{Category: FullHouse, Tiebreak: []int{groups[0].rank, groups[1].rank}}, nil
	case flush:
		return Score{Category: Flush, Tiebreak: ranks}, nil
	case straightHigh > 0:
		return Score{Category: Straight, Tiebreak: []int{straightHigh}}, nil
	case groups[0].count == 3:
		return Score{Category: ThreeOfAKind, Tiebreak: flatten(groups)}, nil
	case groups[0].count == 2 && groups[1].count == 2:
		return Score{Category: TwoPair, Tiebreak: flatten(groups)}, nil
	case groups[0].count == 2:
		return Score{Category: OnePair, Tiebreak: flatten(groups)}, nil
	}

	return Score{Category: HighCard, Tiebreak: ranks}, nil
}

// BestOfSeven ranks the strongest five-card subset of exactly seven cards
// (two hole cards plus the full board) by scoring all 21 combinations.
func BestOfSeven(cards []*deck.Card) (Score, error) {
	if len(cards) != 7 {
		return Score{}, ErrInvalidHandSize
	}

	var best Score
	found := false

	subset := make([]*deck.Card, 0, 5)
	for i := 0; i < 7; i++ {
		for j := i + 1; j < 7; j++ {
			subset = subset[:0]
			for k, card := range cards {
				if k != i && k != j {
					subset = append(subset, card)
				}
			}

			score, err := ScoreFive(subset)
			if err != nil {
				return Score{}, err
			}

			if !found || score.Beats(best) {
				best = score
				found = true
			}
		}
	}

	return best, nil
}

// straightHighCard returns the high card of a straight formed by the
// descending ranks, or 0 if there is no straight. The wheel (A,5,4,3,2)
// counts as a five-high straight.
func straightHighCard(ranks []int) int {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] == ranks[i-1] {
			return 0
		}
	}

	if ranks[0]-ranks[len(ranks)-1] == len(ranks)-1 {
		return ranks[0]
	}

	// wheel
	if ranks[0] == deck.Ace && ranks[1] == 5 && ranks[len(ranks)-1] == 2 {
		return 5
	}

	return 0
}

type rankGroup struct {
	rank  int
	count int
}

// groupByRank groups descending ranks by multiplicity, ordered by
// (count desc, rank desc)
func groupByRank(ranks []int) []rankGroup {
	groups := make([]rankGroup, 0, len(ranks))
	for _, rank := range ranks {
		if n := len(groups); n > 0 && groups[n-1].rank == rank {
			groups[n-1].count++
			continue
		}

		groups = append(groups, rankGroup{rank: rank, count: 1})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}

func flatten(groups []rankGroup) []int {
	ranks := make([]int, len(groups))
	for i, g := range groups {
		ranks[i] = g.rank
	}

	return ranks
}
