package session

import (
	"fmt"

	"github.com/lox/pokerodds/internal/config"
)

// Street is a stage of a hand.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

// String returns the lower-case street name.
func (s Street) String() string {
	switch s {
	case Preflop:
		return config.StreetPreflop
	case Flop:
		return config.StreetFlop
	case Turn:
		return config.StreetTurn
	case River:
		return config.StreetRiver
	default:
		return "unknown"
	}
}

// BoardCards returns how many community cards are showing on the street.
func (s Street) BoardCards() int {
	switch s {
	case Flop:
		return 3
	case Turn:
		return 4
	case River:
		return 5
	default:
		return 0
	}
}

// ParseStreet converts a street name to a Street.
func ParseStreet(name string) (Street, error) {
	for s := Preflop; s <= River; s++ {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown street %q", name)
}

// ParseStreets converts a list of street names.
func ParseStreets(names []string) ([]Street, error) {
	streets := make([]Street, 0, len(names))
	for _, name := range names {
		s, err := ParseStreet(name)
		if err != nil {
			return nil, err
		}
		streets = append(streets, s)
	}
	return streets, nil
}
