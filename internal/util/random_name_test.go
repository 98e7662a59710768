package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"holdem-server/internal/rng"
)

func TestGetRandomName(t *testing.T) {
	a := assert.New(t)

	gen := rng.NewSeeded(1)
	for i := 0; i < 10; i++ {
		name := GetRandomName(gen)
		parts := strings.Split(name, " ")
		a.Len(parts, 2)
		a.Contains(adjectives, parts[0])
		a.Contains(animals, parts[1])
	}

	// same seed, same names
	a.Equal(GetRandomName(rng.NewSeeded(5)), GetRandomName(rng.NewSeeded(5)))
}
