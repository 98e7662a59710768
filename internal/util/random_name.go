package util

import (
	"fmt"

	"holdem-server/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall",
	"Grand", "Ultimate", "Prime", "Alpha", "Lucky", "Bluffing", "Stoic",
	"Patient", "Loose", "Tight",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Crocodile", "Shark", "Hippo",
	"Giraffe", "Antelope", "Lion", "Tiger", "Bear", "Otter", "Dolphin",
	"Porcupine", "Hedgehog", "Snake", "Lizard", "Chipmunk", "Eagle", "Wolf",
	"Fox", "Armadillo", "Rhino", "Reindeer", "Panda",
}

// GetRandomName returns a random player name by combining an adjective with
// an animal
func GetRandomName(gen rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[gen.Intn(len(adjectives))], animals[gen.Intn(len(animals))])
}
