package services

import "math/rand"

// Palette is the set of card colours a new wish can get.
var Palette = []string{
	"bg-primary/20",
	"bg-secondary/20",
	"bg-accent/20",
	"bg-pink-200/50",
	"bg-purple-200/50",
}

// PickColor chooses a palette entry uniformly at random.
func PickColor(r *rand.Rand) string {
	return Palette[r.Intn(len(Palette))]
}
