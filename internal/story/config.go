package story

import "github.com/abhisek/lectio/internal/curriculum"

// Config holds story generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for story generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.8,
	}
}

// PageBounds is the allowed page count range for a nivel. Shorter levels
// get fewer, shorter pages so a session stays inside a young child's
// attention span.
type PageBounds struct {
	Min int
	Max int
}

var pageBounds = map[curriculum.Nivel]PageBounds{
	curriculum.Nivel1: {Min: 3, Max: 5},
	curriculum.Nivel2: {Min: 4, Max: 6},
	curriculum.Nivel3: {Min: 5, Max: 8},
	curriculum.Nivel4: {Min: 6, Max: 10},
}

// PageBoundsFor returns the page count range for the nivel.
// Out-of-range values clamp like curriculum.Nivel.Config.
func PageBoundsFor(n curriculum.Nivel) PageBounds {
	if n < curriculum.Nivel1 {
		n = curriculum.Nivel1
	}
	if n > curriculum.Nivel4 {
		n = curriculum.Nivel4
	}
	return pageBounds[n]
}
