package curriculum

// Nivel is a reading-difficulty level. It drives story length and the
// expected words-per-minute used by the pace engine's sanity bounds.
type Nivel int

const (
	Nivel1 Nivel = 1 // pre-readers: syllables and very short words
	Nivel2 Nivel = 2 // early readers: short sentences
	Nivel3 Nivel = 3 // developing readers: short stories
	Nivel4 Nivel = 4 // fluent readers: chapter-length stories
)

// NivelConfig holds the per-level reading expectations.
type NivelConfig struct {
	ExpectedWPM  float64
	MinPageWords int
	MaxPageWords int
}

var nivelConfigs = map[Nivel]NivelConfig{
	Nivel1: {ExpectedWPM: 20, MinPageWords: 5, MaxPageWords: 25},
	Nivel2: {ExpectedWPM: 45, MinPageWords: 15, MaxPageWords: 45},
	Nivel3: {ExpectedWPM: 70, MinPageWords: 30, MaxPageWords: 80},
	Nivel4: {ExpectedWPM: 95, MinPageWords: 50, MaxPageWords: 120},
}

// Config returns the configuration for the nivel.
// Out-of-range values clamp to the nearest defined level, never error.
func (n Nivel) Config() NivelConfig {
	if n < Nivel1 {
		n = Nivel1
	}
	if n > Nivel4 {
		n = Nivel4
	}
	return nivelConfigs[n]
}

// ExpectedWPM returns the expected words-per-minute for the nivel.
func (n Nivel) ExpectedWPM() float64 {
	return n.Config().ExpectedWPM
}
