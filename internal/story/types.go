package story

import "github.com/abhisek/lectio/internal/curriculum"

// Input describes a story request.
type Input struct {
	Topic     string
	Nivel     curriculum.Nivel
	Age       int
	Interests []string
}

// Page is one screen of story text.
type Page struct {
	Text      string `json:"text"`
	WordCount int    `json:"word_count"`
}

// Story is a generated leveled reader.
type Story struct {
	Title string           `json:"title"`
	Topic string           `json:"topic"`
	Nivel curriculum.Nivel `json:"nivel"`
	Pages []Page           `json:"pages"`
}

// TotalWords returns the word count across all pages.
func (s *Story) TotalWords() int {
	total := 0
	for _, p := range s.Pages {
		total += p.WordCount
	}
	return total
}
