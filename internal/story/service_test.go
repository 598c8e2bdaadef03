package story

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/lectio/internal/curriculum"
	"github.com/abhisek/lectio/internal/llm"
)

func validNivel1JSON() json.RawMessage {
	out := storyOutput{
		Title: "El gato y la luna",
		Pages: []pageOutput{
			{Text: "El gato mira la luna blanca."},
			{Text: "La luna brilla sobre el tejado."},
			{Text: "El gato salta y dice miau."},
		},
	}
	data, _ := json.Marshal(out)
	return data
}

func TestGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNivel1JSON()})
	svc := NewService(mock, DefaultConfig())

	input := Input{
		Topic:     "un gato curioso",
		Nivel:     curriculum.Nivel1,
		Age:       5,
		Interests: []string{"animales", "magia"},
	}
	story, err := svc.Generate(context.Background(), input)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if story.Title != "El gato y la luna" {
		t.Errorf("title = %q", story.Title)
	}
	if story.Topic != "un gato curioso" {
		t.Errorf("topic = %q", story.Topic)
	}
	if story.Nivel != curriculum.Nivel1 {
		t.Errorf("nivel = %d", story.Nivel)
	}
	if len(story.Pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(story.Pages))
	}
	for i, p := range story.Pages {
		if p.WordCount != 6 {
			t.Errorf("page %d word count = %d, want 6", i, p.WordCount)
		}
	}
	if story.TotalWords() != 18 {
		t.Errorf("total words = %d, want 18", story.TotalWords())
	}
}

func TestGenerate_PromptCarriesRequest(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNivel1JSON()})
	svc := NewService(mock, DefaultConfig())

	input := Input{
		Topic:     "dinosaurios",
		Nivel:     curriculum.Nivel1,
		Age:       6,
		Interests: []string{"aventuras"},
	}
	if _, err := svc.Generate(context.Background(), input); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != StorySchema {
		t.Error("request did not carry StorySchema")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"dinosaurios", "6 años", "aventuras", "entre 5 y 25 palabras"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerate_TooFewPages(t *testing.T) {
	out := storyOutput{
		Title: "Corto",
		Pages: []pageOutput{{Text: "El sol sale por la mañana."}},
	}
	data, _ := json.Marshal(out)

	mock := llm.NewMockProvider(llm.MockResponse{Content: data})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), Input{Topic: "el sol", Nivel: curriculum.Nivel1})
	if err == nil {
		t.Fatal("expected page count error")
	}
	if !strings.Contains(err.Error(), "pages") {
		t.Errorf("error = %v, want page count complaint", err)
	}
}

func TestGenerate_PageTooLong(t *testing.T) {
	long := strings.Repeat("palabra ", 30)
	out := storyOutput{
		Title: "Largo",
		Pages: []pageOutput{
			{Text: "El gato mira la luna blanca."},
			{Text: long},
			{Text: "El gato salta y dice miau."},
		},
	}
	data, _ := json.Marshal(out)

	mock := llm.NewMockProvider(llm.MockResponse{Content: data})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(context.Background(), Input{Topic: "el gato", Nivel: curriculum.Nivel1})
	if err == nil {
		t.Fatal("expected word bound error")
	}
	if !strings.Contains(err.Error(), "words") {
		t.Errorf("error = %v, want word bound complaint", err)
	}
}

func TestGenerate_EmptyTitle(t *testing.T) {
	out := storyOutput{
		Title: "  ",
		Pages: []pageOutput{
			{Text: "El gato mira la luna blanca."},
			{Text: "La luna brilla sobre el tejado."},
			{Text: "El gato salta y dice miau."},
		},
	}
	data, _ := json.Marshal(out)

	mock := llm.NewMockProvider(llm.MockResponse{Content: data})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), Input{Topic: "el gato", Nivel: curriculum.Nivel1}); err == nil {
		t.Fatal("expected empty title error")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.Generate(context.Background(), Input{Topic: "el mar", Nivel: curriculum.Nivel2}); err == nil {
		t.Fatal("expected provider error")
	}
}

func TestCountWords_AccentsAndPunctuation(t *testing.T) {
	if got := countWords("¡El pingüino comió más rápido!"); got != 5 {
		t.Errorf("countWords = %d, want 5", got)
	}
	if got := countWords("   "); got != 0 {
		t.Errorf("countWords on blanks = %d, want 0", got)
	}
}

func TestPageBoundsFor_Clamps(t *testing.T) {
	if PageBoundsFor(0) != pageBounds[curriculum.Nivel1] {
		t.Error("nivel below range should clamp to Nivel1")
	}
	if PageBoundsFor(9) != pageBounds[curriculum.Nivel4] {
		t.Error("nivel above range should clamp to Nivel4")
	}
}
