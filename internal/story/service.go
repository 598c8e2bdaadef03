package story

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lectio/internal/llm"
)

// Service generates leveled readers through an LLM provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a story generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type storyOutput struct {
	Title string       `json:"title"`
	Pages []pageOutput `json:"pages"`
}

type pageOutput struct {
	Text string `json:"text"`
}

// Generate produces a story for the request. The response is checked
// against the nivel's page and word bounds before it is returned, so a
// story that comes back is safe to hand to the pace engine.
func (s *Service) Generate(ctx context.Context, input Input) (*Story, error) {
	ctx = llm.WithPurpose(ctx, "story")

	req := llm.Request{
		System: storySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStoryUserMessage(input)},
		},
		Schema:      StorySchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("story generation: %w", err)
	}

	var out storyOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse story response: %w", err)
	}

	story := &Story{
		Title: out.Title,
		Topic: input.Topic,
		Nivel: input.Nivel,
		Pages: make([]Page, len(out.Pages)),
	}
	for i, p := range out.Pages {
		story.Pages[i] = Page{
			Text:      p.Text,
			WordCount: countWords(p.Text),
		}
	}

	if err := validateStory(story); err != nil {
		return nil, fmt.Errorf("story validation: %w", err)
	}
	return story, nil
}

// countWords counts whitespace-separated words. Word counts from the
// model are not trusted; this is the count the pace engine will see.
func countWords(text string) int {
	return len(strings.Fields(text))
}

func validateStory(s *Story) error {
	if strings.TrimSpace(s.Title) == "" {
		return fmt.Errorf("title is empty")
	}

	bounds := PageBoundsFor(s.Nivel)
	if len(s.Pages) < bounds.Min || len(s.Pages) > bounds.Max {
		return fmt.Errorf("nivel %d requires %d-%d pages, got %d",
			int(s.Nivel), bounds.Min, bounds.Max, len(s.Pages))
	}

	cfg := s.Nivel.Config()
	for i, p := range s.Pages {
		if p.WordCount < cfg.MinPageWords || p.WordCount > cfg.MaxPageWords {
			return fmt.Errorf("page %d has %d words, nivel %d allows %d-%d",
				i+1, p.WordCount, int(s.Nivel), cfg.MinPageWords, cfg.MaxPageWords)
		}
	}
	return nil
}
