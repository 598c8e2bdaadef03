package story

import "github.com/abhisek/lectio/internal/llm"

// StorySchema defines the JSON schema for leveled-reader generation.
var StorySchema = &llm.Schema{
	Name:        "story",
	Description: "A short Spanish story for a child, split into pages",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short story title in Spanish (2-6 words)",
			},
			"pages": map[string]any{
				"type":        "array",
				"description": "Story pages in reading order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The full text of this page, in Spanish",
						},
					},
					"required":             []any{"text"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "pages"},
		"additionalProperties": false,
	},
}
