package llm

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("LECTIO_LLM_PROVIDER", "openai")
	t.Setenv("LECTIO_OPENAI_API_KEY", "sk-test")
	t.Setenv("LECTIO_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q, want sk-test", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != "anthropic" {
		t.Errorf("default provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("retry attempts = %d, want 3", cfg.Retry.MaxAttempts)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"unknown provider", Config{Provider: "acme"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDiscoverConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "key-a")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}

	// Gemini takes priority when set.
	t.Setenv("GEMINI_API_KEY", "key-g")
	cfg, ok = DiscoverConfig()
	if !ok || cfg.Provider != "gemini" {
		t.Errorf("provider = %q, want gemini", cfg.Provider)
	}
}
