package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	vars := []string{
		"STUDIZ_LLM_PROVIDER",
		"STUDIZ_ANTHROPIC_API_KEY", "STUDIZ_ANTHROPIC_MODEL",
		"STUDIZ_OPENAI_API_KEY", "STUDIZ_OPENAI_MODEL", "STUDIZ_OPENAI_BASE_URL",
		"STUDIZ_GEMINI_API_KEY", "STUDIZ_GEMINI_MODEL",
		"STUDIZ_OPENROUTER_API_KEY", "STUDIZ_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	}
	for _, v := range vars {
		t.Setenv(v, "")
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, want anthropic", cfg.Provider)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("anthropic model = %q", cfg.Anthropic.Model)
	}
	if cfg.OpenRouter.Model != "google/gemini-2.0-flash-exp" {
		t.Errorf("openrouter model = %q", cfg.OpenRouter.Model)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("STUDIZ_LLM_PROVIDER", "openai")
	t.Setenv("STUDIZ_OPENAI_API_KEY", "sk-test")
	t.Setenv("STUDIZ_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestDiscoverConfigPriority(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "ak")
	t.Setenv("GEMINI_API_KEY", "gk")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	// Gemini wins when both keys are present.
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "gk" {
		t.Errorf("discovered = %+v", cfg)
	}
}

func TestDiscoverConfigNoKeys(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llama-at-home"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
