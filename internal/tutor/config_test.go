package tutor

import "testing"

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "k"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"none needs no key", Config{Provider: "none"}, false},
		{"unknown provider", Config{Provider: "llama"}, true},
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

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g")
	t.Setenv("OPENAI_API_KEY", "o")
	t.Setenv("ANTHROPIC_API_KEY", "")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("no provider discovered")
	}
	if cfg.Provider != "gemini" || cfg.Gemini.APIKey != "g" {
		t.Errorf("discovered %q", cfg.Provider)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash-preview-04-17" {
		t.Errorf("default gemini model = %q", cfg.Gemini.Model)
	}
}

func TestDiscoverConfig_NoneSet(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	if _, ok := DiscoverConfig(); ok {
		t.Error("discovered a provider with no keys set")
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("ANGLOLINGUA_TUTOR_PROVIDER", "openai")
	t.Setenv("ANGLOLINGUA_OPENAI_API_KEY", "key")
	t.Setenv("ANGLOLINGUA_OPENAI_MODEL", "gpt-4o")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "key" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("openai config = %+v", cfg.OpenAI)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
}
