package domain

// AppConfig holds the optional workflow overrides loaded from the app
// config file. Every field may be empty; the compiled-in phase
// descriptors apply where no override is present.
type AppConfig struct {
	DefaultProduct string                 `json:"default_product,omitempty"`
	PhasePrompts   map[string]string      `json:"phase_prompts,omitempty"`
	PhaseParams    map[string]ModelParams `json:"phase_params,omitempty"`
}

// ModelParams defines the parameters for the AI model. Zero values
// leave the phase's built-in parameter untouched.
type ModelParams struct {
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}
