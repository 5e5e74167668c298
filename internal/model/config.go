package model

import "time"

// Config is the full engine configuration. Loaded once at startup and
// shared read-only across requests.
type Config struct {
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Session   SessionConfig   `yaml:"session"`
	Server    ServerConfig    `yaml:"server"`
	Inference InferenceConfig `yaml:"inference"`
	Cache     CacheConfig     `yaml:"cache"`
	Output    OutputConfig    `yaml:"output"`
}

// AnalyzerConfig tunes the modality analyzers.
type AnalyzerConfig struct {
	// TextConfidence is the fixed confidence attached to text
	// findings. The reference behavior pins this at 0.85.
	TextConfidence float64 `yaml:"text_confidence"`

	// ImageDelay simulates the latency of an external image model.
	// Zero disables the delay (tests run with zero).
	ImageDelay time.Duration `yaml:"image_delay"`
}

// SessionConfig tunes the quick-triage session store.
type SessionConfig struct {
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// ServerConfig tunes the HTTP surface.
type ServerConfig struct {
	Addr              string  `yaml:"addr"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// InferenceConfig selects and configures the modality inference
// provider. An empty provider selects the built-in static one.
type InferenceConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// CacheConfig controls assessment result caching. The pipeline is
// deterministic for identical input, so cached results are safe to
// replay until the lexicon or rules change.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Dir     string        `yaml:"dir"` // empty selects memory-only
	TTL     time.Duration `yaml:"ttl"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			TextConfidence: 0.85,
			ImageDelay:     1500 * time.Millisecond,
		},
		Session: SessionConfig{
			TTL:             30 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Server: ServerConfig{
			Addr:              ":8080",
			RequestsPerSecond: 10,
			Burst:             20,
		},
		Inference: InferenceConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Cache: CacheConfig{
			Enabled: false,
			TTL:     15 * time.Minute,
		},
		Output: OutputConfig{},
	}
}
