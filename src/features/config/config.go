package config

// Config holds the application configuration.
type Config struct {
	Demo    bool    `yaml:"demo"`
	Logger  Logger  `yaml:"logger"`
	Sources Sources `yaml:"sources"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
}

// Sources holds the configuration for the source engine: how aggressively
// releases from different providers are considered the same album, and
// which providers win artwork conflicts.
type Sources struct {
	SimilarityThreshold float64  `yaml:"similarity_threshold" validate:"gte=0,lte=1"`
	ReleaseSearchLimit  int      `yaml:"release_search_limit" validate:"gte=0,lte=100"`
	ArtworkPriority     []string `yaml:"artwork_priority"`
}
