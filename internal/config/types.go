package config

// Config holds all configuration for the application.
type Config struct {
	DBName            string
	Port              string
	ProjectID         string
	MatchesAPIURL     string
	MatchCreatedTopic string
	Turso             TursoConfig
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
