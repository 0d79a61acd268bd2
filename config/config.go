package config

import "time"

// AppConfig holds the application configuration.
type AppConfig struct {
	DBURL           string
	RedisAddress    string
	BearerToken     string
	AllowedOrigins  []string
	RefreshInterval time.Duration
	FetchLimit      int
}

// GetBearerToken returns the BearerToken from the config.
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}
