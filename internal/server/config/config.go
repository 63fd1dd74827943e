// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the Snippr server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - EncryptionKey: hex-encoded AES-256 key for snippet ciphertext. When
//     empty, a fresh key is generated at startup and ciphertext from
//     previous runs becomes unrecoverable.
//   - SecretKey: HMAC secret for signing JWTs (HS256). When empty, an
//     insecure fixed default is used; the server warns about it.
//   - TokenValidityDuration: token lifetime.
//   - SeedFile: path of the optional seed data file.
type Config struct {
	EndpointAddr          string
	EncryptionKey         string
	SecretKey             string
	TokenValidityDuration time.Duration
	SeedFile              string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.EncryptionKey = ""
	c.SecretKey = ""
	c.TokenValidityDuration = 24 * time.Hour
	c.SeedFile = "seedData.json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
