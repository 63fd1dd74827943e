package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/snippr/internal/flagx"
)

// JsonConfig is the file-level shape of the configuration. Durations are
// taken as integer minutes so the file stays hand-editable.
type JsonConfig struct {
	EndpointAddr         string `json:"endpoint_addr"`
	EncryptionKey        string `json:"encryption_key"`
	SecretKey            string `json:"secret_key"`
	TokenValidityMinutes int    `json:"token_validity_minutes"`
	SeedFile             string `json:"seed_file"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set, no file is loaded. Unset fields keep their current
// values. A file that cannot be read or parsed panics, matching the
// fail-fast behavior of flag parsing.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.EncryptionKey != "" {
		config.EncryptionKey = c.EncryptionKey
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityMinutes != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityMinutes) * time.Minute
	}
	if c.SeedFile != "" {
		config.SeedFile = c.SeedFile
	}
}
