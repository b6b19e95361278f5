package config

import (
	"encoding/json"
	"os"
	"time"

	"pos-admin/internal/flagx"
	"pos-admin/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing both
// string values such as "720h" and integer nanoseconds. Every field is a
// pointer so a partial file overrides only the keys it actually contains;
// absent keys keep the defaults.
type JsonConfig struct {
	EndpointAddr            *string         `json:"endpoint_addr"`
	DatabaseDSN             *string         `json:"database_dsn"`
	SessionValidityDuration *timex.Duration `json:"session_validity_duration"`
	SecureCookies           *bool           `json:"secure_cookies"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; when neither is set, no JSON file is loaded. An unreadable or
// malformed file panics, as a broken explicit config should never be
// silently ignored.
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

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = time.Duration(c.SessionValidityDuration.Duration)
	}
	if c.SecureCookies != nil {
		config.SecureCookies = *c.SecureCookies
	}
}
