package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.SecretKey) == "" {
		return ErrNoSecretKey
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.SQLitePath == "" {
		return ErrNoStorageConfigured
	}

	return nil
}
