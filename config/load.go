package config

import (
	"time"

	"github.com/fox-one/pkg/config"
)

// Load load config file
func Load(cfgFile string, cfg *Config) error {
	config.AutomaticLoadEnv("CREDIT")
	if err := config.LoadYaml(cfgFile, cfg); err != nil {
		return err
	}

	defaults(cfg)
	return nil
}

func defaults(cfg *Config) {
	if cfg.Ledger.AccountID == "" {
		cfg.Ledger.AccountID = "ledger"
	}

	if cfg.Oracle.StalenessWindow <= 0 {
		cfg.Oracle.StalenessWindow = 5 * time.Minute
	}
}
