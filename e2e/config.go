package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// STORE_ADDR targets a running store server; empty starts one in process
	StoreAddr string `envconfig:"STORE_ADDR"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
