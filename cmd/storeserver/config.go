package main

import "time"

type Config struct {
	BadgerFilepath string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string        `env:"LOG_LEVEL,required=true"`
	Host           string        `env:"HOST,default=localhost"`
	Port           int           `env:"PORT,default=50061"`
	MetricsPort    int           `env:"METRICS_PORT,default=9090"`
	InspectPort    int           `env:"INSPECT_PORT,default=8081"`
	ReadDeadline   time.Duration `env:"READ_DEADLINE,default=5s"`
}
