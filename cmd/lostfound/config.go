package main

import (
	"fmt"
	"time"
)

type Config struct {
	LogLevel          string        `env:"LOG_LEVEL,default=WARN"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,default=./data/lostfound"`
	StoreAddr         string        `env:"STORE_ADDR"`
	ReadDeadline      time.Duration `env:"READ_DEADLINE,default=5s"`
	MultiStepDeadline time.Duration `env:"MULTI_STEP_DEADLINE,default=10s"`
	CharReplacement   string        `env:"CHARACTER_REPLACEMENT,default=*"`
	EnableModeration  bool          `env:"ENABLE_MODERATION,default=true"`
	Colours           bool          `env:"COLOURS,default=true"`
	SearchLimit       int           `env:"SEARCH_LIMIT,default=20"`
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}
