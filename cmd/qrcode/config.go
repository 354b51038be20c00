// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// config holds defaults for command line flags, taken from the
// environment and an optional .env file.
type config struct {
	Level  string `env:"QRCODE_LEVEL" envDefault:"m"`
	Margin int    `env:"QRCODE_MARGIN" envDefault:"4"`
	Scale  int    `env:"QRCODE_SCALE" envDefault:"8"`
	Format string `env:"QRCODE_FORMAT"`
	Kanji  bool   `env:"QRCODE_KANJI" envDefault:"true"`
	Debug  bool   `env:"QRCODE_DEBUG"`
}

// loadConfig loads files (.env if none given) into the environment,
// without overriding variables already set, and parses the config.
// Missing files are ignored.
func loadConfig(files ...string) (config, error) {
	var cfg config
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, fn := range files {
		if err := godotenv.Load(fn); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	err := env.Parse(&cfg)
	return cfg, err
}
