// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvPathVar names the variable that points to a non-default .env file.
const dotenvPathVar = "DOTENV"

func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotenv fills missing environment variables from a .env file. A missing
// default file is not an error; a missing file named explicitly via DOTENV is.
func loadDotenv() error {
	path, explicit := os.LookupEnv(dotenvPathVar)
	if !explicit || path == "" {
		path = ".env"
	}

	err := godotenv.Load(path)
	switch {
	case err == nil:
		return nil
	case !explicit && errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("error loading dotenv file %q: %w", path, err)
	}
}
