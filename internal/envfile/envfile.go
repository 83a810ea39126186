// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package envfile loads KEY=value settings from a dotenv file into the
// process environment, where viper picks them up through its TEXT2XLSX_
// prefix. Variables already set in the environment win over the file.
package envfile

import (
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
)

// Load reads the dotenv file at path and sets every variable that is not
// already present in the environment. It returns the sorted names it applied. A
// missing file is not an error.
func Load(path string) ([]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}

	var applied []string
	for key, value := range values {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return applied, fmt.Errorf("setting %s: %w", key, err)
		}
		applied = append(applied, key)
	}
	slices.Sort(applied)
	return applied, nil
}
