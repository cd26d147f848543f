// Copyright 2025 The VITA Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var envVarPatterns = struct {
	withDashDefault  *regexp.Regexp
	withColonDefault *regexp.Regexp
	braced           *regexp.Regexp
	simple           *regexp.Regexp
}{
	withDashDefault:  regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*):-(.*?)\}`),
	withColonDefault: regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*):([^}]*)\}`),
	braced:           regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`),
	simple:           regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`),
}

// expandEnvVars substitutes ${VAR:-default}, ${VAR:default}, ${VAR} and $VAR
// references with environment values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}

	replace := func(pattern *regexp.Regexp, withDefault bool) {
		s = pattern.ReplaceAllStringFunc(s, func(match string) string {
			parts := pattern.FindStringSubmatch(match)
			if val := os.Getenv(parts[1]); val != "" {
				return val
			}
			if withDefault {
				return parts[2]
			}
			return ""
		})
	}

	replace(envVarPatterns.withDashDefault, true)
	replace(envVarPatterns.withColonDefault, true)
	replace(envVarPatterns.braced, false)
	replace(envVarPatterns.simple, false)

	return s
}

// parseValue coerces expanded strings to bool/int/float when they parse
// cleanly.
func parseValue(value string) any {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	if intVal, err := strconv.Atoi(value); err == nil {
		return intVal
	}
	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return floatVal
	}
	return value
}

// ExpandEnvVarsInData walks decoded YAML/JSON data and expands env references
// in every string, coercing substituted scalars to their natural type.
func ExpandEnvVarsInData(data any) any {
	switch v := data.(type) {
	case string:
		expanded := expandEnvVars(v)
		if expanded != v {
			return parseValue(expanded)
		}
		return expanded
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, value := range v {
			result[key] = ExpandEnvVarsInData(value)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = ExpandEnvVarsInData(item)
		}
		return result
	default:
		return v
	}
}

// LoadEnvFiles loads .env.local and .env when present.
func LoadEnvFiles(files ...string) error {
	if len(files) == 0 {
		files = []string{".env.local", ".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}
