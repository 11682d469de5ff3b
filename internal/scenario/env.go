package scenario

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/gridstar/heuristic"
)

// Environment variables read by ApplyEnv.
const (
	EnvHeuristic = "GRIDSTAR_HEURISTIC"
	EnvWeight    = "GRIDSTAR_WEIGHT"
	EnvDiagonal  = "GRIDSTAR_DIAGONAL"
	EnvNearest   = "GRIDSTAR_NEAREST"
	EnvDijkstra  = "GRIDSTAR_DIJKSTRA"
	EnvLogLevel  = "GRIDSTAR_LOG_LEVEL"
)

// LoadEnv loads variables from the given .env files without overriding ones
// already set. A missing file is not an error.
func LoadEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("scenario: env file %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides search settings from GRIDSTAR_* variables. Unset or
// empty variables leave the current value.
func (s *Scenario) ApplyEnv() error {
	var err error
	if v := getEnv(EnvHeuristic, ""); v != "" {
		if s.Search.Heuristic, err = heuristic.Parse(v); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidScenario, EnvHeuristic, err)
		}
	}
	if v := getEnv(EnvWeight, ""); v != "" {
		if s.Search.Weight, err = strconv.ParseFloat(v, 64); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidScenario, EnvWeight, err)
		}
	}
	if err = parseBool(EnvDiagonal, &s.Search.Diagonal); err != nil {
		return err
	}
	if err = parseBool(EnvNearest, &s.Search.NearestOnFailure); err != nil {
		return err
	}
	if err = parseBool(EnvDijkstra, &s.Search.Dijkstra); err != nil {
		return err
	}
	s.LogLevel = getEnv(EnvLogLevel, s.LogLevel)

	return s.Validate()
}

func parseBool(key string, dst *bool) error {
	v := getEnv(key, "")
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidScenario, key, err)
	}
	*dst = b

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
