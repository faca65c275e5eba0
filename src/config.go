package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/ryansname/battcheck/src/locale"
)

const defaultPrompt = "> "

// Config holds runtime settings read from the environment
type Config struct {
	Language locale.Language
	Prompt   string
}

// loadConfig reads an optional .env file and then the process environment
func loadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v\n", err)
	}
	return configFromEnv(os.Getenv)
}

// configFromEnv builds a Config from the lookup function, applying defaults for unset values
func configFromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Language: locale.English,
		Prompt:   defaultPrompt,
	}

	if v := getenv("BATTCHECK_LANGUAGE"); v != "" {
		lang, err := locale.ParseLanguage(v)
		if err != nil {
			return Config{}, fmt.Errorf("BATTCHECK_LANGUAGE: %w", err)
		}
		cfg.Language = lang
	}

	if v := getenv("BATTCHECK_PROMPT"); v != "" {
		cfg.Prompt = v
	}

	return cfg, nil
}
