// Package config loads credentials from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// APIKeyEnv is the environment variable holding the LLM credential.
const APIKeyEnv = "GEMINI_API_KEY"

// LoadAPIKey returns the LLM API key from the environment. A .env file,
// if present, is loaded first; a missing .env is not an error.
func LoadAPIKey() (string, error) {
	_ = godotenv.Load()

	key := os.Getenv(APIKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%s not set; export it or add it to a .env file", APIKeyEnv)
	}
	return key, nil
}
