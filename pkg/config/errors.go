package config

import "errors"

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrLoadingEnv is returned when an explicitly named .env file cannot be read
	ErrLoadingEnv = errors.New("config: failed to load env file")
)
