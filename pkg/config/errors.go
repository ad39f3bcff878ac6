package config

import "errors"

// Package-specific errors
var (
	// ErrInvalidConfig is returned when a required setting is missing or blank after configuration
	ErrInvalidConfig = errors.New("invalid goodmail configuration")

	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigFileNotFound is returned when a configuration file does not exist
	ErrConfigFileNotFound = errors.New("configuration file not found")

	// ErrNilConfigurator is returned when Configure is called without a function
	ErrNilConfigurator = errors.New("nil configuration function")
)
