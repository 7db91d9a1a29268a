package config

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for configuration validation
var (
	ErrConfigNotFound     = goerr.New("configuration file not found")
	ErrInvalidConfig      = goerr.New("invalid configuration")
	ErrDuplicateEntryID   = goerr.New("duplicate entry ID")
	ErrDuplicateCountry   = goerr.New("duplicate country code")
	ErrDuplicateLevel     = goerr.New("duplicate level descriptor")
	ErrInvalidLevel       = goerr.New("level descriptor must be between 1 and 5")
	ErrUnsupportedFormat  = goerr.New("unsupported file format")
	ErrInvalidLogLevel    = goerr.New("invalid log level")
	ErrInvalidLogFormat   = goerr.New("invalid log format")
	ErrUnknownAnswerEntry = goerr.New("answer refers to an unknown practice")
)

// Context keys for error values
const (
	ConfigPathKey = "config_path"
	EntryIDKey    = "entry_id"
	CountryKey    = "country"
	LevelKey      = "level"
	FormatKey     = "format"
)
