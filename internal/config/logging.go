package config

import (
	"log/slog"

	"git.home.luguber.info/inful/giza/internal/foundation/normalization"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer("log level", map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}, LogLevelInfo)

// SlogLevel maps the level onto log/slog.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer("log format", map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}, LogFormatText)

// RelevanceMode selects the predicate deciding whether a module is documented.
type RelevanceMode string

const (
	// RelevanceSubstring keeps modules whose text contains "def" or "class" anywhere.
	RelevanceSubstring RelevanceMode = "substring"
	// RelevanceDeclaration keeps modules with at least one def or class statement.
	RelevanceDeclaration RelevanceMode = "declaration"
)

var relevanceNormalizer = normalization.NewNormalizer("relevance mode", map[string]RelevanceMode{
	"substring":   RelevanceSubstring,
	"declaration": RelevanceDeclaration,
}, RelevanceSubstring)
