//go:build !debug

package logger

import "github.com/rs/zerolog"

// BuildLevel reports the level compiled into this binary
func BuildLevel() zerolog.Level {
	return zerolog.InfoLevel
}
