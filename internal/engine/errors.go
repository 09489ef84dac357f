package engine

import "errors"

var ErrInvalidDifficulty = errors.New("invalid difficulty")

// ConfigError reports a leveling curve that cannot be built from the given settings.
type ConfigError struct {
	Field  string
	Reason string
}

func (e ConfigError) Error() string {
	return "leveling." + e.Field + ": " + e.Reason
}
