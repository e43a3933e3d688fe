package model

import "strings"

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Mode selects how the application runs.
//   - TEST: no database connection is made.
//   - DEV:  everything enabled.
//   - LIVE: API docs are disabled.
type Mode string

const (
	ModeTest Mode = "TEST"
	ModeDev  Mode = "DEV"
	ModeLive Mode = "LIVE"
)

// ParseMode accepts any casing and reports whether the mode is known.
func ParseMode(s string) (Mode, bool) {
	m := Mode(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case ModeTest, ModeDev, ModeLive:
		return m, true
	default:
		return "", false
	}
}
