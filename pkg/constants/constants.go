// Package constants provides shared constants used throughout the setmap codebase.
// This includes timeouts, file permissions, game-era bounds, and other values that
// should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to data sources
	DefaultHTTPTimeout = 30 * time.Second

	// ImportTimeout is the timeout for importing a single generation end to end
	ImportTimeout = 5 * time.Minute

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 30 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Game-era bounds shared by the importer and the legality engine
const (
	// FirstGeneration is the earliest generation with published set data
	FirstGeneration = 1

	// LastGeneration is the most recent generation the importer targets
	LastGeneration = 9

	// MaxLevel is the format-maximum level for standard play
	MaxLevel = 100

	// MaxMoves is the number of move slots on a set
	MaxMoves = 4

	// MaxEVs is the total effort-value budget in generation 3 and later
	MaxEVs = 510

	// MaxEV is the per-stat effort-value cap in generation 3 and later
	MaxEV = 252

	// MaxIV is the per-stat individual-value cap from generation 3 on
	MaxIV = 31

	// MaxDV is the per-stat determinant-value cap in generations 1 and 2
	MaxDV = 15
)

// HTTP constants
const (
	// UserAgent identifies setmap to the data hosts
	UserAgent = "setmap/1.0 (+https://github.com/agentstation/setmap)"
)
