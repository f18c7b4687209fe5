package ports

import "github.com/bft-labs/framebooth/pkg/log"

// Logger is the structured logger every component receives.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors, re-exported so internal packages need a single import.
var (
	String   = log.String
	Strings  = log.Strings
	Int      = log.Int
	Float64  = log.Float64
	Bool     = log.Bool
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
