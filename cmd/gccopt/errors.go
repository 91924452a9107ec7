package main

import "errors"

// Sentinel errors for command operations
var (
	ErrNoInputFiles          = errors.New("no option files given: use --file or inputs in the config file")
	ErrQueriesFailed         = errors.New("some queries failed")
	ErrEnvironmentNotFound   = errors.New("environment not found")
	ErrOutputAndEnvExclusive = errors.New("--output and --env are mutually exclusive")
)
