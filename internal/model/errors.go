package model

import "errors"

// ErrEmptyPriorities is returned when a run is configured with an empty
// locator-strategy priority list. Resolution fails fast rather than
// degrade silently.
var ErrEmptyPriorities = errors.New("configuration error: empty locator priority list")

// ErrDrift is returned when snapshot comparison finds added, removed or
// modified elements. The CLI maps it to a dedicated exit code so CI
// scripts can tell drift apart from operational failures.
var ErrDrift = errors.New("drift detected between snapshots")
