package domain

import "errors"

// ErrNoDriver is returned when a graph is built without a driver source.
var ErrNoDriver = errors.New("driver branch is required")

// ErrInvalidBranch is returned when an assist branch is missing a name or source.
var ErrInvalidBranch = errors.New("invalid branch")

// ErrDuplicateBranch is returned when two branches share a name.
var ErrDuplicateBranch = errors.New("duplicate branch name")

// ErrInvalidTuning is returned when shaping or mixing parameters are out of range.
var ErrInvalidTuning = errors.New("invalid tuning")

// ErrUnknownStrategy is returned when a mix strategy name cannot be parsed.
var ErrUnknownStrategy = errors.New("unknown mix strategy")

// ErrUnknownPolicy is returned when an output limit policy name cannot be parsed.
var ErrUnknownPolicy = errors.New("unknown output limit policy")

// ErrUnknownRole is returned when an axis role name cannot be parsed.
var ErrUnknownRole = errors.New("unknown axis role")

// ErrNoCommand is returned by readers when no command has been published yet.
var ErrNoCommand = errors.New("no command published")
