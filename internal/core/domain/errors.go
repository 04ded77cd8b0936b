package domain

import "errors"

// ErrPathUnsafe is an error thrown when a requested path resolves outside the media root
var ErrPathUnsafe = errors.New("path escapes media root")

// ErrNotFound is an error thrown when a file or folder does not exist
var ErrNotFound = errors.New("not found")

// ErrNotADirectory is an error thrown when a folder was expected
var ErrNotADirectory = errors.New("not a directory")

// ErrRangeUnsatisfiable is an error thrown when a Range header cannot be served
var ErrRangeUnsatisfiable = errors.New("range not satisfiable")

// ErrNoMedia is an error thrown when a viewer has nothing to show
var ErrNoMedia = errors.New("no media found")
