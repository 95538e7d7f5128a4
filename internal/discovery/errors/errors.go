package errors

// Package errors provides sentinel errors for application discovery.
// Callers wrap them with %w so errors.Is keeps working through the classified layer.

import "errors"

var (
	// ErrAppNotFound indicates an installed application could not be resolved to a directory.
	ErrAppNotFound = errors.New("application not found")

	// ErrInvalidAppName indicates an application name is empty or has empty dotted segments.
	ErrInvalidAppName = errors.New("invalid application name")

	// ErrAppDirListFailed indicates listing an application directory failed.
	ErrAppDirListFailed = errors.New("application directory listing failed")

	// ErrModuleReadFailed indicates reading a candidate module file failed.
	ErrModuleReadFailed = errors.New("module file read failed")
)
