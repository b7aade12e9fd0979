// Package apperr defines the sentinel errors shared across daylog.
package apperr

import "errors"

var (
	// ErrNotFound is returned when a referenced entry or file is missing.
	ErrNotFound = errors.New("not found")

	// ErrStaleLocator is returned when a todo marker no longer matches the
	// on-disk content it was indexed from. The caller should re-scan.
	ErrStaleLocator = errors.New("entry changed on disk, re-scan")

	// ErrAlreadyExists is returned on an entry timestamp collision.
	ErrAlreadyExists = errors.New("already exists")

	// ErrAttachmentConflict is returned when two attachments would share
	// a file name within one entry.
	ErrAttachmentConflict = errors.New("attachment name conflict")
)
