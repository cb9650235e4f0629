package tally

import "errors"

var (
	ErrUnknownStat = errors.New("unknown stat name")
	ErrUnknownTeam = errors.New("unknown team")
	// ErrStatMissing marks a stored record that lacks a catalog key.
	ErrStatMissing = errors.New("stat missing from record")
)
