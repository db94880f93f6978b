package groupname

import "errors"

var (
	// ErrEmptyGroup is returned when an encode operation receives an empty group.
	ErrEmptyGroup = errors.New("groupname: empty group")
	// ErrInvalidGroup is returned when a group contains characters outside the
	// permitted set (ASCII letters, digits, hyphen).
	ErrInvalidGroup = errors.New("groupname: group contains characters outside the permitted set")
	// ErrInvalidPrefix is returned when a configured prefix contains characters
	// outside the permitted set.
	ErrInvalidPrefix = errors.New("groupname: prefix contains characters outside the permitted set")
	// ErrInvalidDelimiter is returned when the delimiter is not a single
	// non-alphanumeric ASCII character.
	ErrInvalidDelimiter = errors.New("groupname: delimiter must be a single non-alphanumeric ASCII character")
	// ErrInvalidSuffixLength is returned when the suffix length is not positive.
	ErrInvalidSuffixLength = errors.New("groupname: suffix length must be at least 1")
	// ErrInvalidSuffixAlphabet is returned when the suffix alphabet is empty,
	// contains duplicates, contains the delimiter, or contains characters
	// outside the permitted set.
	ErrInvalidSuffixAlphabet = errors.New("groupname: invalid suffix alphabet")
)
