package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the navigation core
var (
	ErrIOFailure          = errors.New("io failure")
	ErrIndexUninitialized = errors.New("index not initialized")
	ErrIndexQuery         = errors.New("index query failed")
	ErrAccessOutOfRange   = errors.New("cursor out of range")
	ErrParentLinkAtRoot   = errors.New("cannot walk back any more")
	ErrSyncUnavailable    = errors.New("no sync command configured")
)

// AccessError reports a cursor operation against an empty or stale listing
type AccessError struct {
	Index int
	Len   int
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to retrieve entry %d of %d", e.Index, e.Len)
}

func (e *AccessError) Is(target error) bool {
	return target == ErrAccessOutOfRange
}

// ResolveError wraps a failure to list the children of Ref
type ResolveError struct {
	Ref string
	Err error
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("cannot list %s: %v", e.Ref, e.Err)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// IOError marks err as an IO-class failure while keeping it inspectable
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIOFailure
}
