package domain

import "errors"

// Sentinel errors shared by repositories and services. Callers match them with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateIDNumber  = errors.New("id number already exists")
	ErrProfileInUse       = errors.New("profile is referenced by participants")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrConcurrentUpdate   = errors.New("record changed concurrently")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrDuplicateSlug      = errors.New("workspace slug already in use")
	ErrAlreadyMember      = errors.New("already a workspace member")
	ErrOffline            = errors.New("station is offline")
)
