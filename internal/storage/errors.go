package storage

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrEmptyTitle   = errors.New("title is required")
	ErrAmbiguousRef = errors.New("task reference is ambiguous")
	ErrShortRef     = errors.New("task reference is too short")
)
