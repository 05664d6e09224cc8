package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoFiles      = errors.New("no scorecard files found")
)
