package convert

import "errors"

var (
	// ErrJobNotFound is returned when a job id is not in the registry
	ErrJobNotFound = errors.New("conversion job not found")

	// ErrUnknownImage is returned when submitting against an image id that was never uploaded
	ErrUnknownImage = errors.New("uploaded image not found")

	// ErrUnsupportedCategory is returned when the diagram category is not in the supported set
	ErrUnsupportedCategory = errors.New("unsupported diagram category")

	// ErrJobTerminal is returned when attempting to transition a job that already finished
	ErrJobTerminal = errors.New("conversion job already in a terminal status")

	// ErrQueueFull is returned when the conversion queue cannot accept more jobs
	ErrQueueFull = errors.New("conversion queue is full")
)
