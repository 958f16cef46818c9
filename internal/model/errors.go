package model

import "errors"

var (
	// ErrInvalidArgument marks rejected input. No sampling work is done.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrWorkerFailure marks a failed sampling unit. The whole estimate is dropped.
	ErrWorkerFailure = errors.New("worker failure")

	// ErrCollaborator marks a failure of a report or plot writer.
	ErrCollaborator = errors.New("report collaborator failure")
)
