package usecase

import (
	"time"

	pkgLog "task-nlp/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	loc   *time.Location
	clock func() time.Time
}

// New creates a new task UseCase instance. loc is the wall-clock frame used
// when a caller does not supply a reference instant.
func New(l pkgLog.Logger, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:     l,
		loc:   loc,
		clock: time.Now,
	}
}
