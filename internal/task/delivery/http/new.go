package http

import (
	"github.com/gin-gonic/gin"

	"task-nlp/internal/task"
	"task-nlp/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	ExtractBulk(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
