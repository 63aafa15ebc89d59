package http

import (
	"github.com/gin-gonic/gin"

	"task-nlp/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Extraction routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/extract", mw.RateLimit(), h.Extract)
		tasks.POST("/extract/bulk", mw.RateLimit(), h.ExtractBulk)
	}
}
