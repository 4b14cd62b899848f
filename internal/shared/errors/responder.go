package errors

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// Responder renders pipeline failures as `{"error": message}` bodies.
type Responder struct {
	logger *slog.Logger
}

// NewResponder creates a responder that logs unexpected failures to logger.
func NewResponder(logger *slog.Logger) *Responder {
	return &Responder{logger: logger}
}

// DefaultResponder writes responses without logging.
var DefaultResponder = NewResponder(nil)

// Respond writes the problem and aborts the gin chain.
func (r *Responder) Respond(c *gin.Context, problem *Problem) {
	if problem.Status >= 500 && r.logger != nil {
		attrs := []slog.Attr{
			slog.String("http.method", c.Request.Method),
			slog.String("http.path", c.Request.URL.Path),
		}
		if problem.Cause != nil {
			attrs = append(attrs, slog.String("error", problem.Cause.Error()))
		}
		r.logger.LogAttrs(c.Request.Context(), slog.LevelError, "request failed", attrs...)
	}
	c.AbortWithStatusJSON(problem.Status, gin.H{"error": problem.Message})
}

// RespondError converts err to a Problem and responds.
func (r *Responder) RespondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	r.Respond(c, AsProblem(err))
}

// Recovery turns panics into 500 responses.
func (r *Responder) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		cause, ok := recovered.(error)
		if !ok {
			cause = fmt.Errorf("panic: %v", recovered)
		}
		r.Respond(c, Internal(cause))
	})
}

// NoRoute answers requests for unregistered paths.
func (r *Responder) NoRoute(c *gin.Context) {
	r.Respond(c, NotFound("Path not found: %s", c.Request.URL.Path))
}

// NoMethod answers registered paths requested with an unsupported method.
func (r *Responder) NoMethod(c *gin.Context) {
	r.Respond(c, MethodNotAllowed(c.Request.Method, c.Request.URL.Path))
}
