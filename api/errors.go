package api

import (
	"errors"
	"net/http"

	"github.com/Ira5334/backend/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgInternal = "internal server error"

// respondError maps the domain error taxonomy onto HTTP statuses. Anything
// unrecognised is logged and answered with a generic 500 body so driver
// errors never reach the client.
func respondError(c *gin.Context, log *zap.Logger, err error, notFoundMsg string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Msg})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}

func badJSON(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
}
