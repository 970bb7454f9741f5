package api

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/Ira5334/backend/internal/service/booking"
	"github.com/Ira5334/backend/internal/service/customers"
	"github.com/Ira5334/backend/internal/service/rooms"
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RouterDeps struct {
	Rooms     rooms.RoomUseCase
	Bookings  booking.BookingUseCase
	Customers customers.CustomerUseCase
	// Health reports store reachability; nil means always healthy.
	Health         func(ctx context.Context) error
	Log            *zap.Logger
	AllowedOrigins []string
	SwaggerDir     string
}

func NewRouter(deps RouterDeps) *gin.Engine {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(requestID(), requestLogger(log), gin.Recovery(), corsMiddleware(deps.AllowedOrigins))

	root := r.Group("")
	NewRoomHandler(deps.Rooms, log).Register(root)
	NewBookingHandler(deps.Bookings, log).Register(root)
	NewCustomerHandler(deps.Customers, log).Register(root)

	r.GET("/healthz", healthHandler(deps.Health, log))

	if deps.SwaggerDir != "" {
		r.StaticFile("/swagger/doc.json", filepath.Join(deps.SwaggerDir, "swagger.json"))
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))
	}

	return r
}

func healthHandler(check func(ctx context.Context) error, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := check(ctx); err != nil {
				log.Warn("health check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
