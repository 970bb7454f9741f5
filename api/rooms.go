package api

import (
	"net/http"

	"github.com/Ira5334/backend/internal/service/rooms"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service rooms.RoomUseCase
	log     *zap.Logger
}

func NewRoomHandler(service rooms.RoomUseCase, log *zap.Logger) *RoomHandler {
	return &RoomHandler{service: service, log: log}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.GET("/rooms", h.list)
}

func (h *RoomHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "rooms not found")
		return
	}
	c.JSON(http.StatusOK, list)
}
