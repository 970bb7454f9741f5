package api

import (
	"net/http"

	"github.com/Ira5334/backend/internal/service/booking"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgNoAvailability = "No rooms available for the selected dates."

type BookingHandler struct {
	service booking.BookingUseCase
	log     *zap.Logger
}

type availabilityRequest struct {
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

type createReservationRequest struct {
	RoomType   string  `json:"room_type"`
	Price      float64 `json:"price"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	TotalPrice float64 `json:"total_price"`
}

func NewBookingHandler(service booking.BookingUseCase, log *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, log: log}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/check-availability", h.checkAvailability)
	router.POST("/api/book", h.create)
	router.GET("/api/reservations/email/:email", h.history)
}

func (h *BookingHandler) checkAvailability(c *gin.Context) {
	var req availabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if req.CheckInDate == "" || req.CheckOutDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "check_in_date and check_out_date are required"})
		return
	}

	available, err := h.service.CheckAvailability(c.Request.Context(), req.CheckInDate, req.CheckOutDate)
	if err != nil {
		respondError(c, h.log, err, "rooms not found")
		return
	}
	if len(available) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": msgNoAvailability})
		return
	}
	c.JSON(http.StatusOK, available)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	reservation, err := h.service.CreateReservation(c.Request.Context(), booking.CreateReservationInput{
		RoomType:   req.RoomType,
		Price:      req.Price,
		Name:       req.Name,
		Email:      req.Email,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		respondError(c, h.log, err, "room type not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": reservation.ID})
}

func (h *BookingHandler) history(c *gin.Context) {
	list, err := h.service.History(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.log, err, "reservations not found")
		return
	}
	c.JSON(http.StatusOK, list)
}
