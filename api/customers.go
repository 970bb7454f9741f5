package api

import (
	"net/http"

	"github.com/Ira5334/backend/internal/domain"
	"github.com/Ira5334/backend/internal/service/customers"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgCustomerNotFound = "customer not found"

type CustomerHandler struct {
	service customers.CustomerUseCase
	log     *zap.Logger
}

type registerRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// updateProfileRequest accepts "phone" as an alias for "phone_number".
type updateProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Phone       string `json:"phone"`
}

type reviewRequest struct {
	Email  string `json:"email"`
	Review string `json:"review"`
}

type authResponse struct {
	Success   bool   `json:"success"`
	UserID    int64  `json:"userId"`
	UserEmail string `json:"userEmail"`
}

func NewCustomerHandler(service customers.CustomerUseCase, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{service: service, log: log}
}

func (h *CustomerHandler) Register(router *gin.RouterGroup) {
	router.POST("/api/register", h.register)
	router.POST("/api/login", h.login)
	router.GET("/api/user/email/:email", h.getProfile)
	router.PUT("/api/user/email/:email", h.updateProfile)
	router.POST("/api/review", h.review)
}

func (h *CustomerHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}

	customer, err := h.service.Register(c.Request.Context(), customers.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		respondError(c, h.log, err, msgCustomerNotFound)
		return
	}
	c.JSON(http.StatusCreated, authResponse{Success: true, UserID: customer.ID, UserEmail: customer.Email})
}

func (h *CustomerHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	customer, err := h.service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err, msgCustomerNotFound)
		return
	}
	c.JSON(http.StatusOK, authResponse{Success: true, UserID: customer.ID, UserEmail: customer.Email})
}

func (h *CustomerHandler) getProfile(c *gin.Context) {
	customer, err := h.service.GetProfile(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.log, err, msgCustomerNotFound)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	phone := req.PhoneNumber
	if phone == "" {
		phone = req.Phone
	}

	err := h.service.UpdateProfile(c.Request.Context(), c.Param("email"), domain.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: phone,
	})
	if err != nil {
		respondError(c, h.log, err, msgCustomerNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

func (h *CustomerHandler) review(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c)
		return
	}
	if req.Email == "" || req.Review == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and review are required"})
		return
	}

	if err := h.service.RecordReview(c.Request.Context(), req.Email, req.Review); err != nil {
		respondError(c, h.log, err, msgCustomerNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
