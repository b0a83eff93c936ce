package handler

import (
	"github.com/gin-gonic/gin"

	appmonitoring "github.com/roadwatch/backend/internal/application/monitoring"
)

// UserHandler handles dashboard user endpoints
type UserHandler struct {
	BaseHandler
	userService *appmonitoring.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *appmonitoring.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithTotal(c, users, len(users))
}

// Get returns a single user by id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// Create registers a new user
func (h *UserHandler) Create(c *gin.Context) {
	var req appmonitoring.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	user, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, user)
}
