package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/dto"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Upsert is the login route: profile fields are written by email and a
// fresh bearer token comes back with the upsert result.
func (h *UserHandler) Upsert(c *gin.Context) {
	var req dto.UpsertUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.userService.Upsert(c.Request.Context(), c.Param("email"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if users == nil {
		users = []model.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Count(c *gin.Context) {
	n, err := h.userService.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.UsersCountResponse{UsersNumber: n})
}

func (h *UserHandler) AdminCheck(c *gin.Context) {
	isAdmin, err := h.userService.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, dto.AdminCheckResponse{Admin: isAdmin})
}

func (h *UserHandler) Promote(c *gin.Context) {
	res, err := h.userService.Promote(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, res)
}
