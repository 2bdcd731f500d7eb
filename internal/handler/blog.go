package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/model"
	"github.com/Muhammad-Nafis-Abdullah/mna-sensors-server/internal/repository"
)

type BlogHandler struct {
	blogRepo repository.BlogRepository
}

func NewBlogHandler(blogRepo repository.BlogRepository) *BlogHandler {
	return &BlogHandler{blogRepo: blogRepo}
}

func (h *BlogHandler) List(c *gin.Context) {
	blogs, err := h.blogRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if blogs == nil {
		blogs = []model.Blog{}
	}
	c.JSON(http.StatusOK, blogs)
}
