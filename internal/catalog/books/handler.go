package books

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/books", h.List)
	r.POST("/books", h.Create)
	r.PUT("/books/:id", h.Update)
	r.DELETE("/books/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to fetch books."))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Response{Error: "invalid json or missing required fields"})
		return
	}
	if err := h.svc.Create(c.Request.Context(), req); err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to add book."))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Book added successfully"})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Response{Error: "invalid json or missing required fields"})
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to update book."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book updated successfully"})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to delete book."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}
