package students

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/students", h.List)
	r.GET("/students/:id/history", h.History)
	r.POST("/students", h.Create)
	r.PUT("/students/:id", h.Update)
	r.DELETE("/students/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to fetch students."))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) History(c *gin.Context) {
	res, err := h.svc.History(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to fetch student history."))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Response{Error: "invalid json or missing required fields"})
		return
	}
	if err := h.svc.Create(c.Request.Context(), req); err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to add student."))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Student added successfully"})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Response{Error: "invalid json or missing required fields"})
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to update student."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student updated successfully"})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to delete student."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted successfully"})
}
