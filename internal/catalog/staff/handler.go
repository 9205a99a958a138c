package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.GET("/staffs", h.List)
	r.POST("/staffs", h.Create)
	r.PUT("/staffs/:id", h.Update)
	r.DELETE("/staffs/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	res, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to fetch staff."))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Response{Error: "invalid json or missing required fields"})
		return
	}
	if err := h.svc.Create(c.Request.Context(), req); err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to add staff member."))
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Staff member added successfully"})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Response{Error: "invalid json or missing required fields"})
		return
	}
	if err := h.svc.Update(c.Request.Context(), c.Param("id"), req); err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to update staff member."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member updated successfully"})
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to delete staff member."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted successfully"})
}
