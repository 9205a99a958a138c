package circulation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/platform/apierr"
)

type Handler struct{ svc *Service }

func RegisterRoutes(r gin.IRoutes, svc *Service) {
	h := &Handler{svc: svc}

	r.POST("/issue", h.Issue)
	r.POST("/check-fine", h.CheckFine)
	r.POST("/return", h.Return)
	r.GET("/activity", h.Activity)
}

func (h *Handler) Issue(c *gin.Context) {
	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Response{Error: "Missing required fields."})
		return
	}
	loanULID, err := h.svc.Issue(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to issue book."))
		return
	}
	c.Header("Location", "/api/transactions/"+loanULID)
	c.JSON(http.StatusCreated, gin.H{"message": "Book issued successfully."})
}

func (h *Handler) CheckFine(c *gin.Context) {
	var req CheckFineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Response{Error: "Missing required fields."})
		return
	}
	res, err := h.svc.CheckFine(c.Request.Context(), req)
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to check fine."))
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) Return(c *gin.Context) {
	var req ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierr.Response{Error: "Missing required fields."})
		return
	}
	if err := h.svc.Return(c.Request.Context(), req); err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to return book."))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book returned successfully."})
}

func (h *Handler) Activity(c *gin.Context) {
	res, err := h.svc.Activity(c.Request.Context())
	if err != nil {
		c.JSON(apierr.Status(err), apierr.Body(err, "Failed to fetch recent activity."))
		return
	}
	c.JSON(http.StatusOK, res)
}
