package swipe

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/domain"
	svcErr "github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/errors"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/middleware"
)

// Handler adapts the swipe service to HTTP.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// swipeRequest is the POST /swipes body. The swipetype rule is registered
// in this package's Registrar.
type swipeRequest struct {
	TargetID uint64 `json:"target_id" binding:"required"`
	Type     string `json:"type" binding:"required,swipetype"`
}

// Create handles POST /swipes.
func (h *Handler) Create(c *gin.Context) {
	swiperID := middleware.UserID(c)

	var req swipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid swipe request: " + err.Error()})
		return
	}

	result, err := h.svc.RecordSwipe(c.Request.Context(), swiperID, req.TargetID, domain.SwipeType(req.Type))
	if err != nil {
		status, msg := svcErr.Map(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListMatches handles GET /matches.
func (h *Handler) ListMatches(c *gin.Context) {
	userID := middleware.UserID(c)

	matches, err := h.svc.Matches(c.Request.Context(), userID)
	if err != nil {
		status, msg := svcErr.Map(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// CountLikedMe handles GET /liked-me/count.
func (h *Handler) CountLikedMe(c *gin.Context) {
	userID := middleware.UserID(c)

	count, err := h.svc.CountLikedMe(c.Request.Context(), userID)
	if err != nil {
		status, msg := svcErr.Map(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}
