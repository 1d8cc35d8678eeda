package discovery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	svcErr "github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/errors"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/middleware"
	"github.com/LatoSzymon/AplikacjePrzemyslowe-DatingApp-sub000/internal/utils/pagination"
)

// Handler adapts the discovery service to HTTP. Transport only; all
// behavior lives in Service.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// candidateView is the public shape of a ranked candidate.
type candidateView struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	City     string `json:"city"`
	Gender   string `json:"gender"`
	Breakdown
}

func toView(rc RankedCandidate) candidateView {
	return candidateView{
		ID:        rc.User.ID,
		Username:  rc.User.Username,
		City:      rc.User.City,
		Gender:    string(rc.User.Gender),
		Breakdown: rc.Breakdown,
	}
}

// Next handles GET /discover/next: the single best candidate for the
// authenticated requester, or an explicit empty result.
func (h *Handler) Next(c *gin.Context) {
	requesterID := middleware.UserID(c)

	best, err := h.svc.Best(c.Request.Context(), requesterID)
	if err != nil {
		status, msg := svcErr.Map(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}
	if best == nil {
		c.JSON(http.StatusOK, gin.H{"candidate": nil, "message": "no candidate available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidate": toView(*best)})
}

// List handles GET /discover: a page of ranked candidates.
// Query params: offset, page_size.
func (h *Handler) List(c *gin.Context) {
	requesterID := middleware.UserID(c)

	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	page := pagination.New(offset, size)

	env, err := h.svc.Page(c.Request.Context(), requesterID, page)
	if err != nil {
		status, msg := svcErr.Map(err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	views := make([]candidateView, 0, len(env.Items))
	for _, item := range env.Items {
		views = append(views, toView(item))
	}
	c.JSON(http.StatusOK, pagination.Wrap(views, env.Total, page))
}
