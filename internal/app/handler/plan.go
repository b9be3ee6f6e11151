package handler

import (
	"algofit-storefront/internal/app/backend"
	"algofit-storefront/internal/app/ds"
	"algofit-storefront/internal/app/repository"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PlanHandler struct {
	repo *repository.Repository
}

func NewPlanHandler(repo *repository.Repository) *PlanHandler {
	return &PlanHandler{
		repo: repo,
	}
}

// GetPlan godoc
// @Summary Plan detail
// @Description Plan with its images, tax price, slot availability and reviews
// @Tags Plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} ds.PlanDetail
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /plans/{id} [get]
func (h *PlanHandler) GetPlan(ctx *gin.Context) {
	id, ok := ds.ParseID(ctx.Param("id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}

	detail, err := h.repo.Plan.Detail(ctx.Request.Context(), id)
	if err != nil {
		if backend.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Plan Not Found"})
			return
		}
		logrus.Error(err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load plan. Please try again."})
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// GetMemberships godoc
// @Summary Memberships
// @Description Membership tiers used by the catalog filter
// @Tags Plans
// @Produce json
// @Success 200 {array} ds.Membership
// @Failure 502 {object} map[string]string
// @Router /memberships [get]
func (h *PlanHandler) GetMemberships(ctx *gin.Context) {
	memberships, err := h.repo.Membership.List(ctx.Request.Context())
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load memberships. Please try again."})
		return
	}
	ctx.JSON(http.StatusOK, memberships)
}

type ReviewQuery struct {
	PlanID uint   `form:"plan" binding:"omitempty,min=1"`
	Rating int    `form:"rating" binding:"omitempty,min=1,max=5"`
	Search string `form:"search" binding:"omitempty,max=200"`
}

// GetReviews godoc
// @Summary Reviews
// @Description Reviews filtered by plan, exact rating and text, with the best rated plans
// @Tags Plans
// @Produce json
// @Param plan query int false "Plan ID"
// @Param rating query int false "Exact rating (1-5)"
// @Param search query string false "Text found in the comment, reviewer or plan name"
// @Success 200 {object} ds.ReviewsResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reviews [get]
func (h *PlanHandler) GetReviews(ctx *gin.Context) {
	var q ReviewQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review filters"})
		return
	}

	resp, err := h.repo.Review.List(ctx.Request.Context(), ds.ReviewFilters{
		PlanID: q.PlanID,
		Rating: q.Rating,
		Search: q.Search,
	})
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": repository.ReviewsFailedMessage})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// InvalidateMemberships godoc
// @Summary Drop cached memberships
// @Description Forces the next catalog request to reload membership tiers from the backend
// @Tags Plans
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /memberships/cache [delete]
func (h *PlanHandler) InvalidateMemberships(ctx *gin.Context) {
	if err := h.repo.Membership.Invalidate(ctx.Request.Context()); err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to drop membership cache"})
		return
	}
	logrus.Info("membership cache invalidated")
	ctx.Status(http.StatusNoContent)
}
