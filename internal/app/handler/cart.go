package handler

import (
	"algofit-storefront/internal/app/backend"
	"algofit-storefront/internal/app/ds"
	"algofit-storefront/internal/app/middleware"
	"algofit-storefront/internal/app/repository"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	repo *repository.Repository
}

func NewCartHandler(repo *repository.Repository) *CartHandler {
	return &CartHandler{
		repo: repo,
	}
}

type AddToCartRequest struct {
	PlanID   uint `json:"plan_id" binding:"required,min=1"`
	Quantity int  `json:"quantity" binding:"omitempty,min=1,max=99"`
}

func currentUser(ctx *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
	}
	return userID, ok
}

// GetCart godoc
// @Summary Get cart
// @Description Plans the user put in the cart, with the total item count for the navbar badge
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ds.Cart
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cart [get]
func (h *CartHandler) GetCart(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	cart, err := h.repo.Cart.Get(ctx.Request.Context(), userID)
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}
	ctx.JSON(http.StatusOK, cart)
}

// AddToCart godoc
// @Summary Add plan to cart
// @Description Adds quantity (default 1) of an existing plan to the cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AddToCartRequest true "Plan and quantity"
// @Success 200 {object} ds.Cart
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddToCart(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	var req AddToCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if _, err := h.repo.Backend().GetPlan(ctx.Request.Context(), req.PlanID); err != nil {
		if backend.IsNotFound(err) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Plan Not Found"})
			return
		}
		logrus.Error(err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load plan. Please try again."})
		return
	}

	cart, err := h.repo.Cart.Add(ctx.Request.Context(), userID, req.PlanID, req.Quantity)
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add plan to cart"})
		return
	}
	ctx.JSON(http.StatusOK, cart)
}

// RemoveFromCart godoc
// @Summary Remove plan from cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param plan_id path int true "Plan ID"
// @Success 200 {object} ds.Cart
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cart/items/{plan_id} [delete]
func (h *CartHandler) RemoveFromCart(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	planID, ok := ds.ParseID(ctx.Param("plan_id"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan ID"})
		return
	}
	cart, err := h.repo.Cart.Remove(ctx.Request.Context(), userID, planID)
	if err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove plan from cart"})
		return
	}
	ctx.JSON(http.StatusOK, cart)
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags Cart
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /cart [delete]
func (h *CartHandler) ClearCart(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	if err := h.repo.Cart.Clear(ctx.Request.Context(), userID); err != nil {
		logrus.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	ctx.Status(http.StatusNoContent)
}
