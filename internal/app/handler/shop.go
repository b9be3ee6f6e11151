package handler

import (
	"algofit-storefront/internal/app/catalog"
	"algofit-storefront/internal/app/ds"
	"algofit-storefront/internal/app/repository"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ShopHandler struct {
	repo *repository.Repository
}

func NewShopHandler(repo *repository.Repository) *ShopHandler {
	return &ShopHandler{
		repo: repo,
	}
}

// ShopResponse is one rendered catalog page.
type ShopResponse struct {
	catalog.Snapshot
	QueryString string                `json:"query_string"`
	Filters     ds.CatalogFiltersInfo `json:"filters"`
	SortOptions []catalog.SortOption  `json:"sort_options"`
	Changed     *bool                 `json:"changed,omitempty"`
	Error       string                `json:"error,omitempty"`
}

type IntentRequest struct {
	State  *catalog.QueryState   `json:"state"`
	Intent catalog.IntentPayload `json:"intent" binding:"required"`
}

func (h *ShopHandler) respond(ctx *gin.Context, q catalog.QueryState, changed *bool) {
	snapshot := h.repo.Plan.Catalog(ctx.Request.Context(), q)
	resp := ShopResponse{
		Snapshot:    snapshot,
		QueryString: snapshot.Query.Values().Encode(),
		Filters: ds.CatalogFiltersInfo{
			PriceMin:     snapshot.Query.PriceMin,
			PriceMax:     snapshot.Query.PriceMax,
			MembershipID: snapshot.Query.MembershipID,
			Search:       snapshot.Query.Search,
			Ordering:     snapshot.Query.Sort.Ordering(),
		},
		SortOptions: catalog.SortOptions(),
		Changed:     changed,
	}

	status := http.StatusOK
	if snapshot.State == catalog.StateError {
		status = http.StatusBadGateway
		resp.Error = snapshot.Message
	}
	ctx.JSON(status, resp)
}

// GetShop godoc
// @Summary Catalog page
// @Description Filtered, sorted and paginated plans with pager tokens and active filter badges
// @Tags Shop
// @Produce json
// @Param price_min query int false "Lowest price (0-990)"
// @Param price_max query int false "Highest price (10-1000)"
// @Param membership query string false "Membership ID"
// @Param search query string false "Search text"
// @Param sort query string false "Sort key" Enums(none, price_asc, price_desc, name_asc, name_desc)
// @Param page query int false "Page number"
// @Success 200 {object} ShopResponse
// @Failure 502 {object} ShopResponse
// @Router /shop [get]
func (h *ShopHandler) GetShop(ctx *gin.Context) {
	h.respond(ctx, catalog.ParseQuery(ctx.Request.URL.Query()), nil)
}

// ApplyIntent godoc
// @Summary Apply a catalog intent
// @Description Applies one filter, sort or page intent to the posted state and returns the resulting page
// @Tags Shop
// @Accept json
// @Produce json
// @Param request body IntentRequest true "Current state and intent"
// @Success 200 {object} ShopResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} ShopResponse
// @Router /shop/intents [post]
func (h *ShopHandler) ApplyIntent(ctx *gin.Context) {
	var req IntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	state := catalog.DefaultQuery()
	if req.State != nil {
		state = req.State.Normalized()
	}
	intent, err := catalog.DecodeIntent(state, req.Intent)
	if err != nil {
		var unknown *catalog.UnknownIntentError
		if errors.As(err, &unknown) {
			logrus.Warnf("rejected intent %q", unknown.Type)
		}
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	next := catalog.Apply(state, intent)
	changed := next != state
	h.respond(ctx, next, &changed)
}
