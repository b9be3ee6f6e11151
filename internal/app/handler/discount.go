package handler

import (
	"algofit-storefront/internal/app/countdown"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const discountTick = time.Second

type DiscountHandler struct {
	discount countdown.Countdown
	now      func() time.Time
}

func NewDiscountHandler(discount countdown.Countdown) *DiscountHandler {
	return &DiscountHandler{
		discount: discount,
		now:      time.Now,
	}
}

// GetDiscount godoc
// @Summary Discount countdown
// @Description Time left on the launch discount and the elapsed share of its span
// @Tags Discount
// @Produce json
// @Success 200 {object} countdown.Snapshot
// @Router /discount [get]
func (h *DiscountHandler) GetDiscount(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.discount.Snapshot(h.now()))
}

// StreamDiscount godoc
// @Summary Discount countdown stream
// @Description Server-sent "tick" events once per second until the discount ends or the client goes away
// @Tags Discount
// @Produce text/event-stream
// @Success 200 {object} countdown.Snapshot
// @Router /discount/stream [get]
func (h *DiscountHandler) StreamDiscount(ctx *gin.Context) {
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")

	countdown.Every(ctx.Request.Context(), discountTick, func(time.Time) bool {
		snapshot := h.discount.Snapshot(h.now())
		ctx.SSEvent("tick", snapshot)
		ctx.Writer.Flush()
		return !snapshot.Expired
	})
	logrus.Debugf("discount stream closed for %s", ctx.ClientIP())
}
