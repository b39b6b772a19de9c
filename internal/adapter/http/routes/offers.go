package routes

import (
	"claims_settlement/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOffers        = "/offers"
	PathOfferStatuses = "/offer-statuses"
	PathPayments      = "/payments"
)

func addOfferRoutes(rg *gin.RouterGroup, h *handlers.OfferHandler) {
	rg.GET(PathOfferStatuses, h.ListStatuses)

	offers := rg.Group(PathOffers)
	{
		offers.POST("", h.CreateOffer)
		offers.GET("", h.ListOffers)
		offers.POST("/expire-due", h.ExpireDue)

		offers.GET("/:offer_id", h.GetOffer)
		offers.PATCH("/:offer_id/amounts", h.Recalculate)
		offers.PATCH("/:offer_id/terms", h.ReviseTerms)

		offers.POST("/:offer_id/submit", h.Submit)
		offers.POST("/:offer_id/approve", h.Approve)
		offers.POST("/:offer_id/reject", h.Reject)
		offers.POST("/:offer_id/expire", h.Expire)
		offers.POST("/:offer_id/payment-processing", h.BeginPaymentProcessing)
		offers.POST("/:offer_id/cancel", h.Cancel)

		offers.POST("/:offer_id/presentation", h.SetupPresentation)
		offers.PATCH("/:offer_id/presentation/delivery-status", h.UpdateDeliveryStatus)
		offers.POST("/:offer_id/response", h.RecordClientResponse)

		offers.POST("/:offer_id/documents", h.AttachDocument)
		offers.DELETE("/:offer_id/documents/:name", h.RemoveDocument)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:offer_id", h.RecordPayment)
		payments.POST("/:offer_id/gateway", h.PayThroughGateway)
	}
}
