package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "claims_settlement/internal/adapter/http/dto/request"
	response "claims_settlement/internal/adapter/http/dto/response"
	"claims_settlement/internal/domain/entities"
	"claims_settlement/internal/domain/settlement"
	"claims_settlement/internal/usecase"
	"claims_settlement/pkg"

	"github.com/gin-gonic/gin"
)

// ActorHeader carries the id of the user acting on the offer.
const ActorHeader = "X-Actor-ID"

var (
	errInvalidOfferPayload = pkg.NewDomainErrorSimple("INVALID_OFFER_INPUT", "Invalid offer payload", http.StatusBadRequest)
	errMissingActor        = pkg.NewDomainErrorSimple("MISSING_ACTOR", "X-Actor-ID header is required", http.StatusBadRequest)
)

// OfferHandler handles HTTP requests for settlement offers.
type OfferHandler struct {
	usecase usecase.IOfferUseCase
}

func NewOfferHandler(uc usecase.IOfferUseCase) *OfferHandler {
	return &OfferHandler{usecase: uc}
}

// CreateOffer godoc
// @Summary      Create a settlement offer
// @Description  Drafts an offer for an approved claim with no other active offer.
// @Tags         offers
// @Accept       json
// @Produce      json
// @Param        X-Actor-ID  header  string                      true  "Acting user"
// @Param        body        body    request.CreateOfferRequest  true  "Offer"
// @Success      201  {object}  response.OfferResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /offers [post]
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.CreateOfferRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidOfferPayload)
		return
	}

	claimID, in := payload.ToInput(actor)
	offer, err := h.usecase.Create(c.Request.Context(), claimID, in)
	if err != nil {
		log.Printf("[offer][handler] create failed claim_id=%s err=%v", claimID, err)
		writeError(c, mapOfferError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromOffer(offer))
}

// GetOffer godoc
// @Summary  Get a settlement offer
// @Tags     offers
// @Produce  json
// @Param    offer_id  path  string  true  "Offer id"
// @Success  200  {object}  response.OfferResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /offers/{offer_id} [get]
func (h *OfferHandler) GetOffer(c *gin.Context) {
	offer, err := h.usecase.GetByID(c.Request.Context(), c.Param("offer_id"))
	if err != nil {
		writeError(c, mapOfferError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOffer(offer))
}

// ListOffers godoc
// @Summary  List settlement offers by status
// @Tags     offers
// @Produce  json
// @Param    status  query  string  true  "Offer status"
// @Success  200  {array}   response.OfferResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /offers [get]
func (h *OfferHandler) ListOffers(c *gin.Context) {
	status := entities.OfferStatus(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
	offers, err := h.usecase.ListByStatus(c.Request.Context(), status)
	if err != nil {
		writeError(c, mapOfferError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromOffers(offers))
}

// ListStatuses godoc
// @Summary  Offer status table
// @Description  Labels, badge variants and allowed successors of every offer status.
// @Tags     offers
// @Produce  json
// @Success  200  {array}  response.StatusResponse
// @Router   /offer-statuses [get]
func (h *OfferHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStatusTable(entities.OfferStatuses()))
}

// Recalculate godoc
// @Summary  Recalculate offer amounts
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    offer_id  path  string                      true  "Offer id"
// @Param    body      body  request.RecalculateRequest  true  "Amounts"
// @Success  200  {object}  response.OfferResponse
// @Router   /offers/{offer_id}/amounts [patch]
func (h *OfferHandler) Recalculate(c *gin.Context) {
	var payload request.RecalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidOfferPayload)
		return
	}
	h.respond(c, "recalculate")(h.usecase.Recalculate(c.Request.Context(), c.Param("offer_id"), payload.ToInput()))
}

// ReviseTerms godoc
// @Summary  Revise offer terms
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    offer_id  path  string                true  "Offer id"
// @Param    body      body  request.TermsRequest  true  "Terms"
// @Success  200  {object}  response.OfferResponse
// @Router   /offers/{offer_id}/terms [patch]
func (h *OfferHandler) ReviseTerms(c *gin.Context) {
	var payload request.TermsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidOfferPayload)
		return
	}
	h.respond(c, "revise-terms")(h.usecase.ReviseTerms(c.Request.Context(), c.Param("offer_id"), payload.ToTerms()))
}

// Submit godoc
// @Summary  Submit a draft offer for approval
// @Tags     offers
// @Produce  json
// @Param    offer_id  path  string  true  "Offer id"
// @Success  200  {object}  response.OfferResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /offers/{offer_id}/submit [post]
func (h *OfferHandler) Submit(c *gin.Context) {
	h.respond(c, "submit")(h.usecase.Submit(c.Request.Context(), c.Param("offer_id")))
}

// Approve godoc
// @Summary  Approve a pending offer
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    X-Actor-ID  header  string                  true   "Approver"
// @Param    offer_id    path    string                  true   "Offer id"
// @Param    body        body    request.ApproveRequest  false  "Notes"
// @Success  200  {object}  response.OfferResponse
// @Router   /offers/{offer_id}/approve [post]
func (h *OfferHandler) Approve(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.ApproveRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	in := settlement.ApproveInput{ApprovedBy: actor, Notes: payload.Notes}
	h.respond(c, "approve")(h.usecase.Approve(c.Request.Context(), c.Param("offer_id"), in))
}

// Reject godoc
// @Summary  Reject a pending offer
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    offer_id  path  string                 true  "Offer id"
// @Param    body      body  request.ReasonRequest  true  "Reason"
// @Success  200  {object}  response.OfferResponse
// @Router   /offers/{offer_id}/reject [post]
func (h *OfferHandler) Reject(c *gin.Context) {
	var payload request.ReasonRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	h.respond(c, "reject")(h.usecase.Reject(c.Request.Context(), c.Param("offer_id"), payload.Reason))
}

// Cancel godoc
// @Summary  Cancel an offer
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    offer_id  path  string                 true  "Offer id"
// @Param    body      body  request.ReasonRequest  true  "Reason"
// @Success  200  {object}  response.OfferResponse
// @Router   /offers/{offer_id}/cancel [post]
func (h *OfferHandler) Cancel(c *gin.Context) {
	var payload request.ReasonRequest
	if !bindOptionalJSON(c, &payload) {
		return
	}
	h.respond(c, "cancel")(h.usecase.Cancel(c.Request.Context(), c.Param("offer_id"), payload.Reason))
}

// SetupPresentation godoc
// @Summary  Present an approved offer to the client
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    X-Actor-ID  header  string                       true  "Presenter"
// @Param    offer_id    path    string                       true  "Offer id"
// @Param    body        body    request.PresentationRequest  true  "Presentation"
// @Success  200  {object}  response.OfferResponse
// @Failure  410  {object}  pkg.HTTPError
// @Router   /offers/{offer_id}/presentation [post]
func (h *OfferHandler) SetupPresentation(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var payload request.PresentationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidOfferPayload)
		return
	}
	h.respond(c, "present")(h.usecase.SetupPresentation(c.Request.Context(), c.Param("offer_id"), payload.ToSetup(), actor))
}

// UpdateDeliveryStatus godoc
// @Summary  Report the delivery status of a presentation
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    offer_id  path  string                         true  "Offer id"
// @Param    body      body  request.DeliveryStatusRequest  true  "Status"
// @Success  200  {object}  response.OfferResponse
// @Router   /offers/{offer_id}/presentation/delivery-status [patch]
func (h *OfferHandler) UpdateDeliveryStatus(c *gin.Context) {
	var payload request.DeliveryStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidOfferPayload)
		return
	}
	status := entities.DeliveryStatus(strings.ToUpper(strings.TrimSpace(payload.DeliveryStatus)))
	h.respond(c, "delivery-status")(h.usecase.UpdateDeliveryStatus(c.Request.Context(), c.Param("offer_id"), status))
}

// RecordClientResponse godoc
// @Summary  Record the client's response
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    offer_id  path  string                         true  "Offer id"
// @Param    body      body  request.ClientResponseRequest  true  "Response"
// @Success  200  {object}  response.OfferResponse
// @Failure  410  {object}  pkg.HTTPError
// @Router   /offers/{offer_id}/response [post]
func (h *OfferHandler) RecordClientResponse(c *gin.Context) {
	var payload request.ClientResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidOfferPayload)
		return
	}
	resp := payload.ToResponse(strings.TrimSpace(c.GetHeader(ActorHeader)))
	h.respond(c, "client-response")(h.usecase.RecordClientResponse(c.Request.Context(), c.Param("offer_id"), resp))
}

// Expire godoc
// @Summary  Expire an offer past its validity
// @Tags     offers
// @Produce  json
// @Param    offer_id  path  string  true  "Offer id"
// @Success  200  {object}  response.OfferResponse
// @Router   /offers/{offer_id}/expire [post]
func (h *OfferHandler) Expire(c *gin.Context) {
	h.respond(c, "expire")(h.usecase.Expire(c.Request.Context(), c.Param("offer_id")))
}

// ExpireDue godoc
// @Summary  Expire every offer past its validity
// @Tags     offers
// @Produce  json
// @Success  200  {object}  response.ExpireDueResponse
// @Router   /offers/expire-due [post]
func (h *OfferHandler) ExpireDue(c *gin.Context) {
	expired, err := h.usecase.ExpireDue(c.Request.Context())
	if err != nil {
		log.Printf("[offer][handler] expire-due failed err=%v", err)
		writeError(c, mapOfferError(err))
		return
	}
	c.JSON(http.StatusOK, response.ExpireDueResponse{Expired: len(expired), Offers: response.FromOffers(expired)})
}

// BeginPaymentProcessing godoc
// @Summary  Move an accepted offer to payment processing
// @Tags     offers
// @Produce  json
// @Param    offer_id  path  string  true  "Offer id"
// @Success  200  {object}  response.OfferResponse
// @Router   /offers/{offer_id}/payment-processing [post]
func (h *OfferHandler) BeginPaymentProcessing(c *gin.Context) {
	h.respond(c, "payment-processing")(h.usecase.BeginPaymentProcessing(c.Request.Context(), c.Param("offer_id")))
}

// AttachDocument godoc
// @Summary  Attach a supporting document name
// @Tags     offers
// @Accept   json
// @Produce  json
// @Param    offer_id  path  string                   true  "Offer id"
// @Param    body      body  request.DocumentRequest  true  "Document"
// @Success  200  {object}  response.OfferResponse
// @Router   /offers/{offer_id}/documents [post]
func (h *OfferHandler) AttachDocument(c *gin.Context) {
	var payload request.DocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidOfferPayload)
		return
	}
	h.respond(c, "attach-document")(h.usecase.AttachDocument(c.Request.Context(), c.Param("offer_id"), payload.Document))
}

// RemoveDocument godoc
// @Summary  Remove a supporting document name
// @Tags     offers
// @Produce  json
// @Param    offer_id  path  string  true  "Offer id"
// @Param    name      path  string  true  "Document name"
// @Success  200  {object}  response.OfferResponse
// @Router   /offers/{offer_id}/documents/{name} [delete]
func (h *OfferHandler) RemoveDocument(c *gin.Context) {
	h.respond(c, "remove-document")(h.usecase.RemoveDocument(c.Request.Context(), c.Param("offer_id"), c.Param("name")))
}

// respond writes the outcome of a single-offer operation.
func (h *OfferHandler) respond(c *gin.Context, op string) func(entities.SettlementOffer, error) {
	return func(offer entities.SettlementOffer, err error) {
		if err != nil {
			log.Printf("[offer][handler] %s failed offer_id=%s err=%v", op, c.Param("offer_id"), err)
			writeError(c, mapOfferError(err))
			return
		}
		c.JSON(http.StatusOK, response.FromOffer(offer))
	}
}

func requireActor(c *gin.Context) (string, bool) {
	actor := strings.TrimSpace(c.GetHeader(ActorHeader))
	if actor == "" {
		writeError(c, errMissingActor)
		return "", false
	}
	return actor, true
}

// bindOptionalJSON binds the body when there is one.
func bindOptionalJSON(c *gin.Context, dst any) bool {
	if c.Request.ContentLength == 0 {
		return true
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, errInvalidOfferPayload)
		return false
	}
	return true
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapOfferError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, settlement.ErrValidation):
		appErr := pkg.NewDomainError("VALIDATION_ERROR", "Invalid offer input", err, http.StatusBadRequest)
		fields := settlement.FieldErrors(err)
		details := make([]pkg.ErrorDetail, 0, len(fields))
		for _, f := range fields {
			details = append(details, pkg.ErrorDetail{Field: f.Field, Rule: f.Rule, Message: f.Message})
		}
		return appErr.WithDetails(details...)
	case errors.Is(err, usecase.ErrInvalidOfferID), errors.Is(err, usecase.ErrInvalidClaimID), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClaimNotFound):
		return pkg.NewDomainErrorSimple("CLAIM_NOT_FOUND", "Claim not found", http.StatusNotFound)
	case errors.Is(err, settlement.ErrInvalidClaim):
		return pkg.NewDomainError("INVALID_CLAIM", "Claim cannot receive a new offer", err, http.StatusUnprocessableEntity)
	case errors.Is(err, settlement.ErrOfferExpired):
		return pkg.NewDomainError("OFFER_EXPIRED", "Offer validity period has passed", err, http.StatusGone)
	case errors.Is(err, settlement.ErrInvalidState):
		return pkg.NewDomainError("INVALID_STATE", "Operation not allowed in the current offer status", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Offer was modified by another request, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrOfferLocked):
		return pkg.NewDomainErrorSimple("OFFER_LOCKED", "Offer is being modified by another request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
