package handler

import (
	"net/http"

	"github.com/osse101/SlotReveal_Go/internal/catalog"
	"github.com/osse101/SlotReveal_Go/internal/domain"
	"github.com/osse101/SlotReveal_Go/internal/logger"
	"github.com/osse101/SlotReveal_Go/internal/slots"
)

// SlotsHandler handles slots-related HTTP requests
type SlotsHandler struct {
	service slots.Service
}

// NewSlotsHandler creates a new slots handler
func NewSlotsHandler(service slots.Service) *SlotsHandler {
	return &SlotsHandler{service: service}
}

// HandleSpin resolves one spin for the submitted bet
// @Summary Spin the reels
// @Description Draws three reel positions and returns the payout for an exact triple match
// @Tags slots
// @Accept json
// @Produce json
// @Param request body domain.SpinRequest true "Spin request"
// @Success 200 {object} domain.SpinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/spin [post]
func (h *SlotsHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req domain.SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, ErrMsgInvalidBet); err != nil {
		return
	}

	log.Debug(LogMsgSpinRequested, "bet", *req.Bet)

	outcome, err := h.service.Resolve(ctx, *req.Bet)
	if err != nil {
		status, msg := mapServiceErrorToUserMessage(err)
		if status >= http.StatusInternalServerError {
			log.Error(LogMsgSpinFailed, "error", err)
		} else {
			log.Warn(LogMsgSpinFailed, "error", err)
		}
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, outcome.ToResponse())
}

// HandleGetCatalog returns the ordered symbol catalog the engine draws from
// @Summary Get symbol catalog
// @Description Returns the ordered symbols; positions returned by /api/spin index into this list
// @Tags slots
// @Produce json
// @Success 200 {object} catalog.File
// @Router /api/catalog [get]
func (h *SlotsHandler) HandleGetCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.File{Symbols: h.service.Catalog().Symbols()})
}
