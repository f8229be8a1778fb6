package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ntobe/ledger/internal/adapter/http/dto"
	"github.com/Ntobe/ledger/internal/domain"
)

// TransferService defines the behavior needed by TransferHandler.
type TransferService interface {
	ApplyTransfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferOutcome, error)
	GetOutcome(ctx context.Context, transferID string) (*domain.TransferOutcome, error)
}

// TransferHandler handles transfer-related HTTP requests.
type TransferHandler struct {
	transferUC TransferService
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(transferUC TransferService) *TransferHandler {
	return &TransferHandler{transferUC: transferUC}
}

// Apply applies a transfer. Both SUCCESS and FAILURE outcomes return
// 200: the request was processed and its result recorded. Resubmitting
// the same transfer ID returns the same body.
func (h *TransferHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	outcome, err := h.transferUC.ApplyTransfer(r.Context(), req.ToDomain())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to apply transfer", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.OutcomeFromDomain(outcome))
}

// GetOutcome retrieves the recorded outcome for a transfer ID.
func (h *TransferHandler) GetOutcome(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transfer ID", "")
		return
	}

	outcome, err := h.transferUC.GetOutcome(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get transfer outcome", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.OutcomeFromDomain(outcome))
}
