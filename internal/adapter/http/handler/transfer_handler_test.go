package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Ntobe/ledger/internal/adapter/http/dto"
	"github.com/Ntobe/ledger/internal/domain"
)

type transferServiceStub struct {
	applyFn      func(ctx context.Context, req domain.TransferRequest) (*domain.TransferOutcome, error)
	getOutcomeFn func(ctx context.Context, transferID string) (*domain.TransferOutcome, error)
}

func (s *transferServiceStub) ApplyTransfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferOutcome, error) {
	return s.applyFn(ctx, req)
}

func (s *transferServiceStub) GetOutcome(ctx context.Context, transferID string) (*domain.TransferOutcome, error) {
	return s.getOutcomeFn(ctx, transferID)
}

func TestTransferHandler_Apply_Success(t *testing.T) {
	outcome := &domain.TransferOutcome{
		ID:         "out-1",
		TransferID: "tx-1",
		Status:     domain.OutcomeStatusSuccess,
		Message:    domain.MessageTransferApplied,
	}

	var captured domain.TransferRequest

	handler := NewTransferHandler(&transferServiceStub{
		applyFn: func(ctx context.Context, req domain.TransferRequest) (*domain.TransferOutcome, error) {
			captured = req
			return outcome, nil
		},
	})

	body, _ := json.Marshal(dto.ApplyTransferRequest{
		TransferID:    "tx-1",
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.NewFromInt(100),
	})

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Apply(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.TransferID != "tx-1" || captured.FromAccountID != "acc-1" {
		t.Fatalf("expected request to match body, got %+v", captured)
	}

	var resp dto.OutcomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != string(domain.OutcomeStatusSuccess) {
		t.Fatalf("expected SUCCESS status, got %s", resp.Status)
	}
}

func TestTransferHandler_Apply_FailureOutcomeIsStill200(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		applyFn: func(ctx context.Context, req domain.TransferRequest) (*domain.TransferOutcome, error) {
			return &domain.TransferOutcome{
				ID:         "out-1",
				TransferID: req.TransferID,
				Status:     domain.OutcomeStatusFailure,
				Message:    domain.MessageInsufficientFunds,
			}, nil
		},
	})

	body, _ := json.Marshal(dto.ApplyTransferRequest{
		TransferID:    "tx-1",
		FromAccountID: "acc-1",
		ToAccountID:   "acc-2",
		Amount:        decimal.NewFromInt(100),
	})

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Apply(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for recorded failure, got %d", rec.Code)
	}

	var resp dto.OutcomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != string(domain.OutcomeStatusFailure) {
		t.Fatalf("expected FAILURE status, got %s", resp.Status)
	}
}

func TestTransferHandler_Apply_InvalidBody(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		applyFn: func(ctx context.Context, req domain.TransferRequest) (*domain.TransferOutcome, error) {
			t.Fatal("ApplyTransfer should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	handler.Apply(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTransferHandler_Apply_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "missing account", serviceErr: domain.ErrAccountNotFound, wantStatus: http.StatusNotFound},
		{name: "validation", serviceErr: domain.ErrInvalidAmount, wantStatus: http.StatusBadRequest},
		{name: "duplicate race", serviceErr: domain.ErrDuplicateTransfer, wantStatus: http.StatusConflict},
		{name: "lock timeout", serviceErr: domain.ErrLockTimeout, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTransferHandler(&transferServiceStub{
				applyFn: func(ctx context.Context, req domain.TransferRequest) (*domain.TransferOutcome, error) {
					return nil, tt.serviceErr
				},
			})

			body, _ := json.Marshal(dto.ApplyTransferRequest{
				TransferID:    "tx-1",
				FromAccountID: "acc-1",
				ToAccountID:   "acc-2",
				Amount:        decimal.NewFromInt(10),
			})

			req := httptest.NewRequest(http.MethodPost, "/transfers", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			handler.Apply(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestTransferHandler_GetOutcome(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		getOutcomeFn: func(ctx context.Context, transferID string) (*domain.TransferOutcome, error) {
			return &domain.TransferOutcome{ID: "out-1", TransferID: transferID, Status: domain.OutcomeStatusSuccess}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transfers/tx-1", nil)
	req = setChiURLParam(req, "id", "tx-1")
	rec := httptest.NewRecorder()

	handler.GetOutcome(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTransferHandler_GetOutcome_NotFound(t *testing.T) {
	handler := NewTransferHandler(&transferServiceStub{
		getOutcomeFn: func(ctx context.Context, transferID string) (*domain.TransferOutcome, error) {
			return nil, domain.ErrOutcomeNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/transfers/tx-404", nil)
	req = setChiURLParam(req, "id", "tx-404")
	rec := httptest.NewRecorder()

	handler.GetOutcome(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
