package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/Ntobe/ledger/internal/domain"
	"github.com/Ntobe/ledger/internal/infrastructure/metrics"
)

// TransferUseCase coordinates the application of transfers: one-time
// outcome recording, deterministic lock ordering, funds validation,
// balance mutation and double-entry posting, all inside a single
// transaction.
type TransferUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	outcomeRepo OutcomeRepository
	outboxRepo  OutboxRepository
	idGen       IDGenerator
	retrier     Retrier
	metrics     *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	outcomeRepo OutcomeRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	retrier Retrier,
	m *metrics.Metrics,
) *TransferUseCase {
	if retrier == nil {
		retrier = nopRetrier{}
	}

	return &TransferUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		outcomeRepo: outcomeRepo,
		outboxRepo:  outboxRepo,
		idGen:       idGen,
		retrier:     retrier,
		metrics:     m,
	}
}

// ApplyTransfer applies a transfer request exactly once. Replays with
// the same transfer ID return the recorded outcome without touching
// balances. Insufficient funds is a recorded FAILURE outcome; a
// missing account aborts with domain.ErrAccountNotFound and records
// nothing, so the request can be retried once the account exists.
func (uc *TransferUseCase) ApplyTransfer(ctx context.Context, req domain.TransferRequest) (*domain.TransferOutcome, error) {
	// 0. Reject malformed requests before any locking
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 1. Idempotency check: replay a prior outcome unchanged
	outcome, err := uc.outcomeRepo.GetByTransferID(ctx, req.TransferID)
	if err == nil {
		if uc.metrics != nil {
			uc.metrics.TransferReplays.Inc()
		}
		return outcome, nil
	}

	if !errors.Is(err, domain.ErrOutcomeNotFound) {
		return nil, err
	}

	// 2-6. One atomic attempt, retried on transient conflicts
	start := time.Now()

	var result *domain.TransferOutcome

	err = uc.retrier.Retry(ctx, func() error {
		var attemptErr error

		result, attemptErr = uc.applyOnce(ctx, req)

		return attemptErr
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.TransferErrors.WithLabelValues(errorType(err)).Inc()
		}
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransfersApplied.WithLabelValues(string(result.Status)).Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		amount, _ := req.Amount.Float64()
		uc.metrics.TransferAmount.Observe(amount)
	}

	return result, nil
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrDuplicateTransfer):
		return "duplicate_transfer"
	case errors.Is(err, domain.ErrLockTimeout):
		return "lock_timeout"
	default:
		return "internal"
	}
}

func (uc *TransferUseCase) applyOnce(ctx context.Context, req domain.TransferRequest) (*domain.TransferOutcome, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock both accounts in ascending ID order (DEADLOCK PREVENTION):
	// two transfers over the same pair always contend in the same
	// order, whichever direction they move money.
	ids := []string{req.FromAccountID, req.ToAccountID}
	sort.Strings(ids)

	accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		return nil, err
	}

	if len(accounts) != len(ids) {
		return nil, domain.ErrAccountNotFound
	}

	accountMap := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		accountMap[a.ID] = a
	}

	fromAccount := accountMap[req.FromAccountID]
	toAccount := accountMap[req.ToAccountID]

	if fromAccount == nil || toAccount == nil {
		return nil, domain.ErrAccountNotFound
	}

	now := time.Now().UTC()

	// Funds check under lock. Insufficient funds is a committed,
	// replayable outcome, not an error.
	if !fromAccount.CanDebit(req.Amount) {
		return uc.recordOutcome(ctx, tx, req, domain.OutcomeStatusFailure, domain.MessageInsufficientFunds, now)
	}

	// Move balance
	err = uc.accountRepo.UpdateBalance(ctx, tx, fromAccount.ID, fromAccount.ApplyDebit(req.Amount), now)
	if err != nil {
		return nil, err
	}

	err = uc.accountRepo.UpdateBalance(ctx, tx, toAccount.ID, toAccount.ApplyCredit(req.Amount), now)
	if err != nil {
		return nil, err
	}

	// Post the entry pair: DEBIT on the source, then CREDIT on the
	// destination, both carrying the transfer ID and amount.
	debit := &domain.LedgerEntry{
		ID:         uc.idGen.Generate(),
		TransferID: req.TransferID,
		AccountID:  fromAccount.ID,
		Type:       domain.EntryTypeDebit,
		Amount:     req.Amount,
		CreatedAt:  now,
	}

	if err := uc.entryRepo.Create(ctx, tx, debit); err != nil {
		return nil, err
	}

	credit := &domain.LedgerEntry{
		ID:         uc.idGen.Generate(),
		TransferID: req.TransferID,
		AccountID:  toAccount.ID,
		Type:       domain.EntryTypeCredit,
		Amount:     req.Amount,
		CreatedAt:  now,
	}

	if err := uc.entryRepo.Create(ctx, tx, credit); err != nil {
		return nil, err
	}

	return uc.recordOutcome(ctx, tx, req, domain.OutcomeStatusSuccess, domain.MessageTransferApplied, now)
}

// recordOutcome persists the one-time outcome and commits. A
// concurrent submission of the same transfer ID loses here with
// domain.ErrDuplicateTransfer, rolling back everything this attempt
// did; the caller re-invokes ApplyTransfer to observe the winner.
func (uc *TransferUseCase) recordOutcome(
	ctx context.Context,
	tx Transaction,
	req domain.TransferRequest,
	status domain.OutcomeStatus,
	message string,
	now time.Time,
) (*domain.TransferOutcome, error) {
	outcome := &domain.TransferOutcome{
		ID:         uc.idGen.Generate(),
		TransferID: req.TransferID,
		Status:     status,
		Message:    message,
		CreatedAt:  now,
	}

	if err := uc.outcomeRepo.Create(ctx, tx, outcome); err != nil {
		return nil, err
	}

	if uc.outboxRepo != nil {
		if err := uc.outboxRepo.Create(ctx, tx, outboxEventFor(uc.idGen.Generate(), req, outcome)); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return outcome, nil
}

func outboxEventFor(id string, req domain.TransferRequest, outcome *domain.TransferOutcome) *domain.OutboxEvent {
	eventType := domain.EventTypeTransferApplied

	var payload any = domain.TransferAppliedEvent{
		TransferID:    req.TransferID,
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        req.Amount.String(),
	}

	if !outcome.Succeeded() {
		eventType = domain.EventTypeTransferRejected
		payload = domain.TransferRejectedEvent{
			TransferID: req.TransferID,
			Reason:     outcome.Message,
		}
	}

	return &domain.OutboxEvent{
		ID:            id,
		AggregateID:   req.TransferID,
		AggregateType: domain.AggregateTypeTransfer,
		EventType:     eventType,
		Payload:       payload,
		CreatedAt:     outcome.CreatedAt,
	}
}

// GetOutcome retrieves the recorded outcome for a transfer ID.
func (uc *TransferUseCase) GetOutcome(ctx context.Context, transferID string) (*domain.TransferOutcome, error) {
	return uc.outcomeRepo.GetByTransferID(ctx, transferID)
}

type nopRetrier struct{}

func (nopRetrier) Retry(_ context.Context, operation func() error) error {
	return operation()
}
