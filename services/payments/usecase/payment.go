package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wayfare-app/wayfare/internal/pkg/logger"
	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/services/payments"
)

// PaymentUC implements the payments.PaymentUC interface. It is the state
// machine that reconciles gateway outcomes into the transaction ledger:
// pending -> initialized -> success/failed/cancelled, with terminal states
// absorbing. Outcomes arrive through client verification and gateway
// webhooks in any order, any number of times; conditional updates in the
// ledger guarantee each transition commits exactly once.
type PaymentUC struct {
	cfg    *models.Config
	repo   payments.PaymentRepo
	locker payments.ReferenceLocker
	gw     payments.PaymentGW
	events payments.PaymentEvents
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	repo payments.PaymentRepo,
	locker payments.ReferenceLocker,
	gw payments.PaymentGW,
	events payments.PaymentEvents,
) payments.PaymentUC {
	return &PaymentUC{
		cfg:    cfg,
		repo:   repo,
		locker: locker,
		gw:     gw,
		events: events,
	}
}

// Initiate creates the booking's transaction and initializes it with the
// gateway. A transaction stuck in pending after an earlier gateway failure
// is reused, so retrying initiate with the same booking is idempotent and
// never creates a duplicate ledger row.
func (uc *PaymentUC) Initiate(ctx context.Context, req *models.InitiatePaymentRequest) (*models.InitiatePaymentResponse, error) {
	booking, err := uc.repo.GetBookingByID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking %s: %w", req.BookingID, err)
	}
	if booking == nil {
		return nil, payments.ErrBookingNotFound
	}

	currency := req.Currency
	if currency == "" {
		currency = booking.Currency
	}

	txn, err := uc.repo.GetTransactionByBookingID(ctx, req.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction for booking %s: %w", req.BookingID, err)
	}

	switch {
	case txn == nil:
		txn = &models.Transaction{
			Reference: newReference(),
			BookingID: booking.ID,
			Amount:    booking.TotalAmount,
			Currency:  currency,
			Method:    req.Method,
			Status:    models.TransactionStatusPending,
		}
		if err := uc.repo.CreateTransaction(ctx, txn); err != nil {
			return nil, fmt.Errorf("failed to create transaction: %w", err)
		}
	case txn.Status == models.TransactionStatusPending:
		// Earlier initialization never completed; retry under the same
		// reference.
	case txn.Status == models.TransactionStatusInitialized:
		return nil, payments.ErrPaymentInProgress
	default:
		return nil, payments.ErrPaymentFinalized
	}

	initResp, err := uc.gw.Initialize(ctx, &models.GatewayInitRequest{
		Reference:     txn.Reference,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
		Method:        txn.Method,
		CustomerEmail: booking.CustomerEmail,
		CustomerName:  booking.CustomerName,
		Description:   fmt.Sprintf("Payment for %s booking", booking.Destination),
	})
	if err != nil {
		if errors.Is(err, payments.ErrGatewayRejected) {
			transitioned, ferr := uc.repo.FailTransaction(ctx, txn.Reference, nil)
			if ferr != nil {
				logger.ErrorLog("Failed to record gateway rejection",
					logger.String("reference", txn.Reference),
					logger.Err(ferr))
			} else if transitioned {
				uc.publishNotification(ctx, txn, booking, models.NotificationPaymentFailed)
			}
			return nil, err
		}
		// Transient: the transaction stays pending and the caller may
		// retry initiate with the same reference.
		return nil, err
	}

	transitioned, err := uc.repo.MarkInitialized(ctx, txn.Reference, initResp.GatewayTransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark transaction %s initialized: %w", txn.Reference, err)
	}
	if !transitioned {
		logger.Warn("Transaction already left pending state",
			logger.String("reference", txn.Reference))
	}

	return &models.InitiatePaymentResponse{
		Reference:   txn.Reference,
		RedirectURL: initResp.RedirectURL,
	}, nil
}

// Reconcile applies a fresh authoritative gateway outcome to the transaction
// identified by reference. The webhook payload's own status is never
// trusted; both sources trigger the same verify-then-transition path. A
// per-reference lock serializes concurrent reconcilers; the ledger's
// conditional update decides the single transition winner, which alone
// enqueues the notification job. A result with Settled=false means the
// outcome could not be checked right now and the caller should retry later.
func (uc *PaymentUC) Reconcile(ctx context.Context, reference string, source models.ReconcileSource) (*models.ReconcileResult, error) {
	txn, err := uc.repo.GetTransactionByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", reference, err)
	}
	if txn == nil {
		return nil, payments.ErrUnknownReference
	}

	if txn.Status.IsTerminal() {
		// Absorbing state: duplicate deliveries are no-ops, not errors.
		return &models.ReconcileResult{Reference: reference, Status: txn.Status, Settled: true}, nil
	}

	if txn.Status == models.TransactionStatusPending {
		// Initialization never completed, so the gateway has nothing to
		// verify. A webhook claiming otherwise is treated as unknown.
		if source == models.SourceWebhook {
			return nil, payments.ErrUnknownReference
		}
		return &models.ReconcileResult{Reference: reference, Status: txn.Status, Settled: false}, nil
	}

	release, acquired, err := uc.locker.Lock(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to lock reference %s: %w", reference, err)
	}
	if !acquired {
		// Another reconciler is already verifying this reference.
		return &models.ReconcileResult{Reference: reference, Status: txn.Status, Settled: false}, nil
	}
	defer release()

	// Re-read under the lock: the previous holder may have settled it.
	txn, err = uc.repo.GetTransactionByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transaction %s: %w", reference, err)
	}
	if txn == nil {
		return nil, payments.ErrUnknownReference
	}
	if txn.Status.IsTerminal() {
		return &models.ReconcileResult{Reference: reference, Status: txn.Status, Settled: true}, nil
	}

	verifyRes, err := uc.gw.Verify(ctx, reference)
	if err != nil {
		// Inability to check is not an outcome: the transaction stays
		// initialized and may be reconciled again.
		logger.Warn("Gateway verify failed, leaving transaction untouched",
			logger.String("reference", reference),
			logger.String("source", string(source)),
			logger.Err(err))
		return &models.ReconcileResult{Reference: reference, Status: txn.Status, Settled: false}, nil
	}

	switch verifyRes.Outcome {
	case models.GatewayOutcomeSuccess:
		transitioned, err := uc.repo.CompleteTransaction(ctx, reference, verifyRes.RawPayload, time.Now())
		if err != nil {
			return nil, fmt.Errorf("failed to complete transaction %s: %w", reference, err)
		}
		if !transitioned {
			// Lost the conditional update, possibly to a concurrent cancel;
			// report whatever actually won.
			return uc.currentResult(ctx, reference)
		}
		uc.notifyForReference(ctx, txn, models.NotificationPaymentConfirmed)
		return &models.ReconcileResult{Reference: reference, Status: models.TransactionStatusSuccess, Settled: true}, nil

	case models.GatewayOutcomeFailed:
		transitioned, err := uc.repo.FailTransaction(ctx, reference, verifyRes.RawPayload)
		if err != nil {
			return nil, fmt.Errorf("failed to fail transaction %s: %w", reference, err)
		}
		if !transitioned {
			return uc.currentResult(ctx, reference)
		}
		uc.notifyForReference(ctx, txn, models.NotificationPaymentFailed)
		return &models.ReconcileResult{Reference: reference, Status: models.TransactionStatusFailed, Settled: true}, nil

	default:
		// Gateway still reports the payment in flight.
		return &models.ReconcileResult{Reference: reference, Status: txn.Status, Settled: false}, nil
	}
}

// Cancel moves an initialized transaction to cancelled before an outcome.
// Cancelling an already-terminal transaction is a no-op reporting the
// current state.
func (uc *PaymentUC) Cancel(ctx context.Context, reference string) (*models.ReconcileResult, error) {
	txn, err := uc.repo.GetTransactionByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", reference, err)
	}
	if txn == nil {
		return nil, payments.ErrUnknownReference
	}

	if txn.Status.IsTerminal() {
		return &models.ReconcileResult{Reference: reference, Status: txn.Status, Settled: true}, nil
	}

	transitioned, err := uc.repo.CancelTransaction(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel transaction %s: %w", reference, err)
	}
	if !transitioned {
		// Lost the race against a reconciler; report whatever won.
		return uc.currentResult(ctx, reference)
	}

	return &models.ReconcileResult{Reference: reference, Status: models.TransactionStatusCancelled, Settled: true}, nil
}

// currentResult re-reads the transaction after a lost conditional update and
// reports the state the winner left behind.
func (uc *PaymentUC) currentResult(ctx context.Context, reference string) (*models.ReconcileResult, error) {
	current, err := uc.repo.GetTransactionByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transaction %s: %w", reference, err)
	}
	if current == nil {
		return nil, payments.ErrUnknownReference
	}
	return &models.ReconcileResult{Reference: reference, Status: current.Status, Settled: current.Status.IsTerminal()}, nil
}

// GetStatus returns a read-only projection of the transaction
func (uc *PaymentUC) GetStatus(ctx context.Context, reference string) (*models.TransactionStatusResponse, error) {
	txn, err := uc.repo.GetTransactionByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction %s: %w", reference, err)
	}
	if txn == nil {
		return nil, payments.ErrUnknownReference
	}

	resp := &models.TransactionStatusResponse{
		Reference: txn.Reference,
		BookingID: txn.BookingID,
		Amount:    txn.Amount,
		Currency:  txn.Currency,
		Method:    txn.Method,
		Status:    txn.Status,
		PaidAt:    txn.PaidAt,
		CreatedAt: txn.CreatedAt,
	}
	if txn.GatewayTransactionID.Valid {
		resp.GatewayTransactionID = txn.GatewayTransactionID.String
	}

	return resp, nil
}

// notifyForReference loads the booking behind the transaction and publishes
// the notification event. The transition has already committed; failures
// here are logged and never affect payment state.
func (uc *PaymentUC) notifyForReference(ctx context.Context, txn *models.Transaction, kind models.NotificationKind) {
	booking, err := uc.repo.GetBookingByID(ctx, txn.BookingID)
	if err != nil || booking == nil {
		logger.ErrorLog("Failed to load booking for notification",
			logger.String("reference", txn.Reference),
			logger.Err(err))
		return
	}
	uc.publishNotification(ctx, txn, booking, kind)
}

func (uc *PaymentUC) publishNotification(ctx context.Context, txn *models.Transaction, booking *models.Booking, kind models.NotificationKind) {
	event := &models.PaymentNotificationEvent{
		Kind:          kind,
		Reference:     txn.Reference,
		BookingID:     booking.ID.String(),
		Destination:   booking.Destination,
		CustomerName:  booking.CustomerName,
		CustomerEmail: booking.CustomerEmail,
		Amount:        txn.Amount,
		Currency:      txn.Currency,
	}

	if err := uc.events.PublishNotificationEvent(event); err != nil {
		logger.ErrorLog("Failed to enqueue payment notification",
			logger.String("reference", txn.Reference),
			logger.String("kind", string(kind)),
			logger.Err(err))
	}
}

func newReference() string {
	return fmt.Sprintf("WF-%s", uuid.New().String())
}
