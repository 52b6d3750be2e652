package payments

import (
	"context"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

// PaymentUC defines the interface for payment use cases
type PaymentUC interface {
	// Initiate creates the booking's transaction (or reuses a stuck pending
	// one) and initializes it with the gateway, returning the hosted-payment
	// redirect target.
	Initiate(ctx context.Context, req *models.InitiatePaymentRequest) (*models.InitiatePaymentResponse, error)

	// Reconcile applies a fresh authoritative gateway outcome to the
	// transaction identified by reference. It is idempotent and safe to call
	// concurrently from both delivery channels.
	Reconcile(ctx context.Context, reference string, source models.ReconcileSource) (*models.ReconcileResult, error)

	// Cancel moves an initialized transaction to cancelled before an outcome
	Cancel(ctx context.Context, reference string) (*models.ReconcileResult, error)

	// GetStatus returns a read-only projection of the transaction
	GetStatus(ctx context.Context, reference string) (*models.TransactionStatusResponse, error)
}
