package nsq

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/services/payments"
	"github.com/wayfare-app/wayfare/services/payments/mocks"
)

func webhookMessage(t *testing.T, reference, status string) []byte {
	body, err := json.Marshal(models.WebhookEvent{Reference: reference, Status: status})
	require.NoError(t, err)
	return body
}

func TestHandleMessage_SettledFinishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewWebhookConsumer(mockUC)

	mockUC.EXPECT().Reconcile(gomock.Any(), "WF-abc", models.SourceWebhook).
		Return(&models.ReconcileResult{
			Reference: "WF-abc",
			Status:    models.TransactionStatusSuccess,
			Settled:   true,
		}, nil)

	err := h.HandleMessage(webhookMessage(t, "WF-abc", "success"))

	assert.NoError(t, err)
}

func TestHandleMessage_UnsettledRequeues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewWebhookConsumer(mockUC)

	mockUC.EXPECT().Reconcile(gomock.Any(), "WF-abc", models.SourceWebhook).
		Return(&models.ReconcileResult{
			Reference: "WF-abc",
			Status:    models.TransactionStatusInitialized,
			Settled:   false,
		}, nil)

	err := h.HandleMessage(webhookMessage(t, "WF-abc", "success"))

	assert.Error(t, err)
}

func TestHandleMessage_UnknownReferenceDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewWebhookConsumer(mockUC)

	mockUC.EXPECT().Reconcile(gomock.Any(), "WF-missing", models.SourceWebhook).
		Return(nil, payments.ErrUnknownReference)

	// Unknown references are poison; dropping them keeps the queue moving.
	err := h.HandleMessage(webhookMessage(t, "WF-missing", "success"))

	assert.NoError(t, err)
}

func TestHandleMessage_RepoErrorRequeues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewWebhookConsumer(mockUC)

	mockUC.EXPECT().Reconcile(gomock.Any(), "WF-abc", models.SourceWebhook).
		Return(nil, errors.New("database down"))

	err := h.HandleMessage(webhookMessage(t, "WF-abc", "success"))

	assert.Error(t, err)
}

func TestHandleMessage_MalformedDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockPaymentUC(ctrl)
	h := NewWebhookConsumer(mockUC)

	assert.NoError(t, h.HandleMessage([]byte("not json")))
	assert.NoError(t, h.HandleMessage(webhookMessage(t, "", "success")))
}
