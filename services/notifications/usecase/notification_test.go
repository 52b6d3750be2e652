package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfare-app/wayfare/internal/pkg/logger"
	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/services/notifications"
	"github.com/wayfare-app/wayfare/services/notifications/mocks"
)

func newTestNotificationUC(t *testing.T, maxRetries int) (notifications.NotificationUC, *mocks.MockNotificationRepo, *mocks.MockMailer, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockMailer := mocks.NewMockMailer(ctrl)

	cfg := &models.Config{
		Notification: models.NotificationConfig{
			MaxRetries:  maxRetries,
			BaseDelayMs: 1,
			MaxDelaySec: 1,
			Multiplier:  2.0,
		},
	}

	zapLogger, err := logger.NewZapLogger(logger.ZapConfig{Level: "error"})
	require.NoError(t, err)

	uc := NewNotificationUC(cfg, mockRepo, mockMailer, zapLogger)
	return uc, mockRepo, mockMailer, ctrl
}

func confirmedEvent() *models.PaymentNotificationEvent {
	return &models.PaymentNotificationEvent{
		Kind:          models.NotificationPaymentConfirmed,
		Reference:     "WF-abc",
		Destination:   "Zanzibar",
		CustomerName:  "Amina Yusuf",
		CustomerEmail: "amina@example.com",
		Amount:        1500.00,
		Currency:      "NGN",
	}
}

func TestDispatchPaymentEvent_SendsOnFirstAttempt(t *testing.T) {
	// Arrange
	uc, _, mockMailer, ctrl := newTestNotificationUC(t, 2)
	defer ctrl.Finish()

	event := confirmedEvent()
	mockMailer.EXPECT().SendPaymentEmail(event).Return(nil)

	// Act
	err := uc.DispatchPaymentEvent(context.Background(), event)

	// Assert
	assert.NoError(t, err)
}

func TestDispatchPaymentEvent_RetriesThenSucceeds(t *testing.T) {
	// Arrange
	uc, _, mockMailer, ctrl := newTestNotificationUC(t, 3)
	defer ctrl.Finish()

	event := confirmedEvent()
	gomock.InOrder(
		mockMailer.EXPECT().SendPaymentEmail(event).Return(errors.New("smtp timeout")),
		mockMailer.EXPECT().SendPaymentEmail(event).Return(errors.New("smtp timeout")),
		mockMailer.EXPECT().SendPaymentEmail(event).Return(nil),
	)

	// Act
	err := uc.DispatchPaymentEvent(context.Background(), event)

	// Assert
	assert.NoError(t, err)
}

func TestDispatchPaymentEvent_ExhaustedRetriesRecordsFailure(t *testing.T) {
	// Arrange
	uc, mockRepo, mockMailer, ctrl := newTestNotificationUC(t, 2)
	defer ctrl.Finish()

	event := confirmedEvent()
	mockMailer.EXPECT().SendPaymentEmail(event).
		Return(errors.New("smtp down")).Times(3)
	mockRepo.EXPECT().RecordFailure(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, failure *models.NotificationFailure) error {
			assert.Equal(t, "WF-abc", failure.Reference)
			assert.Equal(t, "amina@example.com", failure.Recipient)
			assert.Equal(t, models.NotificationPaymentConfirmed, failure.Kind)
			assert.Equal(t, 3, failure.Attempts)
			assert.Contains(t, failure.Reason, "smtp down")
			return nil
		})

	// Act
	err := uc.DispatchPaymentEvent(context.Background(), event)

	// Assert: the event is handled once the failure is recorded.
	assert.NoError(t, err)
}

func TestDispatchPaymentEvent_ZeroRetryBudgetSendsOnce(t *testing.T) {
	// Arrange
	uc, mockRepo, mockMailer, ctrl := newTestNotificationUC(t, 0)
	defer ctrl.Finish()

	event := confirmedEvent()
	mockMailer.EXPECT().SendPaymentEmail(event).
		Return(errors.New("smtp down")).Times(1)
	mockRepo.EXPECT().RecordFailure(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, failure *models.NotificationFailure) error {
			assert.Equal(t, 1, failure.Attempts)
			return nil
		})

	// Act
	err := uc.DispatchPaymentEvent(context.Background(), event)

	// Assert: a zero budget means exactly one attempt, not the default three.
	assert.NoError(t, err)
}

func TestDispatchPaymentEvent_FailureRecordErrorPropagates(t *testing.T) {
	// Arrange
	uc, mockRepo, mockMailer, ctrl := newTestNotificationUC(t, 0)
	defer ctrl.Finish()

	event := confirmedEvent()
	mockMailer.EXPECT().SendPaymentEmail(event).Return(errors.New("smtp down"))
	mockRepo.EXPECT().RecordFailure(gomock.Any(), gomock.Any()).
		Return(errors.New("database down"))

	// Act
	err := uc.DispatchPaymentEvent(context.Background(), event)

	// Assert: the consumer requeues on this error.
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database down")
}
