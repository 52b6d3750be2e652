package nsq

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/services/notifications/mocks"
)

func notifyMessage(t *testing.T, event models.PaymentNotificationEvent) []byte {
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body
}

func TestHandleMessage_Dispatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotifyConsumer(mockUC)

	mockUC.EXPECT().DispatchPaymentEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, event *models.PaymentNotificationEvent) error {
			assert.Equal(t, "WF-abc", event.Reference)
			assert.Equal(t, models.NotificationPaymentConfirmed, event.Kind)
			return nil
		})

	err := h.HandleMessage(notifyMessage(t, models.PaymentNotificationEvent{
		Kind:          models.NotificationPaymentConfirmed,
		Reference:     "WF-abc",
		CustomerEmail: "amina@example.com",
	}))

	assert.NoError(t, err)
}

func TestHandleMessage_DispatchErrorRequeues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotifyConsumer(mockUC)

	mockUC.EXPECT().DispatchPaymentEvent(gomock.Any(), gomock.Any()).
		Return(errors.New("database down"))

	err := h.HandleMessage(notifyMessage(t, models.PaymentNotificationEvent{
		Kind:          models.NotificationPaymentFailed,
		Reference:     "WF-abc",
		CustomerEmail: "amina@example.com",
	}))

	assert.Error(t, err)
}

func TestHandleMessage_MalformedOrIncompleteDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotifyConsumer(mockUC)

	assert.NoError(t, h.HandleMessage([]byte("not json")))
	assert.NoError(t, h.HandleMessage(notifyMessage(t, models.PaymentNotificationEvent{
		Reference: "WF-abc",
	})))
}
