package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
)

func newWebhookContext(e *echo.Echo, body, signature string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleWebhook_ValidSignatureEnqueues(t *testing.T) {
	h, _, mockGW, mockEvents, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	body := `{"tx_ref":"WF-abc","status":"success"}`
	c, rec := newWebhookContext(e, body, "valid-signature")

	mockGW.EXPECT().ValidateWebhookSignature([]byte(body), "valid-signature").Return(true)
	mockEvents.EXPECT().PublishWebhookEvent(gomock.Any()).
		DoAndReturn(func(event *models.WebhookEvent) error {
			assert.Equal(t, "WF-abc", event.Reference)
			assert.Equal(t, "success", event.Status)
			assert.NotZero(t, event.ReceivedAt)
			return nil
		})

	err := h.HandleWebhook(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleWebhook_InvalidSignatureRejected(t *testing.T) {
	h, _, mockGW, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	body := `{"tx_ref":"WF-abc","status":"success"}`
	c, rec := newWebhookContext(e, body, "bad-signature")

	mockGW.EXPECT().ValidateWebhookSignature([]byte(body), "bad-signature").Return(false)
	// The event is never enqueued.

	err := h.HandleWebhook(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleWebhook_MissingSignatureRejected(t *testing.T) {
	h, _, mockGW, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	body := `{"tx_ref":"WF-abc","status":"success"}`
	c, rec := newWebhookContext(e, body, "")

	mockGW.EXPECT().ValidateWebhookSignature([]byte(body), "").Return(false)

	err := h.HandleWebhook(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandleWebhook_MissingReference(t *testing.T) {
	h, _, mockGW, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	body := `{"status":"success"}`
	c, rec := newWebhookContext(e, body, "valid-signature")

	mockGW.EXPECT().ValidateWebhookSignature([]byte(body), "valid-signature").Return(true)

	err := h.HandleWebhook(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleWebhook_EnqueueFailure(t *testing.T) {
	h, _, mockGW, mockEvents, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	body := `{"tx_ref":"WF-abc","status":"success"}`
	c, rec := newWebhookContext(e, body, "valid-signature")

	mockGW.EXPECT().ValidateWebhookSignature([]byte(body), "valid-signature").Return(true)
	mockEvents.EXPECT().PublishWebhookEvent(gomock.Any()).Return(errors.New("nsq down"))

	err := h.HandleWebhook(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
