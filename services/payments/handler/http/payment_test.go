package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfare-app/wayfare/internal/pkg/models"
	"github.com/wayfare-app/wayfare/internal/utils"
	"github.com/wayfare-app/wayfare/services/payments"
	"github.com/wayfare-app/wayfare/services/payments/mocks"
)

func setupPaymentHandlerTest(t *testing.T) (*PaymentHandler, *mocks.MockPaymentUC, *mocks.MockPaymentGW, *mocks.MockPaymentEvents, *echo.Echo, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	mockUC := mocks.NewMockPaymentUC(ctrl)
	mockGW := mocks.NewMockPaymentGW(ctrl)
	mockEvents := mocks.NewMockPaymentEvents(ctrl)

	h := NewPaymentHandler(mockUC, mockGW, mockEvents)

	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	return h, mockUC, mockGW, mockEvents, e, ctrl
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestInitiatePayment_Success(t *testing.T) {
	h, mockUC, _, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	bookingID := uuid.New()
	body := fmt.Sprintf(`{"booking_id":"%s","method":"card"}`, bookingID)
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/payments/initiate", body)

	mockUC.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		Return(&models.InitiatePaymentResponse{
			Reference:   "WF-abc",
			RedirectURL: "https://checkout.example.com/gw-123",
		}, nil)

	err := h.InitiatePayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "WF-abc")
	assert.Contains(t, rec.Body.String(), "checkout.example.com")
}

func TestInitiatePayment_InvalidMethod(t *testing.T) {
	h, _, _, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	body := fmt.Sprintf(`{"booking_id":"%s","method":"barter"}`, uuid.New())
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/payments/initiate", body)

	err := h.InitiatePayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInitiatePayment_BookingNotFound(t *testing.T) {
	h, mockUC, _, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	body := fmt.Sprintf(`{"booking_id":"%s","method":"card"}`, uuid.New())
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/payments/initiate", body)

	mockUC.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		Return(nil, payments.ErrBookingNotFound)

	err := h.InitiatePayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInitiatePayment_ConflictWhenInProgress(t *testing.T) {
	h, mockUC, _, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	body := fmt.Sprintf(`{"booking_id":"%s","method":"card"}`, uuid.New())
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/payments/initiate", body)

	mockUC.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		Return(nil, payments.ErrPaymentInProgress)

	err := h.InitiatePayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestInitiatePayment_BadGatewayWhenUnavailable(t *testing.T) {
	h, mockUC, _, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	body := fmt.Sprintf(`{"booking_id":"%s","method":"card"}`, uuid.New())
	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/payments/initiate", body)

	mockUC.EXPECT().Initiate(gomock.Any(), gomock.Any()).
		Return(nil, payments.ErrGatewayUnavailable)

	err := h.InitiatePayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestVerifyPayment_Settled(t *testing.T) {
	h, mockUC, _, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/payments/verify", `{"reference":"WF-abc"}`)

	mockUC.EXPECT().Reconcile(gomock.Any(), "WF-abc", models.SourceClientVerify).
		Return(&models.ReconcileResult{
			Reference: "WF-abc",
			Status:    models.TransactionStatusSuccess,
			Settled:   true,
		}, nil)

	err := h.VerifyPayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"settled":true`)
	assert.Contains(t, rec.Body.String(), `"status":"success"`)
}

func TestVerifyPayment_UnsettledReportsRetry(t *testing.T) {
	h, mockUC, _, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/payments/verify", `{"reference":"WF-abc"}`)

	mockUC.EXPECT().Reconcile(gomock.Any(), "WF-abc", models.SourceClientVerify).
		Return(&models.ReconcileResult{
			Reference: "WF-abc",
			Status:    models.TransactionStatusInitialized,
			Settled:   false,
		}, nil)

	err := h.VerifyPayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"settled":false`)
	assert.Contains(t, rec.Body.String(), "try again later")
}

func TestVerifyPayment_UnknownReference(t *testing.T) {
	h, mockUC, _, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/payments/verify", `{"reference":"WF-missing"}`)

	mockUC.EXPECT().Reconcile(gomock.Any(), "WF-missing", models.SourceClientVerify).
		Return(nil, payments.ErrUnknownReference)

	err := h.VerifyPayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelPayment_Success(t *testing.T) {
	h, mockUC, _, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	c, rec := newJSONContext(e, http.MethodPost, "/api/v1/payments/cancel", `{"reference":"WF-abc"}`)

	mockUC.EXPECT().Cancel(gomock.Any(), "WF-abc").
		Return(&models.ReconcileResult{
			Reference: "WF-abc",
			Status:    models.TransactionStatusCancelled,
			Settled:   true,
		}, nil)

	err := h.CancelPayment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
}

func TestGetPaymentStatus_Success(t *testing.T) {
	h, mockUC, _, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/WF-abc/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("WF-abc")

	mockUC.EXPECT().GetStatus(gomock.Any(), "WF-abc").
		Return(&models.TransactionStatusResponse{
			Reference: "WF-abc",
			Status:    models.TransactionStatusInitialized,
		}, nil)

	err := h.GetPaymentStatus(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"initialized"`)
}

func TestGetPaymentStatus_Unknown(t *testing.T) {
	h, mockUC, _, _, e, ctrl := setupPaymentHandlerTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/WF-missing/status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("WF-missing")

	mockUC.EXPECT().GetStatus(gomock.Any(), "WF-missing").
		Return(nil, payments.ErrUnknownReference)

	err := h.GetPaymentStatus(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
