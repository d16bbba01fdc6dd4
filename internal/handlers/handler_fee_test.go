package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/apperrors"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/domain"
	portssvc "github.com/karanverma966752134-cmyk/gsn-school-app/internal/core/ports/services"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/dto"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/handlers"
	"github.com/karanverma966752134-cmyk/gsn-school-app/internal/middleware"
)

const testJWTSecret = "test-secret"

// --- Mock FeeService ---
type MockFeeService struct {
	mock.Mock
}

var _ portssvc.FeeSvcFacade = (*MockFeeService)(nil)

func (m *MockFeeService) GetOrCreateAccount(ctx context.Context, studentID string, actor domain.Actor) (*domain.FeeAccount, bool, error) {
	args := m.Called(ctx, studentID, actor)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.FeeAccount), args.Bool(1), args.Error(2)
}

func (m *MockFeeService) ListAccounts(ctx context.Context) ([]domain.FeeOverviewRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeeOverviewRow), args.Error(1)
}

func (m *MockFeeService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest, actor domain.Actor) (*dto.RecordPaymentResponse, error) {
	args := m.Called(ctx, req, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RecordPaymentResponse), args.Error(1)
}

func (m *MockFeeService) ListPayments(ctx context.Context, studentID *string) ([]domain.PaymentWithStudent, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentWithStudent), args.Error(1)
}

func (m *MockFeeService) GetReceipt(ctx context.Context, paymentID int64) (*dto.Receipt, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Receipt), args.Error(1)
}

// --- Test Suite ---
type FeeHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockFeeService *MockFeeService
	adminID        string
}

func (s *FeeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockFeeService = new(MockFeeService)
	s.adminID = uuid.NewString()

	feeHandler := handlers.NewFeeHandler(s.mockFeeService)
	paymentHandler := handlers.NewPaymentHandler(s.mockFeeService)

	s.router = gin.New()
	authed := s.router.Group("/api", middleware.AuthMiddleware(testJWTSecret))
	authed.GET("/fees", feeHandler.ListFees)
	authed.GET("/fees/:studentID", feeHandler.GetFeeAccount)
	authed.POST("/fees", middleware.RequireRoles(domain.RoleAdmin, domain.RoleTeacher), feeHandler.RecordPayment)
	authed.GET("/receipt/:id", paymentHandler.GetReceipt)
}

func (s *FeeHandlerTestSuite) generateTestToken(staffID string, role domain.StaffRole) string {
	claims := middleware.AuthClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staffID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	s.Require().NoError(err)
	return signed
}

func (s *FeeHandlerTestSuite) doRequest(method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *FeeHandlerTestSuite) TestRecordPayment_Success() {
	token := s.generateTestToken(s.adminID, domain.RoleAdmin)

	res := &dto.RecordPaymentResponse{
		Success:   true,
		PaymentID: 17,
		Fees: dto.FeeSnapshot{
			Balance:       decimal.NewFromInt(6000),
			LastPaidMonth: "2025-10",
		},
	}
	s.mockFeeService.On("RecordPayment", mock.Anything, mock.MatchedBy(func(req dto.RecordPaymentRequest) bool {
		return req.StudentID == "stu-1" && req.Amount.Equal(decimal.NewFromInt(2500))
	}), mock.MatchedBy(func(a domain.Actor) bool {
		return a.StaffID == s.adminID && a.Role == domain.RoleAdmin
	})).Return(res, nil).Once()

	body := []byte(`{"student_id":"stu-1","amount":2500,"month":"2025-10","mode":"Cash"}`)
	w := s.doRequest(http.MethodPost, "/api/fees", token, body)

	s.Equal(http.StatusCreated, w.Code)

	var got map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal(true, got["success"])
	s.Equal(float64(17), got["paymentId"])
	fees := got["fees"].(map[string]any)
	s.Equal("6000", fees["balance"])
	s.Equal("2025-10", fees["last_paid_month"])

	s.mockFeeService.AssertExpectations(s.T())
}

func (s *FeeHandlerTestSuite) TestRecordPayment_ValidationError() {
	token := s.generateTestToken(s.adminID, domain.RoleAdmin)

	s.mockFeeService.On("RecordPayment", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrValidation).Once()

	body := []byte(`{"student_id":"stu-1","amount":-5}`)
	w := s.doRequest(http.MethodPost, "/api/fees", token, body)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *FeeHandlerTestSuite) TestRecordPayment_StudentNotFound() {
	token := s.generateTestToken(s.adminID, domain.RoleAdmin)

	s.mockFeeService.On("RecordPayment", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound).Once()

	body := []byte(`{"student_id":"missing","amount":100}`)
	w := s.doRequest(http.MethodPost, "/api/fees", token, body)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *FeeHandlerTestSuite) TestRecordPayment_PrincipalForbidden() {
	token := s.generateTestToken(uuid.NewString(), domain.RolePrincipal)

	body := []byte(`{"student_id":"stu-1","amount":100}`)
	w := s.doRequest(http.MethodPost, "/api/fees", token, body)

	s.Equal(http.StatusForbidden, w.Code)
	s.mockFeeService.AssertNotCalled(s.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *FeeHandlerTestSuite) TestRecordPayment_NoToken() {
	body := []byte(`{"student_id":"stu-1","amount":100}`)
	w := s.doRequest(http.MethodPost, "/api/fees", "", body)

	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockFeeService.AssertNotCalled(s.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *FeeHandlerTestSuite) TestRecordPayment_MalformedBody() {
	token := s.generateTestToken(s.adminID, domain.RoleAdmin)

	w := s.doRequest(http.MethodPost, "/api/fees", token, []byte(`{not json`))

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockFeeService.AssertNotCalled(s.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (s *FeeHandlerTestSuite) TestGetFeeAccount_CreatedFlag() {
	token := s.generateTestToken(s.adminID, domain.RoleAdmin)

	account := &domain.FeeAccount{StudentID: "stu-1", Balance: decimal.Zero}
	s.mockFeeService.On("GetOrCreateAccount", mock.Anything, "stu-1", mock.Anything).
		Return(account, true, nil).Once()

	w := s.doRequest(http.MethodGet, "/api/fees/stu-1", token, nil)

	s.Equal(http.StatusOK, w.Code)
	var got map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Equal(true, got["created"])
	s.Equal("0", got["balance"])
}

func (s *FeeHandlerTestSuite) TestListFees_DashForUnpaid() {
	token := s.generateTestToken(s.adminID, domain.RoleAdmin)

	rows := []domain.FeeOverviewRow{
		{StudentID: "stu-1", AdmNo: "2025/045", Name: "Asha", Class: "6", Section: "A", Balance: decimal.NewFromInt(8500)},
	}
	s.mockFeeService.On("ListAccounts", mock.Anything).Return(rows, nil).Once()

	w := s.doRequest(http.MethodGet, "/api/fees", token, nil)

	s.Equal(http.StatusOK, w.Code)
	var got []map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	s.Require().Len(got, 1)
	s.Equal("-", got[0]["last_paid_month"])
	student := got[0]["student"].(map[string]any)
	s.Equal("2025/045", student["adm_no"])
}

func (s *FeeHandlerTestSuite) TestGetReceipt_RendersHTML() {
	token := s.generateTestToken(s.adminID, domain.RoleAdmin)

	receipt := &dto.Receipt{
		ReceiptNo:   17,
		Date:        "14 Oct 2025",
		AdmNo:       "2025/045",
		StudentName: "Asha Kumari",
		Class:       "6",
		Section:     "A",
		Amount:      "2500.00",
		Mode:        "Cash",
	}
	s.mockFeeService.On("GetReceipt", mock.Anything, int64(17)).Return(receipt, nil).Once()

	w := s.doRequest(http.MethodGet, "/api/receipt/17", token, nil)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Header().Get("Content-Type"), "text/html")
	s.Contains(w.Body.String(), "2500.00")
	s.Contains(w.Body.String(), "Asha Kumari")
	s.Contains(w.Body.String(), "2025/045")
}

func (s *FeeHandlerTestSuite) TestGetReceipt_NotFound() {
	token := s.generateTestToken(s.adminID, domain.RoleAdmin)

	s.mockFeeService.On("GetReceipt", mock.Anything, int64(999)).Return(nil, apperrors.ErrNotFound).Once()

	w := s.doRequest(http.MethodGet, "/api/receipt/999", token, nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *FeeHandlerTestSuite) TestGetReceipt_NonNumericID() {
	token := s.generateTestToken(s.adminID, domain.RoleAdmin)

	w := s.doRequest(http.MethodGet, "/api/receipt/abc", token, nil)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockFeeService.AssertNotCalled(s.T(), "GetReceipt", mock.Anything, mock.Anything)
}

func TestFeeHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FeeHandlerTestSuite))
}
