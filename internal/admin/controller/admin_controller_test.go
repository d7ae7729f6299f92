package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"roulette_webapp/domain"
	"roulette_webapp/internal/admin/mocks"
	"roulette_webapp/internal/service/logger"
	"roulette_webapp/internal/service/middleware"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func adminClaims() *middleware.JwtClaims {
	return &middleware.JwtClaims{UserId: "admin"}
}

func authorizedRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	req.Header.Set("JWT-Token", "Bearer valid-token")
	return req
}

func TestAdminLogin(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success - Issues Token", func(t *testing.T) {
		mockUsecase := new(mocks.MockAdminUsecase)
		mockJwt := new(mocks.MockJwtTokenService)
		handler := NewAdminHandler(mockUsecase, mockJwt)

		mockUsecase.On("Login", mock.Anything, "hunter2").Return(nil)
		mockJwt.On("Create", "admin", mock.AnythingOfType("int64")).Return("issued-token", nil)

		body, _ := json.Marshal(domain.AdminLoginRequest{Password: "hunter2"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var response map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, "issued-token", response["token"])
		mockUsecase.AssertExpectations(t)
		mockJwt.AssertExpectations(t)
	})

	t.Run("Failure - Wrong Password", func(t *testing.T) {
		mockUsecase := new(mocks.MockAdminUsecase)
		mockJwt := new(mocks.MockJwtTokenService)
		handler := NewAdminHandler(mockUsecase, mockJwt)

		mockUsecase.On("Login", mock.Anything, "wrong").Return(errors.New("invalid credentials"))

		body, _ := json.Marshal(domain.AdminLoginRequest{Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()

		handler.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockJwt.AssertNotCalled(t, "Create")
	})
}

func TestAdminListUsers(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		mockUsecase := new(mocks.MockAdminUsecase)
		mockJwt := new(mocks.MockJwtTokenService)
		handler := NewAdminHandler(mockUsecase, mockJwt)

		mockJwt.On("Validate", "valid-token").Return(adminClaims(), nil)
		mockUsecase.On("ListUsers", mock.Anything).Return([]domain.User{{UserID: "42", Balance: 875}}, nil)

		req := authorizedRequest(http.MethodGet, "/api/admin/users", nil)
		rec := httptest.NewRecorder()

		handler.ListUsers(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var response []domain.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		require.Len(t, response, 1)
		assert.Equal(t, "42", response[0].UserID)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Failure - Missing JWT-Token Header", func(t *testing.T) {
		mockUsecase := new(mocks.MockAdminUsecase)
		mockJwt := new(mocks.MockJwtTokenService)
		handler := NewAdminHandler(mockUsecase, mockJwt)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
		rec := httptest.NewRecorder()

		handler.ListUsers(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockUsecase.AssertNotCalled(t, "ListUsers")
	})

	t.Run("Failure - Non-Admin Subject", func(t *testing.T) {
		mockUsecase := new(mocks.MockAdminUsecase)
		mockJwt := new(mocks.MockJwtTokenService)
		handler := NewAdminHandler(mockUsecase, mockJwt)

		mockJwt.On("Validate", "valid-token").Return(&middleware.JwtClaims{UserId: "42"}, nil)

		req := authorizedRequest(http.MethodGet, "/api/admin/users", nil)
		rec := httptest.NewRecorder()

		handler.ListUsers(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockUsecase.AssertNotCalled(t, "ListUsers")
	})
}

func TestAdminUpdateUser(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		mockUsecase := new(mocks.MockAdminUsecase)
		mockJwt := new(mocks.MockJwtTokenService)
		handler := NewAdminHandler(mockUsecase, mockJwt)

		mockJwt.On("Validate", "valid-token").Return(adminClaims(), nil)
		mockUsecase.On("UpdateUser", mock.Anything, "42", mock.AnythingOfType("domain.AdminUserUpdate")).
			Return(&domain.User{UserID: "42", Balance: 500}, nil)

		req := authorizedRequest(http.MethodPut, "/api/admin/users/42", []byte(`{"balance":500}`))
		req = mux.SetURLVars(req, map[string]string{"userId": "42"})
		rec := httptest.NewRecorder()

		handler.UpdateUser(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var response domain.User
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, 500, response.Balance)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Failure - User Not Found", func(t *testing.T) {
		mockUsecase := new(mocks.MockAdminUsecase)
		mockJwt := new(mocks.MockJwtTokenService)
		handler := NewAdminHandler(mockUsecase, mockJwt)

		mockJwt.On("Validate", "valid-token").Return(adminClaims(), nil)
		mockUsecase.On("UpdateUser", mock.Anything, "99", mock.AnythingOfType("domain.AdminUserUpdate")).
			Return(nil, errors.New("user not found"))

		req := authorizedRequest(http.MethodPut, "/api/admin/users/99", []byte(`{"balance":500}`))
		req = mux.SetURLVars(req, map[string]string{"userId": "99"})
		rec := httptest.NewRecorder()

		handler.UpdateUser(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAdminDeleteInventoryItem(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		mockUsecase := new(mocks.MockAdminUsecase)
		mockJwt := new(mocks.MockJwtTokenService)
		handler := NewAdminHandler(mockUsecase, mockJwt)

		mockJwt.On("Validate", "valid-token").Return(adminClaims(), nil)
		mockUsecase.On("DeleteInventoryItem", mock.Anything, "42", 7).Return(nil)

		req := authorizedRequest(http.MethodDelete, "/api/admin/users/42/inventory/7", nil)
		req = mux.SetURLVars(req, map[string]string{"userId": "42", "itemId": "7"})
		rec := httptest.NewRecorder()

		handler.DeleteInventoryItem(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Failure - Malformed Item ID", func(t *testing.T) {
		mockUsecase := new(mocks.MockAdminUsecase)
		mockJwt := new(mocks.MockJwtTokenService)
		handler := NewAdminHandler(mockUsecase, mockJwt)

		mockJwt.On("Validate", "valid-token").Return(adminClaims(), nil)

		req := authorizedRequest(http.MethodDelete, "/api/admin/users/42/inventory/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"userId": "42", "itemId": "abc"})
		rec := httptest.NewRecorder()

		handler.DeleteInventoryItem(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockUsecase.AssertNotCalled(t, "DeleteInventoryItem")
	})
}

func TestAdminGetStats(t *testing.T) {
	logger.AccessLogger = zap.NewNop()

	t.Run("Success", func(t *testing.T) {
		mockUsecase := new(mocks.MockAdminUsecase)
		mockJwt := new(mocks.MockJwtTokenService)
		handler := NewAdminHandler(mockUsecase, mockJwt)

		mockJwt.On("Validate", "valid-token").Return(adminClaims(), nil)
		mockUsecase.On("GetStats", mock.Anything).Return(&domain.AdminStatsResponse{
			TotalUsers: 10,
			TotalSpins: 200,
			TotalWins:  100,
			WinRate:    50,
		}, nil)

		req := authorizedRequest(http.MethodGet, "/api/admin/stats", nil)
		rec := httptest.NewRecorder()

		handler.GetStats(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var response domain.AdminStatsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, int64(10), response.TotalUsers)
		assert.Equal(t, 50.0, response.WinRate)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Token", func(t *testing.T) {
		mockUsecase := new(mocks.MockAdminUsecase)
		mockJwt := new(mocks.MockJwtTokenService)
		handler := NewAdminHandler(mockUsecase, mockJwt)

		mockJwt.On("Validate", "valid-token").Return(nil, errors.New("Invalid JWT token"))

		req := authorizedRequest(http.MethodGet, "/api/admin/stats", nil)
		rec := httptest.NewRecorder()

		handler.GetStats(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockUsecase.AssertNotCalled(t, "GetStats")
	})
}
