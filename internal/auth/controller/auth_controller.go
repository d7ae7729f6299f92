package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"roulette_webapp/internal/auth/usecase"
	"roulette_webapp/internal/service/logger"
	"roulette_webapp/internal/service/middleware"

	"go.uber.org/zap"
)

type AuthHandler struct {
	usecase usecase.AuthUsecase
}

func NewAuthHandler(usecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		usecase: usecase,
	}
}

// ExtractInitData pulls the raw init data out of the Authorization header.
// The front-end sends it as "Bearer <initData>".
func ExtractInitData(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", usecase.ErrInvalidCredentials
	}
	initData := strings.TrimPrefix(authHeader, "Bearer ")
	if initData == authHeader || initData == "" {
		return "", usecase.ErrInvalidCredentials
	}
	return initData, nil
}

func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetProfile request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	initData, err := ExtractInitData(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	profile, err := h.usecase.AuthenticateUser(ctx, initData)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(profile); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetProfile request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AuthHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		w.WriteHeader(http.StatusUnauthorized)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if jsonErr := json.NewEncoder(w).Encode(errorResponse); jsonErr != nil {
		logger.AccessLogger.Error("Failed to encode error response",
			zap.String("request_id", requestID),
			zap.Error(jsonErr),
		)
		http.Error(w, jsonErr.Error(), http.StatusInternalServerError)
	}
}
