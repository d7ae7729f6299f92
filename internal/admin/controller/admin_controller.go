package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"roulette_webapp/domain"
	"roulette_webapp/internal/admin/usecase"
	"roulette_webapp/internal/service/logger"
	"roulette_webapp/internal/service/middleware"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

const adminSubject = "admin"

type AdminHandler struct {
	usecase  usecase.AdminUsecase
	jwtToken middleware.JwtTokenService
}

func NewAdminHandler(usecase usecase.AdminUsecase, jwtToken middleware.JwtTokenService) *AdminHandler {
	return &AdminHandler{
		usecase:  usecase,
		jwtToken: jwtToken,
	}
}

// authorize validates the admin session token from the JWT-Token header.
func (h *AdminHandler) authorize(r *http.Request) error {
	authHeader := r.Header.Get("JWT-Token")
	if authHeader == "" {
		return errors.New("Missing JWT-Token header")
	}
	if len(authHeader) <= len("Bearer ") {
		return errors.New("Invalid JWT token")
	}
	tokenString := authHeader[len("Bearer "):]
	claims, err := h.jwtToken.Validate(tokenString)
	if err != nil || claims.UserId != adminSubject {
		return errors.New("Invalid JWT token")
	}
	return nil
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received AdminLogin request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var creds domain.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	if err := h.usecase.Login(ctx, creds.Password); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	tokenExpTime := time.Now().Add(24 * time.Hour).Unix()
	jwtToken, err := h.jwtToken.Create(adminSubject, tokenExpTime)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	body := map[string]interface{}{
		"token": jwtToken,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed AdminLogin request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received ListUsers request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if err := h.authorize(r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	users, err := h.usecase.ListUsers(ctx)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(users); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed ListUsers request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received UpdateUser request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if err := h.authorize(r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	userID := sanitizer.Sanitize(mux.Vars(r)["userId"])

	var update domain.AdminUserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	user, err := h.usecase.UpdateUser(ctx, userID, update)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(user); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed UpdateUser request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AdminHandler) DeleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received DeleteInventoryItem request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if err := h.authorize(r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	vars := mux.Vars(r)
	userID := vars["userId"]
	itemID, err := strconv.Atoi(vars["itemId"])
	if err != nil {
		h.handleError(w, errors.New("item not found"), requestID)
		return
	}

	if err := h.usecase.DeleteInventoryItem(ctx, userID, itemID); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]bool{"success": true}); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed DeleteInventoryItem request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetStats request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	if err := h.authorize(r); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	stats, err := h.usecase.GetStats(ctx)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetStats request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *AdminHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch err.Error() {
	case "invalid credentials", "Missing JWT-Token header", "Invalid JWT token":
		w.WriteHeader(http.StatusUnauthorized)
	case "balance must not be negative", "total spins must not be negative", "total wins must not be negative":
		w.WriteHeader(http.StatusBadRequest)
	case "user not found", "item not found":
		w.WriteHeader(http.StatusNotFound)
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
