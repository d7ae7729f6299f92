package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"roulette_webapp/domain"
	authController "roulette_webapp/internal/auth/controller"
	authUsecase "roulette_webapp/internal/auth/usecase"
	"roulette_webapp/internal/game/usecase"
	"roulette_webapp/internal/service/logger"
	"roulette_webapp/internal/service/middleware"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type GameHandler struct {
	usecase  usecase.GameUsecase
	verifier authUsecase.InitDataVerifier
}

func NewGameHandler(usecase usecase.GameUsecase, verifier authUsecase.InitDataVerifier) *GameHandler {
	return &GameHandler{
		usecase:  usecase,
		verifier: verifier,
	}
}

func (h *GameHandler) authenticate(r *http.Request) (*domain.TelegramUser, error) {
	initData, err := authController.ExtractInitData(r)
	if err != nil {
		return nil, err
	}
	return h.verifier.Verify(initData)
}

func (h *GameHandler) Spin(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	sanitizer := bluemonday.UGCPolicy()
	defer cancel()

	logger.AccessLogger.Info("Received Spin request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	tgUser, err := h.authenticate(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	var data domain.SpinRequest
	if err = json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.handleError(w, err, requestID)
		return
	}
	data.BetChoice = sanitizer.Sanitize(data.BetChoice)

	response, err := h.usecase.Spin(ctx, *tgUser, data.BetChoice)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed Spin request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *GameHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received GetInventory request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	tgUser, err := h.authenticate(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	items, err := h.usecase.GetInventory(ctx, tgUser.Identity())
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(items); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed GetInventory request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *GameHandler) ClaimItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())
	ctx, cancel := middleware.WithTimeout(r.Context())
	defer cancel()

	logger.AccessLogger.Info("Received ClaimItem request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	tgUser, err := h.authenticate(r)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		h.handleError(w, errors.New("item not found"), requestID)
		return
	}

	response, err := h.usecase.ClaimItem(ctx, tgUser.Identity(), itemID)
	if err != nil {
		h.handleError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.handleError(w, err, requestID)
		return
	}

	duration := time.Since(start)
	logger.AccessLogger.Info("Completed ClaimItem request",
		zap.String("request_id", requestID),
		zap.Duration("duration", duration),
		zap.Int("status", http.StatusOK),
	)
}

func (h *GameHandler) handleError(w http.ResponseWriter, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	w.Header().Set("Content-Type", "application/json")
	errorResponse := map[string]string{"error": err.Error()}

	switch err.Error() {
	case "invalid credentials":
		w.WriteHeader(http.StatusUnauthorized)
	case "unknown bet choice", "insufficient balance", "this item cannot be claimed":
		w.WriteHeader(http.StatusBadRequest)
	case "item not found", "user not found":
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
