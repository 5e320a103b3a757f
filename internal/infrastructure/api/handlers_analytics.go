package api

import (
	"net/http"

	"wada-stylist/internal/application/services"
	"wada-stylist/internal/application/usecases"
	"wada-stylist/internal/domain/entities"
)

type AnalyticsHandler struct {
	analyticsUseCase *usecases.AnalyticsUseCase
	parameterService *services.ParameterService
}

func NewAnalyticsHandler(analyticsUseCase *usecases.AnalyticsUseCase, parameterService *services.ParameterService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
		parameterService: parameterService,
	}
}

type trackResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"sessionId,omitempty"`
	Message   string `json:"message,omitempty"`
}

func (h *AnalyticsHandler) HandleTrackVisit(w http.ResponseWriter, r *http.Request) {
	sessionID := SessionIDFromContext(r.Context())
	h.analyticsUseCase.TrackVisit(r.Context(), sessionID, r.UserAgent())
	sendJSON(w, http.StatusOK, trackResponse{Success: true, SessionID: sessionID})
}

func (h *AnalyticsHandler) HandleTrackColor(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ColorData entities.ColorSelection `json:"colorData"`
		Source    string                  `json:"source"`
	}
	if err := h.parameterService.DecodeJSON(r, &body); err != nil {
		sendFailure(w, r, err)
		return
	}

	tracked, err := h.analyticsUseCase.TrackColor(r.Context(), body.ColorData, body.Source)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	if !tracked {
		sendJSON(w, http.StatusOK, trackResponse{Success: true, Message: "Color tracking only enabled for analyzer page"})
		return
	}
	sendJSON(w, http.StatusOK, trackResponse{Success: true})
}

func (h *AnalyticsHandler) HandleTrackCombination(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CombinationIndex int      `json:"combinationIndex"`
		Colors           []string `json:"colors"`
	}
	if err := h.parameterService.DecodeJSON(r, &body); err != nil {
		sendFailure(w, r, err)
		return
	}

	sessionID := SessionIDFromContext(r.Context())
	err := h.analyticsUseCase.TrackCombination(r.Context(), entities.CombinationSelection{
		CombinationIndex: body.CombinationIndex,
		Colors:           body.Colors,
		UserID:           sessionID,
	})
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, trackResponse{Success: true, SessionID: sessionID})
}

func (h *AnalyticsHandler) HandleTrackGender(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Gender string `json:"gender"`
	}
	if err := h.parameterService.DecodeJSON(r, &body); err != nil {
		sendFailure(w, r, err)
		return
	}

	if err := h.analyticsUseCase.TrackGender(r.Context(), body.Gender); err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, trackResponse{Success: true})
}

func (h *AnalyticsHandler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analyticsUseCase.Overview(r.Context())
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, overview)
}

func (h *AnalyticsHandler) HandleColorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsUseCase.ColorStats(r.Context())
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, stats)
}

func (h *AnalyticsHandler) HandlePopularColors(w http.ResponseWriter, r *http.Request) {
	colors, err := h.analyticsUseCase.PopularColors(r.Context())
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]any{"popularColors": colors})
}

func (h *AnalyticsHandler) HandlePopularCombinations(w http.ResponseWriter, r *http.Request) {
	combinations, err := h.analyticsUseCase.PopularCombinations(r.Context())
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]any{"popularCombinations": combinations})
}
