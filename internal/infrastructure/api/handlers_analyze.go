package api

import (
	"net/http"

	"wada-stylist/internal/application/services"
	"wada-stylist/internal/application/usecases"
)

type AnalyzeHandler struct {
	analyzeUseCase   *usecases.AnalyzeUseCase
	selectionUseCase *usecases.SelectionUseCase
	parameterService *services.ParameterService
}

func NewAnalyzeHandler(
	analyzeUseCase *usecases.AnalyzeUseCase,
	selectionUseCase *usecases.SelectionUseCase,
	parameterService *services.ParameterService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzeUseCase:   analyzeUseCase,
		selectionUseCase: selectionUseCase,
		parameterService: parameterService,
	}
}

func (h *AnalyzeHandler) HandleAnalyzeImage(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	image, err := h.parameterService.ParseImage(r)
	if err != nil {
		sendFailure(w, r, err)
		return
	}

	output, err := h.analyzeUseCase.Execute(r.Context(), usecases.AnalyzeInput{
		SessionID: sessionID,
		Image:     image,
	})
	if err != nil {
		sendFailure(w, r, err)
		return
	}

	sendJSON(w, http.StatusOK, output)
}

func (h *AnalyzeHandler) HandleSelection(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}
	h.respond(w, r)(h.selectionUseCase.View(r.Context(), sessionID))
}

func (h *AnalyzeHandler) HandleToggleGarment(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var body struct {
		Clothing string `json:"clothing"`
	}
	if err := h.parameterService.DecodeJSON(r, &body); err != nil {
		sendFailure(w, r, err)
		return
	}
	if body.Clothing == "" {
		sendError(w, "Clothing item is required", http.StatusBadRequest)
		return
	}

	h.respond(w, r)(h.selectionUseCase.ToggleGarment(r.Context(), sessionID, body.Clothing))
}

// HandleSelectCombination selects {index}; a null index clears the selection.
func (h *AnalyzeHandler) HandleSelectCombination(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var body struct {
		Index *int `json:"index"`
	}
	if err := h.parameterService.DecodeJSON(r, &body); err != nil {
		sendFailure(w, r, err)
		return
	}

	h.respond(w, r)(h.selectionUseCase.SelectCombination(r.Context(), sessionID, body.Index))
}

func (h *AnalyzeHandler) HandleSetStyle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var body struct {
		Style string `json:"style"`
	}
	if err := h.parameterService.DecodeJSON(r, &body); err != nil {
		sendFailure(w, r, err)
		return
	}

	h.respond(w, r)(h.selectionUseCase.SetStyle(r.Context(), sessionID, body.Style))
}

// HandleSetColorFilter filters by {color}. An empty color removes the filter.
func (h *AnalyzeHandler) HandleSetColorFilter(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	var body struct {
		Color string `json:"color"`
	}
	if err := h.parameterService.DecodeJSON(r, &body); err != nil {
		sendFailure(w, r, err)
		return
	}

	h.respond(w, r)(h.selectionUseCase.SetColorFilter(r.Context(), sessionID, body.Color))
}

func (h *AnalyzeHandler) HandleClearSelection(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}
	h.respond(w, r)(h.selectionUseCase.ClearSelection(r.Context(), sessionID))
}

func (h *AnalyzeHandler) respond(w http.ResponseWriter, r *http.Request) func(*usecases.SelectionOutput, error) {
	return func(output *usecases.SelectionOutput, err error) {
		if err != nil {
			sendFailure(w, r, err)
			return
		}
		sendJSON(w, http.StatusOK, output)
	}
}
