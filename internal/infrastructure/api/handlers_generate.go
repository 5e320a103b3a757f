package api

import (
	"net/http"

	"wada-stylist/internal/application/services"
	"wada-stylist/internal/application/usecases"
)

type GenerateHandler struct {
	generateUseCase  *usecases.GenerateUseCase
	parameterService *services.ParameterService
}

func NewGenerateHandler(generateUseCase *usecases.GenerateUseCase, parameterService *services.ParameterService) *GenerateHandler {
	return &GenerateHandler{
		generateUseCase:  generateUseCase,
		parameterService: parameterService,
	}
}

// HandleGenerateImage renders the outfit from the session's selection. Body fields override it.
func (h *GenerateHandler) HandleGenerateImage(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	input, err := h.parameterService.ParseGenerate(r)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	input.SessionID = sessionID

	output, err := h.generateUseCase.Execute(r.Context(), *input)
	if err != nil {
		sendFailure(w, r, err)
		return
	}

	sendJSON(w, http.StatusOK, output)
}
