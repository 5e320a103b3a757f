package api

import (
	"net/http"

	"wada-stylist/internal/application/services"
	"wada-stylist/internal/application/usecases"
	"wada-stylist/internal/domain/entities"
)

type ShoppingHandler struct {
	shoppingUseCase  *usecases.ShoppingUseCase
	parameterService *services.ParameterService
}

func NewShoppingHandler(shoppingUseCase *usecases.ShoppingUseCase, parameterService *services.ParameterService) *ShoppingHandler {
	return &ShoppingHandler{
		shoppingUseCase:  shoppingUseCase,
		parameterService: parameterService,
	}
}

func (h *ShoppingHandler) HandleAnalyzeOutfit(w http.ResponseWriter, r *http.Request) {
	image, err := h.parameterService.ParseImage(r)
	if err != nil {
		sendFailure(w, r, err)
		return
	}

	output, err := h.shoppingUseCase.AnalyzeOutfit(r.Context(), SessionIDFromContext(r.Context()), image)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, output)
}

func (h *ShoppingHandler) HandleSearchSites(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Items  []entities.OutfitItem `json:"items"`
		Gender string                `json:"gender"`
	}
	if err := h.parameterService.DecodeJSON(r, &body); err != nil {
		sendFailure(w, r, err)
		return
	}

	results, err := h.shoppingUseCase.SearchSites(body.Items, body.Gender)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]any{"searchResults": results})
}
