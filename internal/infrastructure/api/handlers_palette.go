package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"wada-stylist/internal/application/usecases"
)

type PaletteHandler struct {
	paletteUseCase *usecases.PaletteUseCase
}

func NewPaletteHandler(paletteUseCase *usecases.PaletteUseCase) *PaletteHandler {
	return &PaletteHandler{paletteUseCase: paletteUseCase}
}

func (h *PaletteHandler) HandleColors(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]any{"colors": h.paletteUseCase.Colors()})
}

func (h *PaletteHandler) HandleColor(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		sendError(w, "Invalid color index", http.StatusBadRequest)
		return
	}

	detail, err := h.paletteUseCase.Color(index)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, detail)
}

func (h *PaletteHandler) HandleCombinations(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]any{"combinations": h.paletteUseCase.Combinations()})
}

func (h *PaletteHandler) HandleCombination(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		sendError(w, "Invalid combination index", http.StatusBadRequest)
		return
	}

	comb, err := h.paletteUseCase.Combination(index)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, comb)
}
