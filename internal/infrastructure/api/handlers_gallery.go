package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"wada-stylist/internal/application/usecases"
)

type GalleryHandler struct {
	galleryUseCase *usecases.GalleryUseCase
}

func NewGalleryHandler(galleryUseCase *usecases.GalleryUseCase) *GalleryHandler {
	return &GalleryHandler{galleryUseCase: galleryUseCase}
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *GalleryHandler) HandleSessionImages(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	output, err := h.galleryUseCase.List(r.Context(), sessionID)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, output)
}

func (h *GalleryHandler) HandleSessionInfo(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	output, err := h.galleryUseCase.Info(r.Context(), sessionID)
	if err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, output)
}

func (h *GalleryHandler) HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.galleryUseCase.Delete(r.Context(), sessionID, mux.Vars(r)["filename"]); err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Image deleted"})
}

func (h *GalleryHandler) HandleCleanupSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := requireSession(w, r)
	if !ok {
		return
	}

	if err := h.galleryUseCase.Cleanup(r.Context(), sessionID); err != nil {
		sendFailure(w, r, err)
		return
	}
	sendJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Session images cleaned up"})
}
