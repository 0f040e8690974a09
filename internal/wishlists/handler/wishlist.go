package handler

import (
	"net/http"

	"venuehub/internal/wishlists/service"
	httputil "venuehub/pkg/http"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type WishlistHandler struct {
	service service.WishlistService
	log     *logger.Logger
}

func NewWishlistHandler(service service.WishlistService, log *logger.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		log:     log,
	}
}

func (h *WishlistHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	items, err := h.service.GetAll(r.Context(), user.UserID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, items); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Add", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	var input model.WishlistInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Add", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	item, err := h.service.Add(r.Context(), user.UserID, &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Add", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, item); err != nil {
		h.log.Error("failed to write created response", "handler", "Add", "operation", "WriteCreated", "error", err)
	}
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Remove", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := h.service.Remove(r.Context(), user.UserID, ps.ByName("venue_id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Remove", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *WishlistHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/wishlist", h.GetAll)
	router.POST("/api/v1/wishlist", h.Add)
	router.DELETE("/api/v1/wishlist/venue/:venue_id", h.Remove)
}
