package handler

import (
	"net/http"

	"venuehub/internal/bookings/flow"
	"venuehub/internal/bookings/receipt"
	"venuehub/internal/bookings/service"
	httputil "venuehub/pkg/http"
	"venuehub/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

type startFlowRequest struct {
	VenueID string `json:"venue_id"`
}

func (h *BookingHandler) StartFlow(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		h.writeError(w, "StartFlow", err)
		return
	}

	var req startFlowRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "StartFlow", err)
		return
	}

	view, err := h.service.StartFlow(r.Context(), user, req.VenueID)
	if err != nil {
		h.writeError(w, "StartFlow", err)
		return
	}

	if err := httputil.WriteCreated(w, view); err != nil {
		h.log.Error("failed to write created response", "handler", "StartFlow", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) GetFlow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		h.writeError(w, "GetFlow", err)
		return
	}

	view, err := h.service.GetFlow(r.Context(), user, ps.ByName("token"))
	if err != nil {
		h.writeError(w, "GetFlow", err)
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "GetFlow", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) SubmitDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		h.writeError(w, "SubmitDetails", err)
		return
	}

	var details flow.Details
	if err := httputil.DecodeJSON(r, &details); err != nil {
		h.writeError(w, "SubmitDetails", err)
		return
	}

	view, err := h.service.SubmitDetails(r.Context(), user, ps.ByName("token"), details)
	if err != nil {
		h.writeError(w, "SubmitDetails", err)
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "SubmitDetails", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Back(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		h.writeError(w, "Back", err)
		return
	}

	view, err := h.service.Back(r.Context(), user, ps.ByName("token"))
	if err != nil {
		h.writeError(w, "Back", err)
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "Back", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) SubmitPayment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		h.writeError(w, "SubmitPayment", err)
		return
	}

	view, err := h.service.SubmitPayment(r.Context(), user, ps.ByName("token"))
	if err != nil {
		h.writeError(w, "SubmitPayment", err)
		return
	}

	if err := httputil.WriteSuccess(w, view); err != nil {
		h.log.Error("failed to write success response", "handler", "SubmitPayment", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	bookings, total, err := h.service.GetAll(r.Context(), user.UserID, limit, offset)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WritePaginated(w, bookings, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	booking, err := h.service.GetByID(r.Context(), user.UserID, ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		h.writeError(w, "Cancel", err)
		return
	}

	if err := h.service.Cancel(r.Context(), user.UserID, ps.ByName("id")); err != nil {
		h.writeError(w, "Cancel", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *BookingHandler) Receipt(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	user, err := httputil.RequireIdentity(r)
	if err != nil {
		h.writeError(w, "Receipt", err)
		return
	}

	doc, filename, err := h.service.Receipt(r.Context(), user.UserID, ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Receipt", err)
		return
	}

	if err := httputil.WriteAttachment(w, receipt.ContentType, filename, doc); err != nil {
		h.log.Error("failed to write attachment", "handler", "Receipt", "operation", "WriteAttachment", "error", err)
	}
}

func (h *BookingHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/booking-flows", h.StartFlow)
	router.GET("/api/v1/booking-flows/id/:token", h.GetFlow)
	router.POST("/api/v1/booking-flows/id/:token/details", h.SubmitDetails)
	router.POST("/api/v1/booking-flows/id/:token/back", h.Back)
	router.POST("/api/v1/booking-flows/id/:token/payment", h.SubmitPayment)

	router.GET("/api/v1/bookings", h.GetAll)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.GET("/api/v1/bookings/id/:id/receipt", h.Receipt)
	router.DELETE("/api/v1/bookings/id/:id", h.Cancel)
}
