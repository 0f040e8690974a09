package handler

import (
	"net/http"
	"strconv"

	"venuehub/internal/venues/service"
	apperrors "venuehub/pkg/errors"
	httputil "venuehub/pkg/http"
	"venuehub/pkg/logger"
	"venuehub/pkg/model"
	"venuehub/pkg/sanitizer"

	"github.com/julienschmidt/httprouter"
)

type VenueHandler struct {
	service service.VenueService
	log     *logger.Logger
}

func NewVenueHandler(service service.VenueService, log *logger.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		log:     log,
	}
}

func (h *VenueHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	venues, total, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, venues, total, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *VenueHandler) GetFeatured(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	venues, err := h.service.GetFeatured(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetFeatured", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, venues); err != nil {
		h.log.Error("failed to write success response", "handler", "GetFeatured", "operation", "WriteSuccess", "error", err)
	}
}

func (h *VenueHandler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := parseFilter(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	venues, err := h.service.Search(r.Context(), filter)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Search", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, venues); err != nil {
		h.log.Error("failed to write success response", "handler", "Search", "operation", "WriteSuccess", "error", err)
	}
}

// parseFilter reads a Filter from the query string. Absent parameters leave
// the matching constraint unset.
func parseFilter(r *http.Request) (model.Filter, error) {
	query := r.URL.Query()
	filter := model.Filter{
		Location: query.Get("location"),
		Date:     query.Get("date"),
	}

	var err error
	if s := query.Get("min_price"); s != "" {
		if filter.MinPrice, err = strconv.ParseFloat(s, 64); err != nil {
			return model.Filter{}, apperrors.InvalidInput("invalid min_price parameter: " + s)
		}
	}
	if s := query.Get("max_price"); s != "" {
		if filter.MaxPrice, err = strconv.ParseFloat(s, 64); err != nil {
			return model.Filter{}, apperrors.InvalidInput("invalid max_price parameter: " + s)
		}
	}
	if s := query.Get("guests"); s != "" {
		if filter.GuestCount, err = strconv.Atoi(s); err != nil {
			return model.Filter{}, apperrors.InvalidInput("invalid guests parameter: " + s)
		}
	}
	for _, raw := range query["amenities"] {
		filter.Amenities = append(filter.Amenities, sanitizer.SplitList(raw)...)
	}

	return filter, nil
}

func (h *VenueHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	venue, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, venue); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *VenueHandler) GetAmenities(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.service.Amenities()); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAmenities", "operation", "WriteSuccess", "error", err)
	}
}

func (h *VenueHandler) GetReviews(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reviews, err := h.service.GetReviews(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetReviews", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, reviews); err != nil {
		h.log.Error("failed to write success response", "handler", "GetReviews", "operation", "WriteSuccess", "error", err)
	}
}

func (h *VenueHandler) CreateReview(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	author, err := httputil.RequireIdentity(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateReview", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	var input model.ReviewInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateReview", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	review, err := h.service.CreateReview(r.Context(), ps.ByName("id"), author, &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateReview", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, review); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateReview", "operation", "WriteCreated", "error", err)
	}
}

func (h *VenueHandler) CreateVenueInquiry(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var inquiry model.Inquiry
	if err := httputil.DecodeJSON(r, &inquiry); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateVenueInquiry", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := h.service.SubmitVenueInquiry(r.Context(), ps.ByName("id"), &inquiry); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateVenueInquiry", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, inquiry); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateVenueInquiry", "operation", "WriteCreated", "error", err)
	}
}

func (h *VenueHandler) CreateInquiry(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var inquiry model.Inquiry
	if err := httputil.DecodeJSON(r, &inquiry); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateInquiry", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := h.service.SubmitInquiry(r.Context(), &inquiry); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateInquiry", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, inquiry); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateInquiry", "operation", "WriteCreated", "error", err)
	}
}

func (h *VenueHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/venues", h.GetAll)
	router.GET("/api/v1/venues/featured", h.GetFeatured)
	router.GET("/api/v1/venues/search", h.Search)
	router.GET("/api/v1/venues/id/:id", h.GetByID)
	router.GET("/api/v1/venues/id/:id/reviews", h.GetReviews)
	router.POST("/api/v1/venues/id/:id/reviews", h.CreateReview)
	router.POST("/api/v1/venues/id/:id/inquiries", h.CreateVenueInquiry)

	router.POST("/api/v1/inquiries", h.CreateInquiry)
	router.GET("/api/v1/amenities", h.GetAmenities)
}
