package generation_log

import (
	"net/http"
	"strconv"

	"github.com/saulo-duarte/overhoor-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary  List recent generation attempts
// @Tags     generations
// @Produce  json
// @Param    limit query int false "maximum number of records (default 20, max 100)"
// @Success  200 {array} GenerationRecordResponse
// @Router   /generations [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	records, err := h.service.ListRecent(r.Context(), limit)
	if err != nil {
		log.WithError(err).Error("Failed to list generation records")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, records)
}
