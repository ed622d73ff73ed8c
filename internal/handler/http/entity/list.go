package entity

import (
	"log/slog"
	"net/http"
	"time"

	domain "sanctions-watch/internal/domain/entity"
	"sanctions-watch/internal/handler/http/respond"
	"sanctions-watch/internal/observability/logging"
	"sanctions-watch/internal/usecase/dataset"
)

// ListHandler serves the filtered entity collection.
// Query parameters: q (case-insensitive substring over name, fullname,
// reference, and aliases) and dataset (tag filter, "all" for no filter).
type ListHandler struct {
	Svc    *dataset.Service
	Logger *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	query := r.URL.Query().Get("q")
	datasetTag := r.URL.Query().Get("dataset")

	filtered := h.Svc.List(ctx, query, datasetTag)

	logger.Info("entity list request",
		slog.String("query", query),
		slog.String("dataset", datasetTag),
		slog.Int("returned_count", len(filtered)),
		slog.Duration("duration", time.Since(start)),
	)

	if len(filtered) == 0 {
		// An empty collection outranks a filter miss in the message choice.
		message := "No entities found matching your criteria"
		if len(h.Svc.List(ctx, "", "")) == 0 {
			message = "No entities found in database"
		}
		respond.JSON(w, http.StatusOK, ListResponse{
			Entities: []*domain.Entity{},
			Message:  message,
		})
		return
	}

	respond.JSON(w, http.StatusOK, ListResponse{Entities: filtered})
}
