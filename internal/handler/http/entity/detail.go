package entity

import (
	"errors"
	"net/http"
	"time"

	"sanctions-watch/internal/handler/http/respond"
	"sanctions-watch/internal/pkg/textutil"
	"sanctions-watch/internal/usecase/dataset"
)

// DetailHandler serves one entity by its name slug. Resolution is exact
// match first, then case-insensitive. Slugs collide across entities sharing
// a name; the first entity in file order wins.
type DetailHandler struct {
	Svc *dataset.Service
}

func (h DetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("slug is required"))
		return
	}

	e, err := h.Svc.BySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, dataset.ErrEntityNotFound) {
			respond.SafeError(w, http.StatusNotFound, err)
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, DetailResponse{
		Entity:      e,
		CurrentDate: textutil.FormatDate(time.Now()),
	})
}
