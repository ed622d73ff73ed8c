package http

import (
	"net/http"
	"os"
	"time"

	"sanctions-watch/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`            // "healthy" or "unhealthy"
	Message string         `json:"message,omitempty"` // Optional status message
	Details map[string]any `json:"details,omitempty"` // Optional additional details
}

// HealthHandler handles health check endpoint requests. The only external
// dependency of this service is the dataset file, so health is a stat of
// that file plus process liveness.
type HealthHandler struct {
	DatasetPath string
	Version     string
}

// ServeHTTP performs health checks and returns the application health
// status. Returns 200 OK if healthy, or 503 Service Unavailable if the
// dataset file is missing or unreadable.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := map[string]CheckStatus{
		"dataset": h.checkDataset(),
	}

	status := "healthy"
	statusCode := http.StatusOK
	if checks["dataset"].Status != "healthy" {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	respond.JSON(w, statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func (h *HealthHandler) checkDataset() CheckStatus {
	info, err := os.Stat(h.DatasetPath)
	if err != nil {
		return CheckStatus{
			Status:  "unhealthy",
			Message: "dataset file not accessible",
		}
	}
	return CheckStatus{
		Status: "healthy",
		Details: map[string]any{
			"size_bytes": info.Size(),
			"modified":   info.ModTime().UTC().Format(time.RFC3339),
		},
	}
}

// ReadyHandler reports whether the service is ready to accept traffic.
// Readiness matches health: the process serves everything from the dataset
// file, so a readable file means ready.
type ReadyHandler struct {
	DatasetPath string
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(h.DatasetPath); err != nil {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respond.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// LiveHandler reports process liveness. Always returns 200 while the
// process can serve requests.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
