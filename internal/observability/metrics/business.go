package metrics

import "time"

// RecordDatasetLoad records the outcome of one dataset load pass.
// The gauge is only updated on success so a transient read failure does not
// zero out the last known collection size.
func RecordDatasetLoad(entities int, duration time.Duration, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	DatasetLoadsTotal.WithLabelValues(status).Inc()
	DatasetLoadDuration.Observe(duration.Seconds())
	if success {
		EntitiesLoaded.Set(float64(entities))
	}
}

// RecordParseError records one malformed dataset line.
func RecordParseError() {
	DatasetParseErrorsTotal.Inc()
}

// RecordDocumentFetch records the outcome of an outbound document fetch.
func RecordDocumentFetch(status string, duration time.Duration) {
	DocumentFetchesTotal.WithLabelValues(status).Inc()
	DocumentFetchDuration.Observe(duration.Seconds())
}
