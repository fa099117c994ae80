package health

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// LivenessHandler answers 200 OK while the process is serving.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeText(w, http.StatusOK, "OK")
	}
}

// ReadinessHandler runs every check and answers with the overall status.
// Degraded still counts as ready.
func ReadinessHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		report := agg.Run(ctx)
		body := strings.ToUpper(report.Status.String())
		if report.Status == StatusHealthy {
			body = "OK"
		}
		writeText(w, statusCode(report.Status), body)
	}
}

// CheckJSON is one entry of the detailed health response.
type CheckJSON struct {
	Status   Status         `json:"status"`
	Message  string         `json:"message,omitempty"`
	Duration string         `json:"duration,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// ReportJSON is the detailed health response body.
type ReportJSON struct {
	Status    Status               `json:"status"`
	Timestamp string               `json:"timestamp"`
	Checks    map[string]CheckJSON `json:"checks,omitempty"`
}

// NewReportJSON converts a Report to its wire form.
func NewReportJSON(report Report) ReportJSON {
	out := ReportJSON{
		Status:    report.Status,
		Timestamp: report.Timestamp.UTC().Format(time.RFC3339),
		Checks:    make(map[string]CheckJSON, len(report.Checks)),
	}
	for name, r := range report.Checks {
		c := CheckJSON{
			Status:   r.Status,
			Message:  r.Message,
			Duration: r.Duration.String(),
			Details:  r.Details,
		}
		if r.Err != nil {
			c.Error = r.Err.Error()
		}
		out.Checks[name] = c
	}
	return out
}

// DetailedHandler runs every check and answers with a JSON ReportJSON.
func DetailedHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		report := agg.Run(ctx)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode(report.Status))
		_ = json.NewEncoder(w).Encode(NewReportJSON(report))
	}
}

// RegisterHandlers mounts /healthz, /readyz and /health on mux.
func RegisterHandlers(mux *http.ServeMux, agg *Aggregator) {
	mux.Handle("GET /healthz", LivenessHandler())
	mux.Handle("GET /readyz", ReadinessHandler(agg))
	mux.Handle("GET /health", DetailedHandler(agg))
}

func statusCode(s Status) int {
	if s == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
