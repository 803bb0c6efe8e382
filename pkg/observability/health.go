package observability

import (
	"encoding/json"
	"net/http"
	"runtime"
	"time"
)

var startTime = time.Now()

// Stats is a read-only snapshot of core counters, pulled by the health
// endpoint. The core exposes these; it never pushes.
type Stats struct {
	Users          int `json:"users"`
	ActiveUsers    int `json:"active_users"`
	NutritionItems int `json:"food_items"`
}

// StatsFunc supplies a Stats snapshot on demand.
type StatsFunc func() Stats

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	UptimeSeconds int64     `json:"uptime_seconds"`
	Stats         Stats     `json:"stats"`
	NumGoroutines int       `json:"num_goroutines"`
	MemAllocMB    uint64    `json:"mem_alloc_mb"`
}

// HealthHandler returns the /health handler. stats may be nil.
func HealthHandler(stats StatsFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var s Stats
		if stats != nil {
			s = stats()
		}

		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := HealthResponse{
			Status:        "ok",
			Timestamp:     time.Now().UTC(),
			UptimeSeconds: int64(time.Since(startTime).Seconds()),
			Stats:         s,
			NumGoroutines: runtime.NumGoroutine(),
			MemAllocMB:    mem.Alloc / 1024 / 1024,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// LivenessHandler answers 200 as long as the process is up.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
