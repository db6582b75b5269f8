package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"resumatch/internal/benchmark"
)

// healthHandler provides a health check endpoint covering the benchmark
// provider and the result store
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "resumatch",
		"version": s.Version,
	}

	overallHealthy := true

	benchStatus := s.checkBenchmarkHealth()
	response["benchmarks"] = benchStatus
	if healthy, ok := benchStatus["healthy"].(bool); ok && !healthy {
		overallHealthy = false
	}

	storeStatus := s.checkStoreHealth(r)
	response["store"] = storeStatus
	if healthy, ok := storeStatus["healthy"].(bool); ok && !healthy {
		overallHealthy = false
	}

	if !overallHealthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// checkBenchmarkHealth reports the state of the benchmark provider stack
func (s *Server) checkBenchmarkHealth() map[string]any {
	status := map[string]any{
		"healthy": true,
	}

	switch provider := s.Benchmarks.(type) {
	case *benchmark.RemoteProvider:
		status["source"] = "remote"
		status["healthy"] = provider.IsHealthy()
		status["circuit_breaker"] = provider.GetStats()
	case *benchmark.FileProvider:
		status["source"] = "file"
		status["file"] = provider.Path()
	default:
		status["source"] = "static"
	}

	return status
}

// checkStoreHealth reports whether the result store answers queries
func (s *Server) checkStoreHealth(r *http.Request) map[string]any {
	if s.Store == nil {
		return map[string]any{
			"enabled": false,
		}
	}

	status := map[string]any{
		"enabled": true,
		"healthy": true,
	}

	stats, err := s.Store.Stats(r.Context())
	if err != nil {
		status["healthy"] = false
		status["error"] = err.Error()
		return status
	}

	status["total_results"] = stats.TotalResults
	return status
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "resumatch",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	// Add configuration info
	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	// Add aggregate scoring stats when the store is available
	if s.Store != nil {
		stats, err := s.Store.Stats(r.Context())
		if err != nil {
			s.Logger.LogError(err, "Failed to query store statistics")
		} else {
			response["scoring"] = map[string]any{
				"total_results": stats.TotalResults,
				"average_score": stats.AverageScore,
				"best_score":    stats.BestScore,
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if r.Header.Get("Content-Type") != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
