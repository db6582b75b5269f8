package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"resumatch/internal/observability"
	"resumatch/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// validateDocument checks that a document field is present and within the
// configured length limit. It writes the error response itself and reports
// whether the request may proceed.
func (s *Server) validateDocument(w http.ResponseWriter, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		writeErrorResponse(w, "Missing "+field, field+" field is required", http.StatusBadRequest)
		return false
	}

	maxChars := s.AppConfig.Analysis.MaxDocChars
	if maxChars > 0 && len(value) > maxChars {
		writeErrorResponse(w, field+" too large",
			fmt.Sprintf("%s exceeds the limit of %d characters", field, maxChars),
			http.StatusBadRequest)
		return false
	}

	return true
}

// createAnalyzeHandler wraps the analyze handler with observability
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumatch.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		// Parse request
		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if !s.validateDocument(w, "resume", req.Resume) {
			return
		}
		if !s.validateDocument(w, "jobDescription", req.JobDescription) {
			return
		}

		// Add request attributes to span
		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "analyze"),
		)

		metrics := om.GetMetrics()
		var result types.AnalysisResult
		err := metrics.TrackAnalysis(ctx, "analyze", func(ctx context.Context) error {
			result = s.Analysis.Analyze(req.Resume, req.JobDescription)
			return nil
		}, om)

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "analysis"))
			metrics.RecordBusinessMetric(ctx, "resume_analyzed", false, om,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to analyze resume", err.Error(), http.StatusInternalServerError)
			return
		}

		// Persist the result when the store is available
		if s.Store != nil {
			id, saveErr := s.Store.Save(ctx, result, req.UserSession)
			if saveErr != nil {
				s.Logger.LogError(saveErr, "Failed to save analysis result")
				metrics.RecordBusinessMetric(ctx, "result_stored", false, om)
			} else {
				span.SetAttributes(attribute.Int64("store.result_id", id))
				metrics.RecordBusinessMetric(ctx, "result_stored", true, om)
			}
		}

		// Record success metrics
		metrics.RecordBusinessMetric(ctx, "resume_analyzed", true, om,
			attribute.Float64("score.overall", result.Scores.OverallScore),
			attribute.String("industry", result.JobDescription.Industry))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Float64("score.overall", result.Scores.OverallScore),
			attribute.String("industry", result.JobDescription.Industry),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createParseResumeHandler wraps the resume parsing handler with observability
func (s *Server) createParseResumeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumatch.api")
		ctx, span := tracer.Start(ctx, "api.parse_resume")
		defer span.End()

		var req ParseResumeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if !s.validateDocument(w, "resume", req.Resume) {
			return
		}

		span.SetAttributes(
			attribute.Int("request.resume_length", len(req.Resume)),
			attribute.String("operation", "parse_resume"),
		)

		metrics := om.GetMetrics()
		var result types.StructuredResume
		err := metrics.TrackAnalysis(ctx, "parse_resume", func(ctx context.Context) error {
			result = s.Analysis.Resumes.Process(req.Resume)
			return nil
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "resume_parsed", false, om)
			writeErrorResponse(w, "Failed to parse resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_parsed", true, om,
			attribute.Int("skills_count", len(result.Skills)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("skills_count", len(result.Skills)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createParseJobHandler wraps the job parsing handler with observability
func (s *Server) createParseJobHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumatch.api")
		ctx, span := tracer.Start(ctx, "api.parse_job")
		defer span.End()

		var req ParseJobRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if !s.validateDocument(w, "jobDescription", req.JobDescription) {
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "parse_job"),
		)

		metrics := om.GetMetrics()
		var result types.StructuredJobDescription
		err := metrics.TrackAnalysis(ctx, "parse_job", func(ctx context.Context) error {
			result = s.Analysis.Jobs.Analyze(req.JobDescription)
			return nil
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "job_parsed", false, om)
			writeErrorResponse(w, "Failed to parse job description", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "job_parsed", true, om,
			attribute.String("industry", result.Industry))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.String("industry", result.Industry),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createHistoryHandler serves stored analysis results
func (s *Server) createHistoryHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumatch.api")
		ctx, span := tracer.Start(ctx, "api.history")
		defer span.End()

		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		if s.Store == nil {
			writeErrorResponse(w, "Store disabled", "Result store is not enabled on this server", http.StatusNotFound)
			return
		}

		// A specific id returns the full stored result
		if idParam := r.URL.Query().Get("id"); idParam != "" {
			id, err := strconv.ParseInt(idParam, 10, 64)
			if err != nil || id <= 0 {
				writeErrorResponse(w, "Invalid id", "id must be a positive integer", http.StatusBadRequest)
				return
			}

			record, err := s.Store.Get(ctx, id)
			if err != nil {
				span.RecordError(err)
				writeErrorResponse(w, "Result not found", err.Error(), http.StatusNotFound)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(record); err != nil {
				span.RecordError(err)
				http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			}
			return
		}

		limit := 10
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed <= 0 {
				writeErrorResponse(w, "Invalid limit", "limit must be a positive integer", http.StatusBadRequest)
				return
			}
			limit = parsed
		}

		session := r.URL.Query().Get("session")
		summaries, err := s.Store.History(ctx, session, limit)
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to list results", err.Error(), http.StatusInternalServerError)
			return
		}

		span.SetAttributes(attribute.Int("history.count", len(summaries)))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summaries); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
