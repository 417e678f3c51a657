package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"resumelens/internal/errors"
	"resumelens/internal/extract"
	"resumelens/internal/observability"
	"resumelens/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createAnalyzeHandler wraps the full analysis handler with observability.
// The resume document arrives as a multipart upload in the "file" field.
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.analyze")
		defer span.End()

		if r.Method != http.MethodPost {
			writeErrorResponse(w, "Method not allowed", "POST required", http.StatusMethodNotAllowed)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing resume file", "multipart field 'file' is required", http.StatusBadRequest)
			return
		}
		defer func() {
			if err := file.Close(); err != nil {
				s.Logger.Warn("Failed to close uploaded file", "error", err)
			}
		}()

		data, err := io.ReadAll(file)
		if err != nil {
			span.RecordError(err)
			writeErrorResponse(w, "Failed to read upload", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("request.filename", header.Filename),
			attribute.Int("request.size_bytes", len(data)),
			attribute.String("operation", "analyze"),
		)

		metrics := om.GetMetrics()

		extracted := extract.FromFile(header.Filename, data)
		if !extracted.OK || strings.TrimSpace(extracted.Text) == "" {
			code := errors.ErrCodeExtractionFailed
			if extracted.OK {
				code = errors.ErrCodeEmptyDocument
			}
			appErr := errors.NewExtractionError(code,
				fmt.Sprintf("no text extracted from %s", header.Filename), nil)
			span.RecordError(appErr)
			span.SetAttributes(attribute.String("error.type", "extraction"))
			metrics.RecordBusinessMetric(ctx, "extraction_failed", false,
				attribute.String("filename", header.Filename))
			writeErrorResponse(w, "Could not extract text from resume.", "The document could not be parsed or contains no text", http.StatusBadRequest)
			return
		}

		var result types.AnalysisResult
		var panicked bool
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					panicked = true
					appErr := errors.NewInternalError("ANALYSIS_PANIC",
						fmt.Sprintf("analysis failed: %v", rec), nil)
					s.Logger.LogError(appErr, "Resume analysis panicked")
					span.RecordError(appErr)
					writeErrorResponse(w, "Analysis failed", fmt.Sprintf("analysis failed: %v", rec), http.StatusInternalServerError)
				}
			}()
			_ = metrics.TrackAnalysis(ctx, "full", func(ctx context.Context) *observability.AnalysisOutcome {
				result = s.Engine.Analyze(extracted.Text, extracted.Raw)
				return &observability.AnalysisOutcome{Score: result.Score}
			})
		}()
		if panicked {
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_analyzed", true,
			attribute.Int("resume.score", result.Score),
			attribute.Int("resume.tokens", result.TokenCount))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("resume.score", result.Score),
			attribute.Int("suggestions_count", len(result.Suggestions)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createLiveHandler wraps the live feedback handler with observability.
// Live analysis never fails the request: a panic in the pipeline degrades
// to a zero-score result so the editor keeps rendering.
func (s *Server) createLiveHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.live")
		defer span.End()

		if r.Method != http.MethodPost {
			writeErrorResponse(w, "Method not allowed", "POST required", http.StatusMethodNotAllowed)
			return
		}

		var req LiveRequest
		if err := parseJSONRequest(r, &req); err != nil {
			appErr := errors.NewValidationError(errors.ErrCodeInvalidRequest,
				"invalid live analysis request", err)
			span.RecordError(appErr)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.text_length", len(req.Text)),
			attribute.String("operation", "live"),
		)

		metrics := om.GetMetrics()

		var result types.LiveAnalysisResult
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					appErr := errors.NewAnalysisError("LIVE_ANALYSIS_PANIC",
						fmt.Sprintf("live analysis failed: %v", rec), nil)
					s.Logger.LogError(appErr, "Live analysis panicked")
					result = s.Engine.LiveFailure("Analysis failed, please try again.")
				}
			}()
			_ = metrics.TrackAnalysis(ctx, "live", func(ctx context.Context) *observability.AnalysisOutcome {
				result = s.Engine.AnalyzeLive(req.Text)
				return &observability.AnalysisOutcome{Score: result.LiveScore}
			})
		}()

		metrics.RecordBusinessMetric(ctx, "live_analyzed", true,
			attribute.Int("resume.score", result.LiveScore),
			attribute.Int("resume.words", result.WordCount))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("resume.score", result.LiveScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
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
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true,
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
