package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/gateway"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
	"github.com/rs/zerolog"
)

const (
	RootMessage = "Lab Analysis API is running!"
	Version     = "1.0.0"
)

type HealthResponse struct {
	Status   string `json:"status" description:"Service status"`
	Version  string `json:"version" description:"API version"`
	Provider string `json:"provider" description:"Configured completion provider"`
}

type Handler struct {
	analyzer gateway.Analyzer
	provider string
	logger   *zerolog.Logger
}

func NewHandler(analyzer gateway.Analyzer, provider string, logger *zerolog.Logger) *Handler {
	return &Handler{
		analyzer: analyzer,
		provider: provider,
		logger:   logger,
	}
}

// GET /
func (h *Handler) Root(req *restful.Request, resp *restful.Response) {
	resp.Header().Set(restful.HEADER_ContentType, "text/plain; charset=utf-8")
	resp.WriteHeader(http.StatusOK)
	if _, err := resp.Write([]byte(RootMessage)); err != nil {
		h.logger.Error().Err(err).Msg("Failed to write response")
	}
}

// GET /health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	h.writeJSON(resp, http.StatusOK, HealthResponse{
		Status:   "ok",
		Version:  Version,
		Provider: h.provider,
	})
}

// POST /analyze
// Body: AnalysisRequest
// Returns: AnalysisResult
func (h *Handler) Analyze(req *restful.Request, resp *restful.Response) {
	requestID := middleware.RequestID(req)

	var body models.AnalysisRequest
	if err := readJSON(req, &body); err != nil {
		h.logger.Warn().Err(err).Str("requestID", requestID).Msg("Failed to parse request body")
		h.writeError(resp, http.StatusBadRequest, models.MsgTextRequired)
		return
	}
	if err := body.Validate(); err != nil {
		h.writeError(resp, http.StatusBadRequest, models.MsgTextRequired)
		return
	}

	analysis, err := h.analyzer.Analyze(req.Request.Context(), body.Text)
	if err != nil {
		h.writeGatewayError(resp, requestID, models.VariantSingle, err)
		return
	}

	h.writeJSON(resp, http.StatusOK, models.AnalysisResult{Analysis: analysis})
}

// POST /compare
// Body: CompareRequest
// Returns: ComparisonResult
func (h *Handler) Compare(req *restful.Request, resp *restful.Response) {
	requestID := middleware.RequestID(req)

	var body models.CompareRequest
	if err := readJSON(req, &body); err != nil {
		h.logger.Warn().Err(err).Str("requestID", requestID).Msg("Failed to parse request body")
		h.writeError(resp, http.StatusBadRequest, models.MsgNotEnoughAnalyses)
		return
	}
	if err := body.Validate(); err != nil {
		h.writeError(resp, http.StatusBadRequest, models.MsgNotEnoughAnalyses)
		return
	}

	h.logger.Debug().
		Str("requestID", requestID).
		Int("analyses", len(body.AnalysesTexts)).
		Msg("Start comparison")

	comparison, err := h.analyzer.Compare(req.Request.Context(), body.AnalysesTexts)
	if err != nil {
		h.writeGatewayError(resp, requestID, models.VariantCompare, err)
		return
	}

	h.writeJSON(resp, http.StatusOK, models.ComparisonResult{Comparison: comparison})
}

func (h *Handler) writeGatewayError(resp *restful.Response, requestID string, variant models.Variant, err error) {
	msg := gateway.FailureMessage(variant, err)

	if errors.Is(err, gateway.ErrInvalidInput) {
		h.writeError(resp, http.StatusBadRequest, msg)
		return
	}

	h.logger.Error().
		Err(err).
		Str("requestID", requestID).
		Str("variant", string(variant)).
		Msg("Completion request failed")
	h.writeError(resp, http.StatusInternalServerError, msg)
}

// writeJSON ignores the Accept header; clients always get JSON.
func (h *Handler) writeJSON(resp *restful.Response, status int, v any) {
	if err := resp.WriteHeaderAndJson(status, v, restful.MIME_JSON); err != nil {
		h.logger.Error().Err(err).Int("status", status).Msg("Failed to write response")
	}
}

var errNotJSON = errors.New("request body is not JSON")

// readJSON decodes JSON bodies only; go-restful would also accept XML.
func readJSON(req *restful.Request, v any) error {
	if !strings.Contains(req.HeaderParameter(restful.HEADER_ContentType), "json") {
		return errNotJSON
	}
	return req.ReadEntity(v)
}

func (h *Handler) writeError(resp *restful.Response, status int, msg string) {
	if err := middleware.WriteError(resp, status, msg); err != nil {
		h.logger.Error().Err(err).Int("status", status).Msg("Failed to write error response")
	}
}
