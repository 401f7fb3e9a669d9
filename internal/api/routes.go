package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
)

const anyMediaType = "*/*"

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	// */* keeps the router from answering 406/415; handlers pick the
	// response type themselves.
	ws.
		Path("/").
		Consumes(restful.MIME_JSON, anyMediaType).
		Produces(restful.MIME_JSON, anyMediaType)

	ws.
		Route(ws.GET("/").
			To(handler.Root).
			Doc("Liveness probe").
			Produces("text/plain", anyMediaType).
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Returns(200, "OK", nil))

	ws.
		Route(ws.GET("/health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/analyze").
			To(handler.Analyze).
			Doc("Explain a single lab report").
			Metadata(restfulspec.KeyOpenAPITags, []string{"analysis"}).
			Reads(models.AnalysisRequest{}).
			Writes(models.AnalysisResult{}).
			Returns(200, "OK", models.AnalysisResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/compare").
			To(handler.Compare).
			Doc("Compare two or more lab reports, oldest first").
			Metadata(restfulspec.KeyOpenAPITags, []string{"analysis"}).
			Reads(models.CompareRequest{}).
			Writes(models.ComparisonResult{}).
			Returns(200, "OK", models.ComparisonResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
