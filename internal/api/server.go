package api

import (
	"net/http"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/api/middleware"
	"github.com/rs/cors"
)

const APIDocsPath = "/apidocs.json"

// NewContainer registers the filters, the lab analysis routes and the
// OpenAPI document on a fresh container.
func NewContainer(handler *Handler) *restful.Container {
	container := restful.NewContainer()

	container.Filter(middleware.AssignRequestID)
	container.Filter(middleware.Logger(handler.logger))
	container.Filter(middleware.RecoverPanic(handler.logger))

	RegisterRoutes(container, handler)

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       APIDocsPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))

	return container
}

// WithCORS allows any origin, like a public browser facing API.
func WithCORS(h http.Handler) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	})
	return corsHandler.Handler(h)
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Lab Analysis API",
			Description: "Plain language Arabic explanations of medical lab reports",
			Version:     Version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "analysis", Description: "Lab report analysis"}},
	}
}
