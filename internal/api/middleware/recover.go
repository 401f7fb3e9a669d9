package middleware

import (
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/lab-agent/internal/models"
	"github.com/rs/zerolog"
)

func RecoverPanic(logger *zerolog.Logger) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("requestID", RequestID(req)).
					Interface("panic", r).
					Str("path", req.Request.URL.Path).
					Msg("Recovered from panic")
				if err := WriteError(resp, http.StatusInternalServerError, models.MsgInternalError); err != nil {
					logger.Error().Err(err).Msg("Failed to write error response")
				}
			}
		}()

		chain.ProcessFilter(req, resp)
	}
}
