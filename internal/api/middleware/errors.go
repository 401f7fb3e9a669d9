package middleware

import (
	"github.com/emicklei/go-restful/v3"
)

type ErrorResponse struct {
	Error string `json:"error" description:"Error message"`
}

// WriteError writes a JSON error body. msg is always one of the fixed
// caller facing messages, never an upstream error string.
func WriteError(resp *restful.Response, status int, msg string) error {
	return resp.WriteHeaderAndJson(status, ErrorResponse{Error: msg}, restful.MIME_JSON)
}
