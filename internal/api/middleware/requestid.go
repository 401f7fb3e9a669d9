package middleware

import (
	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
)

const (
	HeaderRequestID    = "X-Request-ID"
	requestIDAttribute = "requestID"
)

// AssignRequestID reuses an inbound X-Request-ID or generates one, and echoes
// it on the response.
func AssignRequestID(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	id := req.HeaderParameter(HeaderRequestID)
	if id == "" {
		id = uuid.NewString()
	}

	req.SetAttribute(requestIDAttribute, id)
	resp.Header().Set(HeaderRequestID, id)

	chain.ProcessFilter(req, resp)
}

func RequestID(req *restful.Request) string {
	if id, ok := req.Attribute(requestIDAttribute).(string); ok {
		return id
	}
	return ""
}
