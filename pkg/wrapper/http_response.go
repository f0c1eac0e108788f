package wrapper

import (
	"encoding/json"
	"net/http"

	"github.com/golangid/subscriber-service/pkg/helper"
)

// HTTPResponse error body format, every failure answered by the service has a message
type HTTPResponse struct {
	Code    int         `json:"-"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// NewHTTPResponse for create common response, params can contain *helper.MultiError or error for detail
func NewHTTPResponse(code int, message string, params ...interface{}) *HTTPResponse {
	commonResponse := new(HTTPResponse)

	for _, param := range params {
		switch val := param.(type) {
		case *helper.MultiError:
			if val != nil && val.HasError() {
				commonResponse.Errors = val.ToMap()
			}
		case error:
			if val != nil {
				commonResponse.Errors = helper.NewMultiError().Append("detail", val).ToMap()
			}
		}
	}

	commonResponse.Code = code
	commonResponse.Message = message
	return commonResponse
}

// JSON for set http JSON response (Content-Type: application/json) with parameter is http response writer
func (resp *HTTPResponse) JSON(w http.ResponseWriter) error {
	return WriteJSON(w, resp.Code, resp)
}

// WriteJSON write any data as json body with given status code
func WriteJSON(w http.ResponseWriter, code int, data interface{}) error {
	w.Header().Set(helper.HeaderContentType, helper.HeaderMIMEApplicationJSON)
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(data)
}
