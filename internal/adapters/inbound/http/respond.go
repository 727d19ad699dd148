package http

import (
	"encoding/json"
	"net/http"

	"github.com/cleitonmarx/resona/internal/adapters/inbound/http/gen"
)

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err gen.ErrorResp) {
	respondJSON(w, statusFor(err.Error.Code), err)
}

func statusFor(code gen.ErrorCode) int {
	switch code {
	case gen.BADREQUEST:
		return http.StatusBadRequest
	case gen.PAYLOADTOOLARGE:
		return http.StatusRequestEntityTooLarge
	case gen.REFERENCEUNAVAILABLE:
		return http.StatusUnprocessableEntity
	case gen.TIMEOUT:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func newErrorResp(code gen.ErrorCode, message string) gen.ErrorResp {
	return gen.ErrorResp{Error: gen.Error{Code: code, Message: message}}
}
