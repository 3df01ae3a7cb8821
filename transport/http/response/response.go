package response

import (
	"encoding/json"
	"net/http"

	"todoapi/shared/constant"
	"todoapi/shared/failure"
	"todoapi/shared/logger"

	"github.com/rs/zerolog/log"
)

// Envelope is the body of every response. Exactly one of Success and Error is set.
type Envelope struct {
	Success any `json:"success"`
	Error   any `json:"error"`
}

// Success is the documented shape of a successful envelope.
type Success[T any] struct {
	Success T   `json:"success"`
	Error   any `json:"error" swaggertype:"string" extensions:"x-nullable"`
}

// Error is the documented shape of a failed envelope. Error holds a message or, for
// validation failures, a list of messages.
type Error struct {
	Success any `json:"success" swaggertype:"string" extensions:"x-nullable"`
	Error   any `json:"error" swaggertype:"array,string"`
}

// WithSuccess sends payload in the success slot.
func WithSuccess(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, Envelope{Success: payload})
}

// WithError maps err to a status code and sends it in the error slot. Errors that are not
// failures are logged and replaced by a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	if errs := failure.GetErrors(err); errs != nil {
		response(writer, code, Envelope{Error: errs})

		return
	}

	if !failure.IsFailure(err) {
		logger.ErrorWithStack(err)
		response(writer, code, Envelope{Error: constant.ResponseErrorInternal})

		return
	}

	response(writer, code, Envelope{Error: err.Error()})
}

// WithMessageError sends a plain message in the error slot.
func WithMessageError(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Envelope{Error: message})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessageError(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessageError(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func response(writer http.ResponseWriter, code int, payload Envelope) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		code = http.StatusInternalServerError
		body, _ = json.Marshal(Envelope{Error: constant.ResponseErrorInternal}) //nolint:errchkjson
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(body); err != nil {
		log.Warn().Err(err).Msg("failed to write response body")
	}
}
