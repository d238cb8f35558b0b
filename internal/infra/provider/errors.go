package provider

import (
	"bytes"
	"encoding/json"
	"strings"

	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/errors"

	"golang.org/x/oauth2"
)

// ErrorShape tags the wire shape a provider error arrived in.
type ErrorShape string

const (
	// ShapeFlat is the OAuth 2.0 form {"error":"...","error_description":"..."}.
	ShapeFlat ErrorShape = "flat"
	// ShapeNestedData is {"data":{"error_code":...,"description":"..."}}.
	ShapeNestedData ErrorShape = "nested_data"
	// ShapeEnvelope is {"error":{"code":...,"message":"..."}}.
	ShapeEnvelope ErrorShape = "envelope"
)

// ProviderError is a decoded provider error payload.
type ProviderError struct {
	Shape   ErrorShape
	Code    string
	Message string
}

// ToDomain normalizes into the canonical ProviderExchangeError.
func (e ProviderError) ToDomain(platform entity.Platform, statusCode int, cause error) error {
	message := e.Message
	if message == "" {
		message = e.Code
	}
	if message == "" {
		message = "provider request failed"
	}

	return domainerrors.NewProviderExchangeError(platform.String(), message, statusCode, cause)
}

type flatErrorPayload struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type nestedDataErrorPayload struct {
	Data struct {
		ErrorCode   json.RawMessage `json:"error_code"`
		Description string          `json:"description"`
	} `json:"data"`
}

type envelopeErrorPayload struct {
	Error struct {
		Code    json.RawMessage `json:"code"`
		Message string          `json:"message"`
	} `json:"error"`
}

// DecodeFlatError matches a string-valued "error" field.
func DecodeFlatError(body []byte) (ProviderError, bool) {
	var payload flatErrorPayload
	if err := json.Unmarshal(body, &payload); err != nil || payload.Error == "" {
		return ProviderError{}, false
	}

	return ProviderError{Shape: ShapeFlat, Code: payload.Error, Message: payload.ErrorDescription}, true
}

// DecodeNestedDataError matches a non-zero data.error_code.
func DecodeNestedDataError(body []byte) (ProviderError, bool) {
	var payload nestedDataErrorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return ProviderError{}, false
	}

	code := rawCode(payload.Data.ErrorCode)
	if code == "" || code == "0" {
		return ProviderError{}, false
	}

	return ProviderError{Shape: ShapeNestedData, Code: code, Message: payload.Data.Description}, true
}

// DecodeEnvelopeError matches an object-valued "error" whose code is not "ok".
func DecodeEnvelopeError(body []byte) (ProviderError, bool) {
	var payload envelopeErrorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return ProviderError{}, false
	}

	code := rawCode(payload.Error.Code)
	if code == "ok" || (code == "" && payload.Error.Message == "") {
		return ProviderError{}, false
	}

	return ProviderError{Shape: ShapeEnvelope, Code: code, Message: payload.Error.Message}, true
}

// DecodeError tries the given shapes in order.
func DecodeError(body []byte, decoders ...func([]byte) (ProviderError, bool)) (ProviderError, bool) {
	for _, decode := range decoders {
		if providerErr, ok := decode(body); ok {
			return providerErr, true
		}
	}

	return ProviderError{}, false
}

func rawCode(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	return string(raw)
}

// FromOAuth2Error normalizes a failed oauth2 exchange. The response body is
// matched against the given shapes before falling back to the fields the
// oauth2 package parsed itself.
func FromOAuth2Error(platform entity.Platform, err error, decoders ...func([]byte) (ProviderError, bool)) error {
	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) {
		return domainerrors.NewProviderExchangeError(platform.String(), "token exchange failed", 0, err)
	}

	status := 0
	if retrieveErr.Response != nil {
		status = retrieveErr.Response.StatusCode
	}

	if providerErr, ok := DecodeError(retrieveErr.Body, decoders...); ok {
		return providerErr.ToDomain(platform, status, err)
	}

	return ProviderError{
		Shape:   ShapeFlat,
		Code:    retrieveErr.ErrorCode,
		Message: retrieveErr.ErrorDescription,
	}.ToDomain(platform, status, err)
}
