package provider

import (
	"net/http"
	"testing"

	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"
	"multipost/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeError_Shapes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		decoders []func([]byte) (ProviderError, bool)
		want     ProviderError
		ok       bool
	}{
		{
			name:     "flat oauth error",
			body:     `{"error":"invalid_grant","error_description":"Bad Request"}`,
			decoders: []func([]byte) (ProviderError, bool){DecodeFlatError, DecodeNestedDataError},
			want:     ProviderError{Shape: ShapeFlat, Code: "invalid_grant", Message: "Bad Request"},
			ok:       true,
		},
		{
			name:     "legacy nested data",
			body:     `{"data":{"captcha":"","description":"Authorization code is expired.","error_code":10007},"message":"error"}`,
			decoders: []func([]byte) (ProviderError, bool){DecodeFlatError, DecodeNestedDataError},
			want:     ProviderError{Shape: ShapeNestedData, Code: "10007", Message: "Authorization code is expired."},
			ok:       true,
		},
		{
			name:     "nested data success is not an error",
			body:     `{"data":{"error_code":0,"description":""},"message":"success"}`,
			decoders: []func([]byte) (ProviderError, bool){DecodeFlatError, DecodeNestedDataError},
			ok:       false,
		},
		{
			name:     "envelope with string code",
			body:     `{"data":{},"error":{"code":"access_token_invalid","message":"The access token is invalid.","log_id":"x"}}`,
			decoders: []func([]byte) (ProviderError, bool){DecodeEnvelopeError},
			want:     ProviderError{Shape: ShapeEnvelope, Code: "access_token_invalid", Message: "The access token is invalid."},
			ok:       true,
		},
		{
			name:     "envelope ok",
			body:     `{"data":{"publish_id":"v_pub_1"},"error":{"code":"ok","message":"","log_id":"x"}}`,
			decoders: []func([]byte) (ProviderError, bool){DecodeEnvelopeError},
			ok:       false,
		},
		{
			name:     "graph error with numeric code",
			body:     `{"error":{"message":"Invalid verification code format.","type":"OAuthException","code":100}}`,
			decoders: []func([]byte) (ProviderError, bool){DecodeFlatError, DecodeEnvelopeError},
			want:     ProviderError{Shape: ShapeEnvelope, Code: "100", Message: "Invalid verification code format."},
			ok:       true,
		},
		{
			name:     "not json",
			body:     `<html>bad gateway</html>`,
			decoders: []func([]byte) (ProviderError, bool){DecodeFlatError, DecodeNestedDataError, DecodeEnvelopeError},
			ok:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeError([]byte(tt.body), tt.decoders...)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestProviderError_ToDomain(t *testing.T) {
	err := ProviderError{Shape: ShapeFlat, Code: "invalid_grant"}.ToDomain(entity.PlatformYouTube, http.StatusBadRequest, nil)

	var exchangeErr *domainerrors.ProviderExchangeError
	require.True(t, errors.As(err, &exchangeErr))
	assert.Equal(t, "invalid_grant", exchangeErr.Message())
	assert.Equal(t, "youtube", exchangeErr.Platform())
	assert.Equal(t, http.StatusBadRequest, exchangeErr.StatusCode())
}

func TestCallbackURL(t *testing.T) {
	assert.Equal(t, "https://app.example.com/api/auth/callback/tiktok", CallbackURL("https://app.example.com", entity.PlatformTikTok))
}

func TestRegistry_UnknownPlatform(t *testing.T) {
	r := NewRegistryFromAdapters()
	_, ok := r.Adapter(entity.PlatformYouTube)
	assert.False(t, ok)
}
