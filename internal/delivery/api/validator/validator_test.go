package validator

import (
	"testing"

	domainerrors "multipost/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type sampleRequest struct {
	FolderID string `query:"folder_id" validate:"required,uuid"`
	Platform string `json:"platform" validate:"required,platform"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name        string
		req         sampleRequest
		wantErr     error
		wantMessage string
	}{
		{
			name: "valid",
			req:  sampleRequest{FolderID: "0190d3a8-3f3b-7c4e-9a51-6f1f6a7b8c9d", Platform: "TikTok"},
		},
		{
			name:        "missing folder",
			req:         sampleRequest{Platform: "youtube"},
			wantErr:     domainerrors.ErrValidation,
			wantMessage: "folder_id is required",
		},
		{
			name:        "malformed folder",
			req:         sampleRequest{FolderID: "nope", Platform: "youtube"},
			wantErr:     domainerrors.ErrValidation,
			wantMessage: "folder_id must be a valid id",
		},
		{
			name:    "unknown platform",
			req:     sampleRequest{FolderID: "0190d3a8-3f3b-7c4e-9a51-6f1f6a7b8c9d", Platform: "myspace"},
			wantErr: domainerrors.ErrUnsupportedPlatform,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.True(t, errors.Is(err, tt.wantErr))
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, err.Error())
			}
		})
	}
}
