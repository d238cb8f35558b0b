package service

import "multipost/internal/domain/entity"

// StateCodec serializes the OAuth state parameter.
type StateCodec interface {
	// Encode produces the state for a new authorization request.
	Encode(workspaceID string, platform entity.Platform) (string, error)

	// Decode never fails; unrecognized input degrades to the raw string as the workspace id.
	Decode(state string) entity.LinkState
}
