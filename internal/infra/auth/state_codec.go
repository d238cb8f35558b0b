// Package auth provides the OAuth state codec.
package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"multipost/config"
	"multipost/internal/domain/entity"
	"multipost/internal/domain/service"
	"multipost/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// stateClaims is the payload of the signed state token.
type stateClaims struct {
	WorkspaceID string `json:"wid"`
	Platform    string `json:"plt"`
	jwt.RegisteredClaims
}

// stateRecord is the unsigned structured state, base64url-encoded JSON.
type stateRecord struct {
	WorkspaceID string `json:"workspace_id"`
	Platform    string `json:"platform"`
}

var (
	errNotRecord    = errors.New("state is not a structured record")
	errNotComposite = errors.New("state is not a legacy composite")
)

// stateCodec signs new states and reads every historical encoding.
type stateCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewStateCodec is the constructor for stateCodec.
func NewStateCodec(cfg *config.Config) (service.StateCodec, error) {
	if cfg.State.SigningKey == "" {
		return nil, errors.New("state signing key must be provided")
	}

	return &stateCodec{
		secret: []byte(cfg.State.SigningKey),
		ttl:    cfg.State.TTL,
		now:    time.Now,
	}, nil
}

// Encode creates an HS256 token carrying the workspace and platform.
func (c *stateCodec) Encode(workspaceID string, platform entity.Platform) (string, error) {
	now := c.now()
	claims := stateClaims{
		WorkspaceID: workspaceID,
		Platform:    platform.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(c.secret)
}

// Decode tries each known encoding in order and never fails.
// Whitespace is ignored while parsing; the raw fallback keeps the input as is.
func (c *stateCodec) Decode(state string) entity.LinkState {
	trimmed := strings.TrimSpace(state)

	if decoded, err := c.decodeSigned(trimmed); err == nil {
		return decoded
	}
	if decoded, err := decodeRecord(trimmed); err == nil {
		return decoded
	}
	if decoded, err := decodeComposite(trimmed); err == nil {
		return decoded
	}

	return entity.LinkState{WorkspaceID: state}
}

func (c *stateCodec) decodeSigned(state string) (entity.LinkState, error) {
	claims := &stateClaims{}
	_, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return c.secret, nil
	}, jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())
	if err != nil {
		return entity.LinkState{}, err
	}
	if claims.WorkspaceID == "" {
		return entity.LinkState{}, jwt.ErrTokenInvalidClaims
	}

	return entity.LinkState{
		WorkspaceID: claims.WorkspaceID,
		Platform:    platformOrNil(claims.Platform),
	}, nil
}

// decodeRecord reads base64url JSON {"workspace_id","platform"}, padded or not.
func decodeRecord(state string) (entity.LinkState, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(state, "="))
	if err != nil {
		return entity.LinkState{}, errNotRecord
	}

	var record stateRecord
	if err := json.Unmarshal(raw, &record); err != nil || record.WorkspaceID == "" {
		return entity.LinkState{}, errNotRecord
	}

	return entity.LinkState{
		WorkspaceID: record.WorkspaceID,
		Platform:    platformOrNil(record.Platform),
	}, nil
}

// decodeComposite reads standard base64 of "<workspace_id>|<owner_id>".
func decodeComposite(state string) (entity.LinkState, error) {
	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(state, "="))
	if err != nil {
		return entity.LinkState{}, errNotComposite
	}

	workspaceID, _, found := strings.Cut(string(raw), "|")
	workspaceID = strings.TrimSpace(workspaceID)
	if !found || workspaceID == "" {
		return entity.LinkState{}, errNotComposite
	}

	return entity.LinkState{WorkspaceID: workspaceID}, nil
}

func platformOrNil(raw string) *entity.Platform {
	platform, ok := entity.ParsePlatform(raw)
	if !ok {
		return nil
	}

	return &platform
}
