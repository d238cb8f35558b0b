// Package secrets encrypts stored credentials with a gocloud.dev keeper.
package secrets

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"multipost/config"
	"multipost/internal/domain/service"
	"multipost/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/secrets"
	_ "gocloud.dev/secrets/localsecrets" // base64key:// and stringkey:// keepers
)

// sealedPrefix marks values written by the keeper; anything else is plaintext
// stored before encryption was enabled.
const sealedPrefix = "enc:v1:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTokenCipher opens the configured keeper. With no keeper URL, values pass through unchanged.
func NewTokenCipher(params Params) (service.TokenCipher, error) {
	keeperURL := strings.TrimSpace(params.Config.Secrets.KeeperURL)
	if keeperURL == "" {
		params.Logger.Warn("Credential encryption disabled, no secrets.keeperUrl configured")

		return plainCipher{}, nil
	}

	keeper, err := secrets.OpenKeeper(context.Background(), keeperURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open secrets keeper")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return keeper.Close()
		},
	})

	return NewKeeperCipher(keeper), nil
}

// keeperCipher seals values with a secrets.Keeper.
type keeperCipher struct {
	keeper *secrets.Keeper
}

// NewKeeperCipher wraps an opened keeper.
func NewKeeperCipher(keeper *secrets.Keeper) service.TokenCipher {
	return &keeperCipher{keeper: keeper}
}

func (c *keeperCipher) Encrypt(ctx context.Context, plaintext string) (string, error) {
	sealed, err := c.keeper.Encrypt(ctx, []byte(plaintext))
	if err != nil {
		return "", errors.Wrap(err, "keeper encrypt")
	}

	return sealedPrefix + base64.RawURLEncoding.EncodeToString(sealed), nil
}

func (c *keeperCipher) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	encoded, ok := strings.CutPrefix(ciphertext, sealedPrefix)
	if !ok {
		return ciphertext, nil
	}

	sealed, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.Wrap(err, "decode sealed credential")
	}

	plain, err := c.keeper.Decrypt(ctx, sealed)
	if err != nil {
		return "", errors.Wrap(err, "keeper decrypt")
	}

	return string(plain), nil
}

// plainCipher is used when encryption is disabled.
type plainCipher struct{}

func (plainCipher) Encrypt(_ context.Context, plaintext string) (string, error) {
	return plaintext, nil
}

func (plainCipher) Decrypt(_ context.Context, ciphertext string) (string, error) {
	return ciphertext, nil
}
