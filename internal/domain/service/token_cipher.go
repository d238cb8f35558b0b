package service

import "context"

// TokenCipher encrypts credential material before it reaches the store.
type TokenCipher interface {
	Encrypt(ctx context.Context, plaintext string) (string, error)
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}
