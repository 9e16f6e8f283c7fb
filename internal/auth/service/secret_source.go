package service

import (
	"context"
	"encoding/base64"

	"gocloud.dev/secrets"
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"

	"github.com/patrolbook/patrolbook/internal/auth/domain"
	"github.com/patrolbook/patrolbook/internal/config"
	"github.com/patrolbook/patrolbook/internal/errors"
)

// ResolveSigningSecret produces the token signing secret from configuration.
// When a KMS key URI is configured the secret is stored as a base64 ciphertext
// and decrypted through the matching keeper; otherwise the plaintext value
// from the environment is used directly. Either way an empty result is a
// startup failure, never a silent fallback.
func ResolveSigningSecret(ctx context.Context, cfg *config.Config) ([]byte, error) {
	if cfg.TokenKMSKeyURI != "" {
		return decryptSigningSecret(ctx, cfg.TokenKMSKeyURI, cfg.TokenSigningSecretCiphertext)
	}
	if cfg.TokenSigningSecret == "" {
		return nil, domain.ErrMissingSigningSecret
	}
	return []byte(cfg.TokenSigningSecret), nil
}

func decryptSigningSecret(ctx context.Context, keyURI, ciphertext string) ([]byte, error) {
	if ciphertext == "" {
		return nil, domain.ErrMissingSigningSecret
	}
	encrypted, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return nil, errors.Wrap(err, "decode signing secret ciphertext")
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, errors.Wrap(err, "open secrets keeper")
	}
	defer keeper.Close()

	plaintext, err := keeper.Decrypt(ctx, encrypted)
	if err != nil {
		return nil, errors.Wrap(err, "decrypt signing secret")
	}
	if len(plaintext) == 0 {
		return nil, domain.ErrMissingSigningSecret
	}
	return plaintext, nil
}
