package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fernwick/stockfolio/pkg/cryptox"
	"github.com/fernwick/stockfolio/pkg/jwtx"
)

// InitSessionKeys loads the Ed25519 session signing key from disk, generating
// and persisting a fresh one on first boot. Reusing the key across restarts
// keeps existing session cookies valid through a redeploy.
func InitSessionKeys(cfg Config, logger *slog.Logger) (*jwtx.EdDSASigner, *jwtx.EdDSAVerifier, error) {
	pemKey, err := os.ReadFile(cfg.SessionKeyFile)
	if errors.Is(err, os.ErrNotExist) {
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate session key: %w", err)
		}
		if err := os.WriteFile(cfg.SessionKeyFile, pemKey, 0o600); err != nil {
			return nil, nil, fmt.Errorf("failed to persist session key: %w", err)
		}
		logger.Info("generated new session signing key", "path", cfg.SessionKeyFile)
	} else if err != nil {
		return nil, nil, fmt.Errorf("failed to read session key: %w", err)
	}

	signer, err := jwtx.NewSignerEdDSA(pemKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session key: %w", err)
	}

	verifier := jwtx.NewVerifierEdDSA(signer.PublicKey(), cfg.Issuer)
	return signer, verifier, nil
}
