package database

import (
	"context"
	"fmt"

	"github.com/artisanbay/sellerhub/internal/domain"
	"github.com/surrealdb/surrealdb.go"
)

// SurrealTokenVerifier validates bearer tokens against the database's
// record-access scope and resolves the seller uid they belong to.
type SurrealTokenVerifier struct {
	db *surrealdb.DB
}

// NewSurrealTokenVerifier creates a new SurrealTokenVerifier.
func NewSurrealTokenVerifier(db *surrealdb.DB) *SurrealTokenVerifier {
	return &SurrealTokenVerifier{db: db}
}

// Verify authenticates the connection with the provided token and returns
// the uid of the authenticated seller.
func (v *SurrealTokenVerifier) Verify(ctx context.Context, token string) (string, error) {
	// This validates the token against the access scope and sets the auth
	// context for subsequent queries on this connection.
	if err := v.db.Authenticate(ctx, token); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	type authRecord struct {
		UID string `json:"uid"`
	}
	records, err := Query[authRecord](ctx, v.db, "SELECT uid FROM $auth", nil)
	if err != nil {
		return "", fmt.Errorf("failed to resolve authenticated seller: %w", err)
	}
	if len(records) == 0 || records[0].UID == "" {
		return "", domain.ErrInvalidCredentials
	}

	return records[0].UID, nil
}
