package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Nidhi8595/DevTinder3/internal/client/models"
	"github.com/Nidhi8595/DevTinder3/internal/logging"
)

// Keys under which the session is persisted. The token is stored verbatim;
// the user record is stored as JSON.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Vault persists the credential/user pair across process restarts.
//
// Contract:
//   - Save writes both values durably; callers never observe one without
//     the other.
//   - Load reports ok=false for "no session": missing keys, unreadable
//     storage, or a malformed user record. It never returns an error; the
//     client must stay usable unauthenticated.
//   - Clear removes both values.
type Vault interface {
	Save(ctx context.Context, token string, user *models.User) error
	Load(ctx context.Context) (token string, user *models.User, ok bool)
	Clear(ctx context.Context) error
}

// SessionVault is the concrete Vault over the local SQLite database.
type SessionVault struct {
	db  *sql.DB
	log logging.Logger
}

func NewSessionVault(db *sql.DB, log logging.Logger) *SessionVault {
	return &SessionVault{db: db, log: log}
}

// Save writes token and user in a single transaction.
func (v *SessionVault) Save(ctx context.Context, token string, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return WithTx(ctx, v.db, func(ctx context.Context, tx DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUser, data)
	})
}

// Load reads the persisted session back. Storage failures and malformed
// records degrade to "no session"; a malformed user record additionally
// triggers a best-effort Clear so the next load starts clean.
func (v *SessionVault) Load(ctx context.Context) (string, *models.User, bool) {
	repo := NewSQLiteRepository(v.db)

	rawToken, err := repo.Get(ctx, KeyToken)
	if err != nil {
		v.log.Warn(ctx, "session load failed, treating as logged out", "error", err)
		return "", nil, false
	}
	rawUser, err := repo.Get(ctx, KeyUser)
	if err != nil {
		v.log.Warn(ctx, "session load failed, treating as logged out", "error", err)
		return "", nil, false
	}
	if len(rawToken) == 0 || rawUser == nil {
		return "", nil, false
	}

	user, err := models.DecodeUser(rawUser)
	if err != nil {
		v.log.Warn(ctx, "persisted session is malformed, discarding", "error", err)
		if err := v.Clear(ctx); err != nil {
			v.log.Warn(ctx, "failed to discard malformed session", "error", err)
		}
		return "", nil, false
	}
	return string(rawToken), user, true
}

// Clear removes the persisted session. A single DELETE keeps the operation
// atomic from the caller's perspective.
func (v *SessionVault) Clear(ctx context.Context) error {
	return NewSQLiteRepository(v.db).Clear(ctx)
}
