package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Gestor-Tareas/internal/application/session"
)

var _ session.Persistence = (*PostgresStore)(nil)

// PostgresStore guarda la sesión en la tabla web_sessions; la cookie lleva el sid firmado.
type PostgresStore struct {
	pool  *pgxpool.Pool
	codec *securecookie.SecureCookie
	name  string
	ttl   time.Duration
}

// NewPostgresStore crea el driver postgres.
func NewPostgresStore(pool *pgxpool.Pool, codec *securecookie.SecureCookie, cookieName string, ttl time.Duration) *PostgresStore {
	return &PostgresStore{pool: pool, codec: codec, name: cookieName, ttl: ttl}
}

// EnsureSchema crea la tabla si no existe.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS web_sessions (
			id         UUID PRIMARY KEY,
			data       JSONB NOT NULL,
			expires_at TIMESTAMPTZ NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS web_sessions_expires_at_idx ON web_sessions (expires_at);`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("crear web_sessions: %w", err)
	}
	return nil
}

// Load lee la fila vigente del sid de la cookie.
func (s *PostgresStore) Load(ctx context.Context, jar session.CookieJar) (session.Values, error) {
	sid, err := readSID(s.codec, s.name, jar)
	if err != nil || sid == "" {
		return nil, err
	}
	var raw []byte
	err = s.pool.QueryRow(ctx,
		`SELECT data FROM web_sessions WHERE id = $1 AND expires_at > now()`, sid,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select web_sessions: %w", err)
	}
	values := session.Values{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("web_sessions.data: %w", err)
	}
	return values, nil
}

// Save inserta una fila nueva con expiración now()+TTL.
func (s *PostgresStore) Save(ctx context.Context, jar session.CookieJar, values session.Values) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("marshal sesión: %w", err)
	}
	sid := uuid.NewString()
	_, err = s.pool.Exec(ctx,
		`INSERT INTO web_sessions (id, data, expires_at) VALUES ($1, $2, $3)`,
		sid, data, time.Now().Add(s.ttl),
	)
	if err != nil {
		return fmt.Errorf("insert web_sessions: %w", err)
	}
	return writeSID(s.codec, s.name, jar, sid)
}

// Clear borra la fila del sid actual y expira la cookie.
func (s *PostgresStore) Clear(ctx context.Context, jar session.CookieJar) error {
	sid, _ := readSID(s.codec, s.name, jar)
	jar.ExpireCookie(s.name)
	if sid == "" {
		return nil
	}
	if _, err := s.pool.Exec(ctx, `DELETE FROM web_sessions WHERE id = $1`, sid); err != nil {
		return fmt.Errorf("delete web_sessions: %w", err)
	}
	return nil
}

// PurgeExpired borra las filas vencidas y devuelve cuántas eran.
func (s *PostgresStore) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM web_sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("purge web_sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}
