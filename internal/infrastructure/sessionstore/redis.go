package sessionstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Gestor-Tareas/internal/application/session"
)

const redisKeyPrefix = "gestor:session:"

var _ session.Persistence = (*RedisStore)(nil)

// RedisStore guarda la sesión en un hash de Redis; la cookie solo lleva el sid firmado.
type RedisStore struct {
	rdb   redis.Cmdable
	codec *securecookie.SecureCookie
	name  string
	ttl   time.Duration
}

// NewRedisStore crea el driver redis.
func NewRedisStore(rdb redis.Cmdable, codec *securecookie.SecureCookie, cookieName string, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, codec: codec, name: cookieName, ttl: ttl}
}

// Key clave del hash de una sesión.
func (s *RedisStore) Key(sid string) string {
	return redisKeyPrefix + sid
}

// Load lee el hash del sid de la cookie. Un sid sin hash (expirado) es una sesión vacía.
func (s *RedisStore) Load(ctx context.Context, jar session.CookieJar) (session.Values, error) {
	sid, err := readSID(s.codec, s.name, jar)
	if err != nil || sid == "" {
		return nil, err
	}
	fields, err := s.rdb.HGetAll(ctx, s.Key(sid)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis HGETALL: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return session.Values(fields), nil
}

// Save crea un sid nuevo con los valores y TTL.
func (s *RedisStore) Save(ctx context.Context, jar session.CookieJar, values session.Values) error {
	sid := uuid.NewString()
	key := s.Key(sid)

	fields := make(map[string]interface{}, len(values))
	for k, v := range values {
		fields[k] = v
	}
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis HSET: %w", err)
	}
	return writeSID(s.codec, s.name, jar, sid)
}

// Clear borra el hash del sid actual (si lo hay) y expira la cookie.
func (s *RedisStore) Clear(ctx context.Context, jar session.CookieJar) error {
	sid, _ := readSID(s.codec, s.name, jar)
	jar.ExpireCookie(s.name)
	if sid == "" {
		return nil
	}
	if err := s.rdb.Del(ctx, s.Key(sid)).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("redis DEL: %w", err)
	}
	return nil
}

func readSID(codec *securecookie.SecureCookie, name string, jar session.CookieJar) (string, error) {
	raw := jar.Cookie(name)
	if raw == "" {
		return "", nil
	}
	var sid string
	if err := codec.Decode(name, raw, &sid); err != nil {
		return "", fmt.Errorf("decode sid: %w", err)
	}
	if _, err := uuid.Parse(sid); err != nil {
		return "", fmt.Errorf("sid inválido: %w", err)
	}
	return sid, nil
}

func writeSID(codec *securecookie.SecureCookie, name string, jar session.CookieJar, sid string) error {
	encoded, err := codec.Encode(name, sid)
	if err != nil {
		return fmt.Errorf("encode sid: %w", err)
	}
	jar.SetCookie(name, encoded, 0)
	return nil
}
