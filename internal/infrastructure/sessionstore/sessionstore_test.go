package sessionstore_test

import (
	"context"
	"encoding/base64"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestor-Tareas/internal/application/session"
	"github.com/jhoicas/Gestor-Tareas/internal/infrastructure/postgres"
	"github.com/jhoicas/Gestor-Tareas/internal/infrastructure/sessionstore"
	"github.com/jhoicas/Gestor-Tareas/pkg/config"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// jar simula petición y respuesta: lo escrito en la respuesta se lee en la siguiente petición.
type jar struct {
	cookies map[string]string
	maxAges map[string]time.Duration
}

func newJar() *jar {
	return &jar{cookies: map[string]string{}, maxAges: map[string]time.Duration{}}
}

func (j *jar) Cookie(name string) string { return j.cookies[name] }

func (j *jar) SetCookie(name, value string, maxAge time.Duration) {
	j.cookies[name] = value
	j.maxAges[name] = maxAge
}

func (j *jar) ExpireCookie(name string) { delete(j.cookies, name) }

func testCodec(t *testing.T) *securecookie.SecureCookie {
	t.Helper()
	codec, err := sessionstore.NewCodec(config.SessionConfig{
		HashKey:  base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(64)),
		BlockKey: base64.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)),
	}, logger.Nop())
	require.NoError(t, err)
	return codec
}

func sampleValues() session.Values {
	return session.Values{
		session.KeyAccessToken: "tok-abc",
		session.KeyUserID:      "u-1",
		session.KeyUserProfile: `{"id":"u-1","email":"ana@example.com","firstName":"Ana","lastName":"Pérez","roles":["Empleado"]}`,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Codec
// ──────────────────────────────────────────────────────────────────────────────

func TestNewCodec_ClavesVaciasUsaAleatorias(t *testing.T) {
	codec, err := sessionstore.NewCodec(config.SessionConfig{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, codec)
}

func TestNewCodec_RechazaClavesInvalidas(t *testing.T) {
	_, err := sessionstore.NewCodec(config.SessionConfig{HashKey: "%%%"}, logger.Nop())
	assert.Error(t, err)

	_, err = sessionstore.NewCodec(config.SessionConfig{
		BlockKey: base64.StdEncoding.EncodeToString([]byte("corta")),
	}, logger.Nop())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Driver cookie
// ──────────────────────────────────────────────────────────────────────────────

func TestCookieStore_GuardaYCarga(t *testing.T) {
	store := sessionstore.NewCookieStore(testCodec(t), "gestor_session")
	j := newJar()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, j, sampleValues()))
	assert.NotContains(t, j.cookies["gestor_session"], "tok-abc")
	assert.Equal(t, time.Duration(0), j.maxAges["gestor_session"])

	got, err := store.Load(ctx, j)
	require.NoError(t, err)
	assert.Equal(t, sampleValues(), got)

	require.NoError(t, store.Clear(ctx, j))
	got, err = store.Load(ctx, j)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCookieStore_CookieAlteradaEsError(t *testing.T) {
	store := sessionstore.NewCookieStore(testCodec(t), "gestor_session")
	j := newJar()
	j.cookies["gestor_session"] = "valor-manipulado"

	_, err := store.Load(context.Background(), j)
	assert.Error(t, err)
}

func TestCookieStore_OtraClaveNoDescifra(t *testing.T) {
	j := newJar()
	ctx := context.Background()
	require.NoError(t, sessionstore.NewCookieStore(testCodec(t), "gestor_session").Save(ctx, j, sampleValues()))

	_, err := sessionstore.NewCookieStore(testCodec(t), "gestor_session").Load(ctx, j)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Driver redis
// ──────────────────────────────────────────────────────────────────────────────

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_GuardaYCarga(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := sessionstore.NewRedisStore(rdb, testCodec(t), "gestor_sid", time.Hour)
	j := newJar()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, j, sampleValues()))
	require.Len(t, mr.Keys(), 1)
	assert.Contains(t, mr.Keys()[0], "gestor:session:")
	assert.Equal(t, "tok-abc", mr.HGet(mr.Keys()[0], session.KeyAccessToken))
	assert.Equal(t, time.Hour, mr.TTL(mr.Keys()[0]))

	got, err := store.Load(ctx, j)
	require.NoError(t, err)
	assert.Equal(t, sampleValues(), got)
}

func TestRedisStore_ExpiraConTTL(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := sessionstore.NewRedisStore(rdb, testCodec(t), "gestor_sid", 10*time.Minute)
	j := newJar()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, j, sampleValues()))
	mr.FastForward(11 * time.Minute)

	got, err := store.Load(ctx, j)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisStore_ClearBorraElHash(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := sessionstore.NewRedisStore(rdb, testCodec(t), "gestor_sid", time.Hour)
	j := newJar()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, j, sampleValues()))
	require.NoError(t, store.Clear(ctx, j))
	assert.Empty(t, mr.Keys())
	assert.Empty(t, j.Cookie("gestor_sid"))

	// Idempotente sin cookie
	require.NoError(t, store.Clear(ctx, j))
}

func TestRedisStore_CadaSaveRotaElSID(t *testing.T) {
	mr, rdb := newTestRedis(t)
	store := sessionstore.NewRedisStore(rdb, testCodec(t), "gestor_sid", time.Hour)
	j := newJar()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, j, sampleValues()))
	first := j.Cookie("gestor_sid")
	require.NoError(t, store.Clear(ctx, j))
	require.NoError(t, store.Save(ctx, j, sampleValues()))

	assert.NotEqual(t, first, j.Cookie("gestor_sid"))
	assert.Len(t, mr.Keys(), 1)
}

func TestRedisStore_SIDAlteradoEsError(t *testing.T) {
	_, rdb := newTestRedis(t)
	store := sessionstore.NewRedisStore(rdb, testCodec(t), "gestor_sid", time.Hour)
	j := newJar()
	j.cookies["gestor_sid"] = "no-firmado"

	_, err := store.Load(context.Background(), j)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Driver postgres (solo con TEST_DATABASE_URL)
// ──────────────────────────────────────────────────────────────────────────────

func TestPostgresStore_GuardaCargaYBorra(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	store := sessionstore.NewPostgresStore(pool, testCodec(t), "gestor_sid", time.Hour)
	require.NoError(t, store.EnsureSchema(ctx))

	j := newJar()
	require.NoError(t, store.Save(ctx, j, sampleValues()))

	got, err := store.Load(ctx, j)
	require.NoError(t, err)
	assert.Equal(t, sampleValues(), got)

	require.NoError(t, store.Clear(ctx, j))
	got, err = store.Load(ctx, j)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = store.PurgeExpired(ctx)
	require.NoError(t, err)
}
