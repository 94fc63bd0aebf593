package sessionstore

import (
	"context"
	"fmt"

	"github.com/gorilla/securecookie"

	"github.com/jhoicas/Gestor-Tareas/internal/application/session"
)

var _ session.Persistence = (*CookieStore)(nil)

// CookieStore guarda las tres claves cifradas en una única cookie de sesión del navegador.
type CookieStore struct {
	codec *securecookie.SecureCookie
	name  string
}

// NewCookieStore crea el driver cookie.
func NewCookieStore(codec *securecookie.SecureCookie, cookieName string) *CookieStore {
	return &CookieStore{codec: codec, name: cookieName}
}

// Load decodifica la cookie; sin cookie devuelve valores vacíos.
func (s *CookieStore) Load(_ context.Context, jar session.CookieJar) (session.Values, error) {
	raw := jar.Cookie(s.name)
	if raw == "" {
		return nil, nil
	}
	values := session.Values{}
	if err := s.codec.Decode(s.name, raw, &values); err != nil {
		return nil, fmt.Errorf("decode cookie %s: %w", s.name, err)
	}
	return values, nil
}

// Save escribe la cookie cifrada, sin fecha de expiración.
func (s *CookieStore) Save(_ context.Context, jar session.CookieJar, values session.Values) error {
	encoded, err := s.codec.Encode(s.name, values)
	if err != nil {
		return fmt.Errorf("encode cookie %s: %w", s.name, err)
	}
	jar.SetCookie(s.name, encoded, 0)
	return nil
}

// Clear expira la cookie.
func (s *CookieStore) Clear(_ context.Context, jar session.CookieJar) error {
	jar.ExpireCookie(s.name)
	return nil
}
