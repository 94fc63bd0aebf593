// Package sessionstore implementa los drivers de persistencia de la sesión:
// cookie cifrada, Redis y PostgreSQL. Los tres firman lo que viaja al navegador
// con gorilla/securecookie.
package sessionstore

import (
	"encoding/base64"
	"fmt"

	"github.com/gorilla/securecookie"

	"github.com/jhoicas/Gestor-Tareas/pkg/config"
	"github.com/jhoicas/Gestor-Tareas/pkg/logger"
)

// NewCodec construye el codificador a partir de las claves base64 de la configuración.
// Sin claves se generan aleatorias y las sesiones se pierden al reiniciar.
func NewCodec(cfg config.SessionConfig, log *logger.Logger) (*securecookie.SecureCookie, error) {
	hashKey, err := decodeKey(cfg.HashKey)
	if err != nil {
		return nil, fmt.Errorf("SESSION_HASH_KEY: %w", err)
	}
	blockKey, err := decodeKey(cfg.BlockKey)
	if err != nil {
		return nil, fmt.Errorf("SESSION_BLOCK_KEY: %w", err)
	}
	if hashKey == nil {
		log.Warn().Msg("SESSION_HASH_KEY vacío: se usa una clave aleatoria")
		hashKey = securecookie.GenerateRandomKey(64)
	}
	if blockKey == nil {
		log.Warn().Msg("SESSION_BLOCK_KEY vacío: se usa una clave aleatoria")
		blockKey = securecookie.GenerateRandomKey(32)
	}
	switch len(blockKey) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("SESSION_BLOCK_KEY debe tener 16, 24 o 32 bytes (tiene %d)", len(blockKey))
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	// La cookie no tiene Expires; el límite de edad lo pone el TTL del servidor.
	codec.MaxAge(0)
	return codec, nil
}

func decodeKey(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("base64 inválido: %w", err)
	}
	return key, nil
}
