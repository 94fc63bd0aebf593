package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Drivers de persistencia de sesión soportados.
const (
	SessionDriverCookie   = "cookie"
	SessionDriverRedis    = "redis"
	SessionDriverPostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	Log        LogConfig
	HTTP       HTTPConfig
	Backend    BackendConfig
	Session    SessionConfig
	Redis      RedisConfig
	DB         DBConfig
	DevBackend DevBackendConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel de log: trace, debug, info, warn, error.
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig backend remoto de tareas (toda la lógica de negocio vive allí).
type BackendConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// Timeout devuelve el timeout de red de cada llamada al backend.
func (c BackendConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig persistencia de la sesión del navegador.
// HashKey y BlockKey van en base64; vacíos = claves aleatorias (las sesiones no sobreviven a un reinicio).
type SessionConfig struct {
	Driver     string // cookie, redis, postgres
	CookieName string
	HashKey    string
	BlockKey   string
	Secure     bool
	TTLMinutes int // solo redis/postgres; la cookie siempre dura lo que la sesión del navegador
}

// TTL devuelve el tiempo de vida del registro de sesión en servidor.
func (c SessionConfig) TTL() time.Duration {
	if c.TTLMinutes <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(c.TTLMinutes) * time.Minute
}

// RedisConfig conexión a Redis para el driver de sesión redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// DBConfig configuración de PostgreSQL para el driver de sesión postgres.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// DevBackendConfig backend de desarrollo en memoria (gestor devbackend).
type DevBackendConfig struct {
	Host          string
	Port          int
	JWTSecret     string
	JWTExpiration int // minutos
	AdminEmail    string
	AdminPassword string
}

// Addr devuelve la dirección de escucha del backend de desarrollo.
func (c DevBackendConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_URL, SESSION_DRIVER, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "gestor-tareas"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL:        strings.TrimRight(getString(v, "API_URL", "http://localhost:8000"), "/"),
			TimeoutSeconds: getInt(v, "API_TIMEOUT_SECONDS", 15),
		},
		Session: SessionConfig{
			Driver:     strings.ToLower(getString(v, "SESSION_DRIVER", SessionDriverCookie)),
			CookieName: getString(v, "SESSION_COOKIE_NAME", "gestor_session"),
			HashKey:    getString(v, "SESSION_HASH_KEY", ""),
			BlockKey:   getString(v, "SESSION_BLOCK_KEY", ""),
			Secure:     getBool(v, "SESSION_SECURE", false),
			TTLMinutes: getInt(v, "SESSION_TTL_MINUTES", 720),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "gestor_tareas"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		DevBackend: DevBackendConfig{
			Host:          getString(v, "DEVBACKEND_HOST", "0.0.0.0"),
			Port:          getInt(v, "DEVBACKEND_PORT", 8000),
			JWTSecret:     getString(v, "DEVBACKEND_JWT_SECRET", "dev-secret-cambiar"),
			JWTExpiration: getInt(v, "DEVBACKEND_JWT_EXPIRATION_MINUTES", 60),
			AdminEmail:    getString(v, "DEVBACKEND_ADMIN_EMAIL", "admin@gestor.local"),
			AdminPassword: getString(v, "DEVBACKEND_ADMIN_PASSWORD", "admin12345"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Session.Driver {
	case SessionDriverCookie, SessionDriverRedis, SessionDriverPostgres:
	default:
		return fmt.Errorf("config: SESSION_DRIVER inválido %q (cookie, redis, postgres)", c.Session.Driver)
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("config: API_URL vacío")
	}
	if _, err := url.ParseRequestURI(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("config: API_URL inválido: %w", err)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
