package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/domain"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
)

const msgAuthFailed = "Error de autenticación"

type wireLogin struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	UserID      flexID   `json:"user_id"`
	UserEmails  string   `json:"user_emails"`
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Roles       []string `json:"roles"`
}

// Login POST /users/login. Es la única llamada pública: no lleva token y un 401
// aquí significa credenciales rechazadas, no sesión expirada.
func (c *Client) Login(ctx context.Context, creds entity.Credentials) (*dto.LoginResponse, error) {
	const op = "backend.Login"
	in := dto.LoginRequest{Email: creds.Email, Password: creds.Password}

	status, body, err := c.roundTrip(ctx, op, http.MethodPost, "/users/login", "", in)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		detail := parseDetail(body)
		msg := detail
		if msg == "" {
			msg = msgAuthFailed
		}
		return nil, &domain.AuthenticationError{Message: msg, Err: domain.NewRequestFailed(status, detail)}
	}

	var w wireLogin
	if err := decodeBody(op, body, &w); err != nil {
		return nil, &domain.AuthenticationError{Message: msgAuthFailed, Err: err}
	}
	if w.AccessToken == "" {
		return nil, &domain.AuthenticationError{Message: msgAuthFailed}
	}
	roles := w.Roles
	if roles == nil {
		roles = []string{}
	}
	return &dto.LoginResponse{
		AccessToken: w.AccessToken,
		TokenType:   w.TokenType,
		UserID:      string(w.UserID),
		Email:       w.UserEmails,
		FirstName:   w.FirstName,
		LastName:    w.LastName,
		Roles:       roles,
	}, nil
}
