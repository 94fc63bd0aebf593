package entity

import "strings"

// Credentials datos del formulario de login. El backend espera el campo "emails".
type Credentials struct {
	Email    string
	Password string
}

// Profile perfil derivado del login; se persiste como JSON bajo la clave user_profile.
type Profile struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
}

// DisplayName nombre y apellido ("" sin perfil).
func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Session identidad autenticada del navegador: se crea en el login y se destruye
// en el logout o ante un 401 del backend.
type Session struct {
	SubjectID   string
	DisplayName string
	Email       string
	Roles       []string
	Token       string
}
