package entity

import (
	"strings"
	"time"
)

// User usuario tal como lo ve la consola de administración.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Age       int
	Roles     []string
	Active    bool
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

// FullName nombre y apellido.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// PrimaryRole primer rol del usuario ("" si no tiene). La consola mantiene uno solo.
func (u *User) PrimaryRole() string {
	if len(u.Roles) == 0 {
		return ""
	}
	return u.Roles[0]
}
