package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User representa um usuário da plataforma. Cada usuário enxerga os dados de
// engajamento de uma única conta (AccountID).
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	AccountID    string    `json:"account_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims são as claims do token JWT emitido no login. A camada de analytics
// recebe o AccountID já autenticado a partir daqui.
type Claims struct {
	UserID     int
	UserName   string
	UserEmail  string
	UserRoleID int
	AccountID  string
	jwt.RegisteredClaims
}
