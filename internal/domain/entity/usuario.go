package entity

import "time"

// Papéis de usuário.
const (
	PapelAdmin      = "admin"
	PapelAtendente  = "atendente"
	PapelMecanico   = "mecanico"
)

// Usuario é um usuário do sistema (funcionário da oficina).
type Usuario struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Nome         string    `json:"nome"`
	SenhaHash    string    `json:"-"`
	Papel        string    `json:"papel"`
	Ativo        bool      `json:"ativo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
