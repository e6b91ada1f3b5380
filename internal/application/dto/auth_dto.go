package dto

// RegisterRequest cadastro de usuário do sistema.
type RegisterRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Papel string `json:"papel"`
}

// LoginRequest credenciais de acesso.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UsuarioResponse usuário sem o hash de senha.
type UsuarioResponse struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Papel string `json:"papel"`
}

// LoginResponse token JWT emitido no login.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
