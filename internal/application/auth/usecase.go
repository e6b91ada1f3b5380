package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
	"github.com/oficinago/oficina-api/pkg/jwt"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticação: registro e login.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewUseCase constrói o caso de uso.
func NewUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

func papelValido(p string) bool {
	return p == entity.PapelAdmin || p == entity.PapelAtendente || p == entity.PapelMecanico
}

// Registrar cria um usuário com a senha hasheada via bcrypt. Devolve
// ErrEmailJaCadastrado se o email já existir.
func (uc *UseCase) Registrar(in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.Email == "" || in.Senha == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, _ := uc.usuarioRepo.GetByEmail(in.Email)
	if existente != nil {
		return nil, domain.ErrEmailJaCadastrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nome := in.Nome
	if nome == "" {
		nome = in.Email
	}
	papel := in.Papel
	if papel == "" {
		papel = entity.PapelAtendente
	}
	if !papelValido(papel) {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	u := &entity.Usuario{
		ID:        uuid.New().String(),
		Email:     in.Email,
		Nome:      nome,
		SenhaHash: string(hash),
		Papel:     papel,
		Ativo:     true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.usuarioRepo.Create(u); err != nil {
		return nil, err
	}
	return toUsuarioResponse(u), nil
}

// Login verifica email/senha, emite o JWT e devolve token + usuário.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrNaoAutorizado
	}
	if !u.Ativo {
		return nil, domain.ErrAcessoNegado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Papel, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(u),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:    u.ID,
		Nome:  u.Nome,
		Email: u.Email,
		Papel: u.Papel,
	}
}
