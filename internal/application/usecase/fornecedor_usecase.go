package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// FornecedorUseCase casos de uso CRUD para fornecedores de peças.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Criar cadastra um fornecedor.
func (uc *FornecedorUseCase) Criar(in dto.CriarFornecedorRequest) (*entity.Fornecedor, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	f := &entity.Fornecedor{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Email:     in.Email,
		Telefone:  in.Telefone,
		Endereco:  in.Endereco,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.CNPJ != nil {
		f.CNPJ = *in.CNPJ
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Obter busca um fornecedor por ID.
func (uc *FornecedorUseCase) Obter(id string) (*entity.Fornecedor, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return f, nil
}

// Listar devolve todos os fornecedores.
func (uc *FornecedorUseCase) Listar() ([]*entity.Fornecedor, error) {
	return uc.repo.List()
}

// Atualizar edita um fornecedor.
func (uc *FornecedorUseCase) Atualizar(id string, in dto.CriarFornecedorRequest) (*entity.Fornecedor, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != "" {
		f.Nome = in.Nome
	}
	if in.CNPJ != nil {
		f.CNPJ = *in.CNPJ
	}
	if in.Email != nil {
		f.Email = in.Email
	}
	if in.Telefone != nil {
		f.Telefone = in.Telefone
	}
	if in.Endereco != nil {
		f.Endereco = in.Endereco
	}
	f.UpdatedAt = time.Now()
	if err := uc.repo.Update(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Excluir remove um fornecedor.
func (uc *FornecedorUseCase) Excluir(id string) error {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Delete(id)
}
