package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorias financeiras.
type CategoriaUseCase struct {
	repo repository.CategoriaRepository
}

// NewCategoriaUseCase constrói o caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo}
}

func tipoCategoriaValido(tipo string) bool {
	return tipo == entity.CategoriaReceita || tipo == entity.CategoriaDespesa || tipo == entity.CategoriaAmbos
}

// Criar cadastra uma categoria. Nome+tipo são únicos.
func (uc *CategoriaUseCase) Criar(in dto.CriarCategoriaRequest) (*entity.Categoria, error) {
	if in.Nome == "" || !tipoCategoriaValido(in.Tipo) {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.repo.GetByNomeTipo(in.Nome, in.Tipo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	now := time.Now()
	c := &entity.Categoria{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Tipo:      in.Tipo,
		Cor:       in.Cor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Listar devolve todas as categorias.
func (uc *CategoriaUseCase) Listar() ([]*entity.Categoria, error) {
	return uc.repo.List()
}

// Atualizar edita uma categoria.
func (uc *CategoriaUseCase) Atualizar(id string, in dto.CriarCategoriaRequest) (*entity.Categoria, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != "" {
		c.Nome = in.Nome
	}
	if in.Tipo != "" {
		if !tipoCategoriaValido(in.Tipo) {
			return nil, domain.ErrEntradaInvalida
		}
		c.Tipo = in.Tipo
	}
	if in.Cor != nil {
		c.Cor = in.Cor
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Excluir remove uma categoria.
func (uc *CategoriaUseCase) Excluir(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Delete(id)
}
