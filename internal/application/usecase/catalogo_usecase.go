package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// PecaUseCase casos de uso CRUD para o catálogo de peças. O estoque não é
// editado por aqui: só o motor de estoque (transições de OS) e o registro de
// compras mexem na quantidade depois do cadastro inicial.
type PecaUseCase struct {
	repo repository.PecaRepository
}

// NewPecaUseCase constrói o caso de uso.
func NewPecaUseCase(repo repository.PecaRepository) *PecaUseCase {
	return &PecaUseCase{repo: repo}
}

// Criar cadastra uma peça com o estoque inicial informado.
func (uc *PecaUseCase) Criar(in dto.CriarPecaRequest) (*entity.Peca, error) {
	if in.Nome == "" || !in.ValorUnitario.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Estoque != nil && *in.Estoque < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	p := &entity.Peca{
		ID:            uuid.New().String(),
		Nome:          in.Nome,
		Codigo:        in.Codigo,
		ValorUnitario: in.ValorUnitario,
		ValorCusto:    in.ValorCusto,
		Estoque:       in.Estoque,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Obter busca uma peça por ID.
func (uc *PecaUseCase) Obter(id string) (*entity.Peca, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return p, nil
}

// Listar devolve uma página do catálogo de peças.
func (uc *PecaUseCase) Listar(page dto.PageRequest) ([]*entity.Peca, error) {
	page.DefaultPage()
	return uc.repo.List(page.Limit, page.Offset)
}

// Atualizar edita os dados cadastrais da peça, sem tocar no estoque.
func (uc *PecaUseCase) Atualizar(id string, in dto.CriarPecaRequest) (*entity.Peca, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != "" {
		p.Nome = in.Nome
	}
	if in.Codigo != nil {
		p.Codigo = in.Codigo
	}
	if in.ValorUnitario.GreaterThan(decimal.Zero) {
		p.ValorUnitario = in.ValorUnitario
	}
	if in.ValorCusto != nil {
		p.ValorCusto = in.ValorCusto
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Excluir remove uma peça do catálogo.
func (uc *PecaUseCase) Excluir(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Delete(id)
}

// ServicoUseCase casos de uso CRUD para o catálogo de serviços.
type ServicoUseCase struct {
	repo repository.ServicoRepository
}

// NewServicoUseCase constrói o caso de uso.
func NewServicoUseCase(repo repository.ServicoRepository) *ServicoUseCase {
	return &ServicoUseCase{repo: repo}
}

// Criar cadastra um serviço cobrado por hora.
func (uc *ServicoUseCase) Criar(in dto.CriarServicoRequest) (*entity.Servico, error) {
	if in.Nome == "" || !in.ValorHora.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	s := &entity.Servico{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		Descricao: in.Descricao,
		ValorHora: in.ValorHora,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Obter busca um serviço por ID.
func (uc *ServicoUseCase) Obter(id string) (*entity.Servico, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return s, nil
}

// Listar devolve uma página do catálogo de serviços.
func (uc *ServicoUseCase) Listar(page dto.PageRequest) ([]*entity.Servico, error) {
	page.DefaultPage()
	return uc.repo.List(page.Limit, page.Offset)
}

// Atualizar edita um serviço.
func (uc *ServicoUseCase) Atualizar(id string, in dto.CriarServicoRequest) (*entity.Servico, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != "" {
		s.Nome = in.Nome
	}
	if in.Descricao != nil {
		s.Descricao = in.Descricao
	}
	if in.ValorHora.GreaterThan(decimal.Zero) {
		s.ValorHora = in.ValorHora
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Excluir remove um serviço do catálogo.
func (uc *ServicoUseCase) Excluir(id string) error {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Delete(id)
}
