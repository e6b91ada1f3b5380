package repository

import "github.com/oficinago/oficina-api/internal/domain/entity"

// PecaRepository contrato de persistência de peças.
// GetForUpdate bloqueia a linha (SELECT FOR UPDATE); deve ser usado por quem
// for alterar o estoque, para serializar ajustes concorrentes por peça.
type PecaRepository interface {
	Create(p *entity.Peca) error
	GetByID(id string) (*entity.Peca, error)
	GetForUpdate(id string) (*entity.Peca, error)
	List(limit, offset int) ([]*entity.Peca, error)
	Update(p *entity.Peca) error
	UpdateEstoque(id string, estoque int) error
	Delete(id string) error
}

// ServicoRepository contrato de persistência de serviços do catálogo.
type ServicoRepository interface {
	Create(s *entity.Servico) error
	GetByID(id string) (*entity.Servico, error)
	List(limit, offset int) ([]*entity.Servico, error)
	Update(s *entity.Servico) error
	Delete(id string) error
}
