package repository

import (
	"github.com/shopspring/decimal"

	"github.com/oficinago/oficina-api/internal/domain/entity"
)

// OrcamentoRepository contrato de persistência de orçamentos.
type OrcamentoRepository interface {
	Create(o *entity.Orcamento) error
	GetByID(id string) (*entity.Orcamento, error)
	GetDetalhado(id string) (*entity.OrcamentoDetalhado, error)
	List() ([]*entity.OrcamentoDetalhado, error)
	CountByStatus(status entity.StatusOrcamento) (int, error)
	Update(o *entity.Orcamento) error
	UpdateStatus(id string, status entity.StatusOrcamento) error
	UpdateValorTotal(id string, valor decimal.Decimal) error
	Delete(id string) error
	ProximoNumero() (string, error)
}

// OrcamentoPecaRepository contrato das linhas de peça de um orçamento.
type OrcamentoPecaRepository interface {
	Create(l *entity.OrcamentoPeca) error
	GetByID(id string) (*entity.OrcamentoPeca, error)
	ListByOrcamento(orcamentoID string) ([]*entity.OrcamentoPeca, error)
	Delete(id string) error
}

// OrcamentoServicoRepository contrato das linhas de serviço de um orçamento.
type OrcamentoServicoRepository interface {
	Create(l *entity.OrcamentoServico) error
	GetByID(id string) (*entity.OrcamentoServico, error)
	ListByOrcamento(orcamentoID string) ([]*entity.OrcamentoServico, error)
	Delete(id string) error
}
