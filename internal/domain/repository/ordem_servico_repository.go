package repository

import "github.com/oficinago/oficina-api/internal/domain/entity"

// OrdemServicoRepository contrato de persistência de ordens de serviço.
// GetForUpdate bloqueia a linha da OS; o coordenador de ciclo de vida usa isso
// para ler o status anteriormente persistido sem corrida com outra transição.
type OrdemServicoRepository interface {
	Create(os *entity.OrdemServico) error
	GetByID(id string) (*entity.OrdemServico, error)
	GetForUpdate(id string) (*entity.OrdemServico, error)
	GetByOrcamento(orcamentoID string) (*entity.OrdemServico, error)
	GetDetalhada(id string) (*entity.OrdemServicoDetalhada, error)
	List() ([]*entity.OrdemServico, error)
	ListRecentes(limit int) ([]*entity.OrdemServicoDetalhada, error)
	CountByStatus(status entity.StatusServico) (int, error)
	Update(os *entity.OrdemServico) error
	Delete(id string) error
	ProximoNumero() (string, error)
}
