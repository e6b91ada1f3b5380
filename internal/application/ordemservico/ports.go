package ordemservico

import (
	"context"

	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante atomicidade entre a ordem de
// serviço, o estoque e a receita vinculada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		osRepo repository.OrdemServicoRepository,
		orcRepo repository.OrcamentoRepository,
		orcPecaRepo repository.OrcamentoPecaRepository,
		pecaRepo repository.PecaRepository,
		receitaRepo repository.ReceitaRepository,
	) error) error
}
