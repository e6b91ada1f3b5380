package orcamento

import (
	"context"

	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. O recálculo do valor total acontece na
// mesma transação que altera as linhas; a desaprovação em cascata idem.
type TxRunner interface {
	RunOrcamento(ctx context.Context, fn func(
		orcRepo repository.OrcamentoRepository,
		orcPecaRepo repository.OrcamentoPecaRepository,
		orcServRepo repository.OrcamentoServicoRepository,
		osRepo repository.OrdemServicoRepository,
		receitaRepo repository.ReceitaRepository,
	) error) error
}
