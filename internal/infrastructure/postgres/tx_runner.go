package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oficinago/oficina-api/internal/application/compras"
	"github.com/oficinago/oficina-api/internal/application/orcamento"
	"github.com/oficinago/oficina-api/internal/application/ordemservico"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// TxRunner satisfaz as portas transacionais da camada de aplicação.
var _ ordemservico.TxRunner = (*TxRunner)(nil)
var _ orcamento.TxRunner = (*TxRunner)(nil)
var _ compras.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação para o ciclo de vida da ordem de serviço: OS,
// orçamento de origem, linhas de peça, estoque e receita vinculada.
func (r *TxRunner) Run(ctx context.Context, fn func(
	osRepo repository.OrdemServicoRepository,
	orcRepo repository.OrcamentoRepository,
	orcPecaRepo repository.OrcamentoPecaRepository,
	pecaRepo repository.PecaRepository,
	receitaRepo repository.ReceitaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewOrdemServicoRepository(tx),
		NewOrcamentoRepository(tx),
		NewOrcamentoPecaRepository(tx),
		NewPecaRepository(tx),
		NewReceitaRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrcamento inicia uma transação para o ciclo de vida do orçamento:
// orçamento, linhas e, na desaprovação em cascata, OS e receitas derivadas.
func (r *TxRunner) RunOrcamento(ctx context.Context, fn func(
	orcRepo repository.OrcamentoRepository,
	orcPecaRepo repository.OrcamentoPecaRepository,
	orcServRepo repository.OrcamentoServicoRepository,
	osRepo repository.OrdemServicoRepository,
	receitaRepo repository.ReceitaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewOrcamentoRepository(tx),
		NewOrcamentoPecaRepository(tx),
		NewOrcamentoServicoRepository(tx),
		NewOrdemServicoRepository(tx),
		NewReceitaRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCompra inicia uma transação para o registro de compra de peças: compra,
// estoque e despesa.
func (r *TxRunner) RunCompra(ctx context.Context, fn func(
	compraRepo repository.CompraPecaRepository,
	pecaRepo repository.PecaRepository,
	despesaRepo repository.DespesaRepository,
	categoriaRepo repository.CategoriaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewCompraPecaRepository(tx),
		NewPecaRepository(tx),
		NewDespesaRepository(tx),
		NewCategoriaRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
