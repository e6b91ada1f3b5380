package compras

import (
	"context"

	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. A entrada de compra grava a compra,
// o incremento de estoque e a despesa em uma única transação.
type TxRunner interface {
	RunCompra(ctx context.Context, fn func(
		compraRepo repository.CompraPecaRepository,
		pecaRepo repository.PecaRepository,
		despesaRepo repository.DespesaRepository,
		categoriaRepo repository.CategoriaRepository,
	) error) error
}
