package compras

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// Categoria de despesa usada pelas entradas de compra.
const categoriaPecas = "Peças"

// UseCase registra entradas de compra de peças. Cada registro tem três efeitos
// atômicos: a compra em si, o incremento do estoque da peça (com atualização do
// custo) e o lançamento da despesa na categoria "Peças". Compras da mesma nota
// e fornecedor são somadas na despesa já existente em vez de gerar outra.
type UseCase struct {
	txRunner       TxRunner
	compraRepo     repository.CompraPecaRepository
	fornecedorRepo repository.FornecedorRepository
	pecaRepo       repository.PecaRepository
	log            zerolog.Logger
	agora          func() time.Time
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner TxRunner,
	compraRepo repository.CompraPecaRepository,
	fornecedorRepo repository.FornecedorRepository,
	pecaRepo repository.PecaRepository,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		compraRepo:     compraRepo,
		fornecedorRepo: fornecedorRepo,
		pecaRepo:       pecaRepo,
		log:            log,
		agora:          time.Now,
	}
}

// Registrar grava a compra, soma a quantidade ao estoque da peça e lança (ou
// funde) a despesa correspondente, tudo na mesma transação.
func (uc *UseCase) Registrar(ctx context.Context, in dto.RegistrarCompraRequest) (*entity.CompraPeca, error) {
	if in.NumeroNota == "" || in.FornecedorID == "" || in.PecaID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Quantidade <= 0 || !in.ValorCusto.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	dataCompra, err := dto.ParseDataOpcional(in.DataCompra)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}

	fornecedor, err := uc.fornecedorRepo.GetByID(in.FornecedorID)
	if err != nil {
		return nil, err
	}
	if fornecedor == nil {
		return nil, domain.ErrNaoEncontrado
	}

	now := uc.agora()
	compra := &entity.CompraPeca{
		ID:           uuid.New().String(),
		NumeroNota:   in.NumeroNota,
		FornecedorID: in.FornecedorID,
		PecaID:       in.PecaID,
		Quantidade:   in.Quantidade,
		ValorCusto:   in.ValorCusto,
		DataCompra:   now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if dataCompra != nil {
		compra.DataCompra = *dataCompra
	}

	err = uc.txRunner.RunCompra(ctx, func(
		compraRepo repository.CompraPecaRepository,
		pecaRepo repository.PecaRepository,
		despesaRepo repository.DespesaRepository,
		categoriaRepo repository.CategoriaRepository,
	) error {
		peca, err := pecaRepo.GetForUpdate(in.PecaID)
		if err != nil {
			return err
		}
		if peca == nil {
			return domain.ErrNaoEncontrado
		}

		if err := compraRepo.Create(compra); err != nil {
			return err
		}

		// Entrada soma ao estoque e atualiza o custo unitário da peça.
		novoEstoque := peca.EstoqueAtual() + in.Quantidade
		peca.Estoque = &novoEstoque
		peca.ValorCusto = &in.ValorCusto
		peca.UpdatedAt = now
		if err := pecaRepo.Update(peca); err != nil {
			return err
		}

		return uc.lancarDespesa(despesaRepo, categoriaRepo, compra, fornecedor, now)
	})
	if err != nil {
		uc.log.Error().Err(err).Str("numero_nota", in.NumeroNota).Msg("falha ao registrar compra")
		return nil, err
	}

	uc.log.Info().
		Str("compra_id", compra.ID).
		Str("numero_nota", compra.NumeroNota).
		Int("quantidade", compra.Quantidade).
		Msg("compra de peças registrada")
	return compra, nil
}

// lancarDespesa cria a despesa da nota ou soma o valor à despesa já existente
// da mesma nota/fornecedor. A categoria "Peças" é criada na primeira compra.
func (uc *UseCase) lancarDespesa(
	despesaRepo repository.DespesaRepository,
	categoriaRepo repository.CategoriaRepository,
	compra *entity.CompraPeca,
	fornecedor *entity.Fornecedor,
	now time.Time,
) error {
	categoria, err := categoriaRepo.GetByNomeTipo(categoriaPecas, entity.CategoriaDespesa)
	if err != nil {
		return err
	}
	if categoria == nil {
		categoria = &entity.Categoria{
			ID:        uuid.New().String(),
			Nome:      categoriaPecas,
			Tipo:      entity.CategoriaDespesa,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := categoriaRepo.Create(categoria); err != nil {
			return err
		}
	}

	existente, err := despesaRepo.FindCompraPeca(categoria.ID, compra.NumeroNota, fornecedor.Nome)
	if err != nil {
		return err
	}
	if existente != nil {
		existente.Valor = existente.Valor.Add(compra.ValorTotal())
		existente.UpdatedAt = now
		return despesaRepo.Update(existente)
	}

	numero, err := despesaRepo.ProximoNumero()
	if err != nil {
		return err
	}
	obs := fmt.Sprintf("NF %s - %s", compra.NumeroNota, fornecedor.Nome)
	d := &entity.Despesa{
		ID:             uuid.New().String(),
		Numero:         numero,
		Descricao:      fmt.Sprintf("Compra de peças - NF %s", compra.NumeroNota),
		Valor:          compra.ValorTotal(),
		Status:         entity.ContaPendente,
		Tipo:           entity.DespesaVariavel,
		DataVencimento: compra.DataCompra,
		CategoriaID:    &categoria.ID,
		Observacoes:    &obs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return despesaRepo.Create(d)
}

// Listar devolve as compras com fornecedor e peça resolvidos.
func (uc *UseCase) Listar(ctx context.Context) ([]*entity.CompraPecaDetalhada, error) {
	return uc.compraRepo.List()
}
