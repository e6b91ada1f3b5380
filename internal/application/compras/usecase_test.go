package compras

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

type fakeCompraRepo struct{ itens []*entity.CompraPeca }

func (f *fakeCompraRepo) Create(c *entity.CompraPeca) error { f.itens = append(f.itens, c); return nil }
func (f *fakeCompraRepo) List() ([]*entity.CompraPecaDetalhada, error) {
	var out []*entity.CompraPecaDetalhada
	for _, c := range f.itens {
		out = append(out, &entity.CompraPecaDetalhada{CompraPeca: *c})
	}
	return out, nil
}

type fakeFornecedorRepo struct{ itens map[string]*entity.Fornecedor }

func (f *fakeFornecedorRepo) Create(x *entity.Fornecedor) error { f.itens[x.ID] = x; return nil }
func (f *fakeFornecedorRepo) GetByID(id string) (*entity.Fornecedor, error) {
	return f.itens[id], nil
}
func (f *fakeFornecedorRepo) List() ([]*entity.Fornecedor, error) { return nil, nil }
func (f *fakeFornecedorRepo) Update(x *entity.Fornecedor) error   { f.itens[x.ID] = x; return nil }
func (f *fakeFornecedorRepo) Delete(id string) error              { delete(f.itens, id); return nil }

type fakePecaRepo struct{ itens map[string]*entity.Peca }

func (f *fakePecaRepo) Create(p *entity.Peca) error                    { f.itens[p.ID] = p; return nil }
func (f *fakePecaRepo) GetByID(id string) (*entity.Peca, error)        { return f.itens[id], nil }
func (f *fakePecaRepo) GetForUpdate(id string) (*entity.Peca, error)   { return f.itens[id], nil }
func (f *fakePecaRepo) List(limit, offset int) ([]*entity.Peca, error) { return nil, nil }
func (f *fakePecaRepo) Update(p *entity.Peca) error                    { f.itens[p.ID] = p; return nil }
func (f *fakePecaRepo) UpdateEstoque(id string, estoque int) error {
	f.itens[id].Estoque = &estoque
	return nil
}
func (f *fakePecaRepo) Delete(id string) error { delete(f.itens, id); return nil }

type fakeDespesaRepo struct {
	itens map[string]*entity.Despesa
	seq   int
}

func (f *fakeDespesaRepo) Create(d *entity.Despesa) error             { f.itens[d.ID] = d; return nil }
func (f *fakeDespesaRepo) GetByID(id string) (*entity.Despesa, error) { return f.itens[id], nil }
func (f *fakeDespesaRepo) List() ([]*entity.Despesa, error)           { return nil, nil }
func (f *fakeDespesaRepo) FindCompraPeca(categoriaID, numeroNota, fornecedorNome string) (*entity.Despesa, error) {
	for _, d := range f.itens {
		if d.CategoriaID == nil || *d.CategoriaID != categoriaID || d.Observacoes == nil {
			continue
		}
		if strings.Contains(*d.Observacoes, numeroNota) && strings.Contains(*d.Observacoes, fornecedorNome) {
			return d, nil
		}
	}
	return nil, nil
}
func (f *fakeDespesaRepo) Update(d *entity.Despesa) error { f.itens[d.ID] = d; return nil }
func (f *fakeDespesaRepo) Delete(id string) error         { delete(f.itens, id); return nil }
func (f *fakeDespesaRepo) ProximoNumero() (string, error) {
	f.seq++
	return "DESP-0001", nil
}

type fakeCategoriaRepo struct{ itens map[string]*entity.Categoria }

func (f *fakeCategoriaRepo) Create(c *entity.Categoria) error             { f.itens[c.ID] = c; return nil }
func (f *fakeCategoriaRepo) GetByID(id string) (*entity.Categoria, error) { return f.itens[id], nil }
func (f *fakeCategoriaRepo) GetByNomeTipo(nome, tipo string) (*entity.Categoria, error) {
	for _, c := range f.itens {
		if c.Nome == nome && c.Tipo == tipo {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCategoriaRepo) List() ([]*entity.Categoria, error) { return nil, nil }
func (f *fakeCategoriaRepo) Update(c *entity.Categoria) error   { f.itens[c.ID] = c; return nil }
func (f *fakeCategoriaRepo) Delete(id string) error             { delete(f.itens, id); return nil }

type fakeTxRunner struct {
	compraRepo    *fakeCompraRepo
	pecaRepo      *fakePecaRepo
	despesaRepo   *fakeDespesaRepo
	categoriaRepo *fakeCategoriaRepo
}

func (f *fakeTxRunner) RunCompra(_ context.Context, fn func(
	repository.CompraPecaRepository,
	repository.PecaRepository,
	repository.DespesaRepository,
	repository.CategoriaRepository,
) error) error {
	return fn(f.compraRepo, f.pecaRepo, f.despesaRepo, f.categoriaRepo)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func intPtr(v int) *int { return &v }

type fixture struct {
	uc            *UseCase
	compraRepo    *fakeCompraRepo
	pecaRepo      *fakePecaRepo
	despesaRepo   *fakeDespesaRepo
	categoriaRepo *fakeCategoriaRepo
}

func novaFixture() *fixture {
	f := &fixture{
		compraRepo:    &fakeCompraRepo{},
		pecaRepo:      &fakePecaRepo{itens: map[string]*entity.Peca{}},
		despesaRepo:   &fakeDespesaRepo{itens: map[string]*entity.Despesa{}},
		categoriaRepo: &fakeCategoriaRepo{itens: map[string]*entity.Categoria{}},
	}
	f.pecaRepo.itens["p1"] = &entity.Peca{ID: "p1", Nome: "Filtro de óleo", Estoque: intPtr(3)}
	fornecedorRepo := &fakeFornecedorRepo{itens: map[string]*entity.Fornecedor{
		"f1": {ID: "f1", Nome: "Auto Peças Brasil"},
	}}
	tx := &fakeTxRunner{
		compraRepo:    f.compraRepo,
		pecaRepo:      f.pecaRepo,
		despesaRepo:   f.despesaRepo,
		categoriaRepo: f.categoriaRepo,
	}
	f.uc = NewUseCase(tx, f.compraRepo, fornecedorRepo, f.pecaRepo, zerolog.Nop())
	f.uc.agora = func() time.Time { return time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) registrar(t *testing.T, qtd int, custo string) *entity.CompraPeca {
	t.Helper()
	compra, err := f.uc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		NumeroNota:   "NF-123",
		FornecedorID: "f1",
		PecaID:       "p1",
		Quantidade:   qtd,
		ValorCusto:   dec(custo),
	})
	require.NoError(t, err)
	return compra
}

func TestRegistrarIncrementaEstoqueELancaDespesa(t *testing.T) {
	f := novaFixture()

	f.registrar(t, 10, "25.00")

	peca := f.pecaRepo.itens["p1"]
	assert.Equal(t, 13, peca.EstoqueAtual())
	require.NotNil(t, peca.ValorCusto)
	assert.True(t, dec("25.00").Equal(*peca.ValorCusto))

	require.Len(t, f.despesaRepo.itens, 1)
	for _, d := range f.despesaRepo.itens {
		assert.True(t, dec("250.00").Equal(d.Valor))
		assert.Equal(t, entity.DespesaVariavel, d.Tipo)
		assert.Equal(t, entity.ContaPendente, d.Status)
	}

	// Categoria "Peças" criada na primeira compra.
	cat, err := f.categoriaRepo.GetByNomeTipo("Peças", entity.CategoriaDespesa)
	require.NoError(t, err)
	require.NotNil(t, cat)
}

func TestRegistrarMesmaNotaSomaNaDespesa(t *testing.T) {
	f := novaFixture()

	f.registrar(t, 10, "25.00")
	f.registrar(t, 4, "30.00")

	assert.Len(t, f.compraRepo.itens, 2)
	assert.Equal(t, 17, f.pecaRepo.itens["p1"].EstoqueAtual())

	// 250 + 120 fundidos em uma despesa só.
	require.Len(t, f.despesaRepo.itens, 1)
	for _, d := range f.despesaRepo.itens {
		assert.True(t, dec("370.00").Equal(d.Valor), "valor = %s", d.Valor)
	}
}

func TestRegistrarFornecedorInexistente(t *testing.T) {
	f := novaFixture()

	_, err := f.uc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		NumeroNota:   "NF-123",
		FornecedorID: "fantasma",
		PecaID:       "p1",
		Quantidade:   1,
		ValorCusto:   dec("10.00"),
	})

	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestRegistrarQuantidadeInvalida(t *testing.T) {
	f := novaFixture()

	_, err := f.uc.Registrar(context.Background(), dto.RegistrarCompraRequest{
		NumeroNota:   "NF-123",
		FornecedorID: "f1",
		PecaID:       "p1",
		Quantidade:   0,
		ValorCusto:   dec("10.00"),
	})

	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
