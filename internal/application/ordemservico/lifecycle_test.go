package ordemservico

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// Fakes em memória para exercitar o coordenador sem banco.

type fakeClienteRepo struct{ itens map[string]*entity.Cliente }

func (f *fakeClienteRepo) Create(c *entity.Cliente) error { f.itens[c.ID] = c; return nil }
func (f *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return f.itens[id], nil
}
func (f *fakeClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) { return nil, nil }
func (f *fakeClienteRepo) Count() (int, error)                               { return len(f.itens), nil }
func (f *fakeClienteRepo) Update(c *entity.Cliente) error                    { f.itens[c.ID] = c; return nil }
func (f *fakeClienteRepo) Delete(id string) error                            { delete(f.itens, id); return nil }

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

type fakeOrcRepo struct{ itens map[string]*entity.Orcamento }

func (f *fakeOrcRepo) Create(o *entity.Orcamento) error             { f.itens[o.ID] = o; return nil }
func (f *fakeOrcRepo) GetByID(id string) (*entity.Orcamento, error) { return f.itens[id], nil }
func (f *fakeOrcRepo) GetDetalhado(id string) (*entity.OrcamentoDetalhado, error) {
	o := f.itens[id]
	if o == nil {
		return nil, nil
	}
	return &entity.OrcamentoDetalhado{Orcamento: *o}, nil
}
func (f *fakeOrcRepo) List() ([]*entity.OrcamentoDetalhado, error) { return nil, nil }
func (f *fakeOrcRepo) CountByStatus(s entity.StatusOrcamento) (int, error) {
	n := 0
	for _, o := range f.itens {
		if o.Status == s {
			n++
		}
	}
	return n, nil
}
func (f *fakeOrcRepo) Update(o *entity.Orcamento) error { f.itens[o.ID] = o; return nil }
func (f *fakeOrcRepo) UpdateStatus(id string, status entity.StatusOrcamento) error {
	f.itens[id].Status = status
	return nil
}
func (f *fakeOrcRepo) UpdateValorTotal(id string, valor decimal.Decimal) error {
	f.itens[id].ValorTotal = valor
	return nil
}
func (f *fakeOrcRepo) Delete(id string) error          { delete(f.itens, id); return nil }
func (f *fakeOrcRepo) ProximoNumero() (string, error)  { return "ORC-0001", nil }

type fakeOrcPecaRepo struct{ itens []*entity.OrcamentoPeca }

func (f *fakeOrcPecaRepo) Create(l *entity.OrcamentoPeca) error { f.itens = append(f.itens, l); return nil }
func (f *fakeOrcPecaRepo) GetByID(id string) (*entity.OrcamentoPeca, error) {
	for _, l := range f.itens {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, nil
}
func (f *fakeOrcPecaRepo) ListByOrcamento(orcamentoID string) ([]*entity.OrcamentoPeca, error) {
	var out []*entity.OrcamentoPeca
	for _, l := range f.itens {
		if l.OrcamentoID == orcamentoID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (f *fakeOrcPecaRepo) Delete(id string) error {
	for i, l := range f.itens {
		if l.ID == id {
			f.itens = append(f.itens[:i], f.itens[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeOSRepo struct {
	itens map[string]*entity.OrdemServico
	seq   int
}

func (f *fakeOSRepo) Create(os *entity.OrdemServico) error { f.itens[os.ID] = os; return nil }
func (f *fakeOSRepo) GetByID(id string) (*entity.OrdemServico, error) {
	return f.itens[id], nil
}
func (f *fakeOSRepo) GetForUpdate(id string) (*entity.OrdemServico, error) {
	return f.itens[id], nil
}
func (f *fakeOSRepo) GetByOrcamento(orcamentoID string) (*entity.OrdemServico, error) {
	for _, os := range f.itens {
		if os.OrcamentoID != nil && *os.OrcamentoID == orcamentoID {
			return os, nil
		}
	}
	return nil, nil
}
func (f *fakeOSRepo) GetDetalhada(id string) (*entity.OrdemServicoDetalhada, error) {
	os := f.itens[id]
	if os == nil {
		return nil, nil
	}
	return &entity.OrdemServicoDetalhada{OrdemServico: *os}, nil
}
func (f *fakeOSRepo) List() ([]*entity.OrdemServico, error) {
	var out []*entity.OrdemServico
	for _, os := range f.itens {
		out = append(out, os)
	}
	return out, nil
}
func (f *fakeOSRepo) ListRecentes(limit int) ([]*entity.OrdemServicoDetalhada, error) {
	return nil, nil
}
func (f *fakeOSRepo) CountByStatus(s entity.StatusServico) (int, error) { return 0, nil }
func (f *fakeOSRepo) Update(os *entity.OrdemServico) error              { f.itens[os.ID] = os; return nil }
func (f *fakeOSRepo) Delete(id string) error                            { delete(f.itens, id); return nil }
func (f *fakeOSRepo) ProximoNumero() (string, error) {
	f.seq++
	return fmt.Sprintf("OS-%04d", f.seq), nil
}

type fakeReceitaRepo struct {
	itens map[string]*entity.Receita
	seq   int
}

func (f *fakeReceitaRepo) Create(r *entity.Receita) error             { f.itens[r.ID] = r; return nil }
func (f *fakeReceitaRepo) GetByID(id string) (*entity.Receita, error) { return f.itens[id], nil }
func (f *fakeReceitaRepo) List() ([]*entity.Receita, error) {
	var out []*entity.Receita
	for _, r := range f.itens {
		out = append(out, r)
	}
	return out, nil
}
func (f *fakeReceitaRepo) ListByOrdemServico(osID string) ([]*entity.Receita, error) {
	var out []*entity.Receita
	for _, r := range f.itens {
		if r.OrdemServicoID != nil && *r.OrdemServicoID == osID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeReceitaRepo) Update(r *entity.Receita) error { f.itens[r.ID] = r; return nil }
func (f *fakeReceitaRepo) Delete(id string) error         { delete(f.itens, id); return nil }
func (f *fakeReceitaRepo) DeleteByOrdemServico(osID string) error {
	for id, r := range f.itens {
		if r.OrdemServicoID != nil && *r.OrdemServicoID == osID {
			delete(f.itens, id)
		}
	}
	return nil
}
func (f *fakeReceitaRepo) ProximoNumero() (string, error) {
	f.seq++
	return fmt.Sprintf("REC-%04d", f.seq), nil
}

type fakeTxRunner struct {
	osRepo      *fakeOSRepo
	orcRepo     *fakeOrcRepo
	orcPecaRepo *fakeOrcPecaRepo
	pecaRepo    *fakePecaRepo
	receitaRepo *fakeReceitaRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	repository.OrdemServicoRepository,
	repository.OrcamentoRepository,
	repository.OrcamentoPecaRepository,
	repository.PecaRepository,
	repository.ReceitaRepository,
) error) error {
	return fn(f.osRepo, f.orcRepo, f.orcPecaRepo, f.pecaRepo, f.receitaRepo)
}

type fixture struct {
	uc          *UseCase
	osRepo      *fakeOSRepo
	orcRepo     *fakeOrcRepo
	orcPecaRepo *fakeOrcPecaRepo
	pecaRepo    *fakePecaRepo
	receitaRepo *fakeReceitaRepo
}

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// novaFixture monta o cenário padrão: cliente c1, peça p1 com estoque 5,
// orçamento orc1 Aprovado (2x p1, total 899.90).
func novaFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		osRepo:      &fakeOSRepo{itens: map[string]*entity.OrdemServico{}},
		orcRepo:     &fakeOrcRepo{itens: map[string]*entity.Orcamento{}},
		orcPecaRepo: &fakeOrcPecaRepo{},
		pecaRepo:    &fakePecaRepo{itens: map[string]*entity.Peca{}},
		receitaRepo: &fakeReceitaRepo{itens: map[string]*entity.Receita{}},
	}
	f.pecaRepo.itens["p1"] = &entity.Peca{ID: "p1", Nome: "Filtro de óleo", Estoque: intPtr(5)}
	f.orcRepo.itens["orc1"] = &entity.Orcamento{
		ID:         "orc1",
		Numero:     "ORC-0001",
		ClienteID:  "c1",
		Status:     entity.OrcamentoAprovado,
		ValorTotal: dec("899.90"),
	}
	f.orcPecaRepo.itens = []*entity.OrcamentoPeca{
		{ID: "l1", OrcamentoID: "orc1", PecaID: "p1", Quantidade: 2, ValorUnitario: dec("150.00")},
	}
	tx := &fakeTxRunner{
		osRepo:      f.osRepo,
		orcRepo:     f.orcRepo,
		orcPecaRepo: f.orcPecaRepo,
		pecaRepo:    f.pecaRepo,
		receitaRepo: f.receitaRepo,
	}
	clienteRepo := &fakeClienteRepo{itens: map[string]*entity.Cliente{
		"c1": {ID: "c1", Nome: "João da Silva"},
	}}
	f.uc = NewUseCase(tx, f.osRepo, clienteRepo, zerolog.Nop())
	return f
}

func (f *fixture) criarOS(t *testing.T) *entity.OrdemServico {
	t.Helper()
	os, err := f.uc.Criar(context.Background(), dto.CriarOrdemServicoRequest{
		ClienteID:   "c1",
		OrcamentoID: strPtr("orc1"),
		DataInicio:  "2026-08-10",
	})
	require.NoError(t, err)
	return os
}

func (f *fixture) estoque(id string) int {
	return f.pecaRepo.itens[id].EstoqueAtual()
}

func TestCriarComOrcamentoAprovado(t *testing.T) {
	f := novaFixture(t)

	os := f.criarOS(t)

	assert.Equal(t, "OS-0001", os.Numero)
	assert.Equal(t, entity.ServicoAndamento, os.StatusServico)
	assert.True(t, dec("899.90").Equal(os.ValorTotal))

	// A receita vinculada nasce junto, pendente e com o valor da OS.
	recs, err := f.receitaRepo.ListByOrdemServico(os.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, entity.ContaPendente, recs[0].Status)
	assert.True(t, dec("899.90").Equal(recs[0].Valor))
}

func TestCriarOrcamentoNaoAprovado(t *testing.T) {
	f := novaFixture(t)
	f.orcRepo.itens["orc1"].Status = entity.OrcamentoPendente

	_, err := f.uc.Criar(context.Background(), dto.CriarOrdemServicoRequest{
		ClienteID:   "c1",
		OrcamentoID: strPtr("orc1"),
		DataInicio:  "2026-08-10",
	})

	assert.ErrorIs(t, err, domain.ErrOrcamentoNaoAprovado)
}

func TestCriarOrcamentoJaComOS(t *testing.T) {
	f := novaFixture(t)
	f.criarOS(t)

	_, err := f.uc.Criar(context.Background(), dto.CriarOrdemServicoRequest{
		ClienteID:   "c1",
		OrcamentoID: strPtr("orc1"),
		DataInicio:  "2026-08-11",
	})

	assert.ErrorIs(t, err, domain.ErrOrcamentoComOS)
}

func TestCriarSemOrcamentoNaoLancaReceita(t *testing.T) {
	f := novaFixture(t)

	os, err := f.uc.Criar(context.Background(), dto.CriarOrdemServicoRequest{
		ClienteID:  "c1",
		DataInicio: "2026-08-10",
	})
	require.NoError(t, err)

	assert.True(t, os.ValorTotal.IsZero())
	assert.Empty(t, f.receitaRepo.itens)
}

func TestFinalizarSemOrcamentoNaoMexeEstoque(t *testing.T) {
	f := novaFixture(t)
	os, err := f.uc.Criar(context.Background(), dto.CriarOrdemServicoRequest{
		ClienteID:  "c1",
		DataInicio: "2026-08-10",
	})
	require.NoError(t, err)

	// Cruzar a fronteira ativo→final sem orçamento de origem: nada a baixar.
	atualizada, err := f.uc.Atualizar(context.Background(), os.ID, dto.AtualizarOrdemServicoRequest{
		StatusServico: strPtr(string(entity.ServicoFinalizado)),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ServicoFinalizado, atualizada.StatusServico)
	assert.Equal(t, 5, f.estoque("p1"))

	// E a reabertura (final→ativo) tampouco devolve nada.
	_, err = f.uc.Atualizar(context.Background(), os.ID, dto.AtualizarOrdemServicoRequest{
		StatusServico: strPtr(string(entity.ServicoAndamento)),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, f.estoque("p1"))
}

func TestFinalizarConsomeEstoque(t *testing.T) {
	f := novaFixture(t)
	os := f.criarOS(t)

	_, err := f.uc.Atualizar(context.Background(), os.ID, dto.AtualizarOrdemServicoRequest{
		StatusServico: strPtr(string(entity.ServicoFinalizado)),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, f.estoque("p1"))
}

func TestFinalizarTravaEstoqueEmZero(t *testing.T) {
	f := novaFixture(t)
	f.pecaRepo.itens["p1"].Estoque = intPtr(1)
	os := f.criarOS(t)

	_, err := f.uc.Atualizar(context.Background(), os.ID, dto.AtualizarOrdemServicoRequest{
		StatusServico: strPtr(string(entity.ServicoFinalizado)),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, f.estoque("p1"))
}

func TestReabrirDevolveEstoque(t *testing.T) {
	f := novaFixture(t)
	os := f.criarOS(t)
	f.osRepo.itens[os.ID].StatusServico = entity.ServicoFinalizado
	f.pecaRepo.itens["p1"].Estoque = intPtr(3)

	_, err := f.uc.Atualizar(context.Background(), os.ID, dto.AtualizarOrdemServicoRequest{
		StatusServico: strPtr(string(entity.ServicoAndamento)),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, f.estoque("p1"))
}

func TestTransicaoDentroDaMesmaClasseNaoMexeEstoque(t *testing.T) {
	f := novaFixture(t)
	os := f.criarOS(t)

	_, err := f.uc.Atualizar(context.Background(), os.ID, dto.AtualizarOrdemServicoRequest{
		StatusServico: strPtr(string(entity.ServicoAguardandoPecas)),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, f.estoque("p1"))

	f.osRepo.itens[os.ID].StatusServico = entity.ServicoFinalizado
	f.pecaRepo.itens["p1"].Estoque = intPtr(3)

	_, err = f.uc.Atualizar(context.Background(), os.ID, dto.AtualizarOrdemServicoRequest{
		StatusServico: strPtr(string(entity.ServicoEntregue)),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, f.estoque("p1"))
}

func TestRepetirStatusNaoConsomeDeNovo(t *testing.T) {
	f := novaFixture(t)
	os := f.criarOS(t)

	for i := 0; i < 3; i++ {
		_, err := f.uc.Atualizar(context.Background(), os.ID, dto.AtualizarOrdemServicoRequest{
			StatusServico: strPtr(string(entity.ServicoFinalizado)),
		})
		require.NoError(t, err)
	}

	// Só a primeira transição ativo→final consome.
	assert.Equal(t, 3, f.estoque("p1"))
}

func TestCicloFinalizaReabreFinaliza(t *testing.T) {
	f := novaFixture(t)
	os := f.criarOS(t)

	transicoes := []entity.StatusServico{
		entity.ServicoFinalizado,
		entity.ServicoAndamento,
		entity.ServicoFinalizado,
	}
	esperado := []int{3, 5, 3}
	for i, s := range transicoes {
		_, err := f.uc.Atualizar(context.Background(), os.ID, dto.AtualizarOrdemServicoRequest{
			StatusServico: strPtr(string(s)),
		})
		require.NoError(t, err)
		assert.Equal(t, esperado[i], f.estoque("p1"), "após transição %d", i)
	}
}

func TestAtualizarPagamento(t *testing.T) {
	f := novaFixture(t)
	os := f.criarOS(t)

	atualizada, err := f.uc.Atualizar(context.Background(), os.ID, dto.AtualizarOrdemServicoRequest{
		ValorPago: decPtr("899.90"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PagamentoPago, atualizada.StatusPagamento())
	assert.True(t, atualizada.ValorAPagar().IsZero())
}

func TestAtualizarStatusInvalido(t *testing.T) {
	f := novaFixture(t)
	os := f.criarOS(t)

	_, err := f.uc.Atualizar(context.Background(), os.ID, dto.AtualizarOrdemServicoRequest{
		StatusServico: strPtr("Encerrado"),
	})

	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestAtualizarNaoEncontrada(t *testing.T) {
	f := novaFixture(t)

	_, err := f.uc.Atualizar(context.Background(), "nao-existe", dto.AtualizarOrdemServicoRequest{})

	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestExcluirCascata(t *testing.T) {
	f := novaFixture(t)
	os := f.criarOS(t)

	err := f.uc.Excluir(context.Background(), os.ID)
	require.NoError(t, err)

	assert.Empty(t, f.receitaRepo.itens)
	assert.Empty(t, f.osRepo.itens)
	assert.Equal(t, entity.OrcamentoPendente, f.orcRepo.itens["orc1"].Status)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
