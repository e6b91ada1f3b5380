package financeiro

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
)

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
	return nil, nil
}
func (f *fakeReceitaRepo) Update(r *entity.Receita) error         { f.itens[r.ID] = r; return nil }
func (f *fakeReceitaRepo) Delete(id string) error                 { delete(f.itens, id); return nil }
func (f *fakeReceitaRepo) DeleteByOrdemServico(osID string) error { return nil }
func (f *fakeReceitaRepo) ProximoNumero() (string, error) {
	f.seq++
	return "REC-0001", nil
}

type fakeDespesaRepo struct {
	itens map[string]*entity.Despesa
}

func (f *fakeDespesaRepo) Create(d *entity.Despesa) error             { f.itens[d.ID] = d; return nil }
func (f *fakeDespesaRepo) GetByID(id string) (*entity.Despesa, error) { return f.itens[id], nil }
func (f *fakeDespesaRepo) List() ([]*entity.Despesa, error) {
	var out []*entity.Despesa
	for _, d := range f.itens {
		out = append(out, d)
	}
	return out, nil
}
func (f *fakeDespesaRepo) FindCompraPeca(categoriaID, numeroNota, fornecedorNome string) (*entity.Despesa, error) {
	return nil, nil
}
func (f *fakeDespesaRepo) Update(d *entity.Despesa) error { f.itens[d.ID] = d; return nil }
func (f *fakeDespesaRepo) Delete(id string) error         { delete(f.itens, id); return nil }
func (f *fakeDespesaRepo) ProximoNumero() (string, error) { return "DESP-0001", nil }

type fakeOSRepo struct{ itens map[string]*entity.OrdemServico }

func (f *fakeOSRepo) Create(os *entity.OrdemServico) error                 { f.itens[os.ID] = os; return nil }
func (f *fakeOSRepo) GetByID(id string) (*entity.OrdemServico, error)      { return f.itens[id], nil }
func (f *fakeOSRepo) GetForUpdate(id string) (*entity.OrdemServico, error) { return f.itens[id], nil }
func (f *fakeOSRepo) GetByOrcamento(orcamentoID string) (*entity.OrdemServico, error) {
	return nil, nil
}
func (f *fakeOSRepo) GetDetalhada(id string) (*entity.OrdemServicoDetalhada, error) {
	return nil, nil
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
func (f *fakeOSRepo) ProximoNumero() (string, error)                    { return "OS-0001", nil }

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func strPtr(s string) *string { return &s }

var dataFixa = time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

func novaFixture() (*UseCase, *fakeReceitaRepo, *fakeDespesaRepo, *fakeOSRepo) {
	receitaRepo := &fakeReceitaRepo{itens: map[string]*entity.Receita{}}
	despesaRepo := &fakeDespesaRepo{itens: map[string]*entity.Despesa{}}
	osRepo := &fakeOSRepo{itens: map[string]*entity.OrdemServico{}}
	uc := NewUseCase(receitaRepo, despesaRepo, osRepo, zerolog.Nop())
	uc.agora = func() time.Time { return dataFixa }
	return uc, receitaRepo, despesaRepo, osRepo
}

func TestCriarReceitaAvulsa(t *testing.T) {
	uc, _, _, _ := novaFixture()

	r, err := uc.CriarReceita(context.Background(), dto.CriarReceitaRequest{
		Descricao:      "Venda de balcão",
		Valor:          dec("80.00"),
		DataVencimento: "2026-08-20",
	})
	require.NoError(t, err)

	assert.Equal(t, "REC-0001", r.Numero)
	assert.Equal(t, entity.ContaPendente, r.Status)
	assert.Nil(t, r.OrdemServicoID)
}

func TestCriarReceitaInvalida(t *testing.T) {
	uc, _, _, _ := novaFixture()

	_, err := uc.CriarReceita(context.Background(), dto.CriarReceitaRequest{
		Descricao:      "Sem valor",
		DataVencimento: "2026-08-20",
	})

	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestAlternarStatusReceitaCarimbaData(t *testing.T) {
	uc, receitaRepo, _, _ := novaFixture()
	receitaRepo.itens["r1"] = &entity.Receita{ID: "r1", Status: entity.ContaPendente}

	r, err := uc.AlternarStatusReceita(context.Background(), "r1")
	require.NoError(t, err)

	assert.Equal(t, entity.ContaRecebido, r.Status)
	require.NotNil(t, r.DataRecebimento)
	assert.Equal(t, dataFixa, *r.DataRecebimento)

	r, err = uc.AlternarStatusReceita(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, entity.ContaPendente, r.Status)
	assert.Nil(t, r.DataRecebimento)
}

func TestReceitaVinculadaNaoAlterna(t *testing.T) {
	uc, receitaRepo, _, _ := novaFixture()
	receitaRepo.itens["r1"] = &entity.Receita{ID: "r1", OrdemServicoID: strPtr("os1")}

	_, err := uc.AlternarStatusReceita(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrReceitaVinculada)
}

func TestReceitaVinculadaNaoExclui(t *testing.T) {
	uc, receitaRepo, _, _ := novaFixture()
	receitaRepo.itens["r1"] = &entity.Receita{ID: "r1", OrdemServicoID: strPtr("os1")}

	err := uc.ExcluirReceita(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrReceitaVinculada)
	assert.Contains(t, receitaRepo.itens, "r1")
}

func TestAlternarStatusDespesa(t *testing.T) {
	uc, _, despesaRepo, _ := novaFixture()
	despesaRepo.itens["d1"] = &entity.Despesa{ID: "d1", Status: entity.ContaPendente}

	d, err := uc.AlternarStatusDespesa(context.Background(), "d1")
	require.NoError(t, err)

	assert.Equal(t, entity.ContaPago, d.Status)
	require.NotNil(t, d.DataPagamento)
	assert.Equal(t, dataFixa, *d.DataPagamento)

	d, err = uc.AlternarStatusDespesa(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, entity.ContaPendente, d.Status)
	assert.Nil(t, d.DataPagamento)
}

func TestCriarDespesaTipoInvalido(t *testing.T) {
	uc, _, _, _ := novaFixture()

	_, err := uc.CriarDespesa(context.Background(), dto.CriarDespesaRequest{
		Descricao:      "Aluguel",
		Valor:          dec("1500.00"),
		Tipo:           "Mensal",
		DataVencimento: "2026-09-05",
	})

	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestResumoDerivaDasOrdens(t *testing.T) {
	uc, receitaRepo, despesaRepo, osRepo := novaFixture()
	receitaRepo.itens["r1"] = &entity.Receita{ID: "r1", OrdemServicoID: strPtr("os1"), Status: entity.ContaPendente}
	osRepo.itens["os1"] = &entity.OrdemServico{
		ID:         "os1",
		ValorTotal: dec("1000.00"),
		Desconto:   dec("100.00"),
		ValorPago:  dec("300.00"),
	}
	despesaRepo.itens["d1"] = &entity.Despesa{ID: "d1", Valor: dec("200.00"), Status: entity.ContaPago}

	resumo, err := uc.Resumo(context.Background())
	require.NoError(t, err)

	assert.True(t, dec("300.00").Equal(resumo.TotalRecebido))
	assert.True(t, dec("600.00").Equal(resumo.TotalAReceber))
	assert.True(t, dec("100.00").Equal(resumo.Saldo))
}

func TestListarReceitasDerivaStatus(t *testing.T) {
	uc, receitaRepo, _, osRepo := novaFixture()
	receitaRepo.itens["r1"] = &entity.Receita{ID: "r1", OrdemServicoID: strPtr("os1"), Status: entity.ContaPendente}
	osRepo.itens["os1"] = &entity.OrdemServico{
		ID:         "os1",
		ValorTotal: dec("500.00"),
		ValorPago:  dec("500.00"),
	}

	out, err := uc.ListarReceitas(context.Background())
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, entity.ContaRecebido, out[0].StatusEfetivo)
	assert.True(t, out[0].ValorAPagar.IsZero())
}
