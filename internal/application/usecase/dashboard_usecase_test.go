package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// Os fakes embutem a interface: o painel só usa contagens e listagens, o resto
// dispara nil-pointer se algo passar a chamá-lo sem o teste saber.

type fakeDashClienteRepo struct {
	repository.ClienteRepository
	total int
}

func (f *fakeDashClienteRepo) Count() (int, error) { return f.total, nil }

type fakeDashOrcRepo struct {
	repository.OrcamentoRepository
	pendentes int
}

func (f *fakeDashOrcRepo) CountByStatus(entity.StatusOrcamento) (int, error) {
	return f.pendentes, nil
}

type fakeDashOSRepo struct {
	repository.OrdemServicoRepository
	porStatus map[entity.StatusServico]int
	ordens    []*entity.OrdemServico
	recentes  []*entity.OrdemServicoDetalhada
}

func (f *fakeDashOSRepo) CountByStatus(s entity.StatusServico) (int, error) {
	return f.porStatus[s], nil
}
func (f *fakeDashOSRepo) List() ([]*entity.OrdemServico, error) { return f.ordens, nil }
func (f *fakeDashOSRepo) ListRecentes(limit int) ([]*entity.OrdemServicoDetalhada, error) {
	if limit > len(f.recentes) {
		limit = len(f.recentes)
	}
	return f.recentes[:limit], nil
}

type fakeDashReceitaRepo struct {
	repository.ReceitaRepository
	itens []*entity.Receita
}

func (f *fakeDashReceitaRepo) List() ([]*entity.Receita, error) { return f.itens, nil }

type fakeDashDespesaRepo struct {
	repository.DespesaRepository
	itens []*entity.Despesa
}

func (f *fakeDashDespesaRepo) List() ([]*entity.Despesa, error) { return f.itens, nil }

func TestDashboardResumo(t *testing.T) {
	hoje := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	ontem := hoje.AddDate(0, 0, -1)

	osRepo := &fakeDashOSRepo{
		porStatus: map[entity.StatusServico]int{
			entity.ServicoAndamento:       2,
			entity.ServicoAguardandoPecas: 4,
		},
		ordens: []*entity.OrdemServico{
			{ID: "os1", ValorTotal: dec("1000.00"), Desconto: dec("100.00"), ValorPago: dec("300.00")},
		},
	}
	for _, num := range []string{"OS-0004", "OS-0003", "OS-0002", "OS-0001"} {
		osRepo.recentes = append(osRepo.recentes, &entity.OrdemServicoDetalhada{
			OrdemServico: entity.OrdemServico{ID: num, Numero: num, ValorTotal: dec("100.00")},
			Cliente:      &entity.Cliente{Nome: "Cliente"},
		})
	}

	receitaRepo := &fakeDashReceitaRepo{itens: []*entity.Receita{
		{ID: "r1", OrdemServicoID: strPtr("os1"), Status: entity.ContaPendente, DataVencimento: ontem},
		{ID: "r2", Valor: dec("150.00"), Status: entity.ContaPendente, DataVencimento: ontem},
		{ID: "r3", Valor: dec("200.00"), Status: entity.ContaRecebido, DataVencimento: hoje, DataRecebimento: &hoje},
	}}
	despesaRepo := &fakeDashDespesaRepo{itens: []*entity.Despesa{
		{ID: "d1", Valor: dec("400.00"), Status: entity.ContaPago},
	}}

	uc := NewDashboardUseCase(
		&fakeDashClienteRepo{total: 7},
		&fakeDashOrcRepo{pendentes: 3},
		osRepo,
		receitaRepo,
		despesaRepo,
	)
	uc.agora = func() time.Time { return hoje }

	out, err := uc.Resumo()
	require.NoError(t, err)

	assert.Equal(t, 7, out.ClientesAtivos)
	assert.Equal(t, 3, out.OrcamentosPendentes)
	// Só "Andamento" conta como serviço em andamento; "Aguardando Peças" não.
	assert.Equal(t, 2, out.ServicosAndamento)
	// O painel traz no máximo 3 ordens recentes.
	assert.Len(t, out.OrdensRecentes, 3)
	assert.Equal(t, "OS-0004", out.OrdensRecentes[0].Numero)
	// Em atraso: 600 em aberto da OS parcial + 150 avulsa vencida; a recebida não.
	assert.True(t, dec("750.00").Equal(out.ContasEmAtraso), "em atraso = %s", out.ContasEmAtraso)
	assert.True(t, dec("200.00").Equal(out.FaturamentoMensal))
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func strPtr(s string) *string { return &s }
