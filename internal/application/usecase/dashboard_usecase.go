package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/financeiro"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// Quantidade de ordens exibidas no painel.
const ordensRecentes = 3

// DashboardUseCase agrega os indicadores do painel inicial. Os valores
// financeiros saem da mesma derivação usada pelo módulo financeiro, de modo
// que painel e financeiro nunca divergem.
type DashboardUseCase struct {
	clienteRepo repository.ClienteRepository
	orcRepo     repository.OrcamentoRepository
	osRepo      repository.OrdemServicoRepository
	receitaRepo repository.ReceitaRepository
	despesaRepo repository.DespesaRepository
	agora       func() time.Time
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(
	clienteRepo repository.ClienteRepository,
	orcRepo repository.OrcamentoRepository,
	osRepo repository.OrdemServicoRepository,
	receitaRepo repository.ReceitaRepository,
	despesaRepo repository.DespesaRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		clienteRepo: clienteRepo,
		orcRepo:     orcRepo,
		osRepo:      osRepo,
		receitaRepo: receitaRepo,
		despesaRepo: despesaRepo,
		agora:       time.Now,
	}
}

// Resumo monta o painel.
func (uc *DashboardUseCase) Resumo() (*dto.DashboardResponse, error) {
	clientes, err := uc.clienteRepo.Count()
	if err != nil {
		return nil, err
	}
	orcPendentes, err := uc.orcRepo.CountByStatus(entity.OrcamentoPendente)
	if err != nil {
		return nil, err
	}
	andamento, err := uc.osRepo.CountByStatus(entity.ServicoAndamento)
	if err != nil {
		return nil, err
	}

	receitas, err := uc.receitaRepo.List()
	if err != nil {
		return nil, err
	}
	despesas, err := uc.despesaRepo.List()
	if err != nil {
		return nil, err
	}
	listaOS, err := uc.osRepo.List()
	if err != nil {
		return nil, err
	}
	ordens := make(map[string]*entity.OrdemServico, len(listaOS))
	for _, os := range listaOS {
		ordens[os.ID] = os
	}
	resumo := financeiro.CalcularResumo(receitas, despesas, ordens)

	recentes, err := uc.osRepo.ListRecentes(ordensRecentes)
	if err != nil {
		return nil, err
	}

	out := &dto.DashboardResponse{
		ClientesAtivos:      clientes,
		OrcamentosPendentes: orcPendentes,
		ServicosAndamento:   andamento,
		FaturamentoMensal:   uc.faturamentoMensal(receitas),
		TotalRecebido:       resumo.TotalRecebido,
		TotalAReceber:       resumo.TotalAReceber,
		ContasEmAtraso:      financeiro.EmAtraso(receitas, ordens, uc.agora()),
		TotalPago:           resumo.TotalPago,
		TotalAPagar:         resumo.TotalAPagar,
		OrdensRecentes:      make([]dto.OrdemRecente, 0, len(recentes)),
	}
	for _, os := range recentes {
		linha := dto.OrdemRecente{
			ID:     os.ID,
			Numero: os.Numero,
			Status: string(os.StatusServico),
			Valor:  os.ValorTotal.Sub(os.Desconto),
		}
		if os.Cliente != nil {
			linha.Cliente = os.Cliente.Nome
		}
		if os.Veiculo != nil {
			linha.Veiculo = os.Veiculo.Marca + " " + os.Veiculo.Modelo
		}
		out.OrdensRecentes = append(out.OrdensRecentes, linha)
	}
	return out, nil
}

// faturamentoMensal soma as receitas avulsas recebidas dentro do mês corrente.
func (uc *DashboardUseCase) faturamentoMensal(receitas []*entity.Receita) decimal.Decimal {
	hoje := uc.agora()
	total := decimal.Zero
	for _, r := range receitas {
		if r.Vinculada() || r.Status != entity.ContaRecebido || r.DataRecebimento == nil {
			continue
		}
		if r.DataRecebimento.Year() == hoje.Year() && r.DataRecebimento.Month() == hoje.Month() {
			total = total.Add(r.Valor)
		}
	}
	return total
}
