package financeiro

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/financeiro"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// UseCase gerencia receitas, despesas e o resumo financeiro. Receitas
// vinculadas a uma ordem de serviço são somente leitura por aqui: edição,
// exclusão e troca de status manual são rejeitadas, porque o estado delas é
// derivado da OS.
type UseCase struct {
	receitaRepo repository.ReceitaRepository
	despesaRepo repository.DespesaRepository
	osRepo      repository.OrdemServicoRepository
	log         zerolog.Logger
	agora       func() time.Time
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	receitaRepo repository.ReceitaRepository,
	despesaRepo repository.DespesaRepository,
	osRepo repository.OrdemServicoRepository,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		receitaRepo: receitaRepo,
		despesaRepo: despesaRepo,
		osRepo:      osRepo,
		log:         log,
		agora:       time.Now,
	}
}

// CriarReceita lança uma receita avulsa.
func (uc *UseCase) CriarReceita(ctx context.Context, in dto.CriarReceitaRequest) (*entity.Receita, error) {
	if in.Descricao == "" || in.DataVencimento == "" || !in.Valor.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	vencimento, err := dto.ParseData(in.DataVencimento)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	recebimento, err := dto.ParseDataOpcional(in.DataRecebimento)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	status := entity.ContaPendente
	if in.Status != nil {
		if *in.Status != entity.ContaPendente && *in.Status != entity.ContaRecebido {
			return nil, domain.ErrEntradaInvalida
		}
		status = *in.Status
	}
	numero, err := uc.receitaRepo.ProximoNumero()
	if err != nil {
		return nil, err
	}
	now := uc.agora()
	r := &entity.Receita{
		ID:              uuid.New().String(),
		Numero:          numero,
		Descricao:       in.Descricao,
		Valor:           in.Valor,
		Status:          status,
		DataVencimento:  vencimento,
		DataRecebimento: recebimento,
		CategoriaID:     in.CategoriaID,
		FormaPagamento:  in.FormaPagamento,
		Observacoes:     in.Observacoes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.receitaRepo.Create(r); err != nil {
		return nil, err
	}
	uc.log.Info().Str("receita_id", r.ID).Str("numero", r.Numero).Msg("receita criada")
	return r, nil
}

// ListarReceitas devolve as receitas com os valores efetivos derivados das
// ordens de serviço vinculadas.
func (uc *UseCase) ListarReceitas(ctx context.Context) ([]dto.ReceitaResponse, error) {
	receitas, err := uc.receitaRepo.List()
	if err != nil {
		return nil, err
	}
	ordens, err := uc.mapaOrdens()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceitaResponse, 0, len(receitas))
	for _, r := range receitas {
		var os *entity.OrdemServico
		if r.Vinculada() {
			os = ordens[*r.OrdemServicoID]
		}
		out = append(out, dto.NovaReceitaResponse(r, os))
	}
	return out, nil
}

// AtualizarReceita edita uma receita avulsa.
func (uc *UseCase) AtualizarReceita(ctx context.Context, id string, in dto.CriarReceitaRequest) (*entity.Receita, error) {
	r, err := uc.receitaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if r.Vinculada() {
		return nil, domain.ErrReceitaVinculada
	}
	if in.Descricao != "" {
		r.Descricao = in.Descricao
	}
	if in.Valor.GreaterThan(decimal.Zero) {
		r.Valor = in.Valor
	}
	if in.DataVencimento != "" {
		vencimento, err := dto.ParseData(in.DataVencimento)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		r.DataVencimento = vencimento
	}
	if in.CategoriaID != nil {
		r.CategoriaID = in.CategoriaID
	}
	if in.FormaPagamento != nil {
		r.FormaPagamento = in.FormaPagamento
	}
	if in.Observacoes != nil {
		r.Observacoes = in.Observacoes
	}
	r.UpdatedAt = uc.agora()
	if err := uc.receitaRepo.Update(r); err != nil {
		return nil, err
	}
	return r, nil
}

// AlternarStatusReceita alterna Pendente/Recebido de uma receita avulsa,
// carimbando ou limpando a data de recebimento.
func (uc *UseCase) AlternarStatusReceita(ctx context.Context, id string) (*entity.Receita, error) {
	r, err := uc.receitaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if r.Vinculada() {
		return nil, domain.ErrReceitaVinculada
	}
	if r.Status == entity.ContaRecebido {
		r.Status = entity.ContaPendente
		r.DataRecebimento = nil
	} else {
		hoje := uc.agora()
		r.Status = entity.ContaRecebido
		r.DataRecebimento = &hoje
	}
	r.UpdatedAt = uc.agora()
	if err := uc.receitaRepo.Update(r); err != nil {
		return nil, err
	}
	uc.log.Info().Str("receita_id", r.ID).Str("status", r.Status).Msg("status da receita alternado")
	return r, nil
}

// ExcluirReceita remove uma receita avulsa. Receitas vinculadas só saem pela
// exclusão da própria ordem de serviço.
func (uc *UseCase) ExcluirReceita(ctx context.Context, id string) error {
	r, err := uc.receitaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNaoEncontrado
	}
	if r.Vinculada() {
		return domain.ErrReceitaVinculada
	}
	return uc.receitaRepo.Delete(id)
}

// CriarDespesa lança uma despesa fixa ou variável.
func (uc *UseCase) CriarDespesa(ctx context.Context, in dto.CriarDespesaRequest) (*entity.Despesa, error) {
	if in.Descricao == "" || in.DataVencimento == "" || !in.Valor.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Tipo != entity.DespesaFixa && in.Tipo != entity.DespesaVariavel {
		return nil, domain.ErrEntradaInvalida
	}
	vencimento, err := dto.ParseData(in.DataVencimento)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	numero, err := uc.despesaRepo.ProximoNumero()
	if err != nil {
		return nil, err
	}
	now := uc.agora()
	d := &entity.Despesa{
		ID:             uuid.New().String(),
		Numero:         numero,
		Descricao:      in.Descricao,
		Valor:          in.Valor,
		Status:         entity.ContaPendente,
		Tipo:           in.Tipo,
		DataVencimento: vencimento,
		CategoriaID:    in.CategoriaID,
		Observacoes:    in.Observacoes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.despesaRepo.Create(d); err != nil {
		return nil, err
	}
	uc.log.Info().Str("despesa_id", d.ID).Str("numero", d.Numero).Msg("despesa criada")
	return d, nil
}

// ListarDespesas devolve todas as despesas.
func (uc *UseCase) ListarDespesas(ctx context.Context) ([]*entity.Despesa, error) {
	return uc.despesaRepo.List()
}

// AlternarStatusDespesa alterna Pendente/Pago, carimbando ou limpando a data
// de pagamento com a data corrente.
func (uc *UseCase) AlternarStatusDespesa(ctx context.Context, id string) (*entity.Despesa, error) {
	d, err := uc.despesaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if d.Status == entity.ContaPago {
		d.Status = entity.ContaPendente
		d.DataPagamento = nil
	} else {
		hoje := uc.agora()
		d.Status = entity.ContaPago
		d.DataPagamento = &hoje
	}
	d.UpdatedAt = uc.agora()
	if err := uc.despesaRepo.Update(d); err != nil {
		return nil, err
	}
	uc.log.Info().Str("despesa_id", d.ID).Str("status", d.Status).Msg("status da despesa alternado")
	return d, nil
}

// ExcluirDespesa remove uma despesa.
func (uc *UseCase) ExcluirDespesa(ctx context.Context, id string) error {
	d, err := uc.despesaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.despesaRepo.Delete(id)
}

// Resumo agrega os totais do financeiro considerando pagamentos parciais das
// ordens de serviço vinculadas.
func (uc *UseCase) Resumo(ctx context.Context) (financeiro.Resumo, error) {
	receitas, err := uc.receitaRepo.List()
	if err != nil {
		return financeiro.Resumo{}, err
	}
	despesas, err := uc.despesaRepo.List()
	if err != nil {
		return financeiro.Resumo{}, err
	}
	ordens, err := uc.mapaOrdens()
	if err != nil {
		return financeiro.Resumo{}, err
	}
	return financeiro.CalcularResumo(receitas, despesas, ordens), nil
}

func (uc *UseCase) mapaOrdens() (map[string]*entity.OrdemServico, error) {
	lista, err := uc.osRepo.List()
	if err != nil {
		return nil, err
	}
	ordens := make(map[string]*entity.OrdemServico, len(lista))
	for _, os := range lista {
		ordens[os.ID] = os
	}
	return ordens, nil
}
