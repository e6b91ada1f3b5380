package orcamento

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
	domorc "github.com/oficinago/oficina-api/internal/domain/orcamento"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// UseCase gerencia o ciclo de vida do orçamento: criação com linhas, edição de
// linhas com recálculo transacional do total e transições de status, incluindo
// a desaprovação em cascata quando já existe ordem de serviço derivada.
type UseCase struct {
	txRunner    TxRunner
	orcRepo     repository.OrcamentoRepository
	clienteRepo repository.ClienteRepository
	pecaRepo    repository.PecaRepository
	servicoRepo repository.ServicoRepository
	log         zerolog.Logger
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	txRunner TxRunner,
	orcRepo repository.OrcamentoRepository,
	clienteRepo repository.ClienteRepository,
	pecaRepo repository.PecaRepository,
	servicoRepo repository.ServicoRepository,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		orcRepo:     orcRepo,
		clienteRepo: clienteRepo,
		pecaRepo:    pecaRepo,
		servicoRepo: servicoRepo,
		log:         log,
	}
}

// Criar cria um orçamento Pendente com as linhas iniciais. O valor total é
// calculado das linhas e persistido na mesma transação.
func (uc *UseCase) Criar(ctx context.Context, in dto.CriarOrcamentoRequest) (*entity.Orcamento, error) {
	if in.ClienteID == "" || in.DataOrcamento == "" {
		return nil, domain.ErrEntradaInvalida
	}
	dataOrc, err := dto.ParseData(in.DataOrcamento)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	validade, err := dto.ParseDataOpcional(in.Validade)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}

	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil {
		return nil, fmt.Errorf("buscar cliente: %w", err)
	}
	if cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}

	now := time.Now()
	orc := &entity.Orcamento{
		ID:            uuid.New().String(),
		ClienteID:     in.ClienteID,
		VeiculoID:     in.VeiculoID,
		Status:        entity.OrcamentoPendente,
		DataOrcamento: dataOrc,
		Validade:      validade,
		KmAtual:       in.KmAtual,
		Observacoes:   in.Observacoes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	pecas := make([]*entity.OrcamentoPeca, 0, len(in.Pecas))
	for _, l := range in.Pecas {
		linha, err := uc.montarLinhaPeca(orc.ID, l)
		if err != nil {
			return nil, err
		}
		pecas = append(pecas, linha)
	}
	servicos := make([]*entity.OrcamentoServico, 0, len(in.Servicos))
	for _, l := range in.Servicos {
		linha, err := uc.montarLinhaServico(orc.ID, l)
		if err != nil {
			return nil, err
		}
		servicos = append(servicos, linha)
	}
	orc.ValorTotal = domorc.CalcularTotal(pecas, servicos)

	err = uc.txRunner.RunOrcamento(ctx, func(
		orcRepo repository.OrcamentoRepository,
		orcPecaRepo repository.OrcamentoPecaRepository,
		orcServRepo repository.OrcamentoServicoRepository,
		_ repository.OrdemServicoRepository,
		_ repository.ReceitaRepository,
	) error {
		numero, err := orcRepo.ProximoNumero()
		if err != nil {
			return err
		}
		orc.Numero = numero
		if err := orcRepo.Create(orc); err != nil {
			return err
		}
		for _, l := range pecas {
			if err := orcPecaRepo.Create(l); err != nil {
				return err
			}
		}
		for _, l := range servicos {
			if err := orcServRepo.Create(l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("orcamento_id", orc.ID).Str("numero", orc.Numero).Msg("orçamento criado")
	return orc, nil
}

func (uc *UseCase) montarLinhaPeca(orcamentoID string, in dto.LinhaPecaRequest) (*entity.OrcamentoPeca, error) {
	if in.PecaID == "" || in.Quantidade <= 0 {
		return nil, domain.ErrEntradaInvalida
	}
	peca, err := uc.pecaRepo.GetByID(in.PecaID)
	if err != nil {
		return nil, err
	}
	if peca == nil {
		return nil, domain.ErrNaoEncontrado
	}
	valor := in.ValorUnitario
	if valor.IsZero() {
		valor = peca.ValorUnitario
	}
	return &entity.OrcamentoPeca{
		ID:            uuid.New().String(),
		OrcamentoID:   orcamentoID,
		PecaID:        in.PecaID,
		Quantidade:    in.Quantidade,
		ValorUnitario: valor,
		CreatedAt:     time.Now(),
	}, nil
}

func (uc *UseCase) montarLinhaServico(orcamentoID string, in dto.LinhaServicoRequest) (*entity.OrcamentoServico, error) {
	if in.ServicoID == "" || !in.Horas.GreaterThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	servico, err := uc.servicoRepo.GetByID(in.ServicoID)
	if err != nil {
		return nil, err
	}
	if servico == nil {
		return nil, domain.ErrNaoEncontrado
	}
	valor := in.ValorHora
	if valor.IsZero() {
		valor = servico.ValorHora
	}
	return &entity.OrcamentoServico{
		ID:          uuid.New().String(),
		OrcamentoID: orcamentoID,
		ServicoID:   in.ServicoID,
		Horas:       in.Horas,
		ValorHora:   valor,
		CreatedAt:   time.Now(),
	}, nil
}

// AdicionarPeca inclui uma linha de peça e recalcula o total na mesma transação.
func (uc *UseCase) AdicionarPeca(ctx context.Context, orcamentoID string, in dto.LinhaPecaRequest) (*entity.OrcamentoPeca, error) {
	linha, err := uc.montarLinhaPeca(orcamentoID, in)
	if err != nil {
		return nil, err
	}
	err = uc.mutarLinhas(ctx, orcamentoID, func(orcPecaRepo repository.OrcamentoPecaRepository, _ repository.OrcamentoServicoRepository) error {
		return orcPecaRepo.Create(linha)
	})
	if err != nil {
		return nil, err
	}
	return linha, nil
}

// RemoverPeca exclui uma linha de peça e recalcula o total na mesma transação.
func (uc *UseCase) RemoverPeca(ctx context.Context, orcamentoID, linhaID string) error {
	return uc.mutarLinhas(ctx, orcamentoID, func(orcPecaRepo repository.OrcamentoPecaRepository, _ repository.OrcamentoServicoRepository) error {
		l, err := orcPecaRepo.GetByID(linhaID)
		if err != nil {
			return err
		}
		if l == nil || l.OrcamentoID != orcamentoID {
			return domain.ErrNaoEncontrado
		}
		return orcPecaRepo.Delete(linhaID)
	})
}

// AdicionarServico inclui uma linha de serviço e recalcula o total na mesma transação.
func (uc *UseCase) AdicionarServico(ctx context.Context, orcamentoID string, in dto.LinhaServicoRequest) (*entity.OrcamentoServico, error) {
	linha, err := uc.montarLinhaServico(orcamentoID, in)
	if err != nil {
		return nil, err
	}
	err = uc.mutarLinhas(ctx, orcamentoID, func(_ repository.OrcamentoPecaRepository, orcServRepo repository.OrcamentoServicoRepository) error {
		return orcServRepo.Create(linha)
	})
	if err != nil {
		return nil, err
	}
	return linha, nil
}

// RemoverServico exclui uma linha de serviço e recalcula o total na mesma transação.
func (uc *UseCase) RemoverServico(ctx context.Context, orcamentoID, linhaID string) error {
	return uc.mutarLinhas(ctx, orcamentoID, func(_ repository.OrcamentoPecaRepository, orcServRepo repository.OrcamentoServicoRepository) error {
		l, err := orcServRepo.GetByID(linhaID)
		if err != nil {
			return err
		}
		if l == nil || l.OrcamentoID != orcamentoID {
			return domain.ErrNaoEncontrado
		}
		return orcServRepo.Delete(linhaID)
	})
}

// mutarLinhas aplica uma mutação de linha sobre um orçamento Pendente e
// persiste o total recalculado das linhas restantes, tudo em uma transação.
func (uc *UseCase) mutarLinhas(ctx context.Context, orcamentoID string, mut func(repository.OrcamentoPecaRepository, repository.OrcamentoServicoRepository) error) error {
	return uc.txRunner.RunOrcamento(ctx, func(
		orcRepo repository.OrcamentoRepository,
		orcPecaRepo repository.OrcamentoPecaRepository,
		orcServRepo repository.OrcamentoServicoRepository,
		_ repository.OrdemServicoRepository,
		_ repository.ReceitaRepository,
	) error {
		orc, err := orcRepo.GetByID(orcamentoID)
		if err != nil {
			return err
		}
		if orc == nil {
			return domain.ErrNaoEncontrado
		}
		if orc.Status != entity.OrcamentoPendente {
			return domain.ErrOrcamentoNaoEditavel
		}
		if err := mut(orcPecaRepo, orcServRepo); err != nil {
			return err
		}
		pecas, err := orcPecaRepo.ListByOrcamento(orcamentoID)
		if err != nil {
			return err
		}
		servicos, err := orcServRepo.ListByOrcamento(orcamentoID)
		if err != nil {
			return err
		}
		return orcRepo.UpdateValorTotal(orcamentoID, domorc.CalcularTotal(pecas, servicos))
	})
}

// AtualizarStatus transiciona o status do orçamento. Sair de Aprovado com uma
// ordem de serviço já derivada desfaz a OS em cascata (receitas e OS são
// removidas) na mesma transação.
func (uc *UseCase) AtualizarStatus(ctx context.Context, id string, status entity.StatusOrcamento) error {
	if !status.Valido() {
		return domain.ErrEntradaInvalida
	}
	err := uc.txRunner.RunOrcamento(ctx, func(
		orcRepo repository.OrcamentoRepository,
		_ repository.OrcamentoPecaRepository,
		_ repository.OrcamentoServicoRepository,
		osRepo repository.OrdemServicoRepository,
		receitaRepo repository.ReceitaRepository,
	) error {
		orc, err := orcRepo.GetByID(id)
		if err != nil {
			return err
		}
		if orc == nil {
			return domain.ErrNaoEncontrado
		}
		if orc.Status == entity.OrcamentoAprovado && status != entity.OrcamentoAprovado {
			os, err := osRepo.GetByOrcamento(id)
			if err != nil {
				return err
			}
			if os != nil {
				if err := receitaRepo.DeleteByOrdemServico(os.ID); err != nil {
					return err
				}
				if err := osRepo.Delete(os.ID); err != nil {
					return err
				}
				uc.log.Warn().
					Str("orcamento_id", id).
					Str("ordem_servico_id", os.ID).
					Msg("desaprovação desfez a ordem de serviço derivada")
			}
		}
		return orcRepo.UpdateStatus(id, status)
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("orcamento_id", id).Str("status", string(status)).Msg("status do orçamento atualizado")
	return nil
}

// Atualizar aplica uma atualização parcial dos campos editáveis.
func (uc *UseCase) Atualizar(ctx context.Context, id string, in dto.AtualizarOrcamentoRequest) (*entity.Orcamento, error) {
	orc, err := uc.orcRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if orc == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.VeiculoID != nil {
		orc.VeiculoID = in.VeiculoID
	}
	if in.Validade != nil {
		validade, err := dto.ParseData(*in.Validade)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		orc.Validade = &validade
	}
	if in.KmAtual != nil {
		orc.KmAtual = in.KmAtual
	}
	if in.Observacoes != nil {
		orc.Observacoes = in.Observacoes
	}
	orc.UpdatedAt = time.Now()
	if err := uc.orcRepo.Update(orc); err != nil {
		return nil, err
	}
	return orc, nil
}

// Excluir remove o orçamento e suas linhas. Orçamento com ordem de serviço
// derivada não pode ser excluído.
func (uc *UseCase) Excluir(ctx context.Context, id string) error {
	return uc.txRunner.RunOrcamento(ctx, func(
		orcRepo repository.OrcamentoRepository,
		orcPecaRepo repository.OrcamentoPecaRepository,
		orcServRepo repository.OrcamentoServicoRepository,
		osRepo repository.OrdemServicoRepository,
		_ repository.ReceitaRepository,
	) error {
		orc, err := orcRepo.GetByID(id)
		if err != nil {
			return err
		}
		if orc == nil {
			return domain.ErrNaoEncontrado
		}
		os, err := osRepo.GetByOrcamento(id)
		if err != nil {
			return err
		}
		if os != nil {
			return domain.ErrOrcamentoComOS
		}
		pecas, err := orcPecaRepo.ListByOrcamento(id)
		if err != nil {
			return err
		}
		for _, l := range pecas {
			if err := orcPecaRepo.Delete(l.ID); err != nil {
				return err
			}
		}
		servicos, err := orcServRepo.ListByOrcamento(id)
		if err != nil {
			return err
		}
		for _, l := range servicos {
			if err := orcServRepo.Delete(l.ID); err != nil {
				return err
			}
		}
		return orcRepo.Delete(id)
	})
}

// Obter carrega o orçamento com cliente, veículo e linhas.
func (uc *UseCase) Obter(ctx context.Context, id string) (*entity.OrcamentoDetalhado, error) {
	orc, err := uc.orcRepo.GetDetalhado(id)
	if err != nil {
		return nil, err
	}
	if orc == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return orc, nil
}

// Listar devolve todos os orçamentos com linhas e cliente resolvidos.
func (uc *UseCase) Listar(ctx context.Context) ([]*entity.OrcamentoDetalhado, error) {
	return uc.orcRepo.List()
}
