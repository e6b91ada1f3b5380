package ordemservico

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// UseCase coordena o ciclo de vida da ordem de serviço: criação a partir de um
// orçamento aprovado, transições de status com efeito de estoque e exclusão em
// cascata. Toda transição lê o status anteriormente persistido sob bloqueio de
// linha (GetForUpdate), nunca o estado enviado pelo cliente.
type UseCase struct {
	txRunner    TxRunner
	osRepo      repository.OrdemServicoRepository
	clienteRepo repository.ClienteRepository
	log         zerolog.Logger
}

// NewUseCase constrói o coordenador.
func NewUseCase(
	txRunner TxRunner,
	osRepo repository.OrdemServicoRepository,
	clienteRepo repository.ClienteRepository,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		osRepo:      osRepo,
		clienteRepo: clienteRepo,
		log:         log,
	}
}

// Criar abre uma ordem de serviço. Quando orcamento_id está presente, o
// orçamento deve estar Aprovado e sem OS anterior; o valor total é copiado do
// orçamento e uma receita vinculada é lançada na mesma transação.
func (uc *UseCase) Criar(ctx context.Context, in dto.CriarOrdemServicoRequest) (*entity.OrdemServico, error) {
	if in.ClienteID == "" || in.DataInicio == "" {
		return nil, domain.ErrEntradaInvalida
	}
	dataInicio, err := dto.ParseData(in.DataInicio)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	prazo, err := dto.ParseDataOpcional(in.PrazoConclusao)
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
	os := &entity.OrdemServico{
		ID:             uuid.New().String(),
		ClienteID:      in.ClienteID,
		VeiculoID:      in.VeiculoID,
		OrcamentoID:    in.OrcamentoID,
		StatusServico:  entity.ServicoAndamento,
		DataInicio:     dataInicio,
		PrazoConclusao: prazo,
		KmAtual:        in.KmAtual,
		Observacoes:    in.Observacoes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.txRunner.Run(ctx, func(
		osRepo repository.OrdemServicoRepository,
		orcRepo repository.OrcamentoRepository,
		_ repository.OrcamentoPecaRepository,
		_ repository.PecaRepository,
		receitaRepo repository.ReceitaRepository,
	) error {
		if in.OrcamentoID != nil {
			orc, err := orcRepo.GetByID(*in.OrcamentoID)
			if err != nil {
				return err
			}
			if orc == nil {
				return domain.ErrNaoEncontrado
			}
			if orc.Status != entity.OrcamentoAprovado {
				return domain.ErrOrcamentoNaoAprovado
			}
			existente, err := osRepo.GetByOrcamento(orc.ID)
			if err != nil {
				return err
			}
			if existente != nil {
				return domain.ErrOrcamentoComOS
			}
			os.ValorTotal = orc.ValorTotal
		}

		numero, err := osRepo.ProximoNumero()
		if err != nil {
			return err
		}
		os.Numero = numero

		if err := osRepo.Create(os); err != nil {
			return err
		}

		// Receita vinculada nasce junto com a OS; status e valores efetivos
		// passam a ser derivados da OS dali em diante.
		if os.OrcamentoID != nil {
			numRec, err := receitaRepo.ProximoNumero()
			if err != nil {
				return err
			}
			vencimento := dataInicio
			if prazo != nil {
				vencimento = *prazo
			}
			rec := &entity.Receita{
				ID:             uuid.New().String(),
				Numero:         numRec,
				Descricao:      fmt.Sprintf("Ordem de Serviço %s", os.Numero),
				Valor:          os.ValorTotal,
				Status:         entity.ContaPendente,
				DataVencimento: vencimento,
				OrdemServicoID: &os.ID,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := receitaRepo.Create(rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().Str("ordem_servico_id", os.ID).Str("numero", os.Numero).Msg("ordem de serviço criada")
	return os, nil
}

// Atualizar aplica uma atualização parcial. Se o status de serviço mudar de
// classe (ativo/final), o efeito de estoque é aplicado sobre as peças do
// orçamento de origem, na mesma transação da gravação da OS.
func (uc *UseCase) Atualizar(ctx context.Context, id string, in dto.AtualizarOrdemServicoRequest) (*entity.OrdemServico, error) {
	var atualizada *entity.OrdemServico
	err := uc.txRunner.Run(ctx, func(
		osRepo repository.OrdemServicoRepository,
		_ repository.OrcamentoRepository,
		orcPecaRepo repository.OrcamentoPecaRepository,
		pecaRepo repository.PecaRepository,
		_ repository.ReceitaRepository,
	) error {
		os, err := osRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if os == nil {
			return domain.ErrNaoEncontrado
		}

		anterior := os.StatusServico

		if in.StatusServico != nil {
			novo := entity.StatusServico(*in.StatusServico)
			if !novo.Valido() {
				return domain.ErrEntradaInvalida
			}
			os.StatusServico = novo
		}
		if in.ValorPago != nil {
			os.ValorPago = *in.ValorPago
		}
		if in.Desconto != nil {
			os.Desconto = *in.Desconto
		}
		if in.FormaPagamento != nil {
			os.FormaPagamento = in.FormaPagamento
		}
		if in.PrazoConclusao != nil {
			prazo, err := dto.ParseData(*in.PrazoConclusao)
			if err != nil {
				return domain.ErrEntradaInvalida
			}
			os.PrazoConclusao = &prazo
		}
		if in.KmAtual != nil {
			os.KmAtual = in.KmAtual
		}
		if in.Observacoes != nil {
			os.Observacoes = in.Observacoes
		}
		os.UpdatedAt = time.Now()

		// O efeito é avaliado contra o status persistido lido sob bloqueio:
		// repetir o mesmo status não gera efeito (idempotência).
		efeito := entity.EfeitoTransicao(anterior, os.StatusServico)
		if efeito != entity.EfeitoNenhum && os.OrcamentoID != nil {
			linhas, err := orcPecaRepo.ListByOrcamento(*os.OrcamentoID)
			if err != nil {
				return err
			}
			switch efeito {
			case entity.EfeitoConsumir:
				err = baixarPecas(pecaRepo, linhas, uc.log)
			case entity.EfeitoDevolver:
				err = devolverPecas(pecaRepo, linhas, uc.log)
			}
			if err != nil {
				return err
			}
		}

		if err := osRepo.Update(os); err != nil {
			return err
		}
		atualizada = os
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("ordem_servico_id", id).Msg("falha ao atualizar ordem de serviço")
		return nil, err
	}
	return atualizada, nil
}

// Excluir remove a OS em cascata: primeiro as receitas vinculadas, depois a
// própria OS, e por fim o orçamento de origem volta para Pendente.
func (uc *UseCase) Excluir(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(
		osRepo repository.OrdemServicoRepository,
		orcRepo repository.OrcamentoRepository,
		_ repository.OrcamentoPecaRepository,
		_ repository.PecaRepository,
		receitaRepo repository.ReceitaRepository,
	) error {
		os, err := osRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if os == nil {
			return domain.ErrNaoEncontrado
		}
		if err := receitaRepo.DeleteByOrdemServico(os.ID); err != nil {
			return err
		}
		if err := osRepo.Delete(os.ID); err != nil {
			return err
		}
		if os.OrcamentoID != nil {
			if err := orcRepo.UpdateStatus(*os.OrcamentoID, entity.OrcamentoPendente); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.log.Info().Str("ordem_servico_id", id).Msg("ordem de serviço excluída")
	return nil
}

// Obter carrega a OS com cliente, veículo e orçamento de origem.
func (uc *UseCase) Obter(ctx context.Context, id string) (*entity.OrdemServicoDetalhada, error) {
	os, err := uc.osRepo.GetDetalhada(id)
	if err != nil {
		return nil, err
	}
	if os == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return os, nil
}

// Listar devolve todas as ordens de serviço.
func (uc *UseCase) Listar(ctx context.Context) ([]*entity.OrdemServico, error) {
	return uc.osRepo.List()
}
