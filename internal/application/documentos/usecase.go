package documentos

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// UseCase gera os documentos imprimíveis (PDF) de orçamentos e ordens de
// serviço.
type UseCase struct {
	orcamentoRepo repository.OrcamentoRepository
	osRepo        repository.OrdemServicoRepository
	gerador       GeradorPDF
	log           zerolog.Logger
}

// NewUseCase constrói o caso de uso de documentos.
func NewUseCase(
	orcamentoRepo repository.OrcamentoRepository,
	osRepo repository.OrdemServicoRepository,
	gerador GeradorPDF,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		orcamentoRepo: orcamentoRepo,
		osRepo:        osRepo,
		gerador:       gerador,
		log:           log,
	}
}

// OrcamentoPDF gera o PDF de um orçamento e devolve bytes e nome de arquivo.
func (uc *UseCase) OrcamentoPDF(ctx context.Context, id string) ([]byte, string, error) {
	det, err := uc.orcamentoRepo.GetDetalhado(id)
	if err != nil {
		return nil, "", fmt.Errorf("obter orcamento: %w", err)
	}
	if det == nil {
		return nil, "", domain.ErrNaoEncontrado
	}

	pdf, err := uc.gerador.GerarOrcamentoPDF(ctx, det)
	if err != nil {
		return nil, "", fmt.Errorf("gerar pdf do orcamento: %w", err)
	}

	uc.log.Info().Str("orcamento_id", id).Str("numero", det.Numero).Msg("pdf de orçamento gerado")
	return pdf, nomeArquivo("orcamento", det.Numero), nil
}

// OrdemServicoPDF gera o PDF de uma ordem de serviço e devolve bytes e nome de
// arquivo.
func (uc *UseCase) OrdemServicoPDF(ctx context.Context, id string) ([]byte, string, error) {
	det, err := uc.osRepo.GetDetalhada(id)
	if err != nil {
		return nil, "", fmt.Errorf("obter ordem de servico: %w", err)
	}
	if det == nil {
		return nil, "", domain.ErrNaoEncontrado
	}

	pdf, err := uc.gerador.GerarOrdemServicoPDF(ctx, det)
	if err != nil {
		return nil, "", fmt.Errorf("gerar pdf da ordem de servico: %w", err)
	}

	uc.log.Info().Str("ordem_servico_id", id).Str("numero", det.Numero).Msg("pdf de ordem de serviço gerado")
	return pdf, nomeArquivo("ordem_servico", det.Numero), nil
}

// nomeArquivo monta "orcamento_ORC-0001.pdf" a partir do número do documento.
func nomeArquivo(prefixo, numero string) string {
	return fmt.Sprintf("%s_%s.pdf", prefixo, strings.ReplaceAll(numero, "/", "-"))
}
