package documentos

import (
	"context"

	"github.com/oficinago/oficina-api/internal/domain/entity"
)

// GeradorPDF converte um orçamento ou uma ordem de serviço detalhados em um
// documento PDF imprimível.
type GeradorPDF interface {
	GerarOrcamentoPDF(ctx context.Context, orc *entity.OrcamentoDetalhado) ([]byte, error)
	GerarOrdemServicoPDF(ctx context.Context, os *entity.OrdemServicoDetalhada) ([]byte, error)
}
