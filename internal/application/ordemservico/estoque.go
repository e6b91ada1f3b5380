package ordemservico

import (
	"github.com/rs/zerolog"

	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// baixarPecas consome do estoque as peças do orçamento. O estoque nunca fica
// negativo: consumo acima do disponível trava em zero.
func baixarPecas(pecaRepo repository.PecaRepository, linhas []*entity.OrcamentoPeca, log zerolog.Logger) error {
	for _, l := range linhas {
		if err := ajustarPeca(pecaRepo, l.PecaID, -l.Quantidade, log); err != nil {
			return err
		}
	}
	return nil
}

// devolverPecas devolve ao estoque as peças do orçamento (reabertura de OS).
// A devolução não tem trava: devolve a quantidade integral.
func devolverPecas(pecaRepo repository.PecaRepository, linhas []*entity.OrcamentoPeca, log zerolog.Logger) error {
	for _, l := range linhas {
		if err := ajustarPeca(pecaRepo, l.PecaID, l.Quantidade, log); err != nil {
			return err
		}
	}
	return nil
}

func ajustarPeca(pecaRepo repository.PecaRepository, pecaID string, delta int, log zerolog.Logger) error {
	p, err := pecaRepo.GetForUpdate(pecaID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNaoEncontrado
	}
	novo := p.EstoqueAtual() + delta
	if novo < 0 {
		novo = 0
	}
	if err := pecaRepo.UpdateEstoque(p.ID, novo); err != nil {
		return err
	}
	log.Info().
		Str("peca_id", p.ID).
		Int("delta", delta).
		Int("estoque", novo).
		Msg("estoque ajustado")
	return nil
}
