package usecase

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/oficinago/oficina-api/internal/application/dto"
	"github.com/oficinago/oficina-api/internal/domain"
	"github.com/oficinago/oficina-api/internal/domain/entity"
	"github.com/oficinago/oficina-api/internal/domain/repository"
)

// Janela de antecedência dos aniversariantes.
const diasAniversario = 30

// MarketingUseCase gerencia os contatos da régua de aniversários e o registro
// de mensagens enviadas.
type MarketingUseCase struct {
	repo  repository.ContatoMarketingRepository
	agora func() time.Time
}

// NewMarketingUseCase constrói o caso de uso.
func NewMarketingUseCase(repo repository.ContatoMarketingRepository) *MarketingUseCase {
	return &MarketingUseCase{repo: repo, agora: time.Now}
}

// Criar cadastra um contato.
func (uc *MarketingUseCase) Criar(in dto.CriarContatoMarketingRequest) (*entity.ContatoMarketing, error) {
	if in.NomeCliente == "" || in.DataAniversario == "" {
		return nil, domain.ErrEntradaInvalida
	}
	aniversario, err := dto.ParseData(in.DataAniversario)
	if err != nil {
		return nil, domain.ErrEntradaInvalida
	}
	now := uc.agora()
	c := &entity.ContatoMarketing{
		ID:              uuid.New().String(),
		ClienteID:       in.ClienteID,
		NomeCliente:     in.NomeCliente,
		Telefone:        in.Telefone,
		DataAniversario: &aniversario,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Listar devolve todos os contatos.
func (uc *MarketingUseCase) Listar() ([]*entity.ContatoMarketing, error) {
	return uc.repo.List()
}

// Aniversariante é um contato com a próxima ocorrência do aniversário resolvida.
type Aniversariante struct {
	Contato         *entity.ContatoMarketing `json:"contato"`
	ProximoAniversario time.Time             `json:"proximo_aniversario"`
	DiasRestantes   int                      `json:"dias_restantes"`
}

// AniversariantesProximos devolve os contatos cujo próximo aniversário cai nos
// próximos 30 dias, ordenados do mais próximo ao mais distante. A próxima
// ocorrência considera a virada de ano.
func (uc *MarketingUseCase) AniversariantesProximos() ([]Aniversariante, error) {
	contatos, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	hoje := uc.agora()
	hoje = time.Date(hoje.Year(), hoje.Month(), hoje.Day(), 0, 0, 0, 0, time.UTC)

	var out []Aniversariante
	for _, c := range contatos {
		if c.DataAniversario == nil {
			continue
		}
		proximo := proximaOcorrencia(*c.DataAniversario, hoje)
		dias := int(proximo.Sub(hoje).Hours() / 24)
		if dias > diasAniversario {
			continue
		}
		out = append(out, Aniversariante{
			Contato:            c,
			ProximoAniversario: proximo,
			DiasRestantes:      dias,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DiasRestantes < out[j].DiasRestantes
	})
	return out, nil
}

// proximaOcorrencia devolve a próxima data em que o aniversário acontece, a
// partir de hoje (inclusive). 29/02 em ano não bissexto vira 01/03.
func proximaOcorrencia(aniversario, hoje time.Time) time.Time {
	proximo := time.Date(hoje.Year(), aniversario.Month(), aniversario.Day(), 0, 0, 0, 0, time.UTC)
	if proximo.Before(hoje) {
		proximo = time.Date(hoje.Year()+1, aniversario.Month(), aniversario.Day(), 0, 0, 0, 0, time.UTC)
	}
	return proximo
}

// RegistrarMensagemEnviada carimba o envio da mensagem de aniversário.
func (uc *MarketingUseCase) RegistrarMensagemEnviada(id string) (*entity.ContatoMarketing, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNaoEncontrado
	}
	now := uc.agora()
	c.MensagemEnviadaEm = &now
	c.UpdatedAt = now
	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Excluir remove um contato.
func (uc *MarketingUseCase) Excluir(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Delete(id)
}
