package dto

import "time"

// ErrorResponse corpo de erro HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MensagemResponse envelope de sucesso das mutações; Mensagem carrega o texto
// exibível ao usuário e Dados o recurso afetado.
type MensagemResponse struct {
	Mensagem string      `json:"mensagem"`
	Dados    interface{} `json:"dados,omitempty"`
}

// PageRequest paginação para listagens de catálogo.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores padrão se Limit/Offset forem zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

const formatoData = "2006-01-02"

// ParseData interpreta uma data no formato YYYY-MM-DD.
func ParseData(s string) (time.Time, error) {
	return time.Parse(formatoData, s)
}

// ParseDataOpcional interpreta um ponteiro de data; nil permanece nil.
func ParseDataOpcional(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(formatoData, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
