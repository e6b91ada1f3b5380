package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/oficinago/oficina-api/internal/application/auth"
	appcompras "github.com/oficinago/oficina-api/internal/application/compras"
	appdocumentos "github.com/oficinago/oficina-api/internal/application/documentos"
	appfinanceiro "github.com/oficinago/oficina-api/internal/application/financeiro"
	apporcamento "github.com/oficinago/oficina-api/internal/application/orcamento"
	appos "github.com/oficinago/oficina-api/internal/application/ordemservico"
	"github.com/oficinago/oficina-api/internal/application/usecase"
	"github.com/oficinago/oficina-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	ClienteUC    *usecase.ClienteUseCase
	PecaUC       *usecase.PecaUseCase
	ServicoUC    *usecase.ServicoUseCase
	CategoriaUC  *usecase.CategoriaUseCase
	FornecedorUC *usecase.FornecedorUseCase
	MarketingUC  *usecase.MarketingUseCase
	DashboardUC  *usecase.DashboardUseCase
	OrcamentoUC  *apporcamento.UseCase
	OrdemUC      *appos.UseCase
	FinanceiroUC *appfinanceiro.UseCase
	ComprasUC    *appcompras.UseCase
	DocumentosUC *appdocumentos.UseCase
	JWTSecret    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Clientes e veículos
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Post("/", clienteHandler.Create)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.GetByID)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)
	clientes.Post("/:id/veiculos", clienteHandler.AddVeiculo)
	clientes.Get("/:id/veiculos", clienteHandler.ListVeiculos)
	clientes.Delete("/:id/veiculos/:veiculoId", clienteHandler.DeleteVeiculo)

	// Catálogo de peças
	pecas := protected.Group("/pecas")
	pecaHandler := NewPecaHandler(deps.PecaUC)
	pecas.Post("/", pecaHandler.Create)
	pecas.Get("/", pecaHandler.List)
	pecas.Get("/:id", pecaHandler.GetByID)
	pecas.Put("/:id", pecaHandler.Update)
	pecas.Delete("/:id", pecaHandler.Delete)

	// Catálogo de serviços
	servicos := protected.Group("/servicos")
	servicoHandler := NewServicoHandler(deps.ServicoUC)
	servicos.Post("/", servicoHandler.Create)
	servicos.Get("/", servicoHandler.List)
	servicos.Get("/:id", servicoHandler.GetByID)
	servicos.Put("/:id", servicoHandler.Update)
	servicos.Delete("/:id", servicoHandler.Delete)

	// Categorias financeiras
	categorias := protected.Group("/categorias")
	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias.Post("/", categoriaHandler.Create)
	categorias.Get("/", categoriaHandler.List)
	categorias.Put("/:id", categoriaHandler.Update)
	categorias.Delete("/:id", categoriaHandler.Delete)

	// Fornecedores
	fornecedores := protected.Group("/fornecedores")
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Get("/:id", fornecedorHandler.GetByID)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Delete("/:id", fornecedorHandler.Delete)

	// Orçamentos (com linhas e PDF)
	orcamentos := protected.Group("/orcamentos")
	orcamentoHandler := NewOrcamentoHandler(deps.OrcamentoUC)
	documentoHandler := NewDocumentoHandler(deps.DocumentosUC)
	orcamentos.Post("/", orcamentoHandler.Create)
	orcamentos.Get("/", orcamentoHandler.List)
	orcamentos.Get("/:id", orcamentoHandler.GetByID)
	orcamentos.Put("/:id", orcamentoHandler.Update)
	orcamentos.Patch("/:id/status", orcamentoHandler.UpdateStatus)
	orcamentos.Delete("/:id", orcamentoHandler.Delete)
	orcamentos.Post("/:id/pecas", orcamentoHandler.AddPeca)
	orcamentos.Delete("/:id/pecas/:linhaId", orcamentoHandler.RemovePeca)
	orcamentos.Post("/:id/servicos", orcamentoHandler.AddServico)
	orcamentos.Delete("/:id/servicos/:linhaId", orcamentoHandler.RemoveServico)
	orcamentos.Get("/:id/pdf", documentoHandler.OrcamentoPDF)

	// Ordens de serviço (com PDF)
	ordens := protected.Group("/ordens-servico")
	ordemHandler := NewOrdemServicoHandler(deps.OrdemUC)
	ordens.Post("/", ordemHandler.Create)
	ordens.Get("/", ordemHandler.List)
	ordens.Get("/:id", ordemHandler.GetByID)
	ordens.Put("/:id", ordemHandler.Update)
	ordens.Delete("/:id", ordemHandler.Delete)
	ordens.Get("/:id/pdf", documentoHandler.OrdemServicoPDF)

	// Financeiro (receitas, despesas e resumo)
	financeiro := protected.Group("/financeiro")
	financeiroHandler := NewFinanceiroHandler(deps.FinanceiroUC)
	financeiro.Post("/receitas", financeiroHandler.CreateReceita)
	financeiro.Get("/receitas", financeiroHandler.ListReceitas)
	financeiro.Put("/receitas/:id", financeiroHandler.UpdateReceita)
	financeiro.Patch("/receitas/:id/status", financeiroHandler.ToggleReceita)
	financeiro.Delete("/receitas/:id", financeiroHandler.DeleteReceita)
	financeiro.Post("/despesas", financeiroHandler.CreateDespesa)
	financeiro.Get("/despesas", financeiroHandler.ListDespesas)
	financeiro.Patch("/despesas/:id/status", financeiroHandler.ToggleDespesa)
	financeiro.Delete("/despesas/:id", financeiroHandler.DeleteDespesa)
	financeiro.Get("/resumo", financeiroHandler.Resumo)

	// Compras de peças (restrito a admin e atendente)
	compras := protected.Group("/compras", RequireRole(entity.PapelAdmin, entity.PapelAtendente))
	compraHandler := NewCompraHandler(deps.ComprasUC)
	compras.Post("/", compraHandler.Create)
	compras.Get("/", compraHandler.List)

	// Marketing e aniversários
	marketing := protected.Group("/marketing")
	marketingHandler := NewMarketingHandler(deps.MarketingUC)
	marketing.Post("/contatos", marketingHandler.Create)
	marketing.Get("/contatos", marketingHandler.List)
	marketing.Get("/aniversariantes", marketingHandler.Aniversariantes)
	marketing.Patch("/contatos/:id/mensagem", marketingHandler.MensagemEnviada)
	marketing.Delete("/contatos/:id", marketingHandler.Delete)

	// Painel
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Resumo)
}
