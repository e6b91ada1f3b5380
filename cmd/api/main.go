package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/oficinago/oficina-api/internal/application/auth"
	appcompras "github.com/oficinago/oficina-api/internal/application/compras"
	appdocumentos "github.com/oficinago/oficina-api/internal/application/documentos"
	appfinanceiro "github.com/oficinago/oficina-api/internal/application/financeiro"
	apporcamento "github.com/oficinago/oficina-api/internal/application/orcamento"
	appos "github.com/oficinago/oficina-api/internal/application/ordemservico"
	"github.com/oficinago/oficina-api/internal/application/usecase"
	infrapdf "github.com/oficinago/oficina-api/internal/infrastructure/pdf"
	"github.com/oficinago/oficina-api/internal/infrastructure/postgres"
	httpRouter "github.com/oficinago/oficina-api/internal/interfaces/http"
	"github.com/oficinago/oficina-api/pkg/config"
	"github.com/oficinago/oficina-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	clienteRepo := postgres.NewClienteRepository(pool)
	veiculoRepo := postgres.NewVeiculoRepository(pool)
	pecaRepo := postgres.NewPecaRepository(pool)
	servicoRepo := postgres.NewServicoRepository(pool)
	orcamentoRepo := postgres.NewOrcamentoRepository(pool)
	osRepo := postgres.NewOrdemServicoRepository(pool)
	receitaRepo := postgres.NewReceitaRepository(pool)
	despesaRepo := postgres.NewDespesaRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	compraRepo := postgres.NewCompraPecaRepository(pool)
	contatoRepo := postgres.NewContatoMarketingRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	zl := log.Zerolog()

	authUC := auth.NewUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	clienteUC := usecase.NewClienteUseCase(clienteRepo, veiculoRepo)
	pecaUC := usecase.NewPecaUseCase(pecaRepo)
	servicoUC := usecase.NewServicoUseCase(servicoRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	marketingUC := usecase.NewMarketingUseCase(contatoRepo)
	dashboardUC := usecase.NewDashboardUseCase(clienteRepo, orcamentoRepo, osRepo, receitaRepo, despesaRepo)

	orcamentoUC := apporcamento.NewUseCase(txRunner, orcamentoRepo, clienteRepo, pecaRepo, servicoRepo, zl)
	ordemUC := appos.NewUseCase(txRunner, osRepo, clienteRepo, zl)
	financeiroUC := appfinanceiro.NewUseCase(receitaRepo, despesaRepo, osRepo, zl)
	comprasUC := appcompras.NewUseCase(txRunner, compraRepo, fornecedorRepo, pecaRepo, zl)

	// Documentos imprimíveis (orçamento e OS)
	gerador := infrapdf.NewMarotoGerador(cfg.App.Name)
	documentosUC := appdocumentos.NewUseCase(orcamentoRepo, osRepo, gerador, zl)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClienteUC:    clienteUC,
		PecaUC:       pecaUC,
		ServicoUC:    servicoUC,
		CategoriaUC:  categoriaUC,
		FornecedorUC: fornecedorUC,
		MarketingUC:  marketingUC,
		DashboardUC:  dashboardUC,
		OrcamentoUC:  orcamentoUC,
		OrdemUC:      ordemUC,
		FinanceiroUC: financeiroUC,
		ComprasUC:    comprasUC,
		DocumentosUC: documentosUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
