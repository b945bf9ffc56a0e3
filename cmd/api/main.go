package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/splitfiscal/simulador-api/internal/application/estrategias"
	"github.com/splitfiscal/simulador-api/internal/application/simulador"
	"github.com/splitfiscal/simulador-api/internal/domain/simulacao"
	"github.com/splitfiscal/simulador-api/internal/domain/tributacao"
	infracsv "github.com/splitfiscal/simulador-api/internal/infrastructure/csv"
	"github.com/splitfiscal/simulador-api/internal/infrastructure/memoria"
	infrapdf "github.com/splitfiscal/simulador-api/internal/infrastructure/pdf"
	"github.com/splitfiscal/simulador-api/internal/infrastructure/postgres"
	httpRouter "github.com/splitfiscal/simulador-api/internal/interfaces/http"
	"github.com/splitfiscal/simulador-api/pkg/config"
	"github.com/splitfiscal/simulador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	// Defaults do motor vindos da configuração. Entradas com os campos
	// zerados usam estes valores de referência.
	if cfg.Simulador.AliquotaCBS > 0 {
		tributacao.AliquotaCBSReferencia = decimal.NewFromFloat(cfg.Simulador.AliquotaCBS)
	}
	if cfg.Simulador.AliquotaIBS > 0 {
		tributacao.AliquotaIBSReferencia = decimal.NewFromFloat(cfg.Simulador.AliquotaIBS)
	}
	if cfg.Simulador.TaxaCapitalGiro > 0 {
		simulacao.TaxaCapitalGiroDefault = decimal.NewFromFloat(cfg.Simulador.TaxaCapitalGiro)
	}

	ctx := context.Background()

	// Banco opcional: sem DB configurado a API opera com repositório em
	// memória e as simulações não sobrevivem a um restart.
	var repo simulador.SimulacaoRepository
	if cfg.DB.Enabled() {
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
		}
		defer pool.Close()
		repo = postgres.NewSimulacaoRepository(pool)
		log.Info().Msg("persistência: PostgreSQL")
	} else {
		repo = memoria.NewSimulacaoRepository()
		log.Warn().Msg("persistência: memória (DB_HOST/DATABASE_URL ausentes)")
	}

	analisador := simulador.NewAnalisadorImpacto(tributacao.NewSistemaAtual(), log)
	simulacaoUC := simulador.NewSimulacaoUseCase(analisador, repo, log)
	estrategiaUC := estrategias.NewEstrategiaUseCase(log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Simulador Split Payment API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SimulacaoUC:  simulacaoUC,
		EstrategiaUC: estrategiaUC,
		Analisador:   analisador,
		RelatorioPDF: infrapdf.NewMarotoRelatorioGenerator(),
		Exportador:   infracsv.NewExportadorCSV(),
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
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
