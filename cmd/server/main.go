// @title         cvtailor API
// @version       1.0
// @description   Трекер откликов на вакансии с ATS-оценкой резюме, адаптацией под вакансию и сопроводительными письмами.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен доступа. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/artem13815/cvtailor/api/http"
	"github.com/artem13815/cvtailor/api/http/handlers"
	_ "github.com/artem13815/cvtailor/docs"
	"github.com/artem13815/cvtailor/pkg/auth"
	"github.com/artem13815/cvtailor/pkg/company"
	"github.com/artem13815/cvtailor/pkg/config"
	"github.com/artem13815/cvtailor/pkg/health"
	"github.com/artem13815/cvtailor/pkg/health/checkers"
	"github.com/artem13815/cvtailor/pkg/llm"
	"github.com/artem13815/cvtailor/pkg/llm/cache"
	"github.com/artem13815/cvtailor/pkg/llm/openai"
	"github.com/artem13815/cvtailor/pkg/logger"
	"github.com/artem13815/cvtailor/pkg/match"
	"github.com/artem13815/cvtailor/pkg/nlp"
	"github.com/artem13815/cvtailor/pkg/repository/jsonfile"
	pgrepo "github.com/artem13815/cvtailor/pkg/repository/postgres"
	"github.com/artem13815/cvtailor/pkg/resume"
	"github.com/artem13815/cvtailor/pkg/security/jwt"
	"github.com/artem13815/cvtailor/pkg/storage/postgres"
	"github.com/artem13815/cvtailor/pkg/tailor"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stores: PostgreSQL when DATABASE_URL is set, JSON files otherwise.
	var (
		companyRepo company.Repository
		profileRepo resume.ProfileRepository
		probes      []health.Checker
	)
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.WithMaxConns(int32(cfg.DBMaxConns)))
		if err != nil {
			fatal(log, "postgres connect", err)
		}
		defer pool.Close()
		cr, err := pgrepo.NewCompanyRepository(pool)
		if err != nil {
			fatal(log, "init company repo", err)
		}
		pr, err := pgrepo.NewProfileRepository(pool)
		if err != nil {
			fatal(log, "init profile repo", err)
		}
		companyRepo, profileRepo = cr, pr
		probes = append(probes, checkers.NewPostgresChecker(pool))
		log.Info("storage ready", "backend", "postgres")
	} else {
		companyRepo = jsonfile.NewCompanyRepository(cfg.DataDir)
		profileRepo = jsonfile.NewProfileRepository(cfg.DataDir)
		probes = append(probes, checkers.NewDataDirChecker(cfg.DataDir))
		log.Info("storage ready", "backend", "jsonfile", "dir", cfg.DataDir)
	}

	// Keyword extraction, optionally extended with a phrase file.
	extractor := nlp.Default()
	if cfg.PhrasesFile != "" {
		extra, err := nlp.LoadPhrases(cfg.PhrasesFile)
		if err != nil {
			fatal(log, "load phrases", err)
		}
		extractor = nlp.NewExtractor(extra...)
		log.Info("phrase dictionary loaded", "file", cfg.PhrasesFile, "extra", len(extra))
	}

	// External generation is optional; without it tailoring runs heuristically.
	var model llm.ChatModel
	if cfg.LLMEnabled() {
		client := openai.New(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout,
			openai.WithRatePerMinute(cfg.LLMRatePerMinute))
		model = client
		if cfg.RedisURL != "" {
			rdb, err := cache.Connect(ctx, cfg.RedisURL)
			if err != nil {
				fatal(log, "redis connect", err)
			}
			defer func() { _ = rdb.Close() }()
			store := cache.NewRedisStore(rdb)
			model = cache.Wrap(client, store, client.ModelName(), cfg.LLMCacheTTL)
			probes = append(probes, checkers.NewRedisChecker(store))
		}
		log.Info("llm enabled", "model", cfg.LLMModel, "base", cfg.LLMBaseURL, "cache", cfg.RedisURL != "")
	} else {
		log.Warn("LLM_API_KEY not set, tailoring uses heuristics only")
	}

	profileUC := resume.NewProfileService(profileRepo)
	companyUC := company.NewService(companyRepo, profileUC)
	scorer := match.NewScorer(extractor)
	tailorUC := tailor.NewService(model, tailor.Config{
		Timeout:   cfg.LLMTimeout,
		Extractor: extractor,
		Logger:    log,
	})

	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	accessUC := auth.NewAccessService(cfg.AccessPasswordHash, jwtGen)
	if !accessUC.Enabled() {
		log.Warn("ACCESS_PASSWORD_HASH not set, API is open")
	}
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer, accessUC.Enabled())

	app := fiber.New(fiber.Config{AppName: "cvtailor", DisableStartupMessage: true})
	http.UseCommon(app, log)
	http.Register(app, http.Handlers{
		Health:  handlers.NewHealthHandler(health.NewService(probes...)),
		Session: handlers.NewSessionHandler(accessUC),
		Profile: handlers.NewProfileHandler(profileUC),
		Company: handlers.NewCompanyHandler(companyUC),
		Match:   handlers.NewMatchHandler(scorer, extractor, profileUC),
		Tailor:  handlers.NewTailorHandler(tailorUC, scorer, profileUC, cfg.LiveDebounce),
	}, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("HTTP server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		fatal(log, "server stopped", err)
	}
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, "error", err)
	os.Exit(1)
}
