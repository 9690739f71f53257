package server

import (
	"context"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/agentbank/foundry/internal/config"
	"github.com/agentbank/foundry/internal/core/certify"
	"github.com/agentbank/foundry/internal/core/generate"
	"github.com/agentbank/foundry/internal/core/interpret"
	"github.com/agentbank/foundry/internal/core/mapping"
	"github.com/agentbank/foundry/internal/core/pipeline"
	"github.com/agentbank/foundry/internal/llm"
	"github.com/agentbank/foundry/internal/report"
)

type Server struct {
	Cfg         *config.Config
	Interpreter *interpret.Interpreter
	Designer    *generate.Designer
	Pipeline    *pipeline.Pipeline
	Reports     *report.Writer
	Prober      *llm.OllamaProber
}

// NewServer wires the whole pipeline. A missing config file or an unreachable
// LLM downgrades the server to mock mode rather than stopping it; only a
// reports directory that cannot be created is fatal.
func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Could not load %s: %v. Using built-in defaults", cfgPath, err)
		cfg = config.Default()
	}

	applyEnvOverrides(cfg)

	interpretLLM, err := llm.NewClient(context.Background(), cfg.LLM, cfg.LLM.Model)
	if err != nil {
		log.Printf("Interpreter LLM unavailable, running in mock mode: %v", err)
		interpretLLM = nil
	}
	mapperLLM, err := llm.NewClient(context.Background(), cfg.LLM, cfg.LLM.MapperModel)
	if err != nil {
		log.Printf("Mapper LLM unavailable, falling back to name matching: %v", err)
		mapperLLM = nil
	}

	var prober *llm.OllamaProber
	if strings.EqualFold(cfg.LLM.Provider, "ollama") {
		prober = llm.NewOllamaProber(cfg.LLM.BaseURL)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	writer, err := report.NewWriter(cfg.Server.ReportsDir, cfg.LLM.Model, rng)
	if err != nil {
		log.Fatalf("Failed to set up reports directory: %v", err)
	}

	interpreter := interpret.NewInterpreter(interpretLLM, cfg.Prompts.Interpret, cfg.LLM.Model, rng)
	mapper := mapping.NewMapper(mapperLLM, cfg.Prompts.Mapping, cfg.LLM.MapperModel)

	return &Server{
		Cfg:         cfg,
		Interpreter: interpreter,
		Designer:    generate.NewDesigner(rng),
		Pipeline:    pipeline.New(mapper, certify.NewCertifier(rng)),
		Reports:     writer,
		Prober:      prober,
	}
}

func applyEnvOverrides(cfg *config.Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.Server.AllowedOrigins = strings.Split(origins, ",")
	}
	if dir := os.Getenv("REPORTS_DIR"); dir != "" {
		cfg.Server.ReportsDir = dir
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.LLM.Provider = provider
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		cfg.LLM.Model = model
	}
	if model := os.Getenv("LLM_MAPPER_MODEL"); model != "" {
		cfg.LLM.MapperModel = model
	}
	if key := os.Getenv("LLM_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}
	if base := os.Getenv("LLM_BASE_URL"); base != "" {
		cfg.LLM.BaseURL = base
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = s.Cfg.Server.AllowedOrigins
	r.Use(cors.New(corsCfg))

	r.GET("/api/health", s.Health)
	r.POST("/api/interpret-usecase", s.InterpretUsecase)
	r.POST("/api/generate-data", s.GenerateData)
	r.POST("/api/process-customer", s.ProcessCustomer)
	r.POST("/api/generate-reports", s.GenerateReports)
	r.GET("/reports/:filename", s.DownloadReport)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "Not found"})
	})

	return r
}
