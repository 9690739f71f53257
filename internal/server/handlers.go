package server

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// requiredModels is what the health endpoint reports on when the provider is
// a local Ollama daemon.
func (s *Server) requiredModels() []string {
	return []string{s.Cfg.LLM.Model, s.Cfg.LLM.MapperModel}
}

func (s *Server) Health(c *gin.Context) {
	available := []string{}
	llmEnabled := s.Interpreter.LLM != nil

	if s.Prober != nil {
		for _, model := range s.requiredModels() {
			if s.Prober.Available(model) {
				available = append(available, model)
			}
		}
		llmEnabled = len(available) > 0
	} else if llmEnabled {
		available = s.requiredModels()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":           "ok",
		"llm_enabled":      llmEnabled,
		"available_models": available,
		"timestamp":        time.Now().Format(time.RFC3339),
		"agents_ready":     s.Interpreter.LLM != nil,
	})
}

type interpretRequest struct {
	Usecase string `json:"usecase"`
}

func (s *Server) InterpretUsecase(c *gin.Context) {
	var req interpretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	useCase := strings.TrimSpace(req.Usecase)
	if useCase == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No use case provided"})
		return
	}

	log.Printf("Interpreting use case: %s", useCase)
	result := s.Interpreter.Interpret(c.Request.Context(), useCase)
	log.Printf("Interpretation result: data_product=%s confidence=%.2f used_llm=%s",
		result.DataProduct, result.Confidence, result.UsedLLM)

	c.JSON(http.StatusOK, result)
}

type generateRequest struct {
	DataProduct string `json:"data_product"`
	SampleSize  int    `json:"sample_size"`
}

func (s *Server) GenerateData(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.DataProduct == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data product specified"})
		return
	}

	sampleSize := req.SampleSize
	if sampleSize <= 0 {
		sampleSize = s.Cfg.Generator.DefaultSampleSize
	}
	if sampleSize > s.Cfg.Generator.MaxSampleSize {
		sampleSize = s.Cfg.Generator.MaxSampleSize
	}

	log.Printf("Generating data for %s, sample size: %d", req.DataProduct, sampleSize)
	dataset, err := s.Designer.Generate(req.DataProduct, sampleSize)
	if err != nil {
		log.Printf("Data generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dataset)
}

type customerRequest struct {
	DataProduct string `json:"data_product"`
	CustomerID  string `json:"customer_id"`
}

func (s *Server) ProcessCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.DataProduct == "" || req.CustomerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data_product or customer_id"})
		return
	}

	log.Printf("Processing customer %s for data product %s", req.CustomerID, req.DataProduct)
	result, err := s.Pipeline.ProcessCustomer(c.Request.Context(), req.DataProduct, req.CustomerID)
	if err != nil {
		log.Printf("Customer processing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) GenerateReports(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.DataProduct == "" || req.CustomerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data_product or customer_id"})
		return
	}

	log.Printf("Generating reports for customer %s, data product %s", req.CustomerID, req.DataProduct)
	links, err := s.Reports.Generate(req.DataProduct, req.CustomerID)
	if err != nil {
		log.Printf("Report generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, links)
}

func (s *Server) DownloadReport(c *gin.Context) {
	filename := c.Param("filename")
	path, err := s.Reports.FilePath(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	c.FileAttachment(path, filename)
}
