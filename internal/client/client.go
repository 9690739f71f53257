// Package client is the typed HTTP client for the foundry API: five
// request/response operations over JSON, one per pipeline stage, plus health.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type Health struct {
	Status          string   `json:"status"`
	LLMEnabled      bool     `json:"llm_enabled"`
	AvailableModels []string `json:"available_models"`
	Timestamp       string   `json:"timestamp"`
	AgentsReady     bool     `json:"agents_ready"`
}

type Interpretation struct {
	DataProduct string  `json:"data_product"`
	Confidence  float64 `json:"confidence"`
	Reasoning   string  `json:"reasoning"`
	UsedLLM     string  `json:"used_llm,omitempty"`
}

type Dataset struct {
	DataProduct      string   `json:"data_product"`
	RecordsGenerated int      `json:"records_generated"`
	CustomerIDs      []string `json:"customer_ids"`
	Timestamp        string   `json:"timestamp,omitempty"`
}

type MappingReport struct {
	MappedFields      int               `json:"mapped_fields"`
	MappingConfidence float64           `json:"mapping_confidence"`
	UsedLLM           string            `json:"used_llm,omitempty"`
	Mappings          map[string]string `json:"mappings,omitempty"`
}

type IngestionReport struct {
	Status           string `json:"status"`
	RecordsProcessed int    `json:"records_processed"`
	Timestamp        string `json:"timestamp,omitempty"`
}

type Check struct {
	Passed bool    `json:"passed"`
	Score  float64 `json:"score"`
}

type CertificationReport struct {
	CertificationStatus string           `json:"certification_status"`
	OverallScore        float64          `json:"overall_score"`
	Checks              map[string]Check `json:"checks"`
}

type ProcessingResult struct {
	MappingReport       MappingReport        `json:"mapping_report"`
	IngestionReport     IngestionReport      `json:"ingestion_report"`
	CertificationReport *CertificationReport `json:"certification_report,omitempty"`
}

type ReportLinks struct {
	JSONReportURL string `json:"json_report_url"`
	CSVExportURL  string `json:"csv_export_url"`
	GeneratedAt   string `json:"generated_at,omitempty"`
}

// Gateway issues the five API operations against a configured base URL. It is
// stateless; every call stands alone.
type Gateway struct {
	base string
	http *http.Client
}

// New builds a gateway for the given base URL (scheme://host[:port], no
// trailing slash required). No client-side timeout is imposed; pass a context
// with a deadline to bound individual calls.
func New(base string) *Gateway {
	return &Gateway{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{},
	}
}

// BaseURL returns the configured endpoint root.
func (g *Gateway) BaseURL() string {
	return g.base
}

// ResolveReport turns a server-relative report path into a downloadable URL.
func (g *Gateway) ResolveReport(path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return g.base + path
}

func (g *Gateway) CheckHealth(ctx context.Context) (Health, error) {
	var out Health
	if err := g.getJSON(ctx, "/api/health", &out); err != nil {
		return Health{}, err
	}
	return out, nil
}

func (g *Gateway) InterpretUseCase(ctx context.Context, useCase string) (Interpretation, error) {
	var out Interpretation
	in := struct {
		Usecase string `json:"usecase"`
	}{Usecase: useCase}
	if err := g.postJSON(ctx, "/api/interpret-usecase", in, &out); err != nil {
		return Interpretation{}, err
	}
	return out, nil
}

func (g *Gateway) GenerateData(ctx context.Context, dataProduct string, sampleSize int) (Dataset, error) {
	var out Dataset
	in := struct {
		DataProduct string `json:"data_product"`
		SampleSize  int    `json:"sample_size"`
	}{DataProduct: dataProduct, SampleSize: sampleSize}
	if err := g.postJSON(ctx, "/api/generate-data", in, &out); err != nil {
		return Dataset{}, err
	}
	return out, nil
}

func (g *Gateway) ProcessCustomer(ctx context.Context, dataProduct string, customerID string) (ProcessingResult, error) {
	var out ProcessingResult
	in := struct {
		DataProduct string `json:"data_product"`
		CustomerID  string `json:"customer_id"`
	}{DataProduct: dataProduct, CustomerID: customerID}
	if err := g.postJSON(ctx, "/api/process-customer", in, &out); err != nil {
		return ProcessingResult{}, err
	}
	return out, nil
}

func (g *Gateway) GenerateReports(ctx context.Context, dataProduct string, customerID string) (ReportLinks, error) {
	var out ReportLinks
	in := struct {
		DataProduct string `json:"data_product"`
		CustomerID  string `json:"customer_id"`
	}{DataProduct: dataProduct, CustomerID: customerID}
	if err := g.postJSON(ctx, "/api/generate-reports", in, &out); err != nil {
		return ReportLinks{}, err
	}
	return out, nil
}

func (g *Gateway) postJSON(ctx context.Context, path string, in any, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(req, out)
}

func (g *Gateway) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.base+path, nil)
	if err != nil {
		return err
	}
	return g.do(req, out)
}

func (g *Gateway) do(req *http.Request, out any) error {
	resp, err := g.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeError surfaces the server's own message when the body carries one,
// and falls back to the bare status code otherwise.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("%s", apiErr.Error)
	}
	return fmt.Errorf("status code %d", resp.StatusCode)
}
