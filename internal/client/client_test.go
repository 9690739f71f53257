package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/health", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"status":           "ok",
			"llm_enabled":      true,
			"available_models": []string{"gemma:2b"},
		})
	}))
	defer srv.Close()

	health, err := New(srv.URL).CheckHealth(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.True(t, health.LLMEnabled)
	assert.Equal(t, []string{"gemma:2b"}, health.AvailableModels)
}

func TestInterpretUseCase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/interpret-usecase", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "We need fraud detection for transactions", body["usecase"])

		json.NewEncoder(w).Encode(map[string]any{
			"data_product": "fraud_alerts",
			"confidence":   0.92,
			"reasoning":    "mentions fraud",
		})
	}))
	defer srv.Close()

	interp, err := New(srv.URL).InterpretUseCase(context.Background(), "We need fraud detection for transactions")

	assert.NoError(t, err)
	assert.Equal(t, "fraud_alerts", interp.DataProduct)
	assert.Equal(t, 0.92, interp.Confidence)
}

func TestGenerateData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "fraud_detection", body["data_product"])
		assert.Equal(t, float64(10), body["sample_size"])

		json.NewEncoder(w).Encode(map[string]any{
			"records_generated": 2,
			"customer_ids":      []string{"C1", "C2"},
		})
	}))
	defer srv.Close()

	dataset, err := New(srv.URL).GenerateData(context.Background(), "fraud_detection", 10)

	assert.NoError(t, err)
	assert.Equal(t, 2, dataset.RecordsGenerated)
	assert.Equal(t, []string{"C1", "C2"}, dataset.CustomerIDs)
}

func TestProcessCustomer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"mapping_report":   map[string]any{"mapped_fields": 7},
			"ingestion_report": map[string]any{"status": "success"},
			"certification_report": map[string]any{
				"certification_status": "passed",
				"checks": map[string]any{
					"privacy": map[string]any{"passed": true, "score": 0.91},
				},
			},
		})
	}))
	defer srv.Close()

	result, err := New(srv.URL).ProcessCustomer(context.Background(), "fraud_detection", "C1")

	assert.NoError(t, err)
	assert.Equal(t, 7, result.MappingReport.MappedFields)
	assert.Equal(t, "success", result.IngestionReport.Status)
	assert.NotNil(t, result.CertificationReport)
	assert.Equal(t, 0.91, result.CertificationReport.Checks["privacy"].Score)
}

func TestServerErrorMessageSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "No use case provided"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).InterpretUseCase(context.Background(), "")

	assert.EqualError(t, err, "No use case provided")
}

func TestBareStatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).GenerateReports(context.Background(), "p", "c")

	assert.EqualError(t, err, "status code 502")
}

func TestTransportErrorPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	_, err := New(srv.URL).CheckHealth(context.Background())

	assert.Error(t, err)
}

func TestResolveReport(t *testing.T) {
	g := New("http://localhost:5000/")

	assert.Equal(t, "http://localhost:5000/reports/a.json", g.ResolveReport("/reports/a.json"))
	assert.Equal(t, "http://localhost:5000/reports/b.csv", g.ResolveReport("reports/b.csv"))
	assert.Equal(t, "", g.ResolveReport(""))
}
