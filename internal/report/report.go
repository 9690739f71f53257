// Package report writes the downloadable artifacts of a wizard run: a JSON
// report and a flat CSV export per processed customer, served back under
// /reports.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Links struct {
	JSONReportURL string `json:"json_report_url"`
	CSVExportURL  string `json:"csv_export_url"`
	GeneratedAt   string `json:"generated_at"`
}

type Writer struct {
	Dir   string
	Model string

	mu  sync.Mutex
	rng *rand.Rand
}

func NewWriter(dir string, model string, rng *rand.Rand) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory '%s': %w", dir, err)
	}
	return &Writer{
		Dir:   dir,
		Model: model,
		rng:   rng,
	}, nil
}

// Generate writes the JSON and CSV report files for one processed customer
// and returns their download paths. Filenames carry a timestamp plus a short
// random suffix so rapid repeat runs never collide.
func (w *Writer) Generate(dataProduct string, customerID string) (Links, error) {
	if dataProduct == "" || customerID == "" {
		return Links{}, fmt.Errorf("missing data_product or customer_id")
	}

	now := time.Now()
	stem := fmt.Sprintf("%s_%s_%s_%s", dataProduct, customerID,
		now.Format("20060102_150405"), uuid.NewString()[:8])
	jsonName := stem + ".json"
	csvName := stem + ".csv"

	payload := w.payload(dataProduct, customerID, now)

	if err := w.writeJSON(jsonName, payload); err != nil {
		return Links{}, err
	}
	if err := w.writeCSV(csvName, payload); err != nil {
		return Links{}, err
	}

	return Links{
		JSONReportURL: "/reports/" + jsonName,
		CSVExportURL:  "/reports/" + csvName,
		GeneratedAt:   now.Format(time.RFC3339),
	}, nil
}

// FilePath resolves a report filename for download, rejecting anything that
// is not a plain file name inside the reports directory.
func (w *Writer) FilePath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid report filename: %q", name)
	}
	path := filepath.Join(w.Dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("report not found: %q", name)
	}
	return path, nil
}

func (w *Writer) payload(dataProduct string, customerID string, now time.Time) map[string]any {
	w.mu.Lock()
	defer w.mu.Unlock()

	statuses := []string{"approved", "rejected", "pending"}
	payload := map[string]any{
		"data_product": dataProduct,
		"customer_id":  customerID,
		"generated_at": now.Format(time.RFC3339),
		"score":        w.rng.Float64(),
		"status":       statuses[w.rng.Intn(len(statuses))],
		"expiration":   now.AddDate(0, 0, 30).Format(time.RFC3339),
		"model_used":   w.Model,
	}

	if dataProduct == "customer_360" {
		riskLevels := []string{"low", "medium", "high"}
		methods := []string{"document", "biometric", "two-factor"}
		payload["kyc_status"] = "verified"
		payload["risk_level"] = riskLevels[w.rng.Intn(len(riskLevels))]
		payload["verification_method"] = methods[w.rng.Intn(len(methods))]
	}

	return payload
}

func (w *Writer) writeJSON(name string, payload map[string]any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.Dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, payload map[string]any) error {
	f, err := os.Create(filepath.Join(w.Dir, name))
	if err != nil {
		return fmt.Errorf("failed to create CSV export: %w", err)
	}
	defer f.Close()

	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"field", "value"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, k := range keys {
		if err := cw.Write([]string{k, fmt.Sprint(payload[k])}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
