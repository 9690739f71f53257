package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

const modelCacheTTL = 60 * time.Second

// OllamaProber checks which models a local Ollama daemon has pulled. The chat
// traffic itself goes through the OpenAI-compatible endpoint; that surface has
// no equivalent of /api/tags, so availability checks talk to Ollama directly.
type OllamaProber struct {
	baseURL string
	http    *http.Client

	mu      sync.Mutex
	models  []string
	fetched time.Time
}

func NewOllamaProber(baseURL string) *OllamaProber {
	return &OllamaProber{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Models returns the cached model list, refreshing it when older than a
// minute. A daemon that cannot be reached yields an empty list, not an error;
// the demo keeps running in mock mode without Ollama.
func (p *OllamaProber) Models() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.models == nil || time.Since(p.fetched) > modelCacheTTL {
		p.models = p.fetchModels()
		p.fetched = time.Now()
	}
	return p.models
}

// Available reports whether the named model is pulled. Tag formatting differs
// across Ollama versions (gemma:2b vs gemma2-2b), so after an exact-name miss
// it retries with colons and dashes stripped and case folded. An empty name
// asks whether any model is present at all.
func (p *OllamaProber) Available(model string) bool {
	models := p.Models()
	if model == "" {
		return len(models) > 0
	}

	for _, m := range models {
		if m == model {
			return true
		}
	}
	want := normalizeModelName(model)
	for _, m := range models {
		if normalizeModelName(m) == want {
			return true
		}
	}
	return false
}

func (p *OllamaProber) fetchModels() []string {
	resp, err := p.http.Get(fmt.Sprintf("%s/api/tags", p.baseURL))
	if err != nil {
		return []string{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []string{}
	}

	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		return []string{}
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names
}

func normalizeModelName(name string) string {
	name = strings.ReplaceAll(name, ":", "")
	name = strings.ReplaceAll(name, "-", "")
	return strings.ToLower(name)
}
