package mapping

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/agentbank/foundry/internal/core/common"
	"github.com/agentbank/foundry/internal/llm"
)

// Report summarizes one mapping pass. Mappings holds source field to target
// field; an empty value means the field found no home in the target schema.
type Report struct {
	MappedFields      int               `json:"mapped_fields"`
	MappingConfidence float64           `json:"mapping_confidence"`
	UsedLLM           string            `json:"used_llm,omitempty"`
	Mappings          map[string]string `json:"mappings,omitempty"`
}

// Mapper suggests source-to-target field mappings for a data product. A nil
// LLM client (or a failed call) falls back to exact name matching.
type Mapper struct {
	LLM    llm.LLMClient
	Prompt string
	Model  string
}

func NewMapper(client llm.LLMClient, prompt string, model string) *Mapper {
	return &Mapper{
		LLM:    client,
		Prompt: prompt,
		Model:  model,
	}
}

// MapSourceToTarget maps the synthetic source extract onto the data product's
// schema and scores the result by coverage.
func (m *Mapper) MapSourceToTarget(ctx context.Context, dataProduct string, customerID string) (Report, error) {
	if customerID == "" {
		return Report{}, fmt.Errorf("no customer specified")
	}
	schema, ok := TargetSchema(dataProduct)
	if !ok {
		return Report{}, fmt.Errorf("unknown data product: %s", dataProduct)
	}

	mappings, usedLLM := m.mapFields(ctx, SourceFields(), schema)

	mapped := 0
	for _, target := range mappings {
		if target != "" {
			mapped++
		}
	}

	return Report{
		MappedFields:      mapped,
		MappingConfidence: float64(mapped) / float64(len(mappings)),
		UsedLLM:           usedLLM,
		Mappings:          mappings,
	}, nil
}

func (m *Mapper) mapFields(ctx context.Context, fields []string, schema map[string]string) (map[string]string, string) {
	if m.LLM == nil {
		return simpleMatch(fields, schema), "fallback"
	}

	mappings, err := m.fromLLM(ctx, fields, schema)
	if err != nil {
		log.Printf("LLM field mapping failed: %v", err)
		return simpleMatch(fields, schema), "fallback"
	}
	return mappings, m.Model
}

func (m *Mapper) fromLLM(ctx context.Context, fields []string, schema map[string]string) (map[string]string, error) {
	var sourceList strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&sourceList, "- %s\n", f)
	}

	targetNames := make([]string, 0, len(schema))
	for name := range schema {
		targetNames = append(targetNames, name)
	}
	sort.Strings(targetNames)
	var targetList strings.Builder
	for _, name := range targetNames {
		fmt.Fprintf(&targetList, "- %s: %s\n", name, schema[name])
	}

	prompt := fmt.Sprintf(m.Prompt, sourceList.String(), targetList.String())

	response, err := m.LLM.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mappings: %w", err)
	}

	mappings, err := common.ParseJSON[map[string]string](response)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mappings: %w", err)
	}

	// Every source field must appear; absent or hallucinated targets become
	// unmapped.
	for _, f := range fields {
		target, ok := mappings[f]
		if !ok {
			mappings[f] = ""
			continue
		}
		if _, valid := schema[target]; target != "" && !valid {
			log.Printf("Dropping hallucinated mapping %s -> %s", f, target)
			mappings[f] = ""
		}
	}
	for key := range mappings {
		if !contains(fields, key) {
			delete(mappings, key)
		}
	}

	return mappings, nil
}

func simpleMatch(fields []string, schema map[string]string) map[string]string {
	mappings := make(map[string]string, len(fields))
	for _, f := range fields {
		if _, ok := schema[f]; ok {
			mappings[f] = f
		} else {
			mappings[f] = ""
		}
	}
	return mappings
}

func contains(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
