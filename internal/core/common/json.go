package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseJSON unmarshals the JSON object embedded in an LLM response into T.
// Small local models wrap their answers in markdown fences or prose, so the
// text between the first '{' and the last '}' is what gets decoded.
func ParseJSON[T any](response string) (T, error) {
	var zero T

	start := strings.IndexByte(response, '{')
	if start == -1 {
		return zero, fmt.Errorf("no JSON object found in response (missing '{')")
	}
	end := strings.LastIndexByte(response, '}')
	if end < start {
		return zero, fmt.Errorf("no JSON object found in response (missing '}')")
	}
	jsonStr := response[start : end+1]

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w\nData: %s", err, jsonStr)
	}

	return result, nil
}
