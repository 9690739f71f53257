package interpret

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func newTestInterpreter(mock *MockLLMClient) *Interpreter {
	rng := rand.New(rand.NewSource(1))
	if mock == nil {
		return NewInterpreter(nil, "prompt %s", "gemma:2b", rng)
	}
	return NewInterpreter(mock, "prompt %s", "gemma:2b", rng)
}

func TestBusinessRulePrecedesLLM(t *testing.T) {
	mock := &MockLLMClient{Response: `{"data_product": "churn_prediction", "confidence": 0.5, "reasoning": "wrong"}`}
	interp := newTestInterpreter(mock)

	result := interp.Interpret(context.Background(), "We need fraud detection for transactions")

	assert.Equal(t, "fraud_detection", result.DataProduct)
	assert.Equal(t, 0.90, result.Confidence)
	assert.Equal(t, "business_rule", result.UsedLLM)
	assert.Empty(t, mock.Prompts, "rule match must not invoke the LLM")
}

func TestLLMInterpretationParsed(t *testing.T) {
	mock := &MockLLMClient{Response: "Here you go:\n```json\n{\"data_product\": \"churn_prediction\", \"confidence\": 0.82, \"reasoning\": \"attrition signals\"}\n```"}
	interp := newTestInterpreter(mock)

	result := interp.Interpret(context.Background(), "customers leaving after onboarding issues")

	assert.Equal(t, "churn_prediction", result.DataProduct)
	assert.Equal(t, 0.82, result.Confidence)
	assert.Equal(t, "gemma:2b", result.UsedLLM)
	assert.Len(t, mock.Prompts, 1)
}

func TestKYCOverridesLLMAnswer(t *testing.T) {
	mock := &MockLLMClient{Response: `{"data_product": "fraud_detection", "confidence": 0.6, "reasoning": "model got it wrong"}`}
	interp := newTestInterpreter(mock)

	// "know your customer" is not a business-rule keyword, so this reaches
	// the LLM and gets post-corrected.
	result := interp.Interpret(context.Background(), "verify identity per know your customer requirements")

	assert.Equal(t, "customer_360", result.DataProduct)
	assert.Equal(t, 0.95, result.Confidence)
}

func TestLLMErrorFallsBackToSynthetic(t *testing.T) {
	mock := &MockLLMClient{Err: errors.New("connection refused")}
	interp := newTestInterpreter(mock)

	result := interp.Interpret(context.Background(), "portfolio rebalancing insights")

	assert.Equal(t, "error_fallback", result.UsedLLM)
	assert.Contains(t, DataProducts, result.DataProduct)
	assert.GreaterOrEqual(t, result.Confidence, 0.7)
	assert.LessOrEqual(t, result.Confidence, 0.95)
}

func TestMalformedLLMResponseFallsBack(t *testing.T) {
	mock := &MockLLMClient{Response: "I am not sure what you mean."}
	interp := newTestInterpreter(mock)

	result := interp.Interpret(context.Background(), "savings account growth analysis")

	assert.Equal(t, "error_fallback", result.UsedLLM)
	assert.Contains(t, DataProducts, result.DataProduct)
}

func TestMockModeWithoutLLM(t *testing.T) {
	interp := NewInterpreter(nil, "prompt %s", "gemma:2b", rand.New(rand.NewSource(1)))

	result := interp.Interpret(context.Background(), "wire transfer monitoring")

	assert.Equal(t, "mock", result.UsedLLM)
	assert.Contains(t, DataProducts, result.DataProduct)
}

func TestSyntheticSnippetKeepsRunesIntact(t *testing.T) {
	interp := newTestInterpreter(nil)
	useCase := "Überprüfung der Identität für neue Privatkundenkonten"

	result := interp.Interpret(context.Background(), useCase)

	assert.True(t, utf8.ValidString(result.Reasoning))
	assert.Contains(t, result.Reasoning, string([]rune(useCase)[:30])+"...")
}

func TestMatchRuleOrder(t *testing.T) {
	// kyc is checked before fraud; text mentioning both resolves to
	// customer_360.
	result, ok := MatchRule("KYC checks to prevent fraud")

	assert.True(t, ok)
	assert.Equal(t, "customer_360", result.DataProduct)
}
