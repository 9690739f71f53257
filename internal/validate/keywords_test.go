package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUseCaseAcceptsBankingText(t *testing.T) {
	cases := []string{
		"We need fraud detection for transactions",
		"KYC verification for new clients",
		"Customers keep churning after the first year",
		"MORTGAGE refinancing analysis",
		"detect suspicious activity on cards",
	}

	for _, text := range cases {
		assert.True(t, UseCase(text), "expected accept: %q", text)
	}
}

func TestUseCaseRejectsUnrelatedText(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"nice weather today",
		"recipe for sourdough bread",
	}

	for _, text := range cases {
		assert.False(t, UseCase(text), "expected reject: %q", text)
	}
}

// Matching is substring containment, not word boundaries. This is the
// documented policy, so pin it down.
func TestUseCaseMatchesSubstrings(t *testing.T) {
	assert.True(t, UseCase("the riskiest option"))
	assert.True(t, UseCase("discard pile"))
}

func TestKeywordsReturnsCopy(t *testing.T) {
	kws := Keywords()
	assert.NotEmpty(t, kws)

	kws[0] = "mutated"
	assert.NotEqual(t, "mutated", Keywords()[0])
}
