// Package validate gates free-text use cases before they reach the
// interpretation endpoint. The check is a case-folded substring scan against a
// fixed banking vocabulary: cheap, permissive, and deliberately not
// word-boundary aware.
package validate

import "strings"

var bankingKeywords = []string{
	"account",
	"aml",
	"atm",
	"attrition",
	"balance",
	"bank",
	"banking",
	"branch",
	"card",
	"chargeback",
	"checking",
	"churn",
	"compliance",
	"credit card",
	"credit score",
	"customer",
	"debit card",
	"deposit",
	"fico",
	"fraud",
	"identity verification",
	"interest rate",
	"know your customer",
	"kyc",
	"lending",
	"loan",
	"money laundering",
	"mortgage",
	"onboarding",
	"overdraft",
	"payment",
	"portfolio",
	"retention",
	"risk",
	"savings",
	"suspicious activity",
	"transaction",
	"underwriting",
	"wire transfer",
	"withdrawal",
}

// UseCase reports whether the text mentions at least one banking keyword.
// Empty or whitespace-only input matches nothing and returns false.
func UseCase(text string) bool {
	lowered := strings.ToLower(text)
	for _, kw := range bankingKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Keywords returns the accepted vocabulary, for display when input is
// rejected.
func Keywords() []string {
	out := make([]string, len(bankingKeywords))
	copy(out, bankingKeywords)
	return out
}
