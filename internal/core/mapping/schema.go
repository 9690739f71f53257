package mapping

// Source fields exported by the synthetic core-banking extract, and the
// target schema of each data product. The mapper asks the LLM to line these
// up; the counts below are what mapped_fields is measured against.

var sourceFields = []string{
	"cust_id",
	"full_name",
	"dob",
	"residential_addr",
	"phone_num",
	"email_addr",
	"acct_open_date",
	"acct_balance",
	"monthly_income",
	"employment_status",
	"txn_count_30d",
	"last_login_ts",
}

var targetSchemas = map[string]map[string]string{
	"customer_360": {
		"customer_id":   "unique customer identifier",
		"name":          "customer legal name",
		"date_of_birth": "date of birth for identity verification",
		"address":       "current residential address",
		"phone":         "primary contact number",
		"email":         "primary email address",
		"tenure_start":  "date the relationship began",
		"kyc_status":    "know-your-customer verification state",
		"risk_level":    "aggregated customer risk rating",
	},
	"loan_eligibility": {
		"customer_id":     "unique customer identifier",
		"income":          "verified monthly income",
		"employment":      "employment status",
		"current_balance": "balance across deposit accounts",
		"debt_ratio":      "debt to income ratio",
		"credit_score":    "bureau credit score",
	},
	"fraud_detection": {
		"customer_id":        "unique customer identifier",
		"transaction_volume": "transactions in the trailing 30 days",
		"last_activity":      "most recent authenticated session",
		"account_age":        "days since account opening",
		"alert_score":        "composite fraud alert score",
	},
	"churn_prediction": {
		"customer_id":   "unique customer identifier",
		"tenure":        "length of the customer relationship",
		"balance_trend": "balance trajectory over recent months",
		"engagement":    "login and transaction frequency",
		"churn_score":   "predicted probability of attrition",
	},
}

// SourceFields returns the source field list handed to the mapper.
func SourceFields() []string {
	out := make([]string, len(sourceFields))
	copy(out, sourceFields)
	return out
}

// TargetSchema returns the schema for a data product, or false for an unknown
// product.
func TargetSchema(dataProduct string) (map[string]string, bool) {
	schema, ok := targetSchemas[dataProduct]
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(schema))
	for k, v := range schema {
		out[k] = v
	}
	return out, true
}
