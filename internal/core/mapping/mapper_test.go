package mapping

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapSourceToTargetWithLLM(t *testing.T) {
	mock := &MockLLMClient{Response: `{
		"cust_id": "customer_id",
		"full_name": "name",
		"dob": "date_of_birth",
		"residential_addr": "address",
		"phone_num": "phone",
		"email_addr": "email",
		"acct_open_date": "tenure_start",
		"acct_balance": null,
		"monthly_income": null,
		"employment_status": null,
		"txn_count_30d": null,
		"last_login_ts": null
	}`}
	mapper := NewMapper(mock, "map %s to %s", "phi3:mini")

	report, err := mapper.MapSourceToTarget(context.Background(), "customer_360", "CUST_00001")

	assert.NoError(t, err)
	assert.Equal(t, 7, report.MappedFields)
	assert.InDelta(t, 7.0/12.0, report.MappingConfidence, 1e-9)
	assert.Equal(t, "phi3:mini", report.UsedLLM)
	assert.Equal(t, "customer_id", report.Mappings["cust_id"])
	assert.Equal(t, "", report.Mappings["acct_balance"])
	assert.Len(t, mock.Prompts, 1)
}

func TestMapSourceToTargetBackfillsMissingFields(t *testing.T) {
	// The model only answered for one field; the rest must still appear,
	// unmapped.
	mock := &MockLLMClient{Response: `{"cust_id": "customer_id"}`}
	mapper := NewMapper(mock, "map %s to %s", "phi3:mini")

	report, err := mapper.MapSourceToTarget(context.Background(), "fraud_detection", "CUST_00002")

	assert.NoError(t, err)
	assert.Len(t, report.Mappings, len(SourceFields()))
	assert.Equal(t, 1, report.MappedFields)
}

func TestMapSourceToTargetDropsHallucinatedTargets(t *testing.T) {
	mock := &MockLLMClient{Response: `{"cust_id": "customer_id", "dob": "no_such_field"}`}
	mapper := NewMapper(mock, "map %s to %s", "phi3:mini")

	report, err := mapper.MapSourceToTarget(context.Background(), "churn_prediction", "CUST_00003")

	assert.NoError(t, err)
	assert.Equal(t, "", report.Mappings["dob"])
	assert.Equal(t, 1, report.MappedFields)
}

func TestMapSourceToTargetFallbackOnLLMError(t *testing.T) {
	mock := &MockLLMClient{Err: errors.New("timeout")}
	mapper := NewMapper(mock, "map %s to %s", "phi3:mini")

	report, err := mapper.MapSourceToTarget(context.Background(), "loan_eligibility", "CUST_00004")

	assert.NoError(t, err)
	assert.Equal(t, "fallback", report.UsedLLM)
	// None of the synthetic source names collide with target names, so exact
	// matching maps nothing.
	assert.Equal(t, 0, report.MappedFields)
}

func TestMapSourceToTargetWithoutLLM(t *testing.T) {
	mapper := NewMapper(nil, "map %s to %s", "phi3:mini")

	report, err := mapper.MapSourceToTarget(context.Background(), "customer_360", "CUST_00005")

	assert.NoError(t, err)
	assert.Equal(t, "fallback", report.UsedLLM)
}

func TestMapSourceToTargetUnknownProduct(t *testing.T) {
	mapper := NewMapper(nil, "map %s to %s", "phi3:mini")

	_, err := mapper.MapSourceToTarget(context.Background(), "crypto_trading", "CUST_00006")

	assert.Error(t, err)
}

func TestMapSourceToTargetRequiresCustomer(t *testing.T) {
	mapper := NewMapper(nil, "map %s to %s", "phi3:mini")

	_, err := mapper.MapSourceToTarget(context.Background(), "customer_360", "")

	assert.Error(t, err)
}
