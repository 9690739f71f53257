package pipeline

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentbank/foundry/internal/core/certify"
	"github.com/agentbank/foundry/internal/core/mapping"
)

func newTestPipeline() *Pipeline {
	mapper := mapping.NewMapper(nil, "map %s to %s", "phi3:mini")
	certifier := certify.NewCertifier(rand.New(rand.NewSource(1)))
	return New(mapper, certifier)
}

func TestProcessCustomer(t *testing.T) {
	result, err := newTestPipeline().ProcessCustomer(context.Background(), "customer_360", "CUST_10001")

	assert.NoError(t, err)
	assert.Equal(t, "success", result.IngestionReport.Status)
	assert.Equal(t, 1, result.IngestionReport.RecordsProcessed)
	assert.NotEmpty(t, result.IngestionReport.Timestamp)
	assert.NotNil(t, result.CertificationReport)
	assert.Len(t, result.CertificationReport.Checks, 4)
	assert.Len(t, result.MappingReport.Mappings, len(mapping.SourceFields()))
}

func TestProcessCustomerMissingArguments(t *testing.T) {
	p := newTestPipeline()

	_, err := p.ProcessCustomer(context.Background(), "", "CUST_10001")
	assert.Error(t, err)

	_, err = p.ProcessCustomer(context.Background(), "customer_360", "")
	assert.Error(t, err)
}

func TestProcessCustomerUnknownProduct(t *testing.T) {
	_, err := newTestPipeline().ProcessCustomer(context.Background(), "crypto_trading", "CUST_10001")
	assert.Error(t, err)
}
