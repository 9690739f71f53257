package generate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestDesigner() *Designer {
	return NewDesigner(rand.New(rand.NewSource(1)))
}

func TestGenerateDataset(t *testing.T) {
	dataset, err := newTestDesigner().Generate("fraud_detection", 25)

	assert.NoError(t, err)
	assert.Equal(t, "fraud_detection", dataset.DataProduct)
	assert.Equal(t, 25, dataset.RecordsGenerated)
	assert.Len(t, dataset.CustomerIDs, 25)
	assert.NotEmpty(t, dataset.Timestamp)
	for _, id := range dataset.CustomerIDs {
		assert.Regexp(t, `^CUST_\d{5}$`, id)
	}
}

func TestGenerateRequiresProduct(t *testing.T) {
	_, err := newTestDesigner().Generate("", 10)
	assert.Error(t, err)
}

func TestGenerateRejectsNegativeSize(t *testing.T) {
	_, err := newTestDesigner().Generate("customer_360", -1)
	assert.Error(t, err)
}

func TestGenerateZeroSize(t *testing.T) {
	dataset, err := newTestDesigner().Generate("customer_360", 0)

	assert.NoError(t, err)
	assert.Equal(t, 0, dataset.RecordsGenerated)
	assert.Empty(t, dataset.CustomerIDs)
}
