// Package generate is the data product designer: it fabricates synthetic
// customer populations for a data product so the downstream mapping and
// certification stages have something to chew on.
package generate

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

type Dataset struct {
	DataProduct      string   `json:"data_product"`
	RecordsGenerated int      `json:"records_generated"`
	CustomerIDs      []string `json:"customer_ids"`
	Timestamp        string   `json:"timestamp"`
}

type Designer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewDesigner(rng *rand.Rand) *Designer {
	return &Designer{rng: rng}
}

// Generate produces sampleSize synthetic customer IDs for the data product.
// IDs follow the CUST_##### convention used across the demo.
func (d *Designer) Generate(dataProduct string, sampleSize int) (Dataset, error) {
	if dataProduct == "" {
		return Dataset{}, fmt.Errorf("no data product specified")
	}
	if sampleSize < 0 {
		return Dataset{}, fmt.Errorf("sample size must not be negative")
	}

	d.mu.Lock()
	ids := make([]string, 0, sampleSize)
	for i := 0; i < sampleSize; i++ {
		ids = append(ids, fmt.Sprintf("CUST_%05d", 10000+d.rng.Intn(90000)))
	}
	d.mu.Unlock()

	return Dataset{
		DataProduct:      dataProduct,
		RecordsGenerated: len(ids),
		CustomerIDs:      ids,
		Timestamp:        time.Now().Format(time.RFC3339),
	}, nil
}
