package wizard

import (
	"context"

	"github.com/agentbank/foundry/internal/client"
)

// MockGateway is a canned-response Gateway. When Entered and Release are set,
// InterpretUseCase blocks between them so tests can observe the in-flight
// window.
type MockGateway struct {
	Interpretation client.Interpretation
	InterpretErr   error
	InterpretCalls int

	Dataset       client.Dataset
	GenerateErr   error
	GenerateCalls int

	Processing   client.ProcessingResult
	ProcessErr   error
	ProcessCalls int

	Links       client.ReportLinks
	ReportErr   error
	ReportCalls int

	Entered chan struct{}
	Release chan struct{}
}

func (m *MockGateway) InterpretUseCase(ctx context.Context, useCase string) (client.Interpretation, error) {
	m.InterpretCalls++
	if m.Entered != nil {
		m.Entered <- struct{}{}
		<-m.Release
	}
	if m.InterpretErr != nil {
		return client.Interpretation{}, m.InterpretErr
	}
	return m.Interpretation, nil
}

func (m *MockGateway) GenerateData(ctx context.Context, dataProduct string, sampleSize int) (client.Dataset, error) {
	m.GenerateCalls++
	if m.GenerateErr != nil {
		return client.Dataset{}, m.GenerateErr
	}
	return m.Dataset, nil
}

func (m *MockGateway) ProcessCustomer(ctx context.Context, dataProduct string, customerID string) (client.ProcessingResult, error) {
	m.ProcessCalls++
	if m.ProcessErr != nil {
		return client.ProcessingResult{}, m.ProcessErr
	}
	return m.Processing, nil
}

func (m *MockGateway) GenerateReports(ctx context.Context, dataProduct string, customerID string) (client.ReportLinks, error) {
	m.ReportCalls++
	if m.ReportErr != nil {
		return client.ReportLinks{}, m.ReportErr
	}
	return m.Links, nil
}
