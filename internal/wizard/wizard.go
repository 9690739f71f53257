// Package wizard drives the four-step analysis flow: interpret a use case,
// generate a synthetic dataset, process one customer, produce reports. Steps
// only ever move forward; a reset is the single way back to the start.
package wizard

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/agentbank/foundry/internal/client"
	"github.com/agentbank/foundry/internal/validate"
)

type Step int

const (
	StepInterpret Step = iota + 1
	StepGenerate
	StepProcess
	StepReport
)

func (s Step) String() string {
	switch s {
	case StepInterpret:
		return "interpret"
	case StepGenerate:
		return "generate"
	case StepProcess:
		return "process"
	case StepReport:
		return "report"
	}
	return "unknown"
}

var (
	ErrBusy           = errors.New("another operation is in flight")
	ErrClosed         = errors.New("wizard session is closed")
	ErrSessionReset   = errors.New("session was reset before the response arrived")
	ErrInvalidUseCase = errors.New("use case does not mention any recognized banking term")
	ErrStepOrder      = errors.New("operation is not available at the current step")
	ErrNoSelection    = errors.New("no customer selected")
)

// Gateway is the slice of the API client the controller needs. Health checks
// stay outside the flow.
type Gateway interface {
	InterpretUseCase(ctx context.Context, useCase string) (client.Interpretation, error)
	GenerateData(ctx context.Context, dataProduct string, sampleSize int) (client.Dataset, error)
	ProcessCustomer(ctx context.Context, dataProduct string, customerID string) (client.ProcessingResult, error)
	GenerateReports(ctx context.Context, dataProduct string, customerID string) (client.ReportLinks, error)
}

var _ Gateway = (*client.Gateway)(nil)

// State is a point-in-time copy of everything the session has accumulated.
type State struct {
	Step               Step
	UseCaseText        string
	Interpretation     *client.Interpretation
	Dataset            *client.Dataset
	SelectedCustomerID string
	Processing         *client.ProcessingResult
	Reports            *client.ReportLinks
}

// Controller owns one wizard session. All mutation happens here, in response
// to calls the controller itself issued. A single in-flight flag gates the
// four remote operations; results are applied only if the session epoch still
// matches the one captured when the call went out, so responses that land
// after a reset or close are discarded instead of mutating a torn-down state.
type Controller struct {
	gw         Gateway
	sampleSize int

	mu       sync.Mutex
	inFlight bool
	epoch    uint64
	closed   bool

	step           Step
	useCaseText    string
	interpretation *client.Interpretation
	dataset        *client.Dataset
	selected       string
	processing     *client.ProcessingResult
	reports        *client.ReportLinks
}

func NewController(gw Gateway, sampleSize int) *Controller {
	if sampleSize <= 0 {
		sampleSize = 10
	}
	return &Controller{
		gw:         gw,
		sampleSize: sampleSize,
		step:       StepInterpret,
	}
}

// Interpret validates the use case text locally and, if it passes the keyword
// gate, submits it for interpretation. Success advances the session to the
// generate step. A validation rejection blocks without consuming the
// in-flight gate; the caller can edit the text and retry.
func (c *Controller) Interpret(ctx context.Context, text string) (client.Interpretation, error) {
	text = strings.TrimSpace(text)

	c.mu.Lock()
	if err := c.ready(StepInterpret); err != nil {
		c.mu.Unlock()
		return client.Interpretation{}, err
	}
	if !validate.UseCase(text) {
		c.mu.Unlock()
		return client.Interpretation{}, ErrInvalidUseCase
	}
	if c.inFlight {
		c.mu.Unlock()
		return client.Interpretation{}, ErrBusy
	}
	c.inFlight = true
	epoch := c.epoch
	c.mu.Unlock()

	res, err := c.gw.InterpretUseCase(ctx, text)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return client.Interpretation{}, ErrSessionReset
	}
	c.inFlight = false
	if err != nil {
		return client.Interpretation{}, err
	}

	c.useCaseText = text
	c.interpretation = &res
	c.step = StepGenerate
	return res, nil
}

// Generate requests a synthetic dataset for the interpreted data product.
// The first returned customer ID becomes the default selection; an empty
// dataset leaves the selection empty and Process blocked. The step counter
// stays at generate so the caller can pick a different customer first.
func (c *Controller) Generate(ctx context.Context) (client.Dataset, error) {
	c.mu.Lock()
	if err := c.ready(StepGenerate); err != nil {
		c.mu.Unlock()
		return client.Dataset{}, err
	}
	if c.inFlight {
		c.mu.Unlock()
		return client.Dataset{}, ErrBusy
	}
	c.inFlight = true
	epoch := c.epoch
	dataProduct := c.interpretation.DataProduct
	c.mu.Unlock()

	res, err := c.gw.GenerateData(ctx, dataProduct, c.sampleSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return client.Dataset{}, ErrSessionReset
	}
	c.inFlight = false
	if err != nil {
		return client.Dataset{}, err
	}

	c.dataset = &res
	if len(res.CustomerIDs) > 0 {
		c.selected = res.CustomerIDs[0]
	} else {
		c.selected = ""
	}
	return res, nil
}

// Select replaces the default customer selection. The ID must belong to the
// generated dataset.
func (c *Controller) Select(customerID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ready(StepGenerate); err != nil {
		return err
	}
	if c.dataset == nil {
		return ErrStepOrder
	}
	for _, id := range c.dataset.CustomerIDs {
		if id == customerID {
			c.selected = customerID
			return nil
		}
	}
	return errors.New("customer is not part of the generated dataset")
}

// Process runs the selected customer through the pipeline and advances to the
// process step on success.
func (c *Controller) Process(ctx context.Context) (client.ProcessingResult, error) {
	c.mu.Lock()
	if err := c.ready(StepGenerate); err != nil {
		c.mu.Unlock()
		return client.ProcessingResult{}, err
	}
	if c.dataset == nil {
		c.mu.Unlock()
		return client.ProcessingResult{}, ErrStepOrder
	}
	if c.selected == "" {
		c.mu.Unlock()
		return client.ProcessingResult{}, ErrNoSelection
	}
	if c.inFlight {
		c.mu.Unlock()
		return client.ProcessingResult{}, ErrBusy
	}
	c.inFlight = true
	epoch := c.epoch
	dataProduct := c.interpretation.DataProduct
	customerID := c.selected
	c.mu.Unlock()

	res, err := c.gw.ProcessCustomer(ctx, dataProduct, customerID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return client.ProcessingResult{}, ErrSessionReset
	}
	c.inFlight = false
	if err != nil {
		return client.ProcessingResult{}, err
	}

	c.processing = &res
	c.step = StepProcess
	return res, nil
}

// Report generates the downloadable reports for the processed customer and
// moves the session to its resting step.
func (c *Controller) Report(ctx context.Context) (client.ReportLinks, error) {
	c.mu.Lock()
	if err := c.ready(StepProcess); err != nil {
		c.mu.Unlock()
		return client.ReportLinks{}, err
	}
	if c.inFlight {
		c.mu.Unlock()
		return client.ReportLinks{}, ErrBusy
	}
	c.inFlight = true
	epoch := c.epoch
	dataProduct := c.interpretation.DataProduct
	customerID := c.selected
	c.mu.Unlock()

	res, err := c.gw.GenerateReports(ctx, dataProduct, customerID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if epoch != c.epoch {
		return client.ReportLinks{}, ErrSessionReset
	}
	c.inFlight = false
	if err != nil {
		return client.ReportLinks{}, err
	}

	c.reports = &res
	c.step = StepReport
	return res, nil
}

// Reset starts a new analysis: every accumulated entity is cleared and the
// step counter returns to interpret. The epoch bump invalidates any response
// still on the wire.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.inFlight = false
	c.step = StepInterpret
	c.useCaseText = ""
	c.interpretation = nil
	c.dataset = nil
	c.selected = ""
	c.processing = nil
	c.reports = nil
}

// Close ends the session. Any in-flight call runs to completion but its
// result is discarded.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.epoch++
	c.inFlight = false
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{
		Step:               c.step,
		UseCaseText:        c.useCaseText,
		SelectedCustomerID: c.selected,
	}
	if c.interpretation != nil {
		v := *c.interpretation
		s.Interpretation = &v
	}
	if c.dataset != nil {
		v := *c.dataset
		s.Dataset = &v
	}
	if c.processing != nil {
		v := *c.processing
		s.Processing = &v
	}
	if c.reports != nil {
		v := *c.reports
		s.Reports = &v
	}
	return s
}

// ready is called with the lock held.
func (c *Controller) ready(step Step) error {
	if c.closed {
		return ErrClosed
	}
	if c.step != step {
		return ErrStepOrder
	}
	return nil
}
