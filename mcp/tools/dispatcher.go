package tools

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mwiater/mealdb/internal/logging"
	"github.com/mwiater/mealdb/internal/mealdb"
)

// Dispatcher routes tool calls to their handlers and is the error boundary:
// Call always returns a Result, never an error.
type Dispatcher struct {
	registry *Registry
	fetcher  mealdb.Fetcher
}

// NewDispatcher builds a dispatcher over the standard registry.
func NewDispatcher(fetcher mealdb.Fetcher) *Dispatcher {
	return &Dispatcher{registry: NewRegistry(), fetcher: fetcher}
}

// ListTools returns the tool definitions for discovery.
func (d *Dispatcher) ListTools() []Definition {
	return d.registry.Definitions()
}

// Call validates, fetches, and reshapes one tool invocation.
func (d *Dispatcher) Call(ctx context.Context, req CallRequest) (result Result) {
	callID := uuid.NewString()
	logging.LogRequest("in", req.Name, callID, req.Arguments)
	defer func() {
		if r := recover(); r != nil {
			result = errorResult(fmt.Errorf("tool %s failed: %v", req.Name, r))
		}
		logging.LogRequest("out", req.Name, callID, result)
	}()

	outcome, err := d.run(ctx, req)
	if err != nil {
		logging.LogDebug("tool %s call=%s failed: %v", req.Name, callID, err)
		return errorResult(err)
	}
	return Result{Content: []ContentPart{{Type: "text", Text: outcome.Text}}, NotFound: outcome.NotFound}
}

func (d *Dispatcher) run(ctx context.Context, req CallRequest) (Outcome, error) {
	e, ok := d.registry.lookup(req.Name)
	if !ok {
		return Outcome{}, &UnknownToolError{Name: req.Name}
	}
	args, err := validateArguments(e, req.Arguments)
	if err != nil {
		return Outcome{}, err
	}
	return e.handler(ctx, d.fetcher, args)
}

func errorResult(err error) Result {
	return Result{
		Content: []ContentPart{{Type: "text", Text: ErrorText(err)}},
		IsError: true,
	}
}
