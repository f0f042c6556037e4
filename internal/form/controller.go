// Package form owns the registration form state: the current record, its
// derived validation result, and the submit lifecycle.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/signup/internal/account"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/pubsub"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/tracing"
)

var (
	// ErrSubmitInFlight is returned by Begin while a submission is pending.
	ErrSubmitInFlight = errors.New("submission already in progress")
	// ErrInvalid is matched by *InvalidError.
	ErrInvalid = errors.New("registration is invalid")
	// ErrNotSubmitting is returned by Finish when no submission is pending.
	ErrNotSubmitting = errors.New("no submission in progress")
)

// InvalidError carries the validation result that blocked a submit.
type InvalidError struct {
	Result registration.Result
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("registration is invalid: %d field(s) failed", len(e.Result))
}

// Is matches ErrInvalid.
func (e *InvalidError) Is(target error) bool {
	return target == ErrInvalid
}

// State is the controller's lifecycle state.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	// StateDone is passed through on success before the form resets.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithValidator sets the validator used to derive results.
func WithValidator(v *registration.Validator) Option {
	return func(c *Controller) {
		c.validator = v
	}
}

// WithTracer sets the tracer for form.submit spans.
func WithTracer(t trace.Tracer) Option {
	return func(c *Controller) {
		c.tracer = t
	}
}

// Controller holds the form record and drives submission. It is safe for
// concurrent use; Bubble Tea commands call it from their own goroutines.
type Controller struct {
	mu        sync.Mutex
	validator *registration.Validator
	tracer    trace.Tracer
	input     registration.Input
	result    registration.Result
	state     State
	attempted bool

	broker *pubsub.Broker[Event]
}

// NewController returns a controller holding the empty form.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		broker: pubsub.NewBroker[Event](),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.validator == nil {
		c.validator = registration.NewValidator(nil)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracing.ServiceName)
	}
	c.result = c.validator.Validate(c.input)
	return c
}

// Set assigns a textual value to one field and revalidates.
func (c *Controller) Set(field registration.Field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.input.Set(field, value); err != nil {
		return err
	}
	c.revalidate()
	return nil
}

// SetTerms records the terms checkbox.
func (c *Controller) SetTerms(accepted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input.Terms = accepted
	c.revalidate()
}

// SetGender records the gender selection.
func (c *Controller) SetGender(g registration.Gender) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input.Gender = g
	c.revalidate()
}

// SetValidator swaps the validator, e.g. after a locale change.
func (c *Controller) SetValidator(v *registration.Validator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.validator = v
	c.revalidate()
}

func (c *Controller) revalidate() {
	c.result = c.validator.Validate(c.input)
}

// Input returns a copy of the current record.
func (c *Controller) Input() registration.Input {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// Result returns a copy of the current validation result.
func (c *Controller) Result() registration.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneResult(c.result)
}

// State returns the lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submitting reports whether a submission is pending.
func (c *Controller) Submitting() bool {
	return c.State() == StateSubmitting
}

// Attempted reports whether submit was tried since the form was last reset.
func (c *Controller) Attempted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempted
}

// Strength returns the advisory strength of the current password.
func (c *Controller) Strength() registration.Strength {
	c.mu.Lock()
	defer c.mu.Unlock()
	return registration.PasswordStrength(c.input.Password)
}

// Begin starts a submission. It fails with ErrSubmitInFlight when one is
// pending and with an *InvalidError when the record does not validate.
// On success it returns the record to hand to the collaborator.
func (c *Controller) Begin() (registration.Input, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		log.Debug(log.CatForm, "submit ignored, already in flight")
		return registration.Input{}, ErrSubmitInFlight
	}
	c.attempted = true
	if !c.result.Valid() {
		result := cloneResult(c.result)
		c.mu.Unlock()
		log.Debug(log.CatForm, "submit blocked by validation", "fields", result.Fields())
		return registration.Input{}, &InvalidError{Result: result}
	}
	c.state = StateSubmitting
	snapshot := c.input
	c.mu.Unlock()

	log.Info(log.CatForm, "submit started", "email", snapshot.Email)
	c.broker.Publish(SubmitStartedEvent, Event{Input: snapshot.Redacted()})
	return snapshot, nil
}

// Finish completes the pending submission. On success the form is cleared;
// on failure the values stay so the user can retry.
func (c *Controller) Finish(receipt account.Receipt, err error) error {
	c.mu.Lock()
	if c.state != StateSubmitting {
		c.mu.Unlock()
		return ErrNotSubmitting
	}

	if err != nil {
		c.state = StateEditing
		snapshot := c.input
		c.mu.Unlock()

		log.ErrorErr(log.CatForm, "submit failed", err, "email", snapshot.Email)
		c.broker.Publish(SubmitFailedEvent, Event{Input: snapshot.Redacted(), Err: err})
		return nil
	}

	c.state = StateDone
	snapshot := c.input
	c.input = registration.Input{}
	c.attempted = false
	c.revalidate()
	c.state = StateEditing
	c.mu.Unlock()

	log.Info(log.CatForm, "registered", "id", receipt.ID)
	c.broker.Publish(RegisteredEvent, Event{Input: snapshot.Redacted(), Receipt: receipt})
	return nil
}

// Submit runs Begin, the collaborator call, and Finish in one go. It returns
// the Begin error or the collaborator's error.
func (c *Controller) Submit(ctx context.Context, creator account.Creator) (account.Receipt, error) {
	ctx, span := c.startSubmitSpan(ctx)
	defer span.End()

	in, err := c.Begin()
	if err != nil {
		var invalid *InvalidError
		if errors.As(err, &invalid) {
			span.SetAttributes(attribute.Int(tracing.AttrFormInvalidFields, len(invalid.Result)))
		}
		span.SetStatus(codes.Error, err.Error())
		return account.Receipt{}, err
	}
	return c.create(ctx, span, creator, in)
}

// Complete hands a record returned by Begin to creator and finishes the
// submission with the outcome. Callers that must claim the submission
// synchronously run Begin themselves and Complete later.
func (c *Controller) Complete(ctx context.Context, creator account.Creator, in registration.Input) (account.Receipt, error) {
	ctx, span := c.startSubmitSpan(ctx)
	defer span.End()

	if !c.Submitting() {
		span.SetStatus(codes.Error, ErrNotSubmitting.Error())
		return account.Receipt{}, ErrNotSubmitting
	}
	return c.create(ctx, span, creator, in)
}

func (c *Controller) startSubmitSpan(ctx context.Context) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, tracing.SpanFormSubmit,
		trace.WithAttributes(attribute.Int(tracing.AttrFormFieldCount, len(registration.Fields))),
	)
}

func (c *Controller) create(ctx context.Context, span trace.Span, creator account.Creator, in registration.Input) (account.Receipt, error) {
	receipt, createErr := creator.Create(ctx, in)
	if finishErr := c.Finish(receipt, createErr); finishErr != nil {
		span.SetStatus(codes.Error, finishErr.Error())
		return account.Receipt{}, finishErr
	}
	if createErr != nil {
		span.RecordError(createErr)
		span.SetStatus(codes.Error, createErr.Error())
		return account.Receipt{}, createErr
	}
	span.SetAttributes(attribute.String(tracing.AttrAccountID, receipt.ID))
	span.SetStatus(codes.Ok, "")
	return receipt, nil
}

// Subscribe returns a channel of lifecycle events for the lifetime of ctx.
func (c *Controller) Subscribe(ctx context.Context) <-chan pubsub.Event[Event] {
	return c.broker.Subscribe(ctx)
}

// Close stops event delivery.
func (c *Controller) Close() {
	c.broker.Close()
}

func cloneResult(r registration.Result) registration.Result {
	out := make(registration.Result, len(r))
	for f, e := range r {
		out[f] = e
	}
	return out
}
