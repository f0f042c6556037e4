package form

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/signup/internal/account"
	"github.com/zjrosen/signup/internal/pubsub"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/tracing"
)

func fillValid(t *testing.T, c *Controller) {
	t.Helper()
	values := map[registration.Field]string{
		registration.FieldName:            "Aung Aung",
		registration.FieldEmail:           "aung@example.com",
		registration.FieldPhone:           "0912345678",
		registration.FieldAge:             "25",
		registration.FieldPassword:        "Abcdef1",
		registration.FieldConfirmPassword: "Abcdef1",
	}
	for f, v := range values {
		require.NoError(t, c.Set(f, v))
	}
	c.SetGender(registration.GenderFemale)
	c.SetTerms(true)
}

// blockingCreator blocks every call until release is closed.
type blockingCreator struct {
	calls   atomic.Int32
	entered chan struct{}
	release chan struct{}
	err     error
}

func newBlockingCreator() *blockingCreator {
	return &blockingCreator{entered: make(chan struct{}, 8), release: make(chan struct{})}
}

func (b *blockingCreator) Create(ctx context.Context, in registration.Input) (account.Receipt, error) {
	b.calls.Add(1)
	b.entered <- struct{}{}
	select {
	case <-b.release:
	case <-ctx.Done():
		return account.Receipt{}, ctx.Err()
	}
	if b.err != nil {
		return account.Receipt{}, b.err
	}
	return account.Receipt{ID: "acc-1", Email: in.Email}, nil
}

func TestController_StartsEmptyAndInvalid(t *testing.T) {
	c := NewController()

	require.True(t, c.Input().IsZero())
	require.Equal(t, StateEditing, c.State())
	require.False(t, c.Result().Valid())
	require.False(t, c.Attempted())
	require.Equal(t, registration.StrengthNone, c.Strength())
}

func TestController_SetRevalidates(t *testing.T) {
	c := NewController()

	require.True(t, c.Result().Has(registration.FieldName))
	require.NoError(t, c.Set(registration.FieldName, "Aung Aung"))
	require.False(t, c.Result().Has(registration.FieldName))

	require.NoError(t, c.Set(registration.FieldPassword, "abc"))
	require.Equal(t, registration.StrengthWeak, c.Strength())
}

func TestController_SetRejectsBadValues(t *testing.T) {
	c := NewController()

	require.ErrorIs(t, c.Set(registration.Field(99), "x"), registration.ErrUnknownField)
	require.Error(t, c.Set(registration.FieldGender, "robot"))
	require.Error(t, c.Set(registration.FieldTerms, "maybe"))
}

func TestController_ResultIsACopy(t *testing.T) {
	c := NewController()

	r := c.Result()
	delete(r, registration.FieldName)
	require.True(t, c.Result().Has(registration.FieldName))
}

func TestController_BeginInvalid(t *testing.T) {
	c := NewController()

	_, err := c.Begin()
	require.ErrorIs(t, err, ErrInvalid)

	var invalid *InvalidError
	require.ErrorAs(t, err, &invalid)
	require.Len(t, invalid.Result, len(registration.Fields))
	require.True(t, c.Attempted())
	require.Equal(t, StateEditing, c.State())
}

func TestController_SuccessResetsForm(t *testing.T) {
	c := NewController()
	fillValid(t, c)

	in, err := c.Begin()
	require.NoError(t, err)
	require.Equal(t, "aung@example.com", in.Email)
	require.Equal(t, StateSubmitting, c.State())
	require.True(t, c.Submitting())

	require.NoError(t, c.Finish(account.Receipt{ID: "acc-1"}, nil))
	require.Equal(t, StateEditing, c.State())
	require.True(t, c.Input().IsZero())
	require.False(t, c.Attempted())
}

func TestController_FailureKeepsValues(t *testing.T) {
	c := NewController()
	fillValid(t, c)
	before := c.Input()

	_, err := c.Begin()
	require.NoError(t, err)
	require.NoError(t, c.Finish(account.Receipt{}, errors.New("network down")))

	require.Equal(t, StateEditing, c.State())
	require.Equal(t, before, c.Input())
	require.True(t, c.Result().Valid())

	// Retry is allowed.
	_, err = c.Begin()
	require.NoError(t, err)
}

func TestController_FinishWithoutBegin(t *testing.T) {
	c := NewController()
	require.ErrorIs(t, c.Finish(account.Receipt{}, nil), ErrNotSubmitting)
}

func TestController_EditsDuringSubmitAreAllowed(t *testing.T) {
	c := NewController()
	fillValid(t, c)

	_, err := c.Begin()
	require.NoError(t, err)
	require.NoError(t, c.Set(registration.FieldName, "Su Su"))
	require.Equal(t, "Su Su", c.Input().Name)
	require.Equal(t, StateSubmitting, c.State())
}

func TestController_SecondSubmitWhileInFlight(t *testing.T) {
	c := NewController()
	fillValid(t, c)
	creator := newBlockingCreator()

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = c.Submit(context.Background(), creator)
	}()

	<-creator.entered
	_, err := c.Submit(context.Background(), creator)
	require.ErrorIs(t, err, ErrSubmitInFlight)

	close(creator.release)
	wg.Wait()

	require.NoError(t, firstErr)
	require.Equal(t, int32(1), creator.calls.Load())
	require.True(t, c.Input().IsZero())
}

func TestController_ConcurrentBeginAdmitsOne(t *testing.T) {
	c := NewController()
	fillValid(t, c)

	const n = 16
	var (
		wg       sync.WaitGroup
		admitted atomic.Int32
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Begin(); err == nil {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, int32(1), admitted.Load())
}

func TestController_SubmitReturnsCreatorError(t *testing.T) {
	c := NewController()
	fillValid(t, c)

	_, err := c.Submit(context.Background(), account.CreatorFunc(
		func(context.Context, registration.Input) (account.Receipt, error) {
			return account.Receipt{}, account.ErrDuplicateEmail
		}))
	require.ErrorIs(t, err, account.ErrDuplicateEmail)
	require.False(t, c.Input().IsZero())
}

func TestController_PublishesLifecycle(t *testing.T) {
	c := NewController()
	defer c.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := c.Subscribe(ctx)

	fillValid(t, c)
	_, err := c.Submit(ctx, account.CreatorFunc(
		func(context.Context, registration.Input) (account.Receipt, error) {
			return account.Receipt{ID: "acc-9"}, nil
		}))
	require.NoError(t, err)

	started := next(t, events)
	require.Equal(t, SubmitStartedEvent, started.Type)
	require.Equal(t, "***", started.Payload.Input.Password)

	done := next(t, events)
	require.Equal(t, RegisteredEvent, done.Type)
	require.Equal(t, "acc-9", done.Payload.Receipt.ID)
}

func TestController_PublishesFailure(t *testing.T) {
	c := NewController()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := c.Subscribe(ctx)

	fillValid(t, c)
	boom := errors.New("boom")
	_, err := c.Begin()
	require.NoError(t, err)
	require.NoError(t, c.Finish(account.Receipt{}, boom))

	require.Equal(t, SubmitStartedEvent, next(t, events).Type)
	failed := next(t, events)
	require.Equal(t, SubmitFailedEvent, failed.Type)
	require.ErrorIs(t, failed.Payload.Err, boom)
}

func TestController_SubmitSpan(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	c := NewController(WithTracer(provider.Tracer("test")))
	_, err := c.Submit(context.Background(), account.NewSimulated(account.SimulatedConfig{}))
	require.ErrorIs(t, err, ErrInvalid)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Equal(t, tracing.SpanFormSubmit, spans[0].Name)
	require.Equal(t, codes.Error, spans[0].Status.Code)
}

func TestController_CompleteFinishesBegunSubmit(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	defer func() { _ = provider.Shutdown(context.Background()) }()

	c := NewController(WithTracer(provider.Tracer("test")))
	fillValid(t, c)

	in, err := c.Begin()
	require.NoError(t, err)
	require.True(t, c.Submitting())

	receipt, err := c.Complete(context.Background(), account.CreatorFunc(
		func(_ context.Context, got registration.Input) (account.Receipt, error) {
			require.Equal(t, in, got)
			return account.Receipt{ID: "acc-1"}, nil
		}), in)
	require.NoError(t, err)
	require.Equal(t, "acc-1", receipt.ID)
	require.Equal(t, StateEditing, c.State())
	require.True(t, c.Input().IsZero())
	require.False(t, c.Attempted())

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	require.Equal(t, tracing.SpanFormSubmit, spans[0].Name)
	require.Equal(t, codes.Ok, spans[0].Status.Code)
}

func TestController_CompleteWithoutBegin(t *testing.T) {
	c := NewController()
	fillValid(t, c)

	var calls atomic.Int32
	_, err := c.Complete(context.Background(), account.CreatorFunc(
		func(context.Context, registration.Input) (account.Receipt, error) {
			calls.Add(1)
			return account.Receipt{ID: "acc-1"}, nil
		}), c.Input())
	require.ErrorIs(t, err, ErrNotSubmitting)
	require.Zero(t, calls.Load())
	require.False(t, c.Input().IsZero())
}

func TestController_SetValidatorRelocalizes(t *testing.T) {
	c := NewController()
	c.SetValidator(registration.NewValidator(registration.MessageTable{
		registration.KeyTermsRequired: "accept please",
	}))
	require.Equal(t, "accept please", c.Result().Message(registration.FieldTerms))
}

func TestState_String(t *testing.T) {
	require.Equal(t, "editing", StateEditing.String())
	require.Equal(t, "submitting", StateSubmitting.String())
	require.Equal(t, "done", StateDone.String())
	require.Equal(t, "unknown", State(7).String())
}

func next(t *testing.T, ch <-chan pubsub.Event[Event]) pubsub.Event[Event] {
	t.Helper()
	select {
	case e, ok := <-ch:
		require.True(t, ok, "channel closed")
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return pubsub.Event[Event]{}
	}
}
