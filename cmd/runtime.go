package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zjrosen/signup/internal/account"
	"github.com/zjrosen/signup/internal/config"
	"github.com/zjrosen/signup/internal/form"
	"github.com/zjrosen/signup/internal/i18n"
	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

// runtime holds the collaborators shared by the TUI and the headless commands.
type runtime struct {
	catalog    *i18n.Catalog
	controller *form.Controller
	creator    account.Creator
	tracing    *tracing.Provider
	closers    []func() error
}

func newRuntime(cfg config.Config) (*runtime, error) {
	catalog, err := i18n.Load(cfg.Locale, cfg.MessagesFile)
	if err != nil {
		return nil, fmt.Errorf("loading messages: %w", err)
	}

	tp, err := tracing.NewProvider(tracing.Config(cfg.Tracing))
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}

	rt := &runtime{catalog: catalog, tracing: tp}

	backend, closeBackend, err := newBackend(cfg.Account)
	if err != nil {
		_ = tp.Shutdown(context.Background())
		return nil, err
	}
	if closeBackend != nil {
		rt.closers = append(rt.closers, closeBackend)
	}

	rt.creator = account.NewTraced(backend, tp.Tracer(), cfg.Account.Backend)
	rt.controller = form.NewController(
		form.WithValidator(catalog.Validator()),
		form.WithTracer(tp.Tracer()),
	)
	return rt, nil
}

// newBackend builds the configured account creator and its cleanup, if any.
func newBackend(acc config.AccountConfig) (account.Creator, func() error, error) {
	switch acc.Backend {
	case account.BackendSQLite:
		store, err := account.OpenStore(acc.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening account store: %w", err)
		}
		return store, store.Close, nil
	case account.BackendSimulated, "":
		return account.NewSimulated(account.SimulatedConfig{
			Delay:           acc.Delay,
			DuplicateWindow: acc.DuplicateWindow,
			FailEvery:       acc.FailEvery,
		}), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown account backend %q", acc.Backend)
	}
}

// Close stops event delivery, flushes spans and closes the backend.
func (r *runtime) Close() error {
	r.controller.Close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := r.tracing.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("flushing traces: %w", err))
	}
	for _, closeFn := range r.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.ErrorErr(log.CatConfig, "shutdown", err)
		return err
	}
	return nil
}
