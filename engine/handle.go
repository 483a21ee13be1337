package engine

import (
	"fmt"
	"log/slog"

	"github.com/fahadshabir/poster/errors"
)

// Handle is the single owning wrapper around the process-wide engine
// state. It is created by Open and injected into every component that
// needs the engine.
//
// There is no reference counting and no guard against use after Close or
// repeated Open/Close pairs; sequencing those correctly is the caller's
// responsibility, matching the underlying engine's contract.
type Handle struct {
	eng    Engine
	logger *slog.Logger
	closed bool
}

// Open initializes the engine's three subsystems and returns a handle to
// the ready engine. If any subsystem fails the returned error is fatal and
// no partial-success state is observable: the caller must not proceed to
// any batch operation.
func Open(eng Engine, logger *slog.Logger) (*Handle, error) {
	if err := eng.SetupCore(); err != nil {
		return nil, setupError("core data", err)
	}
	if err := eng.SetupLanguageClassifier(); err != nil {
		return nil, setupError("language classifier", err)
	}
	if err := eng.SetupParser(); err != nil {
		return nil, setupError("address parser", err)
	}

	logger.Info("Address engine ready")
	return &Handle{eng: eng, logger: logger}, nil
}

// Engine returns the ready engine.
func (h *Handle) Engine() Engine {
	return h.eng
}

// Close unconditionally tears down all three engine subsystems.
func (h *Handle) Close() {
	h.eng.Teardown()
	h.closed = true
	h.logger.Info("Address engine closed")
}

// Closed reports whether Close has been called.
func (h *Handle) Closed() bool {
	return h.closed
}

func setupError(subsystem string, err error) error {
	return errors.WrapFatal(
		fmt.Errorf("%w: %s: %v", errors.ErrEngineInit, subsystem, err),
		"engine", "Open", "initialize "+subsystem)
}
