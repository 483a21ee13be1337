package postal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fahadshabir/poster/engine"
	"github.com/fahadshabir/poster/errors"
	"github.com/fahadshabir/poster/metric"
)

// DefaultCheckpointInterval is how many elements a batch processes between
// cooperative cancellation checks. Per-element checks would dominate cheap
// engine calls on large batches.
const DefaultCheckpointInterval = 10000

// DuplicatePolicy decides which value wins when the engine emits the same
// label more than once for a single address.
type DuplicatePolicy int

const (
	// LastLabelWins keeps the last emitted value (the default).
	LastLabelWins DuplicatePolicy = iota
	// FirstLabelWins keeps the first emitted value.
	FirstLabelWins
)

// Processor applies the address engine across batches of optional strings.
// Batches run strictly sequentially in input order; the processor adds no
// locking and assumes the caller serializes engine access.
type Processor struct {
	handle  *engine.Handle
	logger  *slog.Logger
	metrics *processorMetrics

	checkpointInterval int
	duplicates         DuplicatePolicy
	languages          []string
	country            string
}

// NewProcessor creates a batch processor over an open engine handle.
func NewProcessor(handle *engine.Handle, logger *slog.Logger, registry *metric.Registry) *Processor {
	metrics, err := newProcessorMetrics(registry)
	if err != nil {
		logger.Error("Failed to initialize batch metrics", "error", err)
		metrics = nil // Continue without metrics
	}

	return &Processor{
		handle:             handle,
		logger:             logger,
		metrics:            metrics,
		checkpointInterval: DefaultCheckpointInterval,
		duplicates:         LastLabelWins,
	}
}

// SetCheckpointInterval overrides the cancellation checkpoint interval.
// Values below 1 are ignored.
func (p *Processor) SetCheckpointInterval(n int) {
	if n > 0 {
		p.checkpointInterval = n
	}
}

// SetDuplicatePolicy overrides the duplicate-label policy.
func (p *Processor) SetDuplicatePolicy(policy DuplicatePolicy) {
	p.duplicates = policy
}

// SetLanguages restricts expansion to the given language codes. Empty
// means the engine decides per address.
func (p *Processor) SetLanguages(languages []string) {
	p.languages = languages
}

// SetCountry sets an ISO country-code hint for parsing.
func (p *Processor) SetCountry(country string) {
	p.country = country
}

func (p *Processor) expandOptions(eng engine.Engine) engine.ExpandOptions {
	opts := eng.DefaultExpandOptions()
	if len(p.languages) > 0 {
		opts.Languages = p.languages
	}
	return opts
}

func (p *Processor) parseOptions(eng engine.Engine) engine.ParseOptions {
	opts := eng.DefaultParseOptions()
	if p.country != "" {
		opts.Country = p.country
	}
	return opts
}

// Normalize expands every address into its canonical form. Null inputs
// pass through as null without an engine call; addresses the engine cannot
// expand are returned verbatim. Output length equals input length.
func (p *Processor) Normalize(ctx context.Context, addresses []String) ([]String, error) {
	start := time.Now()
	batchID := uuid.NewString()
	p.logger.Debug("Starting batch", "operation", "normalize", "batch_id", batchID, "size", len(addresses))

	eng := p.handle.Engine()
	opts := p.expandOptions(eng)

	output := make([]String, len(addresses))
	for i, addr := range addresses {
		if err := p.checkpoint(ctx, i); err != nil {
			p.metrics.recordCanceled("normalize")
			p.metrics.recordBatch("normalize", i, false, time.Since(start))
			return nil, errors.Wrap(err, "postal", "Normalize", "batch canceled")
		}

		if !addr.Valid {
			continue // null passthrough
		}

		expansions := eng.Expand(addr.Value, opts)
		p.metrics.recordEngineCall("expand")
		if len(expansions) == 0 {
			// Identity fallback: indistinguishable from an engine-level
			// failure under the engine contract.
			output[i] = addr
			p.metrics.recordIdentityFallback()
		} else {
			output[i] = NewString(expansions[0])
		}
	}

	p.metrics.recordBatch("normalize", len(addresses), true, time.Since(start))
	p.logger.Debug("Finished batch", "operation", "normalize", "batch_id", batchID, "size", len(addresses))
	return output, nil
}

// Parse parses every address into ten parallel columns in fixed field
// order. Null inputs leave every column null at that index with no engine
// call.
func (p *Processor) Parse(ctx context.Context, addresses []String) (*Columns, error) {
	start := time.Now()
	batchID := uuid.NewString()
	p.logger.Debug("Starting batch", "operation", "parse", "batch_id", batchID, "size", len(addresses))

	eng := p.handle.Engine()
	opts := p.parseOptions(eng)

	columns := NewColumns(len(addresses))
	for i, addr := range addresses {
		if err := p.checkpoint(ctx, i); err != nil {
			p.metrics.recordCanceled("parse")
			p.metrics.recordBatch("parse", i, false, time.Since(start))
			return nil, errors.Wrap(err, "postal", "Parse", "batch canceled")
		}

		if !addr.Valid {
			continue
		}

		columns.setRecord(i, p.parseSingle(eng, addr.Value, opts))
	}

	p.metrics.recordBatch("parse", len(addresses), true, time.Since(start))
	p.logger.Debug("Finished batch", "operation", "parse", "batch_id", batchID, "size", len(addresses))
	return columns, nil
}

// GetField projects one field across the batch. Null in, null out; absent
// fields come back null. Repeated calls on the same input yield the same
// output: the processor keeps no state across calls.
func (p *Processor) GetField(ctx context.Context, addresses []String, field Field) ([]String, error) {
	if !field.Valid() {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrUnknownField, field),
			"postal", "GetField", "validate field")
	}

	start := time.Now()
	eng := p.handle.Engine()
	opts := p.parseOptions(eng)

	output := make([]String, len(addresses))
	for i, addr := range addresses {
		if err := p.checkpoint(ctx, i); err != nil {
			p.metrics.recordCanceled("get_field")
			p.metrics.recordBatch("get_field", i, false, time.Since(start))
			return nil, errors.Wrap(err, "postal", "GetField", "batch canceled")
		}

		if !addr.Valid {
			continue
		}

		output[i] = p.parseSingle(eng, addr.Value, opts).Get(field)
	}

	p.metrics.recordBatch("get_field", len(addresses), true, time.Since(start))
	return output, nil
}

// SetField rewrites one field inside each address's raw text: the first
// occurrence of the substring the parser attributed to field is replaced
// with the caller's value, the rest of the string untouched.
//
// Replacements broadcast: a single value applies to every address (and a
// single null value returns the batch unchanged with zero engine calls);
// otherwise replacements must pair with addresses position-wise, anything
// else failing with ErrLengthMismatch before any work. Per element, a null
// address stays null, a null replacement or an absent field leaves the
// address unchanged, and a parsed value not found verbatim in the raw text
// is a no-op.
func (p *Processor) SetField(ctx context.Context, addresses, replacements []String, field Field) ([]String, error) {
	if !field.Valid() {
		return nil, errors.WrapInvalid(
			fmt.Errorf("%w: %s", errors.ErrUnknownField, field),
			"postal", "SetField", "validate field")
	}

	var broadcast String
	pairwise := false
	switch {
	case len(replacements) == 1:
		if !replacements[0].Valid {
			// Short-circuit: nothing to write anywhere.
			output := make([]String, len(addresses))
			copy(output, addresses)
			return output, nil
		}
		broadcast = replacements[0]
	case len(replacements) == len(addresses):
		pairwise = true
	default:
		return nil, errors.WrapInvalid(errors.ErrLengthMismatch,
			"postal", "SetField", "validate replacement count")
	}

	start := time.Now()
	eng := p.handle.Engine()
	opts := p.parseOptions(eng)

	output := make([]String, len(addresses))
	for i, addr := range addresses {
		if err := p.checkpoint(ctx, i); err != nil {
			p.metrics.recordCanceled("set_field")
			p.metrics.recordBatch("set_field", i, false, time.Since(start))
			return nil, errors.Wrap(err, "postal", "SetField", "batch canceled")
		}

		if !addr.Valid {
			continue
		}

		replacement := broadcast
		if pairwise {
			replacement = replacements[i]
		}
		if !replacement.Valid {
			output[i] = addr
			continue
		}

		current := p.parseSingle(eng, addr.Value, opts).Get(field)
		if !current.Valid {
			output[i] = addr
			continue
		}

		// strings.Replace with n=1 is a no-op when the parsed value does
		// not occur verbatim in the raw text (the engine may have
		// normalized case or diacritics internally).
		output[i] = NewString(strings.Replace(addr.Value, current.Value, replacement.Value, 1))
	}

	p.metrics.recordBatch("set_field", len(addresses), true, time.Since(start))
	return output, nil
}

// parseSingle parses one non-null address into a fixed ten-slot record.
// Unrecognized labels are dropped; duplicate labels resolve per the
// configured policy.
func (p *Processor) parseSingle(eng engine.Engine, addr string, opts engine.ParseOptions) Record {
	var rec Record
	var seen [NumFields]bool

	components := eng.Parse(addr, opts)
	p.metrics.recordEngineCall("parse")

	for _, comp := range components {
		field, ok := fieldByLabel[comp.Label]
		if !ok {
			p.metrics.recordUnknownLabel(comp.Label)
			continue
		}
		if p.duplicates == FirstLabelWins && seen[field] {
			continue
		}
		seen[field] = true
		rec.set(field, FromRaw(comp.Value))
	}

	return rec
}

// checkpoint evaluates the cooperative cancellation check at the start of
// every interval, including element zero so an already-canceled context
// aborts before the first engine call.
func (p *Processor) checkpoint(ctx context.Context, i int) error {
	if i%p.checkpointInterval == 0 {
		return ctx.Err()
	}
	return nil
}
