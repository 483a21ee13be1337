package postal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahadshabir/poster/engine"
	"github.com/fahadshabir/poster/errors"
	"github.com/fahadshabir/poster/postal"
	"github.com/fahadshabir/poster/testutil"
)

// roadScript parses any address of the form "<number> <road> <city>" into
// road components the way the batch mutator expects.
func roadScript() func(string) []engine.Component {
	return func(text string) []engine.Component {
		switch text {
		case "12 main st springfield":
			return []engine.Component{
				{Label: "house_number", Value: "12"},
				{Label: "road", Value: "main st"},
				{Label: "city", Value: "springfield"},
			}
		case "9 elm road shelbyville":
			return []engine.Component{
				{Label: "house_number", Value: "9"},
				{Label: "road", Value: "elm road"},
				{Label: "city", Value: "shelbyville"},
			}
		case "city only":
			return []engine.Component{{Label: "city", Value: "city only"}}
		case "Rue de Rivoli":
			// The engine normalizes internally; the parsed value does not
			// occur verbatim in the raw text.
			return []engine.Component{{Label: "road", Value: "rue de rivoli"}}
		default:
			return nil
		}
	}
}

func TestSetField_BroadcastSingle(t *testing.T) {
	fake := testutil.NewFakeEngine()
	fake.ParseFunc = roadScript()
	proc := newProcessor(t, fake)

	addresses := []postal.String{
		postal.NewString("12 main st springfield"),
		postal.NullString(),
		postal.NewString("9 elm road shelbyville"),
	}

	output, err := proc.SetField(context.Background(),
		addresses, postal.Batch("broadway"), postal.FieldRoad)
	require.NoError(t, err)
	require.Len(t, output, len(addresses))

	assert.Equal(t, postal.NewString("12 broadway springfield"), output[0])
	assert.True(t, output[1].IsNull())
	assert.Equal(t, postal.NewString("9 broadway shelbyville"), output[2])
}

func TestSetField_SingleNullShortCircuits(t *testing.T) {
	fake := testutil.NewFakeEngine()
	fake.ParseFunc = roadScript()
	proc := newProcessor(t, fake)

	addresses := []postal.String{
		postal.NewString("12 main st springfield"),
		postal.NullString(),
	}

	output, err := proc.SetField(context.Background(),
		addresses, []postal.String{postal.NullString()}, postal.FieldRoad)
	require.NoError(t, err)

	// Batch returned unchanged element-for-element, zero engine calls.
	assert.Equal(t, addresses, output)
	assert.Zero(t, fake.EngineCalls())
}

func TestSetField_Pairwise(t *testing.T) {
	fake := testutil.NewFakeEngine()
	fake.ParseFunc = roadScript()
	proc := newProcessor(t, fake)

	addresses := []postal.String{
		postal.NewString("12 main st springfield"),
		postal.NewString("9 elm road shelbyville"),
		postal.NullString(),
	}
	replacements := []postal.String{
		postal.NewString("broadway"),
		postal.NullString(), // null replacement leaves the address alone
		postal.NewString("unused"),
	}

	output, err := proc.SetField(context.Background(), addresses, replacements, postal.FieldRoad)
	require.NoError(t, err)

	assert.Equal(t, postal.NewString("12 broadway springfield"), output[0])
	assert.Equal(t, addresses[1], output[1])
	assert.True(t, output[2].IsNull())
}

func TestSetField_LengthMismatch(t *testing.T) {
	fake := testutil.NewFakeEngine()
	fake.ParseFunc = roadScript()
	proc := newProcessor(t, fake)

	addresses := postal.Batch("12 main st springfield", "9 elm road shelbyville", "city only")

	output, err := proc.SetField(context.Background(),
		addresses, postal.Batch("a", "b"), postal.FieldRoad)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrLengthMismatch)
	assert.True(t, errors.IsInvalid(err))
	assert.Nil(t, output)

	// Validation happens before any processing.
	assert.Zero(t, fake.EngineCalls())
}

func TestSetField_AbsentFieldLeavesAddressUnchanged(t *testing.T) {
	fake := testutil.NewFakeEngine()
	fake.ParseFunc = roadScript()
	proc := newProcessor(t, fake)

	output, err := proc.SetField(context.Background(),
		postal.Batch("city only"), postal.Batch("broadway"), postal.FieldRoad)
	require.NoError(t, err)
	assert.Equal(t, postal.NewString("city only"), output[0])
}

func TestSetField_SubstringNotFoundIsNoOp(t *testing.T) {
	fake := testutil.NewFakeEngine()
	fake.ParseFunc = roadScript()
	proc := newProcessor(t, fake)

	// The parsed value is lowercased by the engine and absent from the
	// raw text verbatim; the mutation is a no-op.
	output, err := proc.SetField(context.Background(),
		postal.Batch("Rue de Rivoli"), postal.Batch("Avenue Foch"), postal.FieldRoad)
	require.NoError(t, err)
	assert.Equal(t, postal.NewString("Rue de Rivoli"), output[0])
}

func TestSetField_FirstOccurrenceOnly(t *testing.T) {
	fake := testutil.NewFakeEngine()
	fake.ParseFunc = func(string) []engine.Component {
		return []engine.Component{{Label: "road", Value: "main st"}}
	}
	proc := newProcessor(t, fake)

	output, err := proc.SetField(context.Background(),
		postal.Batch("1 main st near main st"), postal.Batch("broadway"), postal.FieldRoad)
	require.NoError(t, err)
	assert.Equal(t, postal.NewString("1 broadway near main st"), output[0])
}
