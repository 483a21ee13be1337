package postal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahadshabir/poster/errors"
	"github.com/fahadshabir/poster/postal"
)

func TestFieldOrder(t *testing.T) {
	// The position order is a contract every consumer depends on.
	expected := []string{
		"house", "house_number", "road", "suburb", "city_district",
		"city", "state_district", "state", "postal_code", "country",
	}
	assert.Equal(t, expected, postal.FieldNames())

	fields := postal.Fields()
	require.Len(t, fields, postal.NumFields)
	for i, f := range fields {
		assert.Equal(t, expected[i], f.String())
	}
}

func TestParseField(t *testing.T) {
	t.Run("every canonical name resolves", func(t *testing.T) {
		for i, name := range postal.FieldNames() {
			f, err := postal.ParseField(name)
			require.NoError(t, err)
			assert.Equal(t, postal.Field(i), f)
		}
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		_, err := postal.ParseField("City")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrUnknownField)
	})

	t.Run("unknown name is invalid", func(t *testing.T) {
		_, err := postal.ParseField("borough")
		require.Error(t, err)
		assert.True(t, errors.IsInvalid(err))
	})
}

func TestFieldValid(t *testing.T) {
	assert.True(t, postal.FieldHouse.Valid())
	assert.True(t, postal.FieldCountry.Valid())
	assert.False(t, postal.Field(-1).Valid())
	assert.False(t, postal.Field(postal.NumFields).Valid())
}
