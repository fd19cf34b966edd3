package kernel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingNumber(t *testing.T) {
	t.Run("accepts_valid_value", func(t *testing.T) {
		tn, err := kernel.NewTrackingNumber("DHL12345")

		require.NoError(t, err)
		require.NoError(t, tn.Validate())
		assert.Equal(t, "DHL12345", tn.String())
		assert.Equal(t, 8, tn.Length())
	})

	t.Run("trims_surrounding_whitespace", func(t *testing.T) {
		tn, err := kernel.NewTrackingNumber("  123456789\n")

		require.NoError(t, err)
		assert.Equal(t, "123456789", tn.String())
	})

	t.Run("rejects_empty_value", func(t *testing.T) {
		_, err := kernel.NewTrackingNumber("   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_too_short_value", func(t *testing.T) {
		_, err := kernel.NewTrackingNumber("12")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestTrackingNumber_IsNumeric(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"all_digits", "123456789", true},
		{"prefixed", "DHL123456", false},
		{"digits_with_space_inside", "123 456", false},
		{"unicode_letters", "ПТ12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn, err := kernel.NewTrackingNumber(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tn.IsNumeric())
		})
	}
}

func TestTrackingNumber_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var tn kernel.TrackingNumber
		require.ErrorIs(t, tn.Validate(), kernel.ErrTrackingNumberIsNotConstructed)
	})
}

func TestTrackingNumber_IsEqual(t *testing.T) {
	a, err := kernel.NewTrackingNumber("123456789")
	require.NoError(t, err)
	b, err := kernel.NewTrackingNumber(" 123456789 ")
	require.NoError(t, err)
	c, err := kernel.NewTrackingNumber("987654321")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
