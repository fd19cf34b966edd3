package parcel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	t.Run("round_trips_all_valid_statuses", func(t *testing.T) {
		for _, raw := range []string{
			"CREATED", "OUTBOUND_SCANNED", "IN_TRANSIT", "DELIVERED",
			"RETURN_IN_TRANSIT", "RETURN_RECEIVED", "PENDING_TOO_LONG",
			"LOST", "FAILED_DELIVERY",
		} {
			status, err := parcel.ParseStatus(raw)
			require.NoError(t, err, raw)
			assert.Equal(t, raw, status.String())
			require.NoError(t, status.Validate())
		}
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		for _, raw := range []string{"", "UNKNOWN", "delivered", "SHIPPED"} {
			_, err := parcel.ParseStatus(raw)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, raw)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	require.Error(t, parcel.StatusUnknown.Validate())
	require.Error(t, parcel.Status(99).Validate())
	require.NoError(t, parcel.StatusLost.Validate())
}

func TestStatus_String_Unknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", parcel.StatusUnknown.String())
	assert.Equal(t, "UNKNOWN", parcel.Status(99).String())
}

func TestStatus_IsEscalatable(t *testing.T) {
	assert.True(t, parcel.StatusOutboundScanned.IsEscalatable())
	assert.True(t, parcel.StatusInTransit.IsEscalatable())

	for _, s := range []parcel.Status{
		parcel.StatusCreated, parcel.StatusDelivered, parcel.StatusReturnInTransit,
		parcel.StatusReturnReceived, parcel.StatusPendingTooLong, parcel.StatusLost,
		parcel.StatusFailedDelivery,
	} {
		assert.False(t, s.IsEscalatable(), s.String())
	}
}
