package parcel_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	parcelID := kernel.NewUUID()

	t.Run("creates_valid_event", func(t *testing.T) {
		from := parcel.StatusOutboundScanned
		e, err := parcel.NewEvent(kernel.NewUUID(), parcelID,
			parcel.EventTypeSlaCheck, &from, parcel.StatusLost, parcel.SourceSystem,
			nil, map[string]any{"daysSinceScan": 21})

		require.NoError(t, err)
		require.NoError(t, e.Validate())
		assert.Equal(t, parcel.EventTypeSlaCheck, e.Type())
		assert.Equal(t, parcel.StatusOutboundScanned, *e.FromStatus())
		assert.Equal(t, parcel.StatusLost, e.ToStatus())
		assert.Equal(t, parcel.SourceSystem, e.EventSource())
		assert.Nil(t, e.UserID())
		assert.Equal(t, 21, e.Payload()["daysSinceScan"])
	})

	t.Run("nil_from_status_marks_first_sight", func(t *testing.T) {
		e, err := parcel.NewEvent(kernel.NewUUID(), parcelID,
			parcel.EventTypeScanOut, nil, parcel.StatusOutboundScanned,
			parcel.SourceScan, nil, nil)

		require.NoError(t, err)
		assert.Nil(t, e.FromStatus())
	})

	t.Run("rejects_missing_event_type", func(t *testing.T) {
		_, err := parcel.NewEvent(kernel.NewUUID(), parcelID,
			"", nil, parcel.StatusOutboundScanned, parcel.SourceScan, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_to_status", func(t *testing.T) {
		_, err := parcel.NewEvent(kernel.NewUUID(), parcelID,
			parcel.EventTypeScanOut, nil, parcel.StatusUnknown, parcel.SourceScan, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_source", func(t *testing.T) {
		_, err := parcel.NewEvent(kernel.NewUUID(), parcelID,
			parcel.EventTypeScanOut, nil, parcel.StatusOutboundScanned, parcel.Source("ROBOT"), nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestSource_Validate(t *testing.T) {
	for _, s := range []parcel.Source{
		parcel.SourceScan, parcel.SourceManual, parcel.SourceBulkImport, parcel.SourceSystem,
	} {
		require.NoError(t, s.Validate(), string(s))
	}
	require.Error(t, parcel.Source("").Validate())
}

func TestNewReturnIntake(t *testing.T) {
	t.Run("creates_with_optional_fields", func(t *testing.T) {
		parcelID := kernel.NewUUID()
		ri, err := parcel.NewReturnIntake(kernel.NewUUID(), parcelID,
			strPtr("warehouse-1"), strPtr("Tunis depot"), nil)

		require.NoError(t, err)
		require.NoError(t, ri.Validate())
		assert.True(t, ri.ParcelID().IsEqual(parcelID))
		assert.Equal(t, "warehouse-1", *ri.ReceivedBy())
		assert.Nil(t, ri.Note())
	})

	t.Run("rejects_missing_parcel_id", func(t *testing.T) {
		_, err := parcel.NewReturnIntake(kernel.NewUUID(), kernel.UUID{}, nil, nil, nil)
		require.Error(t, err)
	})
}
