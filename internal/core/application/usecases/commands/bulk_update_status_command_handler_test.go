package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBulkUpdateStatusCommandHandler_Handle_FailSoftPerItem(t *testing.T) {
	ctx := t.Context()

	tn1 := testTrackingNumber(t, "111111111")
	tn2 := testTrackingNumber(t, "222222222")
	tn3 := testTrackingNumber(t, "333333333")

	parcel1, err := parcel.RestoreParcel(
		kernel.NewUUID(), tn1, parcel.StatusInTransit, nil, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	parcel3, err := parcel.RestoreParcel(
		kernel.NewUUID(), tn3, parcel.StatusInTransit, nil, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	cmd, err := commands.NewBulkUpdateStatusCommand([]commands.BulkUpdateItem{
		{TrackingNumber: tn1, Status: parcel.StatusDelivered},
		{TrackingNumber: tn2, Status: parcel.StatusDelivered},
		{TrackingNumber: tn3, Status: parcel.StatusFailedDelivery},
	}, nil)
	require.NoError(t, err)

	// each item runs in its own unit of work
	makeUoW := func(found *parcel.Parcel, tn kernel.TrackingNumber) *MockUoW {
		parcelRepo := new(MockParcelRepository)
		eventRepo := new(MockEventRepository)
		uow := new(MockUoW)

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ParcelRepository").Return(parcelRepo)
		uow.On("Rollback", ctx).Return(nil).Once()
		if found == nil {
			parcelRepo.On("GetByTrackingNumberForUpdate", ctx, tn).
				Return(nil, errs.NewObjectNotFoundError("trackingNumber", tn.String())).Once()
			return uow
		}
		parcelRepo.On("GetByTrackingNumberForUpdate", ctx, tn).Return(found, nil).Once()
		parcelRepo.On("Update", ctx, found).Return(nil).Once()
		uow.On("ParcelEventRepository").Return(eventRepo).Once()
		eventRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Event")).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		return uow
	}

	uow1 := makeUoW(parcel1, tn1)
	uow2 := makeUoW(nil, tn2)
	uow3 := makeUoW(parcel3, tn3)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow1).Once()
	factory.On("Create").Return(uow2).Once()
	factory.On("Create").Return(uow3).Once()

	handler := commands.NewBulkUpdateStatusCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, commands.BulkUpdateSummary{Total: 3, Success: 2, Failed: 1}, result.Summary)
	assert.Equal(t, []string{"111111111", "333333333"}, result.Succeeded)
	require.Len(t, result.Failed, 1)
	assert.Equal(t, "222222222", result.Failed[0].TrackingNumber)
	assert.Equal(t, "Parcel not found", result.Failed[0].Reason)

	// the applied rows got their side-effect timestamps and statuses
	assert.Equal(t, parcel.StatusDelivered, parcel1.Status())
	assert.NotNil(t, parcel1.DeliveredAt())
	assert.Equal(t, parcel.StatusFailedDelivery, parcel3.Status())

	factory.AssertExpectations(t)
	uow1.AssertExpectations(t)
	uow2.AssertExpectations(t)
	uow3.AssertExpectations(t)
}

func TestNewBulkUpdateStatusCommand_EmptyBatch(t *testing.T) {
	_, err := commands.NewBulkUpdateStatusCommand(nil, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
