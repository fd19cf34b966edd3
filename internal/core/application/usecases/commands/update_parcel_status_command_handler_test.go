package commands_test

import (
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateParcelStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	tn := testTrackingNumber(t, "123456789")

	scannedAt := time.Now().Add(-24 * time.Hour)
	existing, err := parcel.RestoreParcel(
		kernel.NewUUID(), tn, parcel.StatusInTransit,
		nil, nil, nil, &scannedAt, nil, nil, nil)
	require.NoError(t, err)

	note := "confirmed by recipient"
	operator := "ops-1"
	cmd, err := commands.NewUpdateParcelStatusCommand(existing.ID(), parcel.StatusDelivered, &note, &operator)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)

	var addedEvent *parcel.Event

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("ParcelEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Event")).
			Run(func(args mock.Arguments) { addedEvent = args.Get(1).(*parcel.Event) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateParcelStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.StatusDelivered, existing.Status())
	assert.NotNil(t, existing.DeliveredAt())

	require.NotNil(t, addedEvent)
	assert.Equal(t, parcel.EventTypeStatusUpdate, addedEvent.Type())
	assert.Equal(t, parcel.SourceManual, addedEvent.EventSource())
	require.NotNil(t, addedEvent.FromStatus())
	assert.Equal(t, parcel.StatusInTransit, *addedEvent.FromStatus())
	assert.Equal(t, parcel.StatusDelivered, addedEvent.ToStatus())
	assert.Equal(t, "confirmed by recipient", addedEvent.Payload()["note"])
	require.NotNil(t, addedEvent.UserID())
	assert.Equal(t, "ops-1", *addedEvent.UserID())

	uow.AssertExpectations(t)
	parcelRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
}

func TestUpdateParcelStatusCommandHandler_Handle_NoOpTransitionStillLogged(t *testing.T) {
	ctx := t.Context()
	tn := testTrackingNumber(t, "123456789")

	existing, err := parcel.RestoreParcel(
		kernel.NewUUID(), tn, parcel.StatusInTransit,
		nil, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)

	cmd, err := commands.NewUpdateParcelStatusCommand(existing.ID(), parcel.StatusInTransit, nil, nil)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockUoW)

	var addedEvent *parcel.Event

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("ParcelEventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Event")).
			Run(func(args mock.Arguments) { addedEvent = args.Get(1).(*parcel.Event) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateParcelStatusCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, addedEvent)
	require.NotNil(t, addedEvent.FromStatus())
	assert.Equal(t, *addedEvent.FromStatus(), addedEvent.ToStatus())

	eventRepo.AssertExpectations(t)
}
