package commands

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"
)

// destinationKeys are the upstream response fields a destination may hide
// under, probed in order.
var destinationKeys = []string{"destination", "ville", "city"}

// RecordOutboundScanResult reports what one outbound scan did, for the
// benefit of the scanning client.
type RecordOutboundScanResult struct {
	ParcelID        kernel.UUID
	TrackingNumber  string
	Status          parcel.Status
	Created         bool
	CarrierDetected *string
	ViaAPI          bool
}

// RecordOutboundScanCommandHandler handles outbound scan intake: carrier
// resolution, parcel create-or-advance, and the SCAN_OUT event, all in one
// transaction keyed by the tracking number.
type RecordOutboundScanCommandHandler struct {
	uowFactory ScanUoWFactory
	resolver   services.CarrierResolver
	now        func() time.Time
}

// NewRecordOutboundScanCommandHandler creates a handler for outbound scans.
func NewRecordOutboundScanCommandHandler(
	uowFactory ScanUoWFactory,
	resolver services.CarrierResolver,
) RecordOutboundScanCommandHandler {
	return RecordOutboundScanCommandHandler{
		uowFactory: uowFactory,
		resolver:   resolver,
		now:        time.Now,
	}
}

// Handle processes one outbound scan.
//
// The carrier registry is read fresh on every scan so configuration changes
// take effect immediately. The parcel row is locked for the duration of the
// transaction, which makes concurrent re-scans of the same tracking number
// serialize instead of losing updates. First sight creates the parcel;
// repeat sight resets the status to OUTBOUND_SCANNED while preserving the
// original scan timestamp and any already known carrier or destination.
func (h *RecordOutboundScanCommandHandler) Handle(
	ctx context.Context,
	cmd RecordOutboundScanCommand,
) (RecordOutboundScanResult, error) {
	if err := cmd.Validate(); err != nil {
		return RecordOutboundScanResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RecordOutboundScanResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carriers, err := uow.CarrierRepository().GetAll(ctx)
	if err != nil {
		return RecordOutboundScanResult{}, err
	}

	resolution, err := h.resolver.Resolve(
		ctx, cmd.TrackingNumber(), carriers, uow.CarrierAccountRepository())
	if err != nil {
		return RecordOutboundScanResult{}, err
	}

	parcelRepo := uow.ParcelRepository()

	created := false
	aggregate, err := parcelRepo.GetByTrackingNumberForUpdate(ctx, cmd.TrackingNumber())
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return RecordOutboundScanResult{}, err
		}
		created = true
		aggregate, err = parcel.NewParcel(kernel.NewUUID(), cmd.TrackingNumber())
		if err != nil {
			return RecordOutboundScanResult{}, err
		}
	}

	var fromStatus *parcel.Status
	if !created {
		prior := aggregate.Status()
		fromStatus = &prior
	}

	destination := cmd.Destination()
	if destination == nil && resolution != nil {
		destination = extractDestination(resolution.APIResponse)
	}

	var carrierID, accountID *kernel.UUID
	var carrierName *string
	viaAPI := false
	if resolution != nil {
		id := resolution.Carrier.ID()
		carrierID = &id
		name := resolution.Carrier.Name()
		carrierName = &name
		if resolution.Account != nil {
			accID := resolution.Account.ID()
			accountID = &accID
			viaAPI = true
		}
	}

	if err = aggregate.RecordOutboundScan(h.now(), destination, carrierID, accountID); err != nil {
		return RecordOutboundScanResult{}, err
	}

	if created {
		err = parcelRepo.Add(ctx, aggregate)
	} else {
		err = parcelRepo.Update(ctx, aggregate)
	}
	if err != nil {
		return RecordOutboundScanResult{}, err
	}

	payload := map[string]any{
		"viaApi": viaAPI,
	}
	if aggregate.Destination() != nil {
		payload["destination"] = *aggregate.Destination()
	}
	if carrierName != nil {
		payload["carrierDetected"] = *carrierName
	}
	if accountID != nil {
		payload["accountUsed"] = accountID.String()
	}

	event, err := parcel.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		parcel.EventTypeScanOut,
		fromStatus,
		aggregate.Status(),
		parcel.SourceScan,
		cmd.UserID(),
		payload,
	)
	if err != nil {
		return RecordOutboundScanResult{}, err
	}

	if err = uow.ParcelEventRepository().Add(ctx, event); err != nil {
		return RecordOutboundScanResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RecordOutboundScanResult{}, err
	}

	return RecordOutboundScanResult{
		ParcelID:        aggregate.ID(),
		TrackingNumber:  aggregate.TrackingNumber().String(),
		Status:          aggregate.Status(),
		Created:         created,
		CarrierDetected: carrierName,
		ViaAPI:          viaAPI,
	}, nil
}

// extractDestination pulls a destination out of an upstream response by the
// known key spellings.
func extractDestination(data map[string]any) *string {
	for _, key := range destinationKeys {
		if value, ok := data[key].(string); ok && value != "" {
			return &value
		}
	}
	return nil
}
