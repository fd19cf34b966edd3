package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// SweepMinParcelAge is the minimum-age gate of the sweep: parcels scanned
// less than this long ago are not even considered.
const SweepMinParcelAge = 24 * time.Hour

// SlaSweepReport summarizes one escalation sweep.
type SlaSweepReport struct {
	Checked          int
	UpdatedToPending int
	UpdatedToLost    int
	Errors           []string
}

// RunSlaSweepCommandHandler handles the periodic SLA escalation sweep.
//
// One sweep selects all parcels in an escalatable status whose outbound scan
// is older than SweepMinParcelAge, compares the elapsed whole days against
// the owning carrier's SLA thresholds (lost check first), and escalates to
// PENDING_TOO_LONG or LOST. A write happens only when the computed target
// differs from the current status, so repeating a sweep on an unchanged
// parcel set produces no additional events. Each escalation runs in its own
// transaction; per-parcel failures are collected in the report and never
// abort the run.
type RunSlaSweepCommandHandler struct {
	uowFactory SweepUoWFactory
	log        *slog.Logger
	now        func() time.Time
}

// NewRunSlaSweepCommandHandler creates a handler for escalation sweeps.
// A nil clock defaults to time.Now.
func NewRunSlaSweepCommandHandler(
	uowFactory SweepUoWFactory,
	log *slog.Logger,
	now func() time.Time,
) RunSlaSweepCommandHandler {
	if now == nil {
		now = time.Now
	}
	return RunSlaSweepCommandHandler{
		uowFactory: uowFactory,
		log:        log.With("component", "sla-sweep"),
		now:        now,
	}
}

// Handle runs one sweep to completion and reports what it did.
func (h *RunSlaSweepCommandHandler) Handle(ctx context.Context, cmd RunSlaSweepCommand) (SlaSweepReport, error) {
	if err := cmd.Validate(); err != nil {
		return SlaSweepReport{}, err
	}

	now := h.now()

	parcels, carriers, err := h.loadWorkSet(ctx, now.Add(-SweepMinParcelAge))
	if err != nil {
		return SlaSweepReport{}, err
	}

	carriersByID := make(map[string]*carrier.Carrier, len(carriers))
	for _, c := range carriers {
		carriersByID[c.ID().String()] = c
	}

	report := SlaSweepReport{}
	for _, candidate := range parcels {
		report.Checked++

		if candidate.CarrierID() == nil {
			continue
		}
		owner, ok := carriersByID[candidate.CarrierID().String()]
		if !ok {
			continue
		}

		days, scanned := candidate.DaysSinceOutboundScan(now)
		if !scanned {
			continue
		}

		target, escalate := escalationTarget(days, owner.Sla())
		if !escalate || target == candidate.Status() {
			continue
		}

		applied, err := h.escalate(ctx, candidate.ID(), target, days, owner.Sla(), now)
		if err != nil {
			report.Errors = append(report.Errors,
				fmt.Sprintf("Parcel %s: %v", candidate.TrackingNumber().String(), err))
			continue
		}
		if !applied {
			continue
		}

		switch target {
		case parcel.StatusLost:
			report.UpdatedToLost++
		default:
			report.UpdatedToPending++
		}
	}

	h.log.Info("sweep finished",
		"checked", report.Checked,
		"pending", report.UpdatedToPending,
		"lost", report.UpdatedToLost,
		"errors", len(report.Errors))

	return report, nil
}

// loadWorkSet reads the escalatable parcels and the carrier registry in one
// read-only transaction.
func (h *RunSlaSweepCommandHandler) loadWorkSet(
	ctx context.Context,
	scannedBefore time.Time,
) ([]*parcel.Parcel, []*carrier.Carrier, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcels, err := uow.ParcelRepository().GetEscalatable(ctx, scannedBefore)
	if err != nil {
		return nil, nil, err
	}

	carriers, err := uow.CarrierRepository().GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	return parcels, carriers, nil
}

// escalate applies one escalation in its own transaction. The parcel is
// re-read under lock so a concurrent update between selection and write is
// respected: if the target no longer differs, nothing is written.
func (h *RunSlaSweepCommandHandler) escalate(
	ctx context.Context,
	parcelID kernel.UUID,
	target parcel.Status,
	daysSinceScan int,
	sla carrier.Sla,
	now time.Time,
) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ParcelRepository().GetForUpdate(ctx, parcelID)
	if err != nil {
		return false, err
	}

	if aggregate.Status() == target {
		return false, nil
	}

	prior := aggregate.Status()
	if err = aggregate.ChangeStatus(target, now); err != nil {
		return false, err
	}

	if err = uow.ParcelRepository().Update(ctx, aggregate); err != nil {
		return false, err
	}

	event, err := parcel.NewEvent(
		kernel.NewUUID(),
		aggregate.ID(),
		parcel.EventTypeSlaCheck,
		&prior,
		aggregate.Status(),
		parcel.SourceSystem,
		nil,
		map[string]any{
			"daysSinceScan": daysSinceScan,
			"slaPending":    sla.PendingDays(),
			"slaLost":       sla.LostDays(),
			"checkedAt":     now.UTC().Format(time.RFC3339),
		},
	)
	if err != nil {
		return false, err
	}

	if err = uow.ParcelEventRepository().Add(ctx, event); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

// escalationTarget applies the threshold policy, lost check first.
func escalationTarget(daysSinceScan int, sla carrier.Sla) (parcel.Status, bool) {
	switch {
	case daysSinceScan >= sla.LostDays():
		return parcel.StatusLost, true
	case daysSinceScan >= sla.PendingDays():
		return parcel.StatusPendingTooLong, true
	default:
		return parcel.StatusUnknown, false
	}
}
