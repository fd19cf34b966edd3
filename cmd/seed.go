package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

type seedCarrier struct {
	name           string
	ruleKind       string
	ruleValue      string
	slaPendingDays int
	slaLostDays    int
}

// defaultCarriers is the starter registry for a fresh installation.
func defaultCarriers() []seedCarrier {
	return []seedCarrier{
		{name: "DHL Express", ruleKind: "PREFIX", ruleValue: "DHL", slaPendingDays: 7, slaLostDays: 15},
		{name: "Aramex", ruleKind: "PREFIX", ruleValue: "ARX", slaPendingDays: 10, slaLostDays: 20},
		{name: "Poste Tunisienne", ruleKind: "REGEX", ruleValue: `^PT\d+$`, slaPendingDays: 14, slaLostDays: 30},
		{name: "FedEx", ruleKind: "PREFIX", ruleValue: "FDX", slaPendingDays: 7, slaLostDays: 15},
		{name: "UPS", ruleKind: "PREFIX", ruleValue: "UPS", slaPendingDays: 7, slaLostDays: 15},
	}
}

// SeedCarriers inserts the default carrier set. Idempotent by name: carriers
// that already exist are left untouched.
func SeedCarriers(ctx context.Context, root *CompositionRoot, logger *slog.Logger) error {
	handler := root.CreateCreateCarrierCommandHandler()

	for _, row := range defaultCarriers() {
		cmd, err := commands.NewCreateCarrierCommand(
			kernel.NewUUID(), row.name, row.ruleKind, row.ruleValue, row.slaPendingDays, row.slaLostDays)
		if err != nil {
			return fmt.Errorf("seed carrier %q: %w", row.name, err)
		}

		err = handler.Handle(ctx, cmd)
		switch {
		case err == nil:
			logger.InfoContext(ctx, "Seeded carrier", "name", row.name)
		case errors.Is(err, errs.ErrConflict):
			logger.DebugContext(ctx, "Carrier already present, skipping", "name", row.name)
		default:
			return fmt.Errorf("seed carrier %q: %w", row.name, err)
		}
	}

	return nil
}
