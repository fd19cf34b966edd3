package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateCarrierCommandIsNotConstructed = errors.New(
	"UpdateCarrierCommand must be created via NewUpdateCarrierCommand constructor",
)

// UpdateCarrierCommand represents a full reconfiguration of an existing
// carrier: name, matching rule, and SLA thresholds.
type UpdateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	name      string
	rule      carrier.MatchRule
	sla       carrier.Sla

	guard guard.ConstructorGuard
}

// NewUpdateCarrierCommand creates a command to reconfigure a carrier, with
// the same field validations as carrier creation.
func NewUpdateCarrierCommand(
	carrierID kernel.UUID,
	name string,
	ruleKind string,
	ruleValue string,
	slaPendingDays int,
	slaLostDays int,
) (UpdateCarrierCommand, error) {
	cmd := UpdateCarrierCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setRule(ruleKind, ruleValue),
		cmd.setSla(slaPendingDays, slaLostDays),
	); err != nil {
		return UpdateCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCarrierCommandIsNotConstructed)
}

// CarrierID returns the carrier to reconfigure.
func (c UpdateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Name returns the requested carrier name.
func (c UpdateCarrierCommand) Name() string {
	return c.name
}

// Rule returns the validated matching rule.
func (c UpdateCarrierCommand) Rule() carrier.MatchRule {
	return c.rule
}

// Sla returns the validated SLA thresholds.
func (c UpdateCarrierCommand) Sla() carrier.Sla {
	return c.sla
}

func (c *UpdateCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *UpdateCarrierCommand) setRule(kind, value string) error {
	ruleKind, err := carrier.ParseRuleKind(kind)
	if err != nil {
		return err
	}

	rule, err := carrier.NewMatchRule(ruleKind, value)
	if err != nil {
		return err
	}

	c.rule = rule
	return nil
}

func (c *UpdateCarrierCommand) setSla(pendingDays, lostDays int) error {
	sla, err := carrier.NewSla(pendingDays, lostDays)
	if err != nil {
		return err
	}

	c.sla = sla
	return nil
}
