package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateCarrierCommandIsNotConstructed = errors.New(
	"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
)

// CreateCarrierCommand represents a request to register a new carrier with
// its matching rule and SLA thresholds.
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID
	name      string
	rule      carrier.MatchRule
	sla       carrier.Sla

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a carrier. The rule
// kind and value are validated together (REGEX must compile, LENGTH must be
// a positive digit count) and the SLA thresholds must satisfy lost > pending.
func NewCreateCarrierCommand(
	carrierID kernel.UUID,
	name string,
	ruleKind string,
	ruleValue string,
	slaPendingDays int,
	slaLostDays int,
) (CreateCarrierCommand, error) {
	cmd := CreateCarrierCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setRule(ruleKind, ruleValue),
		cmd.setSla(slaPendingDays, slaLostDays),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// CarrierID returns the identifier for the new carrier.
func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Name returns the requested carrier name.
func (c CreateCarrierCommand) Name() string {
	return c.name
}

// Rule returns the validated matching rule.
func (c CreateCarrierCommand) Rule() carrier.MatchRule {
	return c.rule
}

// Sla returns the validated SLA thresholds.
func (c CreateCarrierCommand) Sla() carrier.Sla {
	return c.sla
}

func (c *CreateCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *CreateCarrierCommand) setRule(kind, value string) error {
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

func (c *CreateCarrierCommand) setSla(pendingDays, lostDays int) error {
	sla, err := carrier.NewSla(pendingDays, lostDays)
	if err != nil {
		return err
	}

	c.sla = sla
	return nil
}
