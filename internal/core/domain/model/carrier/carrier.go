package carrier

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// CarrierNameMinLength is the minimum accepted length of a carrier name.
const CarrierNameMinLength = 2

// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
// created through the NewCarrier or RestoreCarrier factory methods.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")

// Carrier is an aggregate describing one shipping company the system can
// attribute parcels to: a unique name, the rule that claims tracking numbers,
// and the SLA thresholds that drive escalation.
//
// Carrier maintains these invariants:
//   - valid unique identifier
//   - name at least CarrierNameMinLength characters (uniqueness across
//     carriers is enforced by the registry/persistence layer)
//   - well-formed MatchRule and Sla (see their constructors)
type Carrier struct {
	id   kernel.UUID
	name string
	rule MatchRule
	sla  Sla

	isConstructed bool
}

// NewCarrier creates a Carrier, validating every component.
func NewCarrier(id kernel.UUID, name string, rule MatchRule, sla Sla) (*Carrier, error) {
	c := &Carrier{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setRule(rule),
		c.setSla(sla),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCarrier reconstructs a Carrier from persistence. It runs the same
// validations as NewCarrier; stored rows that no longer satisfy the
// invariants surface as errors instead of silently loading.
func RestoreCarrier(id kernel.UUID, name string, rule MatchRule, sla Sla) (*Carrier, error) {
	return NewCarrier(id, name, rule, sla)
}

// Validate ensures the Carrier was created through a factory method.
func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// IsEqual compares two carriers by their unique identifiers.
func (c *Carrier) IsEqual(other *Carrier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier's unique display name.
func (c *Carrier) Name() string {
	return c.name
}

// Rule returns the tracking-number matching rule.
func (c *Carrier) Rule() MatchRule {
	return c.rule
}

// Sla returns the escalation thresholds.
func (c *Carrier) Sla() Sla {
	return c.sla
}

// Update replaces the carrier's mutable definition (name, rule, SLA),
// re-running all construction invariants. The identifier never changes.
func (c *Carrier) Update(name string, rule MatchRule, sla Sla) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return errors.Join(
		c.setName(name),
		c.setRule(rule),
		c.setSla(sla),
	)
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setName(name string) error {
	if len(name) < CarrierNameMinLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), CarrierNameMinLength, "unbounded")
	}
	c.name = name
	return nil
}

func (c *Carrier) setRule(rule MatchRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	c.rule = rule
	return nil
}

func (c *Carrier) setSla(sla Sla) error {
	if err := sla.Validate(); err != nil {
		return err
	}
	c.sla = sla
	return nil
}
