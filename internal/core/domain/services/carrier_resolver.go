package services

import (
	"context"

	"parceltrack/internal/core/domain/model/carrier"
	"parceltrack/internal/core/domain/model/kernel"
)

// AccountProvider supplies the enabled accounts of a carrier in creation order.
type AccountProvider interface {
	GetEnabledByCarrier(ctx context.Context, carrierID kernel.UUID) ([]*carrier.Account, error)
}

// LookupClient probes an upstream carrier API with a tracking number
// through one of the carrier's configured accounts.
type LookupClient interface {
	Lookup(ctx context.Context, account *carrier.Account, trackingNumber kernel.TrackingNumber) (carrier.LookupResult, error)
}

// Resolution is the outcome of attributing a tracking number to a carrier.
// Account and APIResponse are nil when attribution happened by rule match
// alone, without a confirming account lookup.
type Resolution struct {
	Carrier     *carrier.Carrier
	Account     *carrier.Account
	APIResponse map[string]any
}

// CarrierResolver is a domain service that attributes tracking numbers to
// carriers.
//
// Resolution rules:
//   - Only digit-only tracking numbers are resolvable; anything else yields
//     no match.
//   - Candidates are the carriers whose LENGTH rule matches the digit count,
//     considered in registry order. PREFIX and REGEX rules classify parcels
//     for reporting but do not participate in live resolution; this
//     asymmetry is intentional and documented rather than fixed.
//   - Each candidate's enabled accounts are probed in creation order; the
//     first account whose lookup succeeds wins and its response payload is
//     carried along for field enrichment.
//   - When no probe succeeds (or no client is configured), the first
//     length-matching candidate is attributed without an account, so every
//     digit-only number of a configured length belongs to some carrier.
//
// Resolution is a pure lookup with no side effects; callers persist results.
type CarrierResolver struct {
	client LookupClient
}

// NewCarrierResolver creates a CarrierResolver probing accounts through the
// given client. A nil client disables probing; resolution then always falls
// back to the first rule match.
func NewCarrierResolver(client LookupClient) CarrierResolver {
	return CarrierResolver{client: client}
}

// Resolve attributes the tracking number to one of the given carriers.
// Carriers must be supplied in registry order; ties between candidates of
// the same configured length go to the first one. Returns nil when no
// carrier matches.
func (r CarrierResolver) Resolve(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
	carriers []*carrier.Carrier,
	accounts AccountProvider,
) (*Resolution, error) {
	if err := trackingNumber.Validate(); err != nil {
		return nil, err
	}

	if !trackingNumber.IsNumeric() {
		return nil, nil
	}

	var candidates []*carrier.Carrier
	for _, c := range carriers {
		if c.Rule().Kind() == carrier.RuleKindLength && c.Rule().Matches(trackingNumber) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	if r.client != nil && accounts != nil {
		for _, candidate := range candidates {
			enabled, err := accounts.GetEnabledByCarrier(ctx, candidate.ID())
			if err != nil {
				// Account fetch trouble degrades to the rule-match fallback.
				continue
			}

			for _, account := range enabled {
				result, err := r.client.Lookup(ctx, account, trackingNumber)
				if err != nil || !result.Success {
					continue
				}

				return &Resolution{
					Carrier:     candidate,
					Account:     account,
					APIResponse: result.Data,
				}, nil
			}
		}
	}

	return &Resolution{Carrier: candidates[0]}, nil
}
