// Package carrier contains the carrier registry aggregates: the Carrier with
// its tracking-number matching rule and SLA thresholds, and the Account that
// holds credentials for a carrier's external lookup API.
//
// A Carrier owns zero or more Accounts and is referenced by parcels once a
// tracking number has been resolved to it. The aggregate enforces two
// invariants at construction and update time:
//   - the matching rule must be well-formed for its kind (a compilable
//     pattern for REGEX, a positive digit count for LENGTH)
//   - slaPendingDays must be strictly less than slaLostDays
package carrier
