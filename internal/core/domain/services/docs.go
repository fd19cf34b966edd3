// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the parcel tracking system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - CarrierResolver: A domain service for attributing tracking numbers to carriers
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
