// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides the building blocks that every aggregate relies on:
// validated identifiers (UUID) and the TrackingNumber value object that keys
// the parcel lifecycle. All kernel types are immutable value objects whose
// zero values are invalid; they must be created through their constructor
// functions.
package kernel
