// Package parcel contains the parcel lifecycle aggregate and its satellites:
// the Status state machine, the append-only Event log entry, and the
// ReturnIntake receipt record.
//
// The aggregate deliberately does not restrict which statuses can follow
// which: scans and operator overrides may set any state, and the system
// trusts operator intent. What the aggregate does guarantee is timestamp
// consistency (first outbound scan is preserved across re-scans, DELIVERED
// and LOST stamp their side-effect timestamps) and field preservation on
// repeat scans (carrier, account, and destination are only filled when
// previously unknown).
package parcel
