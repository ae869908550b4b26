// Package models defines the core domain model for GroupBillSplitter.
//
// A Bill is the aggregate root for one editing session. It owns an
// ordered ledger of Items and a registry of Participants. Participant
// totals are never updated incrementally: after every mutation the bill
// recomputes every total from the full ledger, so the totals cannot
// drift from the items. Recomputation is O(items × participants per
// item), which is fine for bills of realistic size; do not replace it
// with delta updates.
//
// Participants are identified by name strings; there are no user
// accounts. Items are identified by name within their bill, and removal
// takes the first item whose name matches.
//
// The bill does not validate input. Preconditions (non-negative price,
// non-empty participant list, non-empty names) are enforced by the
// service boundary before anything reaches the aggregate.
package models
