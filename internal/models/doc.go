// Package models defines the core domain models for PayLash.
//
// # Models
//
//   - User: a chat user, identified by the id the front end assigns
//   - Group: a named set of members that expenses can belong to
//   - Expense: one payment event with a single payer
//   - ParticipantShare: the part of an Expense owed by one participant
//
// # Design Principles
//
// 1. **Money is decimal**: amounts are decimal.Decimal with two fractional digits, never float64
// 2. **Derived balances**: nothing here stores a balance; balances are recomputed from shares
// 3. **Avoid circular references**: relationships are ID strings, not pointers
// 4. **Immutable shares**: a ParticipantShare is never updated, only deleted with its expense
package models
