// Package models defines the core domain models for fintrack.
//
// # Models
//
//   - User: domain record for a person; referenced by id from every other model
//   - Wallet: a money balance owned by one user
//   - Category: classification of a transaction, global or owned by one user
//   - Group: a named set of users who share transactions
//   - Transaction: a single posted money movement against one wallet
//   - DebtRecord: one participant's equal share of a group transaction
//
// # Design Principles
//
//  1. Relationships use ID strings, never pointers
//  2. Money is always decimal.Decimal, never float64
//  3. Transactions and debt records are immutable once posted
//  4. Identity (who is calling) lives in the auth package; User is only the
//     stored record joined to it by ID
package models
