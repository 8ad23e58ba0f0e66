// Package finances reconstructs daily balance histories from sparse bank
// statements and derives the aggregates a personal-finance dashboard shows.
//
// The core functionalities include:
//   - Balance Reconstruction: turning each account's irregular, point-in-time
//     balance observations into a dense, forward-filled daily series over a
//     shared calendar.
//   - Ledger Merging: outer-joining all accounts onto one gapless daily
//     table with a running total, produced as an immutable snapshot.
//   - Monthly Aggregation: month-end closing totals and month-over-month
//     deltas, continuous across year boundaries, grouped by year for display.
//   - Holdings Valuation: rebuilding cumulative share positions from the
//     investment transaction log and pricing them against daily market data,
//     with currency normalization into a single reporting currency.
//   - Data Persistence: encoding and decoding account tables to and from
//     human-readable JSONL files.
//
// This package is the foundational logic for the `pfd` command-line tool.
package finances
