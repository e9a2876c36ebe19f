// Package moneykeeper provides the types and functions for managing a
// personal, multi-currency finance ledger. It is designed to be local-first
// and transparent: all data lives in plain text files the user can read,
// diff, and version.
//
// The core functionalities include:
//   - Accounts: named collections of income and expense entries, each with a
//     cached balance that is kept consistent with the entry list.
//   - Entries: dated, categorized, tagged transactions in arbitrary
//     currencies, identified by a process-unique id.
//   - Exchange rates: a replaceable table of rates to the base currency,
//     refreshed from an external source and cached on disk, with every
//     account balance recomputed whenever the table changes.
//   - Reports: totals, by-category, by-month, by-currency and tag search
//     aggregations over the whole ledger.
//   - Persistence: a flat text format that round-trips the complete ledger,
//     including per-entry currency and tags.
//
// This package serves as the foundational logic for the `mk` command-line
// tool.
package moneykeeper
