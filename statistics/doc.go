// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package statistics - the append-only outcome ledger
//
// every key starts with the ledger's own identifier so ledgers
// sharing one database never see each other's counters
//
//   StatLevels    ledger ++ level                       → 0x01
//   StatTotals    ledger ++ level                       → count(8)
//   StatSuccess   ledger ++ player ++ level             → count(8)
//   StatFailure   ledger ++ player ++ level             → count(8)
//   StatNextCount ledger ++ player ++ level             → next index(8)
//   StatInstances ledger ++ player ++ level ++ index(8) → instance
//
// writes are restricted to the owner fixed at construction and must
// run inside a storage transaction; reads are open to anyone and an
// unknown key reads as zero or empty
package statistics
