// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through a single batch: Begin starts an operation,
// Commit writes the batch atomically and Abort discards it.  Reads
// made during an operation see that operation's own writes through a
// cache; cursors only see committed data.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. identifier   = 32 byte player, level, instance or ledger identifier
// 4. count        = big endian uint64 (8 bytes)
//
// Coordinator:
//
//   L ++ level                 - registered levels
//                                data: 0x01
//   I ++ instance              - instance records
//                                data: player ++ level ++ completed(1 byte)
//   S ++ name                  - settings
//                                data: byte values of various length
//   E ++ count                 - event log
//                                data: kind(1 byte) ++ player ++ instance ++ level
//   e ++ "count"               - number of events
//                                data: count
//
// Deployments:
//
//   D ++ instance              - allocated instances
//                                data: level ++ player ++ endowment(count) ++ state
//
// Statistics (every key is prefixed by the ledger's own identifier):
//
//   l ++ ledger ++ level                      - known levels
//                                               data: 0x01
//   t ++ ledger ++ level                      - total instances
//                                               data: count
//   s ++ ledger ++ player ++ level            - successful submissions
//                                               data: count
//   f ++ ledger ++ player ++ level            - failed submissions
//                                               data: count
//   n ++ ledger ++ player ++ level            - next count value for the instance list
//                                               data: count
//   i ++ ledger ++ player ++ level ++ count   - instance list
//                                               data: instance
//
// Testing:
//   Z ++ key                   - testing data
package storage
