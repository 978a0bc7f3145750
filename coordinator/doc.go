// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coordinator - registry of levels, dispatcher of instance
// creation and validation, and owner of the instance table
//
// every mutating operation runs inside one storage transaction, a
// returned error aborts all of its writes including any made by the
// level or the statistics ledger
//
// events are published after commit and before the next operation may
// begin, so they leave in sequence order
//
// statistics are mirrored best effort: a failing ledger is logged and
// never fails the operation
//
// a level must not call back into the coordinator while it is being
// dispatched to, writers are serialised and the call would never return
package coordinator
