// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON RPC listeners for players and the operator
//
// requests that change state carry an ed25519 signature, queries do
// not; any net/rpc jsonrpc client can call the services
package rpc
