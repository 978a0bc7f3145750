// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - load the daemon settings from a Lua script
//
// the script runs with the standard Lua libraries plus a few helpers,
// so it may read key files or query the environment before returning
// its settings table
package configuration
