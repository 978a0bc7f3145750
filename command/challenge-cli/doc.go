// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// challenge-cli - command line client for challenged
//
// identities are ed25519 seeds kept in a JSON configuration file
// encrypted under an argon2 derived key; mutating calls are signed
// with the selected identity
package main
