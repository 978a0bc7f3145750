// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package level - the capability every challenge implementation
// satisfies, the directory the coordinator resolves levels through
// and the host facility levels use to allocate instances
//
// the coordinator never looks behind the Level interface so a new
// challenge only needs an implementation added to the directory
package level
