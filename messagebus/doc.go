// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a broadcast queue carrying committed
// orchestration events to any number of listeners
//
// a listener that falls behind loses messages rather than stalling
// the sender
package messagebus
