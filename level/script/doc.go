// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - levels whose behaviour is a Lua script
//
// a script returns a table:
//
//   return {
//     name = "vault",
//     description = "open the vault",
//     create = function(player, endowment)
//       return { locked = true, password = "secret" }
//     end,
//     validate = function(state, player)
//       return not state.locked
//     end,
//     actions = {
//       unlock = function(state, caller, args)
//         if args.password == state.password then state.locked = false end
//         return state.locked
//       end,
//     },
//   }
//
// identifiers are passed to the script in their text form and the
// instance state is kept as JSON between calls
//
// only the base, table, string and math libraries are available
package script
