// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/challenged/fault"
)

// miscellaneous constants
const (
	IdentifierLength = 32
	AddressLength    = 20

	checksumLength = 4
	addressPrefix  = "0x"

	// number of high-order bytes dropped by truncation
	extensionLength = IdentifierLength - AddressLength
)

// Identifier - the opaque value naming a player, a level, an
// instance or a ledger
//
// for a player it is the ed25519 public key that signs requests
type Identifier [IdentifierLength]byte

// Address - the narrow encoding of an identifier
type Address [AddressLength]byte

// ToIdentifier - zero-extend an address to a full identifier
func ToIdentifier(address Address) Identifier {
	var id Identifier
	copy(id[extensionLength:], address[:])
	return id
}

// ToAddress - truncate an identifier to its low-order bytes
//
// this only round-trips for identifiers produced by ToIdentifier
func ToAddress(id Identifier) Address {
	var address Address
	copy(address[:], id[extensionLength:])
	return address
}

// IsExtended - true if the high-order bytes are zero
// i.e. the identifier survives a trip through an Address
func (id Identifier) IsExtended() bool {
	for _, b := range id[:extensionLength] {
		if 0 != b {
			return false
		}
	}
	return true
}

// IsZero - check for the all zero identifier
func (id Identifier) IsZero() bool {
	return id == Identifier{}
}

// IdentifierFromBytes - copy a byte slice into an identifier
func IdentifierFromBytes(buffer []byte) (Identifier, error) {
	var id Identifier
	if IdentifierLength != len(buffer) {
		return id, fault.InvalidIdentifierLength
	}
	copy(id[:], buffer)
	return id, nil
}

// IdentifierFromBase58 - decode the checksummed text form
func IdentifierFromBase58(s string) (Identifier, error) {
	var id Identifier

	buffer, err := base58.Decode(s)
	if nil != err {
		return id, fault.InvalidIdentifier
	}
	if IdentifierLength+checksumLength != len(buffer) {
		return id, fault.InvalidIdentifierLength
	}

	checksum := sha3.Sum256(buffer[:IdentifierLength])
	if !bytes.Equal(checksum[:checksumLength], buffer[IdentifierLength:]) {
		return id, fault.InvalidChecksum
	}
	copy(id[:], buffer[:IdentifierLength])
	return id, nil
}

// ParseIdentifier - accept either the base58 form or a 0x prefixed
// narrow address which is zero-extended
func ParseIdentifier(s string) (Identifier, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, addressPrefix) {
		address, err := AddressFromHex(s)
		if nil != err {
			return Identifier{}, err
		}
		return ToIdentifier(address), nil
	}
	return IdentifierFromBase58(s)
}

// Bytes - byte slice of the identifier
func (id Identifier) Bytes() []byte {
	return id[:]
}

// String - base58 encoding with trailing checksum
func (id Identifier) String() string {
	checksum := sha3.Sum256(id[:])
	buffer := make([]byte, 0, IdentifierLength+checksumLength)
	buffer = append(buffer, id[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (id Identifier) GoString() string {
	return "<identifier:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert an identifier to its base58 JSON form
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - either text form is accepted
func (id *Identifier) UnmarshalText(s []byte) error {
	i, err := ParseIdentifier(string(s))
	if nil != err {
		return err
	}
	*id = i
	return nil
}

// AddressFromHex - decode 0x prefixed hex
func AddressFromHex(s string) (Address, error) {
	var address Address
	if !strings.HasPrefix(s, addressPrefix) {
		return address, fault.InvalidAddress
	}
	buffer, err := hex.DecodeString(s[len(addressPrefix):])
	if nil != err {
		return address, fault.InvalidAddress
	}
	if AddressLength != len(buffer) {
		return address, fault.InvalidAddressLength
	}
	copy(address[:], buffer)
	return address, nil
}

// String - 0x prefixed hex
func (address Address) String() string {
	return addressPrefix + hex.EncodeToString(address[:])
}

// MarshalText - convert an address to text
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - convert text to an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromHex(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}
