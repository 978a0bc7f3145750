// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/challenged/account"
	"github.com/bitmark-inc/challenged/fault"
)

type identifierTest struct {
	hex    string
	base58 string
}

var testIdentifiers = []identifierTest{
	{
		hex:    "60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e",
		base58: "jb8VtQxC3EdqV3mkRzw9iFyZYVcDqHC6TmmaZhFJ8wCA2LhsP",
	},
	{
		hex:    "0000000000000000000000000102030405060708090a0b0c0d0e0f1011121314",
		base58: "1111111111116L5yRNPTuciSgXGHqYwn9N6NeoKUv7TN",
	},
}

func makeIdentifier(t *testing.T, s string) account.Identifier {
	b, err := hex.DecodeString(s)
	if nil != err {
		t.Fatalf("hex decode error: %s", err)
	}
	id, err := account.IdentifierFromBytes(b)
	if nil != err {
		t.Fatalf("identifier from bytes error: %s", err)
	}
	return id
}

func TestIdentifierText(t *testing.T) {
	for i, item := range testIdentifiers {
		id := makeIdentifier(t, item.hex)

		assert.Equal(t, item.base58, id.String(), "%d: wrong base58", i)

		decoded, err := account.IdentifierFromBase58(item.base58)
		assert.Nil(t, err, "%d: wrong decode error", i)
		assert.Equal(t, id, decoded, "%d: wrong decoded identifier", i)

		buffer, err := json.Marshal(id)
		assert.Nil(t, err, "%d: wrong marshal error", i)
		assert.Equal(t, `"`+item.base58+`"`, string(buffer), "%d: wrong JSON", i)

		var unmarshalled account.Identifier
		err = json.Unmarshal(buffer, &unmarshalled)
		assert.Nil(t, err, "%d: wrong unmarshal error", i)
		assert.Equal(t, id, unmarshalled, "%d: wrong unmarshalled identifier", i)
	}
}

func TestIdentifierChecksum(t *testing.T) {
	s := testIdentifiers[0].base58
	damaged := s[:len(s)-1] + "Q"
	if damaged == s {
		damaged = s[:len(s)-1] + "R"
	}
	_, err := account.IdentifierFromBase58(damaged)
	assert.NotNil(t, err, "damaged identifier accepted")

	_, err = account.IdentifierFromBase58("0OIl")
	assert.Equal(t, fault.InvalidIdentifier, err, "wrong error for non base58")

	_, err = account.IdentifierFromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.InvalidIdentifierLength, err, "wrong error for short bytes")
}

func TestAddressRoundTrip(t *testing.T) {
	address, err := account.AddressFromHex("0x0102030405060708090a0b0c0d0e0f1011121314")
	assert.Nil(t, err, "wrong address error")

	id := account.ToIdentifier(address)
	assert.True(t, id.IsExtended(), "extended identifier not recognised")
	assert.Equal(t, makeIdentifier(t, testIdentifiers[1].hex), id, "wrong extension")
	assert.Equal(t, address, account.ToAddress(id), "extend then truncate did not round-trip")

	parsed, err := account.ParseIdentifier(address.String())
	assert.Nil(t, err, "wrong parse error")
	assert.Equal(t, id, parsed, "parse of address did not extend")
}

func TestTruncationIsLossy(t *testing.T) {
	id := makeIdentifier(t, testIdentifiers[0].hex)
	assert.False(t, id.IsExtended(), "high-order bytes are not zero")

	address := account.ToAddress(id)
	assert.Equal(t, id[12:], address[:], "truncation kept wrong bytes")
	assert.NotEqual(t, id, account.ToIdentifier(address), "lossy identifier round-tripped")
}

func TestAddressErrors(t *testing.T) {
	_, err := account.AddressFromHex("0102030405060708090a0b0c0d0e0f1011121314")
	assert.Equal(t, fault.InvalidAddress, err, "missing prefix accepted")

	_, err = account.AddressFromHex("0x0102")
	assert.Equal(t, fault.InvalidAddressLength, err, "short address accepted")

	_, err = account.AddressFromHex("0xzz02030405060708090a0b0c0d0e0f1011121314")
	assert.Equal(t, fault.InvalidAddress, err, "bad hex accepted")
}

func TestCheckSignature(t *testing.T) {
	publicKey, privateKey, err := ed25519.GenerateKey(nil)
	assert.Nil(t, err, "key generation error")

	id, err := account.IdentifierFromBytes(publicKey)
	assert.Nil(t, err, "wrong identifier error")

	message := []byte("Coordinator.Submit")
	signature := account.Sign(privateKey, message)

	assert.Nil(t, id.CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.InvalidSignature, id.CheckSignature([]byte("other"), signature), "wrong message accepted")
	assert.Equal(t, fault.InvalidSignature, id.CheckSignature(message, signature[:10]), "short signature accepted")
}

func TestSignatureText(t *testing.T) {
	signature := account.Signature{0x01, 0xab, 0xff}
	text, err := signature.MarshalText()
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, "01abff", string(text), "wrong text")

	var decoded account.Signature
	err = decoded.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, signature, decoded, "wrong decoded signature")
}
