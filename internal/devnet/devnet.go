// Copyright (c) Gabriel de Quadros Ligneul
// SPDX-License-Identifier: Apache-2.0 (see LICENSE)

package devnet

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// Foundry test mnemonic.
const TestMnemonic = "test test test test test test test test test test test junk"

// Account that sends the transactions.
const SenderAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

// Private key of the sender.
const SenderPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

// Block gas limit of the simulated chain.
const GasLimit = 30_000_000

// Balance of the sender in ether.
const SenderBalance = 10_000

// SenderKey parses SenderPrivateKey.
func SenderKey() *ecdsa.PrivateKey {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(SenderPrivateKey, "0x"))
	if err != nil {
		panic(err)
	}
	return key
}
