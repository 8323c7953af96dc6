// Copyright (c) Gabriel de Quadros Ligneul
// SPDX-License-Identifier: Apache-2.0 (see LICENSE)

// Package network holds the chains gatewayctl can deploy to and the
// credentials used to sign for them.
package network

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
)

const (
	Mainnet        = "mainnet"
	Calibrationnet = "calibrationnet"
	Localnet       = "localnet"
	Devnet         = "devnet"

	DefaultNetwork = Calibrationnet
)

// Chain id of the in-process simulated chain.
const DevnetChainID = 1337

var ErrUnknownNetwork = errors.New("unknown network")

// Profile describes a target chain.
type Profile struct {
	Name    string
	ChainID uint64
	// Simulated is set for the in-process chain, which needs no RPC endpoint.
	Simulated bool
}

func (p Profile) ChainIDBig() *big.Int {
	return new(big.Int).SetUint64(p.ChainID)
}

func (p Profile) String() string {
	return fmt.Sprintf("%v (chain %v)", p.Name, p.ChainID)
}

var profiles = map[string]Profile{
	Mainnet:        {Name: Mainnet, ChainID: 314},
	Calibrationnet: {Name: Calibrationnet, ChainID: 314159},
	Localnet:       {Name: Localnet, ChainID: 31415926},
	Devnet:         {Name: Devnet, ChainID: DevnetChainID, Simulated: true},
}

// Lookup returns the profile registered under name.
func Lookup(name string) (Profile, error) {
	profile, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, name)
	}
	return profile, nil
}

// Names lists the known networks in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
