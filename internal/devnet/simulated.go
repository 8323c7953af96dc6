// Copyright (c) Gabriel de Quadros Ligneul
// SPDX-License-Identifier: Apache-2.0 (see LICENSE)

package devnet

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
)

// Default interval between blocks of the simulated chain.
const DefaultBlockTime = 100 * time.Millisecond

// NewSimulatedBackend starts an in-process chain with the sender funded.
func NewSimulatedBackend() *simulated.Backend {
	balance := new(big.Int).Mul(big.NewInt(SenderBalance), big.NewInt(params.Ether))
	alloc := types.GenesisAlloc{
		common.HexToAddress(SenderAddress): {Balance: balance},
	}
	return simulated.NewBackend(alloc, simulated.WithBlockGasLimit(GasLimit))
}

// SimulatedWorker mines a block every BlockTime on a simulated chain.
type SimulatedWorker struct {
	Backend   *simulated.Backend
	BlockTime time.Duration
}

func (w SimulatedWorker) String() string {
	return "devnet"
}

func (w SimulatedWorker) Start(ctx context.Context, ready chan<- struct{}) error {
	blockTime := w.BlockTime
	if blockTime <= 0 {
		blockTime = DefaultBlockTime
	}
	ticker := time.NewTicker(blockTime)
	defer ticker.Stop()

	slog.Debug("devnet: started", "blockTime", blockTime)
	ready <- struct{}{}
	for {
		select {
		case <-ctx.Done():
			slog.Debug("devnet: stopped")
			return ctx.Err()
		case <-ticker.C:
			hash := w.Backend.Commit()
			slog.Debug("devnet: committed block", "hash", hash.Hex())
		}
	}
}

// ShowAddresses prints the address book entries of a network as a table.
func ShowAddresses(entry map[string]any) {
	var names []string
	for name, value := range entry {
		if _, ok := value.(string); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	space := 28
	addressSpace := 42
	fmt.Printf("%-28s %s\n", "Contract", "Address")
	fmt.Printf("%-28s %s\n", strings.Repeat("─", space), strings.Repeat("─", addressSpace))
	for _, name := range names {
		fmt.Printf("%-28s %s\n", name, entry[name])
	}
}
