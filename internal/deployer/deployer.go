// Copyright (c) Gabriel de Quadros Ligneul
// SPDX-License-Identifier: Apache-2.0 (see LICENSE)

// Package deployer deploys the gateway diamond, waits for it to be mined and
// records the outcome.
package deployer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/calindra/gatewayctl/contracts"
	"github.com/calindra/gatewayctl/internal/deployments"
	"github.com/calindra/gatewayctl/internal/network"
	"github.com/calindra/gatewayctl/internal/repository"
	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

const (
	DefaultConfirmations = 1
	DefaultPollInterval  = 7 * time.Second
)

var (
	ErrChainMismatch   = errors.New("chain id mismatch")
	ErrRuntimeMismatch = errors.New("runtime bytecode mismatch")
)

// Backend is the chain access the deployer needs.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// History records deployment attempts.
type History interface {
	Create(ctx context.Context, d repository.Deployment) (*repository.Deployment, error)
	UpdateStatus(ctx context.Context, d repository.Deployment) error
}

// AddressBook stores the addresses of successful deployments.
type AddressBook interface {
	Save(network string, data map[string]string, branch string) error
}

// RevertError is returned when the diamond constructor reverts.
type RevertError struct {
	// Stage is estimate when the revert was caught before sending and
	// execution when the mined transaction failed.
	Stage string
	// Err is nil when the revert data could not be decoded.
	Err  contracts.GatewayDiamondError
	Data []byte
}

func (e *RevertError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("deploy reverted during %v with data %v", e.Stage, hexutil.Encode(e.Data))
	}
	return fmt.Sprintf("deploy reverted during %v: %v", e.Stage, e.Err)
}

func (e *RevertError) Unwrap() error {
	if e.Err == nil {
		return nil
	}
	return e.Err
}

// Result describes a mined gateway diamond.
type Result struct {
	Address     common.Address
	TxHash      common.Hash
	BlockNumber uint64
	GasUsed     uint64
}

type Deployer struct {
	Backend       Backend
	Auth          *bind.TransactOpts
	Network       network.Profile
	History       History
	AddressBook   AddressBook
	Confirmations uint64
	PollInterval  time.Duration
}

func NewDeployer(backend Backend, auth *bind.TransactOpts, profile network.Profile) *Deployer {
	return &Deployer{
		Backend:       backend,
		Auth:          auth,
		Network:       profile,
		Confirmations: DefaultConfirmations,
		PollInterval:  DefaultPollInterval,
	}
}

// CheckChain fails when the backend is not on the chain of the profile.
func (d *Deployer) CheckChain(ctx context.Context) error {
	chainID, err := d.Backend.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain id: %w", err)
	}
	if chainID.Uint64() != d.Network.ChainID {
		return fmt.Errorf("%w: %v expects %v, rpc reports %v",
			ErrChainMismatch, d.Network.Name, d.Network.ChainID, chainID)
	}
	return nil
}

// Deploy sends the gateway diamond with the given cuts and params and waits
// for it to be confirmed.
func (d *Deployer) Deploy(
	ctx context.Context,
	cuts []contracts.IDiamondFacetCut,
	params contracts.GatewayDiamondConstructorParams,
) (*Result, error) {
	if err := contracts.ValidateFacetCuts(cuts); err != nil {
		return nil, fmt.Errorf("invalid facet cuts: %w", err)
	}
	if err := d.CheckChain(ctx); err != nil {
		return nil, err
	}

	parsed, err := contracts.GatewayDiamondMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	args, err := parsed.Pack("", cuts, params)
	if err != nil {
		return nil, fmt.Errorf("failed to pack constructor: %w", err)
	}
	msg := ethereum.CallMsg{
		From: d.Auth.From,
		Data: append(contracts.GatewayDiamondBytecode(), args...),
	}

	gas, err := d.Backend.EstimateGas(ctx, msg)
	if err != nil {
		data, ok := contracts.RevertDataFromCallErr(err)
		if !ok {
			return nil, fmt.Errorf("failed to estimate gas: %w", err)
		}
		revertErr := newRevertError("estimate", data)
		d.record(ctx, repository.Deployment{
			Status:      repository.StatusReverted,
			RevertError: revertErr.Error(),
			RevertData:  data,
		})
		return nil, revertErr
	}
	slog.Debug("deployer: estimated gas", "gas", gas)

	opts := *d.Auth
	opts.Context = ctx
	if opts.GasLimit == 0 {
		opts.GasLimit = gas
	}
	address, tx, _, err := contracts.DeployGatewayDiamond(&opts, d.Backend, cuts, params)
	if err != nil {
		if data, ok := contracts.RevertDataFromCallErr(err); ok {
			return nil, newRevertError("send", data)
		}
		return nil, fmt.Errorf("failed to send deploy tx: %w", err)
	}
	slog.Info("deployer: sent gateway diamond",
		"network", d.Network.Name, "tx", tx.Hash().Hex(), "address", address.Hex())
	d.record(ctx, repository.Deployment{
		TxHash:          tx.Hash(),
		ContractAddress: address,
		Status:          repository.StatusPending,
	})

	receipt, err := d.waitConfirmed(ctx, tx.Hash())
	if err != nil {
		d.update(ctx, repository.Deployment{
			TxHash:          tx.Hash(),
			ContractAddress: address,
			Status:          repository.StatusFailed,
			RevertError:     err.Error(),
		})
		return nil, err
	}

	if receipt.Status == types.ReceiptStatusFailed {
		msg.Gas = tx.Gas()
		revertErr := d.replay(ctx, msg, receipt.BlockNumber)
		d.update(ctx, repository.Deployment{
			TxHash:          tx.Hash(),
			ContractAddress: address,
			Status:          repository.StatusReverted,
			RevertError:     revertErr.Error(),
			RevertData:      revertErr.Data,
			BlockNumber:     receipt.BlockNumber.Uint64(),
		})
		return nil, revertErr
	}

	d.update(ctx, repository.Deployment{
		TxHash:          tx.Hash(),
		ContractAddress: address,
		Status:          repository.StatusSuccess,
		BlockNumber:     receipt.BlockNumber.Uint64(),
	})
	if d.AddressBook != nil {
		err := d.AddressBook.Save(d.Network.Name, map[string]string{
			deployments.GatewayKey: address.Hex(),
		}, "")
		if err != nil {
			return nil, err
		}
	}
	slog.Info("deployer: gateway diamond deployed",
		"network", d.Network.Name, "address", address.Hex(), "block", receipt.BlockNumber)

	return &Result{
		Address:     address,
		TxHash:      tx.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

// Verify checks that the runtime code at address is the gateway diamond.
func (d *Deployer) Verify(ctx context.Context, address common.Address) error {
	code, err := d.Backend.CodeAt(ctx, address, nil)
	if err != nil {
		return fmt.Errorf("failed to get code: %w", err)
	}
	if len(code) == 0 {
		return &contracts.NoBytecodeAtAddress{
			ContractAddress: address,
			Message:         "gateway diamond has no code",
		}
	}
	expected := contracts.GatewayDiamondDeployedBytecode()
	if !bytes.Equal(code, expected) {
		return fmt.Errorf("%w: %v has %d bytes, expected %d",
			ErrRuntimeMismatch, address.Hex(), len(code), len(expected))
	}
	return nil
}

// waitConfirmed polls for the receipt until it is Confirmations blocks deep.
// Node errors are retried until ctx ends.
func (d *Deployer) waitConfirmed(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	confirmations := d.Confirmations
	if confirmations == 0 {
		confirmations = 1
	}
	interval := d.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	var receipt *types.Receipt
	operation := func() error {
		if receipt == nil {
			// Not found while pending, and nodes report an error while they
			// index freshly mined blocks. Both clear up on a later poll.
			r, err := d.Backend.TransactionReceipt(ctx, hash)
			if err != nil {
				return fmt.Errorf("failed to get receipt: %w", err)
			}
			receipt = r
		}
		head, err := d.Backend.BlockNumber(ctx)
		if err != nil {
			return fmt.Errorf("failed to get block number: %w", err)
		}
		mined := receipt.BlockNumber.Uint64()
		if head+1 < mined+confirmations {
			var seen uint64
			if head >= mined {
				seen = head + 1 - mined
			}
			return fmt.Errorf("%d of %d confirmations", seen, confirmations)
		}
		return nil
	}
	notify := func(err error, next time.Duration) {
		slog.Debug("deployer: waiting for tx", "tx", hash.Hex(), "status", err, "next", next)
	}
	policy := backoff.WithContext(backoff.NewConstantBackOff(interval), ctx)
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, err
	}
	return receipt, nil
}

// replay runs the failed creation again at its block to obtain the revert data.
func (d *Deployer) replay(ctx context.Context, msg ethereum.CallMsg, block *big.Int) *RevertError {
	_, err := d.Backend.CallContract(ctx, msg, block)
	if err == nil {
		slog.Warn("deployer: replay of reverted deploy succeeded", "block", block)
		return &RevertError{Stage: "execution"}
	}
	data, ok := contracts.RevertDataFromCallErr(err)
	if !ok {
		slog.Warn("deployer: replay returned no revert data", "error", err)
		return &RevertError{Stage: "execution"}
	}
	return newRevertError("execution", data)
}

func newRevertError(stage string, data []byte) *RevertError {
	revertErr := &RevertError{Stage: stage, Data: data}
	decoded, err := contracts.UnpackGatewayDiamondError(data)
	if err != nil {
		slog.Warn("deployer: undecodable revert", "data", hexutil.Encode(data), "error", err)
		return revertErr
	}
	revertErr.Err = decoded
	return revertErr
}

func (d *Deployer) record(ctx context.Context, entry repository.Deployment) {
	if d.History == nil {
		return
	}
	entry.Network = d.Network.Name
	entry.ChainId = d.Network.ChainID
	entry.Deployer = d.Auth.From
	_, err := d.History.Create(context.WithoutCancel(ctx), entry)
	if err != nil {
		slog.Error("deployer: failed to record deployment", "error", err)
	}
}

func (d *Deployer) update(ctx context.Context, entry repository.Deployment) {
	if d.History == nil {
		return
	}
	err := d.History.UpdateStatus(context.WithoutCancel(ctx), entry)
	if err != nil {
		slog.Error("deployer: failed to update deployment", "error", err)
	}
}
