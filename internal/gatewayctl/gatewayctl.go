// Copyright (c) Gabriel de Quadros Ligneul
// SPDX-License-Identifier: Apache-2.0 (see LICENSE)

// This package wires the gatewayctl commands.
// This is separate from the main package to facilitate testing.
package gatewayctl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/calindra/gatewayctl/internal/api"
	"github.com/calindra/gatewayctl/internal/deployer"
	"github.com/calindra/gatewayctl/internal/deployments"
	"github.com/calindra/gatewayctl/internal/devnet"
	"github.com/calindra/gatewayctl/internal/network"
	"github.com/calindra/gatewayctl/internal/repository"
	"github.com/calindra/gatewayctl/internal/supervisor"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const DefaultHttpPort = 8080
const DefaultSqliteFile = "gatewayctl.sqlite3"

// ErrSimulatedNetwork is returned for commands that need chain state from an
// earlier run. The devnet chain lives only as long as the command.
var ErrSimulatedNetwork = errors.New("devnet state does not outlive a command")

// Options to gatewayctl.
type GatewayctlOpts struct {
	Network string
	// If empty, RPC_URL is used. Ignored on devnet.
	RpcUrl string

	DeploymentsFile string

	// Either sqlite or postgres. Empty disables the history.
	DbImplementation string
	// Sqlite file or postgres connection string.
	DbDsn string

	Confirmations uint64
	PollInterval  time.Duration

	// Interval between devnet blocks.
	BlockTime time.Duration

	HttpAddress string
	HttpPort    int
}

// Create the options struct with default values.
func NewGatewayctlOpts() GatewayctlOpts {
	return GatewayctlOpts{
		Network:          network.DefaultNetwork,
		RpcUrl:           "",
		DeploymentsFile:  deployments.DefaultPath,
		DbImplementation: repository.ImplSqlite,
		DbDsn:            DefaultSqliteFile,
		Confirmations:    deployer.DefaultConfirmations,
		PollInterval:     deployer.DefaultPollInterval,
		BlockTime:        devnet.DefaultBlockTime,
		HttpAddress:      "127.0.0.1",
		HttpPort:         DefaultHttpPort,
	}
}

// OpenHistory connects to the history database and creates its tables.
// It returns nil when the history is disabled.
func OpenHistory(opts GatewayctlOpts) (*repository.DeploymentRepository, error) {
	if opts.DbImplementation == "" {
		return nil, nil
	}
	db, err := repository.Connect(opts.DbImplementation, opts.DbDsn)
	if err != nil {
		return nil, err
	}
	repo := &repository.DeploymentRepository{Db: db}
	if err := repo.CreateTables(); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// Chain is a connected backend plus the workers it needs to progress.
type Chain struct {
	Profile network.Profile
	Backend deployer.Backend
	Workers []supervisor.Worker
	close   func()
}

func (c *Chain) Close() {
	if c.close != nil {
		c.close()
	}
}

// Connect dials the network of opts, or starts the in-process chain on devnet.
func Connect(ctx context.Context, opts GatewayctlOpts) (*Chain, error) {
	profile, err := network.Lookup(opts.Network)
	if err != nil {
		return nil, err
	}
	if profile.Simulated {
		backend := devnet.NewSimulatedBackend()
		slog.Info("gatewayctl: started devnet", "chainId", profile.ChainID)
		return &Chain{
			Profile: profile,
			Backend: backend.Client(),
			Workers: []supervisor.Worker{
				devnet.SimulatedWorker{Backend: backend, BlockTime: opts.BlockTime},
			},
			close: func() { _ = backend.Close() },
		}, nil
	}

	url, err := network.RpcUrl(opts.RpcUrl)
	if err != nil {
		return nil, err
	}
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %v: %w", profile.Name, err)
	}
	slog.Debug("gatewayctl: connected", "network", profile.Name)
	return &Chain{Profile: profile, Backend: client, close: client.Close}, nil
}

// Signer returns the transactor for the chain. Devnet falls back to the
// funded test account when no credentials are configured.
func (c *Chain) Signer() (*bind.TransactOpts, error) {
	key, err := network.LoadCredentials()
	if errors.Is(err, network.ErrNoCredentials) && c.Profile.Simulated {
		key, err = devnet.SenderKey(), nil
	}
	if err != nil {
		return nil, err
	}
	return bind.NewKeyedTransactorWithChainID(key, c.Profile.ChainIDBig())
}

// RunWithChain starts the chain workers, runs fn and stops the workers.
func RunWithChain(ctx context.Context, chain *Chain, fn func(ctx context.Context) error) error {
	if len(chain.Workers) == 0 {
		return fn(ctx)
	}
	w := supervisor.SupervisorWorker{Name: "chain", Workers: chain.Workers}
	workerCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	ready := make(chan struct{}, 1)
	result := make(chan error, 1)
	go func() {
		result <- w.Start(workerCtx, ready)
	}()
	select {
	case <-ready:
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
	err := fn(ctx)
	cancel()
	if werr := <-result; werr != nil && err == nil {
		err = werr
	}
	return err
}

// Deploy deploys the gateway diamond described by the config file.
func Deploy(ctx context.Context, opts GatewayctlOpts, configFile string) (*deployer.Result, error) {
	config, err := deployer.LoadConfig(configFile)
	if err != nil {
		return nil, err
	}
	store := deployments.NewStore(opts.DeploymentsFile)
	cuts, err := config.FacetCuts(store, opts.Network)
	if err != nil {
		return nil, err
	}

	chain, err := Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer chain.Close()
	auth, err := chain.Signer()
	if err != nil {
		return nil, err
	}

	d := deployer.NewDeployer(chain.Backend, auth, chain.Profile)
	d.Confirmations = opts.Confirmations
	d.PollInterval = opts.PollInterval
	if chain.Profile.Simulated && opts.BlockTime > 0 && d.PollInterval > opts.BlockTime {
		d.PollInterval = opts.BlockTime
	}
	if chain.Profile.Simulated {
		slog.Info("gatewayctl: devnet deploy is not saved in the address book")
	} else {
		d.AddressBook = store
	}
	history, err := OpenHistory(opts)
	if err != nil {
		return nil, err
	}
	if history != nil {
		defer history.Db.Close()
		d.History = history
	}

	var result *deployer.Result
	err = RunWithChain(ctx, chain, func(ctx context.Context) error {
		var err error
		result, err = d.Deploy(ctx, cuts, config.ConstructorParams())
		return err
	})
	return result, err
}

// Verify checks the runtime code at address. A zero address means the
// gateway recorded in the address book.
func Verify(ctx context.Context, opts GatewayctlOpts, address common.Address) (common.Address, error) {
	profile, err := network.Lookup(opts.Network)
	if err != nil {
		return address, err
	}
	if profile.Simulated {
		return address, fmt.Errorf("cannot verify on %v: %w", profile.Name, ErrSimulatedNetwork)
	}
	if address == (common.Address{}) {
		store := deployments.NewStore(opts.DeploymentsFile)
		saved, ok, err := store.Lookup(opts.Network, deployments.GatewayKey)
		if err != nil {
			return address, err
		}
		if !ok {
			return address, fmt.Errorf("no %v recorded for %v", deployments.GatewayKey, opts.Network)
		}
		address = common.HexToAddress(saved)
	}
	chain, err := Connect(ctx, opts)
	if err != nil {
		return address, err
	}
	defer chain.Close()
	d := deployer.NewDeployer(chain.Backend, nil, chain.Profile)
	return address, d.Verify(ctx, address)
}

// Create the gatewayctl HTTP supervisor.
func NewSupervisor(opts GatewayctlOpts) (supervisor.SupervisorWorker, func(), error) {
	var w supervisor.SupervisorWorker
	w.Name = "gatewayctl"

	store := deployments.NewStore(opts.DeploymentsFile)
	history, err := OpenHistory(opts)
	if err != nil {
		return w, nil, err
	}
	cleanup := func() {}
	var apiHistory api.History
	if history != nil {
		apiHistory = history
		cleanup = func() { history.Db.Close() }
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	e := api.NewEcho()
	api.Register(e, store, apiHistory, registry)
	w.Workers = append(w.Workers, supervisor.HttpWorker{
		Address: fmt.Sprintf("%v:%v", opts.HttpAddress, opts.HttpPort),
		Handler: e,
	})
	slog.Info("Listening", "port", opts.HttpPort)
	return w, cleanup, nil
}
