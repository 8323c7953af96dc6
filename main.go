// Copyright (c) Gabriel de Quadros Ligneul
// SPDX-License-Identifier: Apache-2.0 (see LICENSE)

// This package contains the main function that executes the gatewayctl command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/calindra/gatewayctl/contracts"
	"github.com/calindra/gatewayctl/internal/commons"
	"github.com/calindra/gatewayctl/internal/deployer"
	"github.com/calindra/gatewayctl/internal/deployments"
	"github.com/calindra/gatewayctl/internal/devnet"
	"github.com/calindra/gatewayctl/internal/gatewayctl"
	"github.com/calindra/gatewayctl/internal/network"
	"github.com/calindra/gatewayctl/internal/repository"
	"github.com/carlmjohnson/versioninfo"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var startupMessage = `
Gateway API running at http://HTTP_ADDRESS:HTTP_PORT
Metrics running at http://HTTP_ADDRESS:HTTP_PORT/metrics
Press Ctrl+C to stop
`

var cmd = &cobra.Command{
	Use:              "gatewayctl",
	Short:            "gatewayctl deploys and inspects the IPC gateway diamond",
	PersistentPreRun: setup,
	Version:          versioninfo.Short(),
}

var CompletionCmd = &cobra.Command{
	Use:                   "completion",
	Short:                 "Generate shell completion scripts",
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		switch args[0] {
		case "bash":
			cobra.CheckErr(cmd.Root().GenBashCompletion(os.Stdout))
		case "zsh":
			cobra.CheckErr(cmd.Root().GenZshCompletion(os.Stdout))
		case "fish":
			cobra.CheckErr(cmd.Root().GenFishCompletion(os.Stdout, true))
		case "powershell":
			cobra.CheckErr(cmd.Root().GenPowerShellCompletion(os.Stdout))
		}
	},
}

var abiCmd = &cobra.Command{
	Use:   "abi",
	Short: "Print the gateway diamond ABI",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(contracts.GatewayDiamondABI)
	},
}

var bytecodeCmd = &cobra.Command{
	Use:   "bytecode",
	Short: "Print the gateway diamond bytecode",
	Long:  "Print the creation bytecode, or the runtime bytecode with --deployed",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if deployedBytecode {
			fmt.Println(hexutil.Encode(contracts.GatewayDiamondDeployedBytecode()))
		} else {
			fmt.Println(hexutil.Encode(contracts.GatewayDiamondBytecode()))
		}
	},
}

var errorsCmd = &cobra.Command{
	Use:   "errors",
	Short: "List the custom errors the gateway diamond may revert with",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		infos, err := contracts.GatewayDiamondErrorCatalogue()
		cobra.CheckErr(err)
		fmt.Printf("%-10s %s\n", "Selector", "Signature")
		fmt.Printf("%-10s %s\n", strings.Repeat("─", 10), strings.Repeat("─", 60))
		for _, info := range infos {
			fmt.Printf("%-10s %s\n", info.SelectorHex(), info.Signature)
		}
	},
}

var decodeErrorCmd = &cobra.Command{
	Use:   "decode-error <revert-data>",
	Short: "Decode hex revert data into a gateway diamond error",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := hexutil.Decode(args[0])
		if err != nil {
			exitf("invalid revert data: %v", err)
		}
		decoded, err := contracts.UnpackGatewayDiamondError(data)
		if err != nil {
			exitf("%v", err)
		}
		selector := decoded.ErrorSelector()
		fmt.Printf("%v %v\n", hexutil.Encode(selector[:]), decoded.Error())
	},
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the gateway diamond",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runDeploy(cmd.Context(), opts, deployConfig, os.Stdout))
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify [address]",
	Short: "Check the runtime code of a deployed gateway diamond",
	Long: "Compare the code at address with the gateway diamond runtime bytecode. " +
		"Without an address, the gateway recorded in the deployments file is used.",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var address common.Address
		if len(args) == 1 {
			address = parseEthAddress("address", args[0])
		}
		address, err := gatewayctl.Verify(cmd.Context(), opts, address)
		if errors.Is(err, deployer.ErrRuntimeMismatch) {
			exitf("%v: %v", address.Hex(), err)
		}
		cobra.CheckErr(err)
		fmt.Printf("%v matches the gateway diamond runtime bytecode\n", address.Hex())
	},
}

var deploymentsCmd = &cobra.Command{
	Use:   "deployments",
	Short: "Show the address book of the selected network",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		slog.Debug("Read json and print address...")
		store := deployments.NewStore(opts.DeploymentsFile)
		entry, err := store.Get(opts.Network)
		cobra.CheckErr(err)
		devnet.ShowAddresses(entry)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the deployment attempts of the selected network",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runHistory(cmd.Context(), opts, os.Stdout))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the gateway ABI, error decoder and deployments over HTTP",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(runServe(cmd.Context(), opts))
	},
}

var (
	opts             = gatewayctl.NewGatewayctlOpts()
	debug            bool
	color            bool
	envFile          string
	deployedBytecode bool
	deployConfig     string
)

func init() {
	cmd.PersistentFlags().BoolVarP(&debug, "enable-debug", "d", false, "If set, enable debug output")
	cmd.PersistentFlags().BoolVar(&color, "enable-color", true, "If set, enables logs color")
	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env",
		"Load variables from this file without overriding the environment")

	// network
	cmd.PersistentFlags().StringVar(&opts.Network, "network", opts.Network,
		fmt.Sprintf("Target network (%v)", strings.Join(network.Names(), ", ")))
	cmd.PersistentFlags().StringVar(&opts.RpcUrl, "rpc-url", opts.RpcUrl,
		fmt.Sprintf("Node URL; defaults to $%v", network.EnvRpcUrl))
	cmd.PersistentFlags().StringVar(&opts.DeploymentsFile, "deployments-file", opts.DeploymentsFile,
		"Address book where deployed contracts are recorded")
	cmd.PersistentFlags().DurationVar(&opts.BlockTime, "block-time", opts.BlockTime,
		"Interval between blocks on devnet")

	// history
	cmd.PersistentFlags().StringVar(&opts.DbImplementation, "db-impl", opts.DbImplementation,
		fmt.Sprintf("History database (%v or %v); empty disables it",
			repository.ImplSqlite, repository.ImplPostgres))
	cmd.PersistentFlags().StringVar(&opts.DbDsn, "db-dsn", opts.DbDsn,
		"Sqlite file or postgres connection string")

	// deploy
	deployCmd.Flags().StringVarP(&deployConfig, "config", "c", "gateway.json",
		"Deploy configuration with facets and constructor params")
	deployCmd.Flags().Uint64Var(&opts.Confirmations, "confirmations", opts.Confirmations,
		"Blocks to wait after the deploy transaction is mined")
	deployCmd.Flags().DurationVar(&opts.PollInterval, "poll-interval", opts.PollInterval,
		"Interval between receipt queries")

	bytecodeCmd.Flags().BoolVar(&deployedBytecode, "deployed", false,
		"If set, print the runtime bytecode")

	// http
	serveCmd.Flags().StringVar(&opts.HttpAddress, "http-address", opts.HttpAddress,
		"HTTP address used by the API")
	serveCmd.Flags().IntVarP(&opts.HttpPort, "http-port", "p", opts.HttpPort,
		"HTTP port used by the API")
}

func setup(cmd *cobra.Command, args []string) {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}
	commons.ConfigureLog(logLevel, color && isatty.IsTerminal(os.Stdout.Fd()))
	if err := network.LoadEnv(envFile); err != nil {
		exitf("failed to load %v: %v", envFile, err)
	}
	if _, err := network.Lookup(opts.Network); err != nil {
		exitf("%v", err)
	}
	if opts.Confirmations == 0 {
		exitf("--confirmations must be at least 1")
	}
}

func runDeploy(ctx context.Context, opts gatewayctl.GatewayctlOpts, configFile string, out io.Writer) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	startTime := time.Now()
	result, err := gatewayctl.Deploy(ctx, opts, configFile)
	var revertErr *deployer.RevertError
	if errors.As(err, &revertErr) {
		slog.Error("deploy reverted", "stage", revertErr.Stage,
			"data", hexutil.Encode(revertErr.Data))
		return revertErr
	}
	if err != nil {
		return err
	}
	slog.Info("deploy: done", "after", time.Since(startTime))
	fmt.Fprintf(out, "%-12s %v\n", "Address", result.Address.Hex())
	fmt.Fprintf(out, "%-12s %v\n", "Transaction", result.TxHash.Hex())
	fmt.Fprintf(out, "%-12s %v\n", "Block", result.BlockNumber)
	fmt.Fprintf(out, "%-12s %v\n", "Gas used", result.GasUsed)
	return nil
}

func runHistory(ctx context.Context, opts gatewayctl.GatewayctlOpts, out io.Writer) error {
	repo, err := gatewayctl.OpenHistory(opts)
	if err != nil {
		return err
	}
	if repo == nil {
		return errors.New("history is disabled; set --db-impl")
	}
	defer repo.Db.Close()
	list, err := repo.FindByNetwork(ctx, opts.Network)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%-4s %-9s %-42s %-66s %s\n", "Id", "Status", "Address", "Transaction", "Error")
	for _, d := range list {
		fmt.Fprintf(out, "%-4d %-9s %-42s %-66s %s\n",
			d.Id, d.Status, d.ContractAddress.Hex(), d.TxHash.Hex(), d.RevertError)
	}
	return nil
}

func runServe(ctx context.Context, opts gatewayctl.GatewayctlOpts) error {
	startTime := time.Now()

	// handle signals with notify context
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	w, cleanup, err := gatewayctl.NewSupervisor(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	ready := make(chan struct{}, 1)
	go func() {
		select {
		case <-ready:
			msg := strings.Replace(startupMessage, "HTTP_ADDRESS", opts.HttpAddress, -1)
			msg = strings.Replace(msg, "HTTP_PORT", fmt.Sprint(opts.HttpPort), -1)
			fmt.Println(msg)
			slog.Info("gatewayctl: ready", "after", time.Since(startTime))
		case <-ctx.Done():
		}
	}()
	err = w.Start(ctx, ready)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	cmd.AddCommand(abiCmd, bytecodeCmd, errorsCmd, decodeErrorCmd, deployCmd,
		verifyCmd, deploymentsCmd, historyCmd, serveCmd, CompletionCmd)
	cobra.CheckErr(cmd.Execute())
}

func exitf(format string, args ...any) {
	err := fmt.Sprintf(format, args...)
	slog.Error("configuration error", "error", err)
	os.Exit(1)
}

func parseEthAddress(varName string, value string) common.Address {
	bytes, err := hexutil.Decode(value)
	if err != nil {
		exitf("invalid %v: %v", varName, err)
	}
	if len(bytes) != common.AddressLength {
		exitf("invalid %v: wrong length", varName)
	}
	return common.BytesToAddress(bytes)
}
