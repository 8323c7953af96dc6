// Copyright (c) Gabriel de Quadros Ligneul
// SPDX-License-Identifier: Apache-2.0 (see LICENSE)

// Package api serves the gateway diamond artifacts, its error catalogue and
// the recorded deployments over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/calindra/gatewayctl/contracts"
	"github.com/calindra/gatewayctl/internal/network"
	"github.com/calindra/gatewayctl/internal/repository"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Timeout of each request.
const HttpTimeout = 10 * time.Second

// Size limit of decode requests.
const bodySizeLimit = "64K"

// AddressBook reads the deployed addresses of a network.
type AddressBook interface {
	Get(network string) (map[string]any, error)
}

// History reads the deployment attempts of a network.
type History interface {
	FindByNetwork(ctx context.Context, network string) ([]repository.Deployment, error)
}

// NewEcho creates an echo instance with the default middlewares.
func NewEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		ErrorMessage: "Request timed out",
		Timeout:      HttpTimeout,
	}))
	return e
}

// Register the gateway API to echo. Book and history may be nil.
func Register(e *echo.Echo, book AddressBook, history History, registry *prometheus.Registry) {
	a := &gatewayAPI{
		book:    book,
		history: history,
		metrics: newMetrics(registry),
	}
	e.GET("/abi", a.GetAbi)
	e.GET("/bytecode", a.GetBytecode)
	e.GET("/errors", a.GetErrors)
	e.POST("/errors/decode", a.DecodeError, middleware.BodyLimit(bodySizeLimit))
	e.GET("/deployments/:network", a.GetDeployments)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}

// Shared struct for request handlers.
type gatewayAPI struct {
	book    AddressBook
	history History
	metrics *metrics
}

type errorResponse struct {
	Error string `json:"error"`
}

type bytecodeResponse struct {
	Kind     string `json:"kind"`
	Bytecode string `json:"bytecode"`
}

type catalogueEntry struct {
	Name      string `json:"name"`
	Signature string `json:"signature"`
	Selector  string `json:"selector"`
}

type decodeRequest struct {
	Data string `json:"data"`
}

type decodeResponse struct {
	Name     string `json:"name"`
	Selector string `json:"selector"`
	Message  string `json:"message"`
}

type deploymentResponse struct {
	TxHash          string `json:"txHash"`
	ContractAddress string `json:"contractAddress"`
	Deployer        string `json:"deployer"`
	Status          string `json:"status"`
	RevertError     string `json:"revertError,omitempty"`
	BlockNumber     uint64 `json:"blockNumber"`
	CreatedAt       string `json:"createdAt"`
}

type deploymentsResponse struct {
	Network   string               `json:"network"`
	ChainId   uint64               `json:"chainId"`
	Addresses map[string]any       `json:"addresses"`
	History   []deploymentResponse `json:"history"`
}

// Handle GET requests to /abi.
func (a *gatewayAPI) GetAbi(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(contracts.GatewayDiamondMetaData.ABI))
}

// Handle GET requests to /bytecode.
func (a *gatewayAPI) GetBytecode(c echo.Context) error {
	kind := c.QueryParam("kind")
	var code []byte
	switch kind {
	case "", "creation":
		kind = "creation"
		code = contracts.GatewayDiamondBytecode()
	case "deployed":
		code = contracts.GatewayDiamondDeployedBytecode()
	default:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "kind must be creation or deployed"})
	}
	return c.JSON(http.StatusOK, bytecodeResponse{Kind: kind, Bytecode: hexutil.Encode(code)})
}

// Handle GET requests to /errors.
func (a *gatewayAPI) GetErrors(c echo.Context) error {
	infos, err := contracts.GatewayDiamondErrorCatalogue()
	if err != nil {
		return err
	}
	entries := make([]catalogueEntry, len(infos))
	for i, info := range infos {
		entries[i] = catalogueEntry{
			Name:      info.Name,
			Signature: info.Signature,
			Selector:  info.SelectorHex(),
		}
	}
	return c.JSON(http.StatusOK, entries)
}

// Handle POST requests to /errors/decode.
func (a *gatewayAPI) DecodeError(c echo.Context) error {
	var req decodeRequest
	if err := c.Bind(&req); err != nil {
		a.metrics.observeDecode(outcomeBadRequest, "")
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid body"})
	}
	data, err := hexutil.Decode(req.Data)
	if err != nil {
		a.metrics.observeDecode(outcomeBadRequest, "")
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "data: " + err.Error()})
	}
	decoded, err := contracts.UnpackGatewayDiamondError(data)
	if err != nil {
		a.metrics.observeDecode(outcomeInvalid, "")
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	}
	selector := decoded.ErrorSelector()
	a.metrics.observeDecode(outcomeDecoded, decoded.ErrorName())
	return c.JSON(http.StatusOK, decodeResponse{
		Name:     decoded.ErrorName(),
		Selector: hexutil.Encode(selector[:]),
		Message:  decoded.Error(),
	})
}

// Handle GET requests to /deployments/{network}.
func (a *gatewayAPI) GetDeployments(c echo.Context) error {
	profile, err := network.Lookup(c.Param("network"))
	if errors.Is(err, network.ErrUnknownNetwork) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	}
	if err != nil {
		return err
	}
	resp := deploymentsResponse{
		Network:   profile.Name,
		ChainId:   profile.ChainID,
		Addresses: map[string]any{},
		History:   []deploymentResponse{},
	}
	if a.book != nil {
		addresses, err := a.book.Get(profile.Name)
		if err != nil {
			slog.Error("api: failed to read address book", "error", err)
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to read address book"})
		}
		resp.Addresses = addresses
	}
	if a.history != nil {
		history, err := a.history.FindByNetwork(c.Request().Context(), profile.Name)
		if err != nil {
			slog.Error("api: failed to read history", "error", err)
			return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to read history"})
		}
		for _, d := range history {
			resp.History = append(resp.History, deploymentResponse{
				TxHash:          d.TxHash.Hex(),
				ContractAddress: d.ContractAddress.Hex(),
				Deployer:        d.Deployer.Hex(),
				Status:          string(d.Status),
				RevertError:     d.RevertError,
				BlockNumber:     d.BlockNumber,
				CreatedAt:       d.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
	}
	return c.JSON(http.StatusOK, resp)
}
