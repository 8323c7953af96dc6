package deployer

import (
	"encoding/json"
	"fmt"
	stdmath "math"
	"math/big"
	"os"
	"path/filepath"

	"github.com/calindra/gatewayctl/contracts"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/tidwall/gjson"
)

// Config is the JSON description of a gateway deployment.
type Config struct {
	Facets []FacetConfig `json:"facets"`
	Params ParamsConfig  `json:"params"`

	// directory of the config file, artifact paths are relative to it
	dir string
}

// FacetConfig describes one facet cut. Selectors are either listed or taken
// from the methods of a compiled artifact.
type FacetConfig struct {
	Name      string   `json:"name"`
	Address   string   `json:"address,omitempty"`
	Action    string   `json:"action,omitempty"`
	Selectors []string `json:"selectors,omitempty"`
	Artifact  string   `json:"artifact,omitempty"`
	Except    []string `json:"except,omitempty"`
}

type SubnetIDConfig struct {
	Root  math.HexOrDecimal64 `json:"root"`
	Route []common.Address    `json:"route"`
}

type ValidatorConfig struct {
	Weight   *math.HexOrDecimal256 `json:"weight"`
	Addr     common.Address        `json:"addr"`
	Metadata hexutil.Bytes         `json:"metadata"`
}

type ParamsConfig struct {
	NetworkName           SubnetIDConfig        `json:"networkName"`
	BottomUpCheckPeriod   math.HexOrDecimal64   `json:"bottomUpCheckPeriod"`
	MinCollateral         *math.HexOrDecimal256 `json:"minCollateral"`
	MsgFee                *math.HexOrDecimal256 `json:"msgFee"`
	MajorityPercentage    math.HexOrDecimal64   `json:"majorityPercentage"`
	GenesisValidators     []ValidatorConfig     `json:"genesisValidators"`
	ActiveValidatorsLimit math.HexOrDecimal64   `json:"activeValidatorsLimit"`
}

// AddressResolver finds facet addresses that the config leaves empty.
type AddressResolver interface {
	Lookup(network string, path ...string) (string, bool, error)
}

// LoadConfig reads the deploy config at path.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deploy config: %w", err)
	}
	var config Config
	if err := json.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to decode deploy config: %w", err)
	}
	if err := config.Params.checkRanges(); err != nil {
		return nil, fmt.Errorf("invalid deploy config: %w", err)
	}
	config.dir = filepath.Dir(path)
	return &config, nil
}

// checkRanges rejects values that do not fit the constructor tuple.
func (p ParamsConfig) checkRanges() error {
	if p.MajorityPercentage > stdmath.MaxUint8 {
		return fmt.Errorf("majorityPercentage %d does not fit uint8", p.MajorityPercentage)
	}
	if p.ActiveValidatorsLimit > stdmath.MaxUint16 {
		return fmt.Errorf("activeValidatorsLimit %d does not fit uint16", p.ActiveValidatorsLimit)
	}
	return nil
}

// ConstructorParams converts the params into the constructor tuple.
func (c *Config) ConstructorParams() contracts.GatewayDiamondConstructorParams {
	p := c.Params
	route := p.NetworkName.Route
	if route == nil {
		route = []common.Address{}
	}
	validators := make([]contracts.Validator, len(p.GenesisValidators))
	for i, v := range p.GenesisValidators {
		metadata := []byte(v.Metadata)
		if metadata == nil {
			metadata = []byte{}
		}
		validators[i] = contracts.Validator{
			Weight:   toBig(v.Weight),
			Addr:     v.Addr,
			Metadata: metadata,
		}
	}
	return contracts.GatewayDiamondConstructorParams{
		NetworkName: contracts.SubnetID{
			Root:  uint64(p.NetworkName.Root),
			Route: route,
		},
		BottomUpCheckPeriod:   uint64(p.BottomUpCheckPeriod),
		MinCollateral:         toBig(p.MinCollateral),
		MsgFee:                toBig(p.MsgFee),
		MajorityPercentage:    uint8(p.MajorityPercentage),
		GenesisValidators:     validators,
		ActiveValidatorsLimit: uint16(p.ActiveValidatorsLimit),
	}
}

// FacetCuts builds the diamond cuts. Facets without an address are looked up
// by name in the address book of network.
func (c *Config) FacetCuts(resolver AddressResolver, network string) ([]contracts.IDiamondFacetCut, error) {
	cuts := make([]contracts.IDiamondFacetCut, 0, len(c.Facets))
	for _, facet := range c.Facets {
		cut, err := c.facetCut(resolver, network, facet)
		if err != nil {
			return nil, fmt.Errorf("facet %v: %w", facet.Name, err)
		}
		cuts = append(cuts, cut)
	}
	return cuts, nil
}

func (c *Config) facetCut(resolver AddressResolver, network string, facet FacetConfig) (contracts.IDiamondFacetCut, error) {
	action, err := contracts.ParseFacetCutAction(facet.Action)
	if err != nil {
		return contracts.IDiamondFacetCut{}, err
	}

	address := facet.Address
	if address == "" {
		if resolver == nil {
			return contracts.IDiamondFacetCut{}, fmt.Errorf("no address and no address book")
		}
		found, ok, err := resolver.Lookup(network, facet.Name)
		if err != nil {
			return contracts.IDiamondFacetCut{}, err
		}
		if !ok {
			return contracts.IDiamondFacetCut{}, fmt.Errorf("no address for %v in %v deployments", facet.Name, network)
		}
		address = found
	}
	if !common.IsHexAddress(address) {
		return contracts.IDiamondFacetCut{}, fmt.Errorf("invalid address %q", address)
	}

	var selectors [][4]byte
	for _, raw := range facet.Selectors {
		sel, err := contracts.ParseSelector(raw)
		if err != nil {
			return contracts.IDiamondFacetCut{}, err
		}
		selectors = append(selectors, sel)
	}
	if facet.Artifact != "" {
		facetAbi, err := c.loadArtifactAbi(facet.Artifact)
		if err != nil {
			return contracts.IDiamondFacetCut{}, err
		}
		selectors = append(selectors, contracts.SelectorsFromABI(facetAbi, facet.Except...)...)
	}
	return contracts.NewFacetCut(common.HexToAddress(address), action, selectors...), nil
}

// loadArtifactAbi accepts a hardhat artifact or a bare ABI array.
func (c *Config) loadArtifactAbi(path string) (*abi.ABI, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.dir, path)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}
	if !gjson.ValidBytes(content) {
		return nil, fmt.Errorf("invalid artifact %v", path)
	}
	raw := content
	if result := gjson.GetBytes(content, "abi"); result.Exists() {
		raw = []byte(result.Raw)
	}
	var parsed abi.ABI
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse artifact abi: %w", err)
	}
	return &parsed, nil
}

func toBig(v *math.HexOrDecimal256) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set((*big.Int)(v))
}
