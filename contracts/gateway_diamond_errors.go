// Copyright (c) Gabriel de Quadros Ligneul
// SPDX-License-Identifier: Apache-2.0 (see LICENSE)

package contracts

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
)

// ErrInvalidRevertData is returned when revert data does not match any of the
// errors declared by the GatewayDiamond ABI.
var ErrInvalidRevertData = errors.New("invalid revert data")

// GatewayDiamondError is a revert error raised by the GatewayDiamond contract.
type GatewayDiamondError interface {
	error
	// ErrorName is the Solidity name of the error.
	ErrorName() string
	// ErrorSelector is the first 4 bytes of keccak256 of the error signature.
	ErrorSelector() [4]byte
	// Pack encodes the error as revert data: selector followed by the arguments.
	Pack() ([]byte, error)
}

const revertStringName = "Error"

// Error selectors.
var (
	CannotAddFunctionToDiamondThatAlreadyExistsSelector = errorSelector("CannotAddFunctionToDiamondThatAlreadyExists(bytes4)")
	CannotAddSelectorsToZeroAddressSelector             = errorSelector("CannotAddSelectorsToZeroAddress(bytes4[])")
	FunctionNotFoundSelector                            = errorSelector("FunctionNotFound(bytes4)")
	IncorrectFacetCutActionSelector                     = errorSelector("IncorrectFacetCutAction(uint8)")
	InitializationFunctionRevertedSelector              = errorSelector("InitializationFunctionReverted(address,bytes)")
	InvalidCollateralSelector                           = errorSelector("InvalidCollateral()")
	InvalidMajorityPercentageSelector                   = errorSelector("InvalidMajorityPercentage()")
	InvalidSubmissionPeriodSelector                     = errorSelector("InvalidSubmissionPeriod()")
	NoBytecodeAtAddressSelector                         = errorSelector("NoBytecodeAtAddress(address,string)")
	NoSelectorsProvidedForFacetForCutSelector           = errorSelector("NoSelectorsProvidedForFacetForCut(address)")
	OldConfigurationNumberSelector                      = errorSelector("OldConfigurationNumber()")
	RevertStringSelector                                = errorSelector("Error(string)")
)

func errorSelector(sig string) [4]byte {
	var sel [4]byte
	copy(sel[:], crypto.Keccak256([]byte(sig))[:4])
	return sel
}

//
// Error types
//

// CannotAddFunctionToDiamondThatAlreadyExists is raised when a cut adds a
// selector that the diamond already routes.
type CannotAddFunctionToDiamondThatAlreadyExists struct {
	Selector [4]byte
}

func (e *CannotAddFunctionToDiamondThatAlreadyExists) Error() string {
	return fmt.Sprintf("CannotAddFunctionToDiamondThatAlreadyExists(%v)", hexutil.Encode(e.Selector[:]))
}

func (e *CannotAddFunctionToDiamondThatAlreadyExists) ErrorName() string {
	return "CannotAddFunctionToDiamondThatAlreadyExists"
}

func (e *CannotAddFunctionToDiamondThatAlreadyExists) ErrorSelector() [4]byte {
	return CannotAddFunctionToDiamondThatAlreadyExistsSelector
}

func (e *CannotAddFunctionToDiamondThatAlreadyExists) Pack() ([]byte, error) {
	return packError(e.ErrorName(), e.Selector)
}

// CannotAddSelectorsToZeroAddress is raised when selectors are added or
// replaced with the zero address as facet.
type CannotAddSelectorsToZeroAddress struct {
	Selectors [][4]byte
}

func (e *CannotAddSelectorsToZeroAddress) Error() string {
	return fmt.Sprintf("CannotAddSelectorsToZeroAddress(%v)", formatSelectors(e.Selectors))
}

func (e *CannotAddSelectorsToZeroAddress) ErrorName() string {
	return "CannotAddSelectorsToZeroAddress"
}

func (e *CannotAddSelectorsToZeroAddress) ErrorSelector() [4]byte {
	return CannotAddSelectorsToZeroAddressSelector
}

func (e *CannotAddSelectorsToZeroAddress) Pack() ([]byte, error) {
	selectors := e.Selectors
	if selectors == nil {
		selectors = [][4]byte{}
	}
	return packError(e.ErrorName(), selectors)
}

// FunctionNotFound is raised by the fallback when no facet serves the selector.
type FunctionNotFound struct {
	FunctionSelector [4]byte
}

func (e *FunctionNotFound) Error() string {
	return fmt.Sprintf("FunctionNotFound(%v)", hexutil.Encode(e.FunctionSelector[:]))
}

func (e *FunctionNotFound) ErrorName() string {
	return "FunctionNotFound"
}

func (e *FunctionNotFound) ErrorSelector() [4]byte {
	return FunctionNotFoundSelector
}

func (e *FunctionNotFound) Pack() ([]byte, error) {
	return packError(e.ErrorName(), e.FunctionSelector)
}

// IncorrectFacetCutAction is raised for a cut action outside Add/Replace/Remove.
type IncorrectFacetCutAction struct {
	Action uint8
}

func (e *IncorrectFacetCutAction) Error() string {
	return fmt.Sprintf("IncorrectFacetCutAction(%d)", e.Action)
}

func (e *IncorrectFacetCutAction) ErrorName() string {
	return "IncorrectFacetCutAction"
}

func (e *IncorrectFacetCutAction) ErrorSelector() [4]byte {
	return IncorrectFacetCutActionSelector
}

func (e *IncorrectFacetCutAction) Pack() ([]byte, error) {
	return packError(e.ErrorName(), e.Action)
}

// InitializationFunctionReverted is raised when the init delegatecall of a
// diamond cut fails.
type InitializationFunctionReverted struct {
	InitializationContractAddress common.Address
	Calldata                      []byte
}

func (e *InitializationFunctionReverted) Error() string {
	return fmt.Sprintf("InitializationFunctionReverted(%v, %v)",
		e.InitializationContractAddress.Hex(), hexutil.Encode(e.Calldata))
}

func (e *InitializationFunctionReverted) ErrorName() string {
	return "InitializationFunctionReverted"
}

func (e *InitializationFunctionReverted) ErrorSelector() [4]byte {
	return InitializationFunctionRevertedSelector
}

func (e *InitializationFunctionReverted) Pack() ([]byte, error) {
	calldata := e.Calldata
	if calldata == nil {
		calldata = []byte{}
	}
	return packError(e.ErrorName(), e.InitializationContractAddress, calldata)
}

// InvalidCollateral is raised by the constructor for a bad minimum collateral.
type InvalidCollateral struct{}

func (e *InvalidCollateral) Error() string          { return "InvalidCollateral()" }
func (e *InvalidCollateral) ErrorName() string      { return "InvalidCollateral" }
func (e *InvalidCollateral) ErrorSelector() [4]byte { return InvalidCollateralSelector }
func (e *InvalidCollateral) Pack() ([]byte, error)  { return packError(e.ErrorName()) }

// InvalidMajorityPercentage is raised by the constructor for a bad majority.
type InvalidMajorityPercentage struct{}

func (e *InvalidMajorityPercentage) Error() string          { return "InvalidMajorityPercentage()" }
func (e *InvalidMajorityPercentage) ErrorName() string      { return "InvalidMajorityPercentage" }
func (e *InvalidMajorityPercentage) ErrorSelector() [4]byte { return InvalidMajorityPercentageSelector }
func (e *InvalidMajorityPercentage) Pack() ([]byte, error)  { return packError(e.ErrorName()) }

// InvalidSubmissionPeriod is raised by the constructor for a bad bottom-up
// checkpoint period.
type InvalidSubmissionPeriod struct{}

func (e *InvalidSubmissionPeriod) Error() string          { return "InvalidSubmissionPeriod()" }
func (e *InvalidSubmissionPeriod) ErrorName() string      { return "InvalidSubmissionPeriod" }
func (e *InvalidSubmissionPeriod) ErrorSelector() [4]byte { return InvalidSubmissionPeriodSelector }
func (e *InvalidSubmissionPeriod) Pack() ([]byte, error)  { return packError(e.ErrorName()) }

// NoBytecodeAtAddress is raised when a facet or init address has no code.
type NoBytecodeAtAddress struct {
	ContractAddress common.Address
	Message         string
}

func (e *NoBytecodeAtAddress) Error() string {
	return fmt.Sprintf("NoBytecodeAtAddress(%v, %q)", e.ContractAddress.Hex(), e.Message)
}

func (e *NoBytecodeAtAddress) ErrorName() string {
	return "NoBytecodeAtAddress"
}

func (e *NoBytecodeAtAddress) ErrorSelector() [4]byte {
	return NoBytecodeAtAddressSelector
}

func (e *NoBytecodeAtAddress) Pack() ([]byte, error) {
	return packError(e.ErrorName(), e.ContractAddress, e.Message)
}

// NoSelectorsProvidedForFacetForCut is raised for a cut with no selectors.
type NoSelectorsProvidedForFacetForCut struct {
	FacetAddress common.Address
}

func (e *NoSelectorsProvidedForFacetForCut) Error() string {
	return fmt.Sprintf("NoSelectorsProvidedForFacetForCut(%v)", e.FacetAddress.Hex())
}

func (e *NoSelectorsProvidedForFacetForCut) ErrorName() string {
	return "NoSelectorsProvidedForFacetForCut"
}

func (e *NoSelectorsProvidedForFacetForCut) ErrorSelector() [4]byte {
	return NoSelectorsProvidedForFacetForCutSelector
}

func (e *NoSelectorsProvidedForFacetForCut) Pack() ([]byte, error) {
	return packError(e.ErrorName(), e.FacetAddress)
}

// OldConfigurationNumber is raised when a configuration number goes backwards.
type OldConfigurationNumber struct{}

func (e *OldConfigurationNumber) Error() string          { return "OldConfigurationNumber()" }
func (e *OldConfigurationNumber) ErrorName() string      { return "OldConfigurationNumber" }
func (e *OldConfigurationNumber) ErrorSelector() [4]byte { return OldConfigurationNumberSelector }
func (e *OldConfigurationNumber) Pack() ([]byte, error)  { return packError(e.ErrorName()) }

// RevertString is the standard Error(string) raised by require and revert.
type RevertString struct {
	Message string
}

func (e *RevertString) Error() string          { return e.Message }
func (e *RevertString) ErrorName() string      { return revertStringName }
func (e *RevertString) ErrorSelector() [4]byte { return RevertStringSelector }

func (e *RevertString) Pack() ([]byte, error) {
	data, err := revertStringArgs.Pack(e.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to pack Error(string): %w", err)
	}
	return append(common.CopyBytes(RevertStringSelector[:]), data...), nil
}

//
// Decoding
//

var revertStringArgs = func() abi.Arguments {
	stringTy, err := abi.NewType("string", "", nil)
	if err != nil {
		panic(err)
	}
	return abi.Arguments{{Name: "message", Type: stringTy}}
}()

type errorEntry struct {
	name     string
	selector [4]byte
	decode   func(values []interface{}) (GatewayDiamondError, bool)
}

var errorEntries = []errorEntry{
	{
		name:     "CannotAddFunctionToDiamondThatAlreadyExists",
		selector: CannotAddFunctionToDiamondThatAlreadyExistsSelector,
		decode: func(values []interface{}) (GatewayDiamondError, bool) {
			sel, ok := values[0].([4]byte)
			return &CannotAddFunctionToDiamondThatAlreadyExists{Selector: sel}, ok
		},
	},
	{
		name:     "CannotAddSelectorsToZeroAddress",
		selector: CannotAddSelectorsToZeroAddressSelector,
		decode: func(values []interface{}) (GatewayDiamondError, bool) {
			sels, ok := values[0].([][4]byte)
			if len(sels) == 0 {
				sels = nil
			}
			return &CannotAddSelectorsToZeroAddress{Selectors: sels}, ok
		},
	},
	{
		name:     "FunctionNotFound",
		selector: FunctionNotFoundSelector,
		decode: func(values []interface{}) (GatewayDiamondError, bool) {
			sel, ok := values[0].([4]byte)
			return &FunctionNotFound{FunctionSelector: sel}, ok
		},
	},
	{
		name:     "IncorrectFacetCutAction",
		selector: IncorrectFacetCutActionSelector,
		decode: func(values []interface{}) (GatewayDiamondError, bool) {
			action, ok := values[0].(uint8)
			return &IncorrectFacetCutAction{Action: action}, ok
		},
	},
	{
		name:     "InitializationFunctionReverted",
		selector: InitializationFunctionRevertedSelector,
		decode: func(values []interface{}) (GatewayDiamondError, bool) {
			addr, ok1 := values[0].(common.Address)
			calldata, ok2 := values[1].([]byte)
			if len(calldata) == 0 {
				calldata = nil
			}
			return &InitializationFunctionReverted{
				InitializationContractAddress: addr,
				Calldata:                      calldata,
			}, ok1 && ok2
		},
	},
	{
		name:     "InvalidCollateral",
		selector: InvalidCollateralSelector,
		decode: func([]interface{}) (GatewayDiamondError, bool) {
			return &InvalidCollateral{}, true
		},
	},
	{
		name:     "InvalidMajorityPercentage",
		selector: InvalidMajorityPercentageSelector,
		decode: func([]interface{}) (GatewayDiamondError, bool) {
			return &InvalidMajorityPercentage{}, true
		},
	},
	{
		name:     "InvalidSubmissionPeriod",
		selector: InvalidSubmissionPeriodSelector,
		decode: func([]interface{}) (GatewayDiamondError, bool) {
			return &InvalidSubmissionPeriod{}, true
		},
	},
	{
		name:     "NoBytecodeAtAddress",
		selector: NoBytecodeAtAddressSelector,
		decode: func(values []interface{}) (GatewayDiamondError, bool) {
			addr, ok1 := values[0].(common.Address)
			msg, ok2 := values[1].(string)
			return &NoBytecodeAtAddress{ContractAddress: addr, Message: msg}, ok1 && ok2
		},
	},
	{
		name:     "NoSelectorsProvidedForFacetForCut",
		selector: NoSelectorsProvidedForFacetForCutSelector,
		decode: func(values []interface{}) (GatewayDiamondError, bool) {
			addr, ok := values[0].(common.Address)
			return &NoSelectorsProvidedForFacetForCut{FacetAddress: addr}, ok
		},
	},
	{
		name:     "OldConfigurationNumber",
		selector: OldConfigurationNumberSelector,
		decode: func([]interface{}) (GatewayDiamondError, bool) {
			return &OldConfigurationNumber{}, true
		},
	},
}

var errorsBySelector = func() map[[4]byte]errorEntry {
	m := make(map[[4]byte]errorEntry, len(errorEntries))
	for _, entry := range errorEntries {
		m[entry.selector] = entry
	}
	return m
}()

// IsGatewayDiamondErrorSelector reports whether the selector belongs to one of
// the contract errors or to the standard Error(string).
func IsGatewayDiamondErrorSelector(selector [4]byte) bool {
	if selector == RevertStringSelector {
		return true
	}
	_, ok := errorsBySelector[selector]
	return ok
}

// UnpackGatewayDiamondError decodes revert data into the matching error type.
// Error(string) is tried before the contract errors. Empty dynamic arrays and
// bytes decode to nil, as in the zero value of each error.
func UnpackGatewayDiamondError(data []byte) (GatewayDiamondError, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: %d bytes is shorter than a selector", ErrInvalidRevertData, len(data))
	}
	var selector [4]byte
	copy(selector[:], data[:4])

	if selector == RevertStringSelector {
		values, err := revertStringArgs.Unpack(data[4:])
		if err != nil {
			return nil, fmt.Errorf("%w: Error(string): %v", ErrInvalidRevertData, err)
		}
		msg, ok := values[0].(string)
		if !ok {
			return nil, fmt.Errorf("%w: Error(string): unexpected type %T", ErrInvalidRevertData, values[0])
		}
		return &RevertString{Message: msg}, nil
	}

	entry, ok := errorsBySelector[selector]
	if !ok {
		return nil, fmt.Errorf("%w: unknown selector %v", ErrInvalidRevertData, hexutil.Encode(selector[:]))
	}
	parsed, err := GatewayDiamondMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	abiErr, ok := parsed.Errors[entry.name]
	if !ok {
		return nil, fmt.Errorf("error %v missing from ABI", entry.name)
	}
	values, err := abiErr.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrInvalidRevertData, entry.name, err)
	}
	if len(values) != len(abiErr.Inputs) {
		return nil, fmt.Errorf("%w: %v: got %d values", ErrInvalidRevertData, entry.name, len(values))
	}
	decoded, ok := entry.decode(values)
	if !ok {
		return nil, fmt.Errorf("%w: %v: unexpected argument types", ErrInvalidRevertData, entry.name)
	}
	return decoded, nil
}

// RevertDataFromCallErr extracts the revert data carried by a JSON-RPC error.
func RevertDataFromCallErr(err error) ([]byte, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}
	switch data := dataErr.ErrorData().(type) {
	case string:
		raw, err := hexutil.Decode(data)
		if err != nil {
			return nil, false
		}
		return raw, true
	case []byte:
		return data, true
	case hexutil.Bytes:
		return data, true
	default:
		return nil, false
	}
}

// GatewayDiamondErrorFromCallErr decodes the revert carried by a JSON-RPC error
// returned from eth_call or eth_estimateGas.
func GatewayDiamondErrorFromCallErr(err error) (GatewayDiamondError, bool) {
	data, ok := RevertDataFromCallErr(err)
	if !ok {
		return nil, false
	}
	decoded, decodeErr := UnpackGatewayDiamondError(data)
	if decodeErr != nil {
		return nil, false
	}
	return decoded, true
}

// GatewayDiamondErrorInfo describes one entry of the error catalogue.
type GatewayDiamondErrorInfo struct {
	Name      string  `json:"name"`
	Signature string  `json:"signature"`
	Selector  [4]byte `json:"-"`
}

// SelectorHex returns the selector as 0x-prefixed hex.
func (i GatewayDiamondErrorInfo) SelectorHex() string {
	return hexutil.Encode(i.Selector[:])
}

// GatewayDiamondErrorCatalogue lists the contract errors by name, followed by
// the standard Error(string).
func GatewayDiamondErrorCatalogue() ([]GatewayDiamondErrorInfo, error) {
	parsed, err := GatewayDiamondMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	infos := make([]GatewayDiamondErrorInfo, 0, len(parsed.Errors)+1)
	for name, abiErr := range parsed.Errors {
		var sel [4]byte
		copy(sel[:], abiErr.ID[:4])
		infos = append(infos, GatewayDiamondErrorInfo{
			Name:      name,
			Signature: abiErr.Sig,
			Selector:  sel,
		})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	infos = append(infos, GatewayDiamondErrorInfo{
		Name:      revertStringName,
		Signature: "Error(string)",
		Selector:  RevertStringSelector,
	})
	return infos, nil
}

func packError(name string, args ...interface{}) ([]byte, error) {
	parsed, err := GatewayDiamondMetaData.GetAbi()
	if err != nil {
		return nil, err
	}
	abiErr, ok := parsed.Errors[name]
	if !ok {
		return nil, fmt.Errorf("error %v missing from ABI", name)
	}
	data, err := abiErr.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %v: %w", name, err)
	}
	return append(common.CopyBytes(abiErr.ID[:4]), data...), nil
}

func formatSelectors(selectors [][4]byte) string {
	parts := make([]string, len(selectors))
	for i, sel := range selectors {
		parts[i] = hexutil.Encode(sel[:])
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
