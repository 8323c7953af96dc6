// Copyright (c) Gabriel de Quadros Ligneul
// SPDX-License-Identifier: Apache-2.0 (see LICENSE)

package contracts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// FacetCutAction is the action applied to the selectors of a facet cut.
type FacetCutAction uint8

const (
	FacetCutActionAdd FacetCutAction = iota
	FacetCutActionReplace
	FacetCutActionRemove
)

func (a FacetCutAction) String() string {
	switch a {
	case FacetCutActionAdd:
		return "add"
	case FacetCutActionReplace:
		return "replace"
	case FacetCutActionRemove:
		return "remove"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// ParseFacetCutAction parses add, replace or remove, case-insensitive.
// The empty string means add.
func ParseFacetCutAction(s string) (FacetCutAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "add":
		return FacetCutActionAdd, nil
	case "replace":
		return FacetCutActionReplace, nil
	case "remove":
		return FacetCutActionRemove, nil
	default:
		return 0, fmt.Errorf("invalid facet cut action: %q", s)
	}
}

// NewFacetCut builds the constructor tuple for a single facet.
func NewFacetCut(facet common.Address, action FacetCutAction, selectors ...[4]byte) IDiamondFacetCut {
	return IDiamondFacetCut{
		FacetAddress:      facet,
		Action:            uint8(action),
		FunctionSelectors: selectors,
	}
}

// ParseSelector decodes a 0x-prefixed 4 byte selector.
func ParseSelector(s string) ([4]byte, error) {
	var sel [4]byte
	raw, err := hexutil.Decode(s)
	if err != nil {
		return sel, fmt.Errorf("invalid selector %q: %w", s, err)
	}
	if len(raw) != len(sel) {
		return sel, fmt.Errorf("invalid selector %q: expected 4 bytes, got %d", s, len(raw))
	}
	copy(sel[:], raw)
	return sel, nil
}

// SelectorsFromABI returns the selectors of every method in the facet ABI,
// ordered by signature, skipping the methods named in except.
func SelectorsFromABI(facetAbi *abi.ABI, except ...string) [][4]byte {
	skip := make(map[string]bool, len(except))
	for _, name := range except {
		skip[name] = true
	}
	methods := make([]abi.Method, 0, len(facetAbi.Methods))
	for _, method := range facetAbi.Methods {
		if skip[method.Name] || skip[method.Sig] {
			continue
		}
		methods = append(methods, method)
	}
	sort.Slice(methods, func(i, j int) bool {
		return methods[i].Sig < methods[j].Sig
	})
	selectors := make([][4]byte, len(methods))
	for i, method := range methods {
		copy(selectors[i][:], method.ID)
	}
	return selectors
}

// ValidateFacetCuts checks the cuts against the diamond cut rules before they
// are sent, so the failure surfaces as the same error the constructor raises.
func ValidateFacetCuts(cuts []IDiamondFacetCut) error {
	seen := make(map[[4]byte]common.Address)
	for _, cut := range cuts {
		if len(cut.FunctionSelectors) == 0 {
			return &NoSelectorsProvidedForFacetForCut{FacetAddress: cut.FacetAddress}
		}
		switch FacetCutAction(cut.Action) {
		case FacetCutActionAdd:
			if cut.FacetAddress == (common.Address{}) {
				return &CannotAddSelectorsToZeroAddress{Selectors: cut.FunctionSelectors}
			}
			for _, sel := range cut.FunctionSelectors {
				if _, ok := seen[sel]; ok {
					return &CannotAddFunctionToDiamondThatAlreadyExists{Selector: sel}
				}
				seen[sel] = cut.FacetAddress
			}
		case FacetCutActionReplace:
			if cut.FacetAddress == (common.Address{}) {
				return &CannotAddSelectorsToZeroAddress{Selectors: cut.FunctionSelectors}
			}
			for _, sel := range cut.FunctionSelectors {
				seen[sel] = cut.FacetAddress
			}
		case FacetCutActionRemove:
			for _, sel := range cut.FunctionSelectors {
				delete(seen, sel)
			}
		default:
			return &IncorrectFacetCutAction{Action: cut.Action}
		}
	}
	return nil
}
