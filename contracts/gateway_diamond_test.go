package contracts

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

// offlineBackend panics on any call; deploys in these tests never reach it.
type offlineBackend struct {
	bind.ContractBackend
}

func TestMetaDataParses(t *testing.T) {
	parsed, err := GatewayDiamondMetaData.GetAbi()
	require.NoError(t, err)
	require.Len(t, parsed.Errors, 11)
	require.Empty(t, parsed.Methods)
	require.Empty(t, parsed.Events)
	require.True(t, parsed.HasFallback())
	require.True(t, parsed.HasReceive())
	require.Len(t, parsed.Constructor.Inputs, 2)
	require.Equal(t, "_diamondCut", parsed.Constructor.Inputs[0].Name)
	require.Equal(t, "params", parsed.Constructor.Inputs[1].Name)
}

func TestBytecode(t *testing.T) {
	creation := GatewayDiamondBytecode()
	deployed := GatewayDiamondDeployedBytecode()
	require.Len(t, creation, 5803)
	require.Len(t, deployed, 307)
	require.True(t, bytes.HasPrefix(creation, common.FromHex("0x6080604052")))
	require.True(t, bytes.Contains(creation, deployed))

	// callers get their own copy
	creation[0] = 0x00
	require.Equal(t, byte(0x60), GatewayDiamondBytecode()[0])
}

func TestDeployGatewayDiamondOffline(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(314159))
	require.NoError(t, err)
	auth.NoSend = true
	auth.Nonce = big.NewInt(7)
	auth.GasPrice = big.NewInt(1_000_000_000)
	auth.GasLimit = 5_000_000

	facet := common.HexToAddress("0x00000000000000000000000000000000000000f1")
	cuts := []IDiamondFacetCut{
		NewFacetCut(facet, FacetCutActionAdd, [4]byte{0xde, 0xad, 0xbe, 0xef}),
	}
	params := GatewayDiamondConstructorParams{
		NetworkName:         SubnetID{Root: 314159, Route: []common.Address{}},
		BottomUpCheckPeriod: 10,
		MinCollateral:       big.NewInt(1_000_000_000_000_000_000),
		MsgFee:              big.NewInt(10),
		MajorityPercentage:  66,
		GenesisValidators: []Validator{
			{Weight: big.NewInt(100), Addr: auth.From, Metadata: []byte{0x01}},
		},
		ActiveValidatorsLimit: 100,
	}

	address, tx, instance, err := DeployGatewayDiamond(auth, offlineBackend{}, cuts, params)
	require.NoError(t, err)
	require.NotNil(t, instance)
	require.Nil(t, tx.To())
	require.Equal(t, uint64(7), tx.Nonce())
	require.Equal(t, crypto.CreateAddress(auth.From, 7), address)

	parsed, err := GatewayDiamondMetaData.GetAbi()
	require.NoError(t, err)
	args, err := parsed.Pack("", cuts, params)
	require.NoError(t, err)
	require.Equal(t, append(GatewayDiamondBytecode(), args...), tx.Data())
}

func TestReceiveAndFallbackOffline(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	auth, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(314159))
	require.NoError(t, err)
	auth.NoSend = true
	auth.Nonce = big.NewInt(0)
	auth.GasPrice = big.NewInt(1)
	auth.GasLimit = 100_000
	auth.Value = big.NewInt(5)

	address := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	diamond, err := NewGatewayDiamond(address, offlineBackend{})
	require.NoError(t, err)

	tx, err := diamond.Receive(auth)
	require.NoError(t, err)
	require.Equal(t, address, *tx.To())
	require.Empty(t, tx.Data())
	require.Equal(t, big.NewInt(5), tx.Value())

	session := &GatewayDiamondSession{Contract: diamond, TransactOpts: *auth}
	calldata := common.FromHex("0xdeadbeef0000")
	tx, err = session.Fallback(calldata)
	require.NoError(t, err)
	require.Equal(t, calldata, tx.Data())
}

func TestSelectorsFromABI(t *testing.T) {
	const facetJSON = `[
		{"type":"function","name":"foo","inputs":[],"outputs":[],"stateMutability":"view"},
		{"type":"function","name":"bar","inputs":[{"name":"x","type":"uint256"}],"outputs":[],"stateMutability":"nonpayable"},
		{"type":"function","name":"baz","inputs":[{"name":"a","type":"address"}],"outputs":[],"stateMutability":"nonpayable"}
	]`
	facetAbi, err := abi.JSON(strings.NewReader(facetJSON))
	require.NoError(t, err)

	selectors := SelectorsFromABI(&facetAbi, "foo")
	require.Len(t, selectors, 2)
	require.Equal(t, crypto.Keccak256([]byte("bar(uint256)"))[:4], selectors[0][:])
	require.Equal(t, crypto.Keccak256([]byte("baz(address)"))[:4], selectors[1][:])
}

func TestParseSelector(t *testing.T) {
	sel, err := ParseSelector("0x5416eb98")
	require.NoError(t, err)
	require.Equal(t, FunctionNotFoundSelector, sel)

	_, err = ParseSelector("0x5416eb")
	require.Error(t, err)
	_, err = ParseSelector("5416eb98")
	require.Error(t, err)
}

func TestParseFacetCutAction(t *testing.T) {
	action, err := ParseFacetCutAction("Replace")
	require.NoError(t, err)
	require.Equal(t, FacetCutActionReplace, action)
	require.Equal(t, "replace", action.String())

	action, err = ParseFacetCutAction("")
	require.NoError(t, err)
	require.Equal(t, FacetCutActionAdd, action)

	_, err = ParseFacetCutAction("upgrade")
	require.Error(t, err)
	require.Equal(t, "unknown(9)", FacetCutAction(9).String())
}

func TestValidateFacetCuts(t *testing.T) {
	facetA := common.HexToAddress("0x00000000000000000000000000000000000000a1")
	facetB := common.HexToAddress("0x00000000000000000000000000000000000000b2")
	selX := [4]byte{1, 2, 3, 4}
	selY := [4]byte{5, 6, 7, 8}

	require.NoError(t, ValidateFacetCuts([]IDiamondFacetCut{
		NewFacetCut(facetA, FacetCutActionAdd, selX),
		NewFacetCut(facetB, FacetCutActionAdd, selY),
		NewFacetCut(facetB, FacetCutActionReplace, selX),
		NewFacetCut(common.Address{}, FacetCutActionRemove, selY),
		NewFacetCut(facetA, FacetCutActionAdd, selY),
	}))

	err := ValidateFacetCuts([]IDiamondFacetCut{NewFacetCut(facetA, FacetCutActionAdd)})
	var noSelectors *NoSelectorsProvidedForFacetForCut
	require.ErrorAs(t, err, &noSelectors)
	require.Equal(t, facetA, noSelectors.FacetAddress)

	err = ValidateFacetCuts([]IDiamondFacetCut{NewFacetCut(common.Address{}, FacetCutActionAdd, selX)})
	var zeroAddress *CannotAddSelectorsToZeroAddress
	require.ErrorAs(t, err, &zeroAddress)
	require.Equal(t, [][4]byte{selX}, zeroAddress.Selectors)

	err = ValidateFacetCuts([]IDiamondFacetCut{
		NewFacetCut(facetA, FacetCutActionAdd, selX),
		NewFacetCut(facetB, FacetCutActionAdd, selX),
	})
	var exists *CannotAddFunctionToDiamondThatAlreadyExists
	require.ErrorAs(t, err, &exists)
	require.Equal(t, selX, exists.Selector)

	err = ValidateFacetCuts([]IDiamondFacetCut{{FacetAddress: facetA, Action: 3, FunctionSelectors: [][4]byte{selX}}})
	var badAction *IncorrectFacetCutAction
	require.ErrorAs(t, err, &badAction)
	require.Equal(t, uint8(3), badAction.Action)
}
