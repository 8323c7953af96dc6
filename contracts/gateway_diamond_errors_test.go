package contracts

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/suite"
)

type GatewayDiamondErrorsSuite struct {
	suite.Suite
}

func TestGatewayDiamondErrorsSuite(t *testing.T) {
	suite.Run(t, new(GatewayDiamondErrorsSuite))
}

type fakeDataError struct {
	data interface{}
}

func (e fakeDataError) Error() string          { return "execution reverted" }
func (e fakeDataError) ErrorData() interface{} { return e.data }

func (s *GatewayDiamondErrorsSuite) TestSelectors() {
	expected := map[string][4]byte{
		"0xebbf5d07": CannotAddFunctionToDiamondThatAlreadyExistsSelector,
		"0x0ae3681c": CannotAddSelectorsToZeroAddressSelector,
		"0x5416eb98": FunctionNotFoundSelector,
		"0x7fe9a41e": IncorrectFacetCutActionSelector,
		"0x192105d7": InitializationFunctionRevertedSelector,
		"0xd1ef4cea": InvalidCollateralSelector,
		"0x75c3b427": InvalidMajorityPercentageSelector,
		"0x312f8e05": InvalidSubmissionPeriodSelector,
		"0x919834b9": NoBytecodeAtAddressSelector,
		"0xe767f91f": NoSelectorsProvidedForFacetForCutSelector,
		"0x6e8d7c4a": OldConfigurationNumberSelector,
		"0x08c379a0": RevertStringSelector,
	}
	for hex, sel := range expected {
		s.Equal(hex, hexutil.Encode(sel[:]))
		s.True(IsGatewayDiamondErrorSelector(sel))
	}
	s.False(IsGatewayDiamondErrorSelector([4]byte{0xca, 0xfe, 0xca, 0xfe}))
}

func (s *GatewayDiamondErrorsSuite) TestSelectorsMatchABI() {
	parsed, err := GatewayDiamondMetaData.GetAbi()
	s.Require().NoError(err)
	for _, entry := range errorEntries {
		abiErr, ok := parsed.Errors[entry.name]
		s.Require().True(ok, entry.name)
		s.Equal(abiErr.ID[:4], entry.selector[:], entry.name)
	}
}

func (s *GatewayDiamondErrorsSuite) TestUnpackFunctionNotFound() {
	data := common.FromHex("0x5416eb98" +
		"1234567800000000000000000000000000000000000000000000000000000000")
	decoded, err := UnpackGatewayDiamondError(data)
	s.Require().NoError(err)
	s.Equal(&FunctionNotFound{FunctionSelector: [4]byte{0x12, 0x34, 0x56, 0x78}}, decoded)
	s.Equal("FunctionNotFound", decoded.ErrorName())
	s.Equal("FunctionNotFound(0x12345678)", decoded.Error())
}

func (s *GatewayDiamondErrorsSuite) TestUnpackIncorrectFacetCutAction() {
	data := common.FromHex("0x7fe9a41e" +
		"0000000000000000000000000000000000000000000000000000000000000003")
	decoded, err := UnpackGatewayDiamondError(data)
	s.Require().NoError(err)
	s.Equal(&IncorrectFacetCutAction{Action: 3}, decoded)
	s.Equal("IncorrectFacetCutAction(3)", decoded.Error())
}

func (s *GatewayDiamondErrorsSuite) TestUnpackRevertString() {
	data := common.FromHex("0x08c379a0" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000005" +
		"68656c6c6f000000000000000000000000000000000000000000000000000000")
	decoded, err := UnpackGatewayDiamondError(data)
	s.Require().NoError(err)
	s.Equal(&RevertString{Message: "hello"}, decoded)
	s.Equal("hello", decoded.Error())

	packed, err := decoded.Pack()
	s.Require().NoError(err)
	s.Equal(data, packed)
}

func (s *GatewayDiamondErrorsSuite) TestUnpackNoArgumentErrors() {
	for _, sel := range [][4]byte{
		InvalidCollateralSelector,
		InvalidMajorityPercentageSelector,
		InvalidSubmissionPeriodSelector,
		OldConfigurationNumberSelector,
	} {
		decoded, err := UnpackGatewayDiamondError(sel[:])
		s.Require().NoError(err)
		s.Equal(sel, decoded.ErrorSelector())
		s.Equal(decoded.ErrorName()+"()", decoded.Error())
	}
}

func (s *GatewayDiamondErrorsSuite) TestPackThenUnpack() {
	values := []GatewayDiamondError{
		&CannotAddFunctionToDiamondThatAlreadyExists{Selector: [4]byte{1, 2, 3, 4}},
		&CannotAddSelectorsToZeroAddress{Selectors: [][4]byte{{1, 2, 3, 4}, {5, 6, 7, 8}}},
		&InitializationFunctionReverted{
			InitializationContractAddress: common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
			Calldata:                      common.FromHex("0xdeadbeef"),
		},
		&NoBytecodeAtAddress{
			ContractAddress: common.HexToAddress("0x00000000000000000000000000000000000000a1"),
			Message:         "facet has no code",
		},
		&NoSelectorsProvidedForFacetForCut{FacetAddress: common.HexToAddress("0x00000000000000000000000000000000000000b2")},
		&CannotAddSelectorsToZeroAddress{},
		&InitializationFunctionReverted{},
		&InvalidCollateral{},
		&InvalidMajorityPercentage{},
		&InvalidSubmissionPeriod{},
		&OldConfigurationNumber{},
		&RevertString{Message: "gateway paused"},
	}
	for _, value := range values {
		packed, err := value.Pack()
		s.Require().NoError(err, value.ErrorName())
		sel := value.ErrorSelector()
		s.Equal(sel[:], packed[:4])
		decoded, err := UnpackGatewayDiamondError(packed)
		s.Require().NoError(err, value.ErrorName())
		s.True(reflect.DeepEqual(value, decoded), "%v: %#v", value.ErrorName(), decoded)
	}

	packed, err := (&OldConfigurationNumber{}).Pack()
	s.Require().NoError(err)
	s.Equal(OldConfigurationNumberSelector[:], packed)
}

func (s *GatewayDiamondErrorsSuite) TestDisplay() {
	s.Equal("CannotAddSelectorsToZeroAddress([0x01020304, 0x05060708])",
		(&CannotAddSelectorsToZeroAddress{Selectors: [][4]byte{{1, 2, 3, 4}, {5, 6, 7, 8}}}).Error())
	s.Equal(`NoBytecodeAtAddress(0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266, "no code")`,
		(&NoBytecodeAtAddress{
			ContractAddress: common.HexToAddress("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"),
			Message:         "no code",
		}).Error())
}

func (s *GatewayDiamondErrorsSuite) TestUnpackInvalidData() {
	cases := map[string][]byte{
		"empty":            nil,
		"short":            {0x54, 0x16, 0xeb},
		"unknown selector": common.FromHex("0xcafecafe"),
		"missing argument": FunctionNotFoundSelector[:],
		"truncated string": common.FromHex("0x919834b9" +
			"000000000000000000000000f39fd6e51aad88f6f4ce6ab8827279cfffb92266"),
		"empty revert string": RevertStringSelector[:],
	}
	for name, data := range cases {
		_, err := UnpackGatewayDiamondError(data)
		s.ErrorIs(err, ErrInvalidRevertData, name)
	}
}

func (s *GatewayDiamondErrorsSuite) TestFromCallErr() {
	packed, err := (&FunctionNotFound{FunctionSelector: [4]byte{0xaa, 0xbb, 0xcc, 0xdd}}).Pack()
	s.Require().NoError(err)

	decoded, ok := GatewayDiamondErrorFromCallErr(fakeDataError{data: hexutil.Encode(packed)})
	s.Require().True(ok)
	s.Equal(FunctionNotFoundSelector, decoded.ErrorSelector())

	wrapped := fmt.Errorf("estimate gas: %w", fakeDataError{data: packed})
	decoded, ok = GatewayDiamondErrorFromCallErr(wrapped)
	s.Require().True(ok)
	s.Equal("FunctionNotFound(0xaabbccdd)", decoded.Error())

	_, ok = GatewayDiamondErrorFromCallErr(errors.New("connection refused"))
	s.False(ok)
	_, ok = GatewayDiamondErrorFromCallErr(fakeDataError{data: "not hex"})
	s.False(ok)
	_, ok = GatewayDiamondErrorFromCallErr(fakeDataError{data: "0xcafecafe"})
	s.False(ok)
}

func (s *GatewayDiamondErrorsSuite) TestCatalogue() {
	infos, err := GatewayDiamondErrorCatalogue()
	s.Require().NoError(err)
	s.Require().Len(infos, 12)
	s.Equal("CannotAddFunctionToDiamondThatAlreadyExists", infos[0].Name)
	s.Equal("OldConfigurationNumber", infos[10].Name)
	s.Equal("Error", infos[11].Name)
	s.Equal("0x08c379a0", infos[11].SelectorHex())
	for _, info := range infos {
		s.True(IsGatewayDiamondErrorSelector(info.Selector), info.Name)
	}
	s.Equal("NoBytecodeAtAddress(address,string)", infos[8].Signature)
}
