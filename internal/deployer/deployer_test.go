package deployer

import (
	"context"
	"errors"
	"log/slog"
	"math/big"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/calindra/gatewayctl/contracts"
	"github.com/calindra/gatewayctl/internal/commons"
	"github.com/calindra/gatewayctl/internal/deployments"
	"github.com/calindra/gatewayctl/internal/devnet"
	"github.com/calindra/gatewayctl/internal/network"
	"github.com/calindra/gatewayctl/internal/repository"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"
)

type fakeDataError struct {
	data string
}

func (e fakeDataError) Error() string          { return "execution reverted" }
func (e fakeDataError) ErrorData() interface{} { return e.data }

func revertWith(err contracts.GatewayDiamondError) fakeDataError {
	data, packErr := err.Pack()
	if packErr != nil {
		panic(packErr)
	}
	return fakeDataError{data: hexutil.Encode(data)}
}

// fakeBackend mines every tx in block 10 and advances the head on each poll.
type fakeBackend struct {
	bind.ContractBackend

	mu            sync.Mutex
	chainID       int64
	estimateErr   error
	callErr       error
	receiptStatus uint64
	neverMined    bool
	head          uint64
	notFoundPolls int
	indexingPolls int
	code          map[common.Address][]byte
	sent          []*types.Transaction
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		chainID:       network.DevnetChainID,
		receiptStatus: types.ReceiptStatusSuccessful,
		head:          9,
		notFoundPolls: 1,
		code:          map[common.Address][]byte{},
	}
}

func (b *fakeBackend) ChainID(ctx context.Context) (*big.Int, error) {
	return big.NewInt(b.chainID), nil
}

func (b *fakeBackend) BlockNumber(ctx context.Context) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.head++
	return b.head, nil
}

func (b *fakeBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	if b.estimateErr != nil {
		return 0, b.estimateErr
	}
	return 3_000_000, nil
}

func (b *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, tx)
	return nil
}

func (b *fakeBackend) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.neverMined || b.notFoundPolls > 0 {
		b.notFoundPolls--
		return nil, ethereum.NotFound
	}
	if b.indexingPolls > 0 {
		b.indexingPolls--
		return nil, errors.New("transaction indexing is in progress")
	}
	return &types.Receipt{
		Status:      b.receiptStatus,
		TxHash:      hash,
		BlockNumber: big.NewInt(10),
		GasUsed:     2_500_000,
	}, nil
}

func (b *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
	return nil, b.callErr
}

func (b *fakeBackend) CodeAt(ctx context.Context, address common.Address, block *big.Int) ([]byte, error) {
	return b.code[address], nil
}

type DeployerSuite struct {
	suite.Suite
	ctx        context.Context
	cancel     context.CancelFunc
	dbFactory  *commons.DbFactory
	repository *repository.DeploymentRepository
	store      *deployments.Store
	backend    *fakeBackend
	deployer   *Deployer
	cuts       []contracts.IDiamondFacetCut
	params     contracts.GatewayDiamondConstructorParams
}

func TestDeployerSuite(t *testing.T) {
	suite.Run(t, new(DeployerSuite))
}

func (s *DeployerSuite) SetupTest() {
	commons.ConfigureLog(slog.LevelDebug, false)
	s.ctx, s.cancel = context.WithTimeout(context.Background(), 5*time.Second)

	s.dbFactory = commons.NewDbFactory()
	s.repository = &repository.DeploymentRepository{Db: s.dbFactory.CreateDb("deployer.sqlite3")}
	s.Require().NoError(s.repository.CreateTables())
	s.store = deployments.NewStore(filepath.Join(s.dbFactory.TempDir, "deployments.json"))

	auth, err := bind.NewKeyedTransactorWithChainID(devnet.SenderKey(), big.NewInt(network.DevnetChainID))
	s.Require().NoError(err)
	auth.Nonce = big.NewInt(0)
	auth.GasPrice = big.NewInt(1_000_000_000)

	profile, err := network.Lookup(network.Devnet)
	s.Require().NoError(err)

	s.backend = newFakeBackend()
	s.deployer = NewDeployer(s.backend, auth, profile)
	s.deployer.History = s.repository
	s.deployer.AddressBook = s.store
	s.deployer.Confirmations = 3
	s.deployer.PollInterval = time.Millisecond

	s.cuts = []contracts.IDiamondFacetCut{
		contracts.NewFacetCut(
			common.HexToAddress("0x00000000000000000000000000000000000000f1"),
			contracts.FacetCutActionAdd,
			[4]byte{0xde, 0xad, 0xbe, 0xef},
		),
	}
	s.params = contracts.GatewayDiamondConstructorParams{
		NetworkName:           contracts.SubnetID{Root: 314159, Route: []common.Address{}},
		BottomUpCheckPeriod:   10,
		MinCollateral:         big.NewInt(1),
		MsgFee:                big.NewInt(1),
		MajorityPercentage:    66,
		GenesisValidators:     []contracts.Validator{},
		ActiveValidatorsLimit: 100,
	}
}

func (s *DeployerSuite) TearDownTest() {
	s.cancel()
	s.NoError(s.repository.Db.Close())
	s.dbFactory.Cleanup()
}

func (s *DeployerSuite) TestDeploySuccess() {
	result, err := s.deployer.Deploy(s.ctx, s.cuts, s.params)
	s.Require().NoError(err)

	sender := common.HexToAddress(devnet.SenderAddress)
	s.Equal(crypto.CreateAddress(sender, 0), result.Address)
	s.Equal(uint64(10), result.BlockNumber)
	s.Equal(uint64(2_500_000), result.GasUsed)
	s.Require().Len(s.backend.sent, 1)
	s.Equal(result.TxHash, s.backend.sent[0].Hash())
	s.Equal(uint64(3_000_000), s.backend.sent[0].Gas())
	s.GreaterOrEqual(s.backend.head, uint64(12))

	latest, err := s.repository.FindLatestSuccessful(s.ctx, network.Devnet)
	s.Require().NoError(err)
	s.Require().NotNil(latest)
	s.Equal(result.Address, latest.ContractAddress)
	s.Equal(sender, latest.Deployer)
	s.Equal(uint64(network.DevnetChainID), latest.ChainId)

	saved, ok, err := s.store.Lookup(network.Devnet, deployments.GatewayKey)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(result.Address.Hex(), saved)
}

func (s *DeployerSuite) TestDeployEstimateRevert() {
	s.backend.estimateErr = revertWith(&contracts.InvalidMajorityPercentage{})

	_, err := s.deployer.Deploy(s.ctx, s.cuts, s.params)
	var revertErr *RevertError
	s.Require().ErrorAs(err, &revertErr)
	s.Equal("estimate", revertErr.Stage)
	var majority *contracts.InvalidMajorityPercentage
	s.ErrorAs(err, &majority)
	s.Empty(s.backend.sent)

	history, err := s.repository.FindByNetwork(s.ctx, network.Devnet)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(repository.StatusReverted, history[0].Status)
	s.Equal(contracts.InvalidMajorityPercentageSelector[:], history[0].RevertData)
}

func (s *DeployerSuite) TestDeployUndecodableRevert() {
	s.backend.estimateErr = fakeDataError{data: "0xcafecafe"}

	_, err := s.deployer.Deploy(s.ctx, s.cuts, s.params)
	var revertErr *RevertError
	s.Require().ErrorAs(err, &revertErr)
	s.Nil(revertErr.Err)
	s.Equal("deploy reverted during estimate with data 0xcafecafe", revertErr.Error())
}

func (s *DeployerSuite) TestDeployEstimateTransportError() {
	s.backend.estimateErr = errors.New("connection refused")

	_, err := s.deployer.Deploy(s.ctx, s.cuts, s.params)
	s.Require().Error(err)
	var revertErr *RevertError
	s.False(errors.As(err, &revertErr))
	s.Empty(s.backend.sent)
}

func (s *DeployerSuite) TestDeployExecutionRevert() {
	s.backend.receiptStatus = types.ReceiptStatusFailed
	s.backend.callErr = revertWith(&contracts.NoBytecodeAtAddress{
		ContractAddress: s.cuts[0].FacetAddress,
		Message:         "diamondCut: facet has no code",
	})

	_, err := s.deployer.Deploy(s.ctx, s.cuts, s.params)
	var revertErr *RevertError
	s.Require().ErrorAs(err, &revertErr)
	s.Equal("execution", revertErr.Stage)
	var noCode *contracts.NoBytecodeAtAddress
	s.Require().ErrorAs(err, &noCode)
	s.Equal(s.cuts[0].FacetAddress, noCode.ContractAddress)
	s.Len(s.backend.sent, 1)

	history, err := s.repository.FindByNetwork(s.ctx, network.Devnet)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(repository.StatusReverted, history[0].Status)
	s.Equal(uint64(10), history[0].BlockNumber)

	_, ok, err := s.store.Lookup(network.Devnet, deployments.GatewayKey)
	s.NoError(err)
	s.False(ok)
}

func (s *DeployerSuite) TestDeployInvalidCuts() {
	cuts := []contracts.IDiamondFacetCut{
		contracts.NewFacetCut(common.HexToAddress("0x01"), contracts.FacetCutActionAdd),
	}
	_, err := s.deployer.Deploy(s.ctx, cuts, s.params)
	var noSelectors *contracts.NoSelectorsProvidedForFacetForCut
	s.ErrorAs(err, &noSelectors)
	s.Empty(s.backend.sent)
}

func (s *DeployerSuite) TestDeployChainMismatch() {
	s.backend.chainID = 314
	_, err := s.deployer.Deploy(s.ctx, s.cuts, s.params)
	s.ErrorIs(err, ErrChainMismatch)
	s.Empty(s.backend.sent)
}

func (s *DeployerSuite) TestDeployWaitsWhileNodeIndexes() {
	s.backend.indexingPolls = 3
	result, err := s.deployer.Deploy(s.ctx, s.cuts, s.params)
	s.Require().NoError(err)
	s.Equal(uint64(10), result.BlockNumber)

	history, err := s.repository.FindByNetwork(s.ctx, network.Devnet)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(repository.StatusSuccess, history[0].Status)
}

func (s *DeployerSuite) TestDeployTimesOutWaiting() {
	s.backend.neverMined = true
	ctx, cancel := context.WithTimeout(s.ctx, 50*time.Millisecond)
	defer cancel()

	_, err := s.deployer.Deploy(ctx, s.cuts, s.params)
	s.ErrorIs(err, context.DeadlineExceeded)

	history, err := s.repository.FindByNetwork(s.ctx, network.Devnet)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(repository.StatusFailed, history[0].Status)
}

func (s *DeployerSuite) TestVerify() {
	good := common.HexToAddress("0x0a")
	other := common.HexToAddress("0x0b")
	s.backend.code[good] = contracts.GatewayDiamondDeployedBytecode()
	s.backend.code[other] = common.FromHex("0x6080")

	s.NoError(s.deployer.Verify(s.ctx, good))
	s.ErrorIs(s.deployer.Verify(s.ctx, other), ErrRuntimeMismatch)

	var noCode *contracts.NoBytecodeAtAddress
	s.ErrorAs(s.deployer.Verify(s.ctx, common.HexToAddress("0x0c")), &noCode)
}
