package personalinfo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	"github.com/sectoken-labs/ledgerd/internal/domain"
	"github.com/sectoken-labs/ledgerd/internal/logger"
	"github.com/sectoken-labs/ledgerd/internal/mocks"
	"github.com/sectoken-labs/ledgerd/internal/personalinfo"
	"github.com/sectoken-labs/ledgerd/internal/store/schema"
)

const (
	testAccount = "0x3000000000000000000000000000000000000003"
	testIssuer  = "0x5000000000000000000000000000000000000005"
)

var personalInfoContract = common.HexToAddress("0x9000000000000000000000000000000000000009")

// testResolverMocks contains all the mocks needed for testing the resolver
type testResolverMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	chain    *mocks.MockChainClient
	resolver personalinfo.Resolver
}

func setupTestResolver(t *testing.T) *testResolverMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testResolverMocks{
		ctrl:  ctrl,
		store: mocks.NewMockStore(ctrl),
		chain: mocks.NewMockChainClient(ctrl),
	}

	tm.resolver = personalinfo.NewResolver(tm.store, tm.chain)

	return tm
}

func tearDownTestResolver(tm *testResolverMocks) {
	tm.ctrl.Finish()
}

func resolverToken() *schema.Token {
	return &schema.Token{
		TokenAddress:  "0x1000000000000000000000000000000000000001",
		TokenType:     domain.TokenTypeBond,
		IssuerAddress: testIssuer,
		TokenStatus:   domain.TokenStatusActive,
	}
}

func TestGetInfo_PrefersOffChainIndex(t *testing.T) {
	tm := setupTestResolver(t)
	defer tearDownTestResolver(tm)

	ctx := context.Background()
	tm.store.EXPECT().
		GetPersonalInfo(ctx, testAccount, testIssuer).
		Return(&schema.IDXPersonalInfo{
			AccountAddress: testAccount,
			IssuerAddress:  testIssuer,
			PersonalInfo:   datatypes.JSON([]byte(`{"name":"Alice","address":"Tokyo"}`)),
		}, nil)

	info := tm.resolver.GetInfo(ctx, testAccount, resolverToken(), "--")
	assert.Equal(t, "Alice", info.Name)
	assert.Equal(t, "Tokyo", info.Address)
}

func TestGetInfo_FallsBackToOnChainRegistry(t *testing.T) {
	tm := setupTestResolver(t)
	defer tearDownTestResolver(tm)

	ctx := context.Background()
	token := resolverToken()

	tm.store.EXPECT().
		GetPersonalInfo(ctx, testAccount, testIssuer).
		Return(nil, nil)
	tm.chain.EXPECT().
		CallAddress(ctx, common.HexToAddress(token.TokenAddress), "personalInfoAddress", domain.ZeroAddress).
		Return(personalInfoContract)
	tm.chain.EXPECT().
		CallString(ctx, personalInfoContract, "personalInfo",
			[]interface{}{common.HexToAddress(testAccount), common.HexToAddress(testIssuer)}, "").
		Return(`{"name":"Bob"}`)

	info := tm.resolver.GetInfo(ctx, testAccount, token, "--")
	assert.Equal(t, "Bob", info.Name)
	// Fields absent from the payload keep the default
	assert.Equal(t, "--", info.Address)
}

func TestGetInfo_NoRegistryConfigured(t *testing.T) {
	tm := setupTestResolver(t)
	defer tearDownTestResolver(tm)

	ctx := context.Background()

	tm.store.EXPECT().
		GetPersonalInfo(ctx, testAccount, testIssuer).
		Return(nil, nil)
	tm.chain.EXPECT().
		CallAddress(ctx, gomock.Any(), "personalInfoAddress", domain.ZeroAddress).
		Return(domain.ZeroAddress)

	info := tm.resolver.GetInfo(ctx, testAccount, resolverToken(), "--")
	assert.Equal(t, "--", info.Name)
	assert.Equal(t, "--", info.Address)
}

func TestGetInfo_UnregisteredHolder(t *testing.T) {
	tm := setupTestResolver(t)
	defer tearDownTestResolver(tm)

	ctx := context.Background()

	tm.store.EXPECT().
		GetPersonalInfo(ctx, testAccount, testIssuer).
		Return(nil, nil)
	tm.chain.EXPECT().
		CallAddress(ctx, gomock.Any(), "personalInfoAddress", domain.ZeroAddress).
		Return(personalInfoContract)
	tm.chain.EXPECT().
		CallString(ctx, personalInfoContract, "personalInfo", gomock.Any(), "").
		Return("")

	info := tm.resolver.GetInfo(ctx, testAccount, resolverToken(), "--")
	assert.Equal(t, "--", info.Name)
}

func TestGetInfo_StoreFailureResolvesToDefaults(t *testing.T) {
	tm := setupTestResolver(t)
	defer tearDownTestResolver(tm)

	ctx := context.Background()

	tm.store.EXPECT().
		GetPersonalInfo(ctx, testAccount, testIssuer).
		Return(nil, errors.New("connection reset"))

	info := tm.resolver.GetInfo(ctx, testAccount, resolverToken(), "--")
	assert.Equal(t, "--", info.Name)
	assert.Equal(t, "--", info.Address)
}

func TestGetInfo_MalformedPayloadResolvesToDefaults(t *testing.T) {
	tm := setupTestResolver(t)
	defer tearDownTestResolver(tm)

	ctx := context.Background()

	tm.store.EXPECT().
		GetPersonalInfo(ctx, testAccount, testIssuer).
		Return(&schema.IDXPersonalInfo{
			AccountAddress: testAccount,
			IssuerAddress:  testIssuer,
			PersonalInfo:   datatypes.JSON([]byte(`{broken`)),
		}, nil)

	info := tm.resolver.GetInfo(ctx, testAccount, resolverToken(), "--")
	assert.Equal(t, "--", info.Name)
}
