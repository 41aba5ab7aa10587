package batch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/sectoken-labs/ledgerd/internal/adapter"
	"github.com/sectoken-labs/ledgerd/internal/batch"
	"github.com/sectoken-labs/ledgerd/internal/claim"
	"github.com/sectoken-labs/ledgerd/internal/domain"
	"github.com/sectoken-labs/ledgerd/internal/logger"
	"github.com/sectoken-labs/ledgerd/internal/mocks"
	"github.com/sectoken-labs/ledgerd/internal/store/schema"
	"github.com/sectoken-labs/ledgerd/internal/worker"
)

var personalInfoRegistry = common.HexToAddress("0x9000000000000000000000000000000000000009")

// testPersonalInfoMocks contains all the mocks needed for testing the processor
type testPersonalInfoMocks struct {
	ctrl      *gomock.Controller
	store     *mocks.MockStore
	chain     *mocks.MockChainClient
	sender    *mocks.MockChainSender
	publisher *mocks.MockPublisher
	clock     *mocks.MockClock
	registry  *claim.Registry
	processor worker.Worker
}

// setupTestPersonalInfo creates all the mocks and processor for testing
func setupTestPersonalInfo(t *testing.T) *testPersonalInfoMocks {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	if err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}

	ctrl := gomock.NewController(t)

	tm := &testPersonalInfoMocks{
		ctrl:      ctrl,
		store:     mocks.NewMockStore(ctrl),
		chain:     mocks.NewMockChainClient(ctrl),
		sender:    mocks.NewMockChainSender(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		clock:     mocks.NewMockClock(ctrl),
		registry:  claim.NewRegistry(),
	}

	config := batch.PersonalInfoConfig{
		WorkerPoolSize: 1,
		BatchSize:      10,
		Interval:       time.Minute,
	}

	tm.processor = batch.NewPersonalInfoProcessor(
		config,
		tm.store,
		tm.chain,
		tm.sender,
		tm.registry,
		tm.publisher,
		adapter.NewJSON(),
		tm.clock,
	)

	return tm
}

func tearDownTestPersonalInfo(tm *testPersonalInfoMocks) {
	tm.ctrl.Finish()
}

func pendingUpload() *schema.BatchRegisterUpload {
	return &schema.BatchRegisterUpload{
		UploadID:      "up-1",
		IssuerAddress: "0xissuerA",
		Status:        schema.WorkStatusPending,
	}
}

func registerItem(id uint64, account string) schema.BatchRegisterPersonalInfo {
	return schema.BatchRegisterPersonalInfo{
		ID:             id,
		UploadID:       "up-1",
		TokenAddress:   "0x1000000000000000000000000000000000000001",
		AccountAddress: account,
		PersonalInfo:   datatypes.JSON([]byte(`{"name":"holder"}`)),
		Status:         schema.WorkStatusPending,
	}
}

func TestPersonalInfoProcessor_Name(t *testing.T) {
	tm := setupTestPersonalInfo(t)
	defer tearDownTestPersonalInfo(tm)

	assert.Equal(t, "personal-infod", tm.processor.Name())
}

func TestPersonalInfoProcessor_RegistersUpload(t *testing.T) {
	tm := setupTestPersonalInfo(t)
	defer tearDownTestPersonalInfo(tm)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	never := make(chan time.Time)
	tm.clock.EXPECT().After(time.Minute).Return(never).AnyTimes()

	upload := pendingUpload()
	items := []schema.BatchRegisterPersonalInfo{
		registerItem(1, "0xacc1"),
		registerItem(2, "0xacc2"),
	}
	tokenContract := common.HexToAddress(items[0].TokenAddress)
	issuer := common.HexToAddress(upload.IssuerAddress)

	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(upload, nil)
	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	tm.store.EXPECT().
		ListPendingRegisterItems(gomock.Any(), "up-1", 10).
		Return(items, nil)

	tm.chain.EXPECT().
		CallAddress(gomock.Any(), tokenContract, "personalInfoAddress", domain.ZeroAddress).
		Return(personalInfoRegistry).
		Times(2)
	tm.sender.EXPECT().
		SendContractCall(gomock.Any(), personalInfoRegistry, "register", issuer, `{"name":"holder"}`).
		Return("0xtxhash", nil).
		Times(2)
	tm.store.EXPECT().
		UpsertPersonalInfo(gomock.Any(), gomock.AssignableToTypeOf(&schema.IDXPersonalInfo{})).
		DoAndReturn(func(_ context.Context, info *schema.IDXPersonalInfo) error {
			assert.Equal(t, upload.IssuerAddress, info.IssuerAddress)
			return nil
		}).
		Times(2)
	tm.store.EXPECT().
		UpdateRegisterItemStatus(gomock.Any(), uint64(1), schema.WorkStatusSucceeded).
		Return(nil)
	tm.store.EXPECT().
		UpdateRegisterItemStatus(gomock.Any(), uint64(2), schema.WorkStatusSucceeded).
		Return(nil)

	tm.store.EXPECT().
		CountRegisterItems(gomock.Any(), "up-1", schema.WorkStatusPending).
		Return(int64(0), nil)
	tm.store.EXPECT().
		CountRegisterItems(gomock.Any(), "up-1", schema.WorkStatusFailed).
		Return(int64(0), nil)
	tm.store.EXPECT().
		UpdateRegisterUploadStatus(gomock.Any(), "up-1", schema.WorkStatusSucceeded).
		Return(nil)

	var saved *schema.Notification
	tm.store.EXPECT().
		CreateNotification(gomock.Any(), gomock.AssignableToTypeOf(&schema.Notification{})).
		DoAndReturn(func(_ context.Context, n *schema.Notification) error {
			saved = n
			return nil
		})

	done := make(chan struct{})
	tm.publisher.EXPECT().
		PublishNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, interface{}) error {
			close(done)
			return nil
		})

	runOneCycle(t, tm.processor, done)

	require.NotNil(t, saved)
	assert.Equal(t, domain.NotificationTypeBatchRegisterPersonalInfo, saved.Type)
	assert.Equal(t, domain.NotificationCodeProcessed, saved.Code)
	assert.Contains(t, string(saved.Metainfo), "up-1")
}

func TestPersonalInfoProcessor_MissingRegistryFailsItem(t *testing.T) {
	tm := setupTestPersonalInfo(t)
	defer tearDownTestPersonalInfo(tm)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	never := make(chan time.Time)
	tm.clock.EXPECT().After(time.Minute).Return(never).AnyTimes()

	upload := pendingUpload()
	items := []schema.BatchRegisterPersonalInfo{registerItem(1, "0xacc1")}

	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(upload, nil)
	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	tm.store.EXPECT().
		ListPendingRegisterItems(gomock.Any(), "up-1", 10).
		Return(items, nil)

	// No personal info contract configured on the token
	tm.chain.EXPECT().
		CallAddress(gomock.Any(), gomock.Any(), "personalInfoAddress", domain.ZeroAddress).
		Return(domain.ZeroAddress)

	tm.store.EXPECT().
		UpdateRegisterItemStatus(gomock.Any(), uint64(1), schema.WorkStatusFailed).
		Return(nil)

	tm.store.EXPECT().
		CountRegisterItems(gomock.Any(), "up-1", schema.WorkStatusPending).
		Return(int64(0), nil)
	tm.store.EXPECT().
		CountRegisterItems(gomock.Any(), "up-1", schema.WorkStatusFailed).
		Return(int64(1), nil)
	tm.store.EXPECT().
		UpdateRegisterUploadStatus(gomock.Any(), "up-1", schema.WorkStatusFailed).
		Return(nil)

	var saved *schema.Notification
	tm.store.EXPECT().
		CreateNotification(gomock.Any(), gomock.AssignableToTypeOf(&schema.Notification{})).
		DoAndReturn(func(_ context.Context, n *schema.Notification) error {
			saved = n
			return nil
		})

	done := make(chan struct{})
	tm.publisher.EXPECT().
		PublishNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, interface{}) error {
			close(done)
			return nil
		})

	runOneCycle(t, tm.processor, done)

	require.NotNil(t, saved)
	assert.Equal(t, domain.NotificationCodePartialFail, saved.Code)
}

func TestPersonalInfoProcessor_SendFailureContinuesBatch(t *testing.T) {
	tm := setupTestPersonalInfo(t)
	defer tearDownTestPersonalInfo(tm)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	never := make(chan time.Time)
	tm.clock.EXPECT().After(time.Minute).Return(never).AnyTimes()

	upload := pendingUpload()
	items := []schema.BatchRegisterPersonalInfo{
		registerItem(1, "0xacc1"),
		registerItem(2, "0xacc2"),
	}
	issuer := common.HexToAddress(upload.IssuerAddress)

	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(upload, nil)
	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	tm.store.EXPECT().
		ListPendingRegisterItems(gomock.Any(), "up-1", 10).
		Return(items, nil)

	tm.chain.EXPECT().
		CallAddress(gomock.Any(), gomock.Any(), "personalInfoAddress", domain.ZeroAddress).
		Return(personalInfoRegistry).
		Times(2)

	// The first registration fails; the second must still go through
	first := tm.sender.EXPECT().
		SendContractCall(gomock.Any(), personalInfoRegistry, "register", issuer, `{"name":"holder"}`).
		Return("", errors.New("execution reverted"))
	tm.sender.EXPECT().
		SendContractCall(gomock.Any(), personalInfoRegistry, "register", issuer, `{"name":"holder"}`).
		Return("0xtxhash", nil).
		After(first)
	tm.store.EXPECT().
		UpsertPersonalInfo(gomock.Any(), gomock.Any()).
		Return(nil)

	tm.store.EXPECT().
		UpdateRegisterItemStatus(gomock.Any(), uint64(1), schema.WorkStatusFailed).
		Return(nil)
	tm.store.EXPECT().
		UpdateRegisterItemStatus(gomock.Any(), uint64(2), schema.WorkStatusSucceeded).
		Return(nil)

	tm.store.EXPECT().
		CountRegisterItems(gomock.Any(), "up-1", schema.WorkStatusPending).
		Return(int64(0), nil)
	tm.store.EXPECT().
		CountRegisterItems(gomock.Any(), "up-1", schema.WorkStatusFailed).
		Return(int64(1), nil)
	tm.store.EXPECT().
		UpdateRegisterUploadStatus(gomock.Any(), "up-1", schema.WorkStatusFailed).
		Return(nil)
	tm.store.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		Return(nil)

	done := make(chan struct{})
	tm.publisher.EXPECT().
		PublishNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, interface{}) error {
			close(done)
			return nil
		})

	runOneCycle(t, tm.processor, done)
}

func TestPersonalInfoProcessor_LeavesUploadPendingMidBatch(t *testing.T) {
	tm := setupTestPersonalInfo(t)
	defer tearDownTestPersonalInfo(tm)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	never := make(chan time.Time)
	tm.clock.EXPECT().After(time.Minute).Return(never).AnyTimes()

	upload := pendingUpload()
	items := []schema.BatchRegisterPersonalInfo{registerItem(1, "0xacc1")}
	issuer := common.HexToAddress(upload.IssuerAddress)

	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(upload, nil)
	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	tm.store.EXPECT().
		ListPendingRegisterItems(gomock.Any(), "up-1", 10).
		Return(items, nil)
	tm.chain.EXPECT().
		CallAddress(gomock.Any(), gomock.Any(), "personalInfoAddress", domain.ZeroAddress).
		Return(personalInfoRegistry)
	tm.sender.EXPECT().
		SendContractCall(gomock.Any(), personalInfoRegistry, "register", issuer, `{"name":"holder"}`).
		Return("0xtxhash", nil)
	tm.store.EXPECT().
		UpsertPersonalInfo(gomock.Any(), gomock.Any()).
		Return(nil)
	tm.store.EXPECT().
		UpdateRegisterItemStatus(gomock.Any(), uint64(1), schema.WorkStatusSucceeded).
		Return(nil)

	// Items beyond this batch remain: no roll-up, no notification
	done := make(chan struct{})
	tm.store.EXPECT().
		CountRegisterItems(gomock.Any(), "up-1", schema.WorkStatusPending).
		DoAndReturn(func(context.Context, string, schema.WorkStatus) (int64, error) {
			close(done)
			return 42, nil
		})

	runOneCycle(t, tm.processor, done)
}

// While a worker is inside its upload query, no other worker may enter the
// claim registry; otherwise two workers could both be handed the same
// issuer's upload before either records a claim.
func TestPersonalInfoProcessor_QueryRunsUnderClaimLock(t *testing.T) {
	tm := setupTestPersonalInfo(t)
	defer tearDownTestPersonalInfo(tm)

	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	tm.clock.EXPECT().Now().Return(now).AnyTimes()
	never := make(chan time.Time)
	tm.clock.EXPECT().After(time.Minute).Return(never).AnyTimes()

	inQuery := make(chan struct{})
	proceed := make(chan struct{})
	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []string) (*schema.BatchRegisterUpload, error) {
			close(inQuery)
			<-proceed
			return pendingUpload(), nil
		})
	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	tm.store.EXPECT().
		ListPendingRegisterItems(gomock.Any(), "up-1", 10).
		Return(nil, nil)
	tm.store.EXPECT().
		CountRegisterItems(gomock.Any(), "up-1", schema.WorkStatusPending).
		Return(int64(0), nil)
	tm.store.EXPECT().
		CountRegisterItems(gomock.Any(), "up-1", schema.WorkStatusFailed).
		Return(int64(0), nil)
	tm.store.EXPECT().
		UpdateRegisterUploadStatus(gomock.Any(), "up-1", schema.WorkStatusSucceeded).
		Return(nil)
	tm.store.EXPECT().
		CreateNotification(gomock.Any(), gomock.Any()).
		Return(nil)

	done := make(chan struct{})
	tm.publisher.EXPECT().
		PublishNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, interface{}) error {
			close(done)
			return nil
		})

	startErr := make(chan error, 1)
	go func() {
		startErr <- tm.processor.Start(context.Background())
	}()

	<-inQuery

	otherDone := make(chan struct{})
	go func() {
		defer close(otherDone)
		_ = tm.registry.Acquire("other-worker", func([]string) (string, error) {
			return "", nil
		})
	}()

	select {
	case <-otherDone:
		t.Fatal("registry admitted a second worker during the upload query")
	case <-time.After(50 * time.Millisecond):
	}

	close(proceed)
	<-otherDone

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("processor never finished the claimed upload")
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, tm.processor.Stop(stopCtx))

	select {
	case err := <-startErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("processor did not exit after Stop")
	}
}

func TestPersonalInfoProcessor_FatalErrorStopsProcessor(t *testing.T) {
	tm := setupTestPersonalInfo(t)
	defer tearDownTestPersonalInfo(tm)

	never := make(chan time.Time)
	tm.clock.EXPECT().After(time.Minute).Return(never).AnyTimes()

	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("constraint violated"))

	err := tm.processor.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "constraint violated")
}

func TestPersonalInfoProcessor_TransientErrorRetriesNextCycle(t *testing.T) {
	tm := setupTestPersonalInfo(t)
	defer tearDownTestPersonalInfo(tm)

	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrServiceUnavailable)
	tm.store.EXPECT().
		GetPendingRegisterUpload(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	// Reaching the inter-cycle sleep proves the transient failure did not
	// terminate the processor.
	done := make(chan struct{}, 1)
	never := make(chan time.Time)
	tm.clock.EXPECT().
		After(time.Minute).
		DoAndReturn(func(time.Duration) <-chan time.Time {
			select {
			case done <- struct{}{}:
			default:
			}
			return never
		}).
		AnyTimes()

	runOneCycle(t, tm.processor, done)
}
