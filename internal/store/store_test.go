package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sectoken-labs/ledgerd/internal/domain"
	"github.com/sectoken-labs/ledgerd/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// rawDB exposes the underlying gorm handle for seeding rows the store
// interface has no write path for (tokens, templates, work items)
func rawDB(t *testing.T, s Store) *gorm.DB {
	pg, ok := s.(*pgStore)
	require.True(t, ok, "store tests require the PostgreSQL implementation")
	return pg.db
}

func buildTestCredit(txHash, tokenAddress, accountAddress string, amount uint64, blockNumber uint64, ts time.Time) CreditUTXOInput {
	return CreditUTXOInput{
		TxHash:         txHash,
		TokenAddress:   tokenAddress,
		AccountAddress: accountAddress,
		Amount:         amount,
		BlockNumber:    blockNumber,
		BlockTimestamp: ts,
	}
}

func seedTestToken(t *testing.T, s Store, tokenAddress string, tokenType domain.TokenType, status domain.TokenStatus, createdAt time.Time) {
	token := schema.Token{
		TokenAddress:  tokenAddress,
		TokenType:     tokenType,
		IssuerAddress: "0xissuer0000000000000000000000000000000001",
		TxHash:        "0xdeploy" + tokenAddress,
		TokenStatus:   status,
		CreatedAt:     createdAt,
	}
	require.NoError(t, rawDB(t, s).Create(&token).Error)
}

func seedScheduledEvent(t *testing.T, s Store, eventID, issuer string, due time.Time, status schema.WorkStatus) uint64 {
	event := schema.ScheduledEvent{
		EventID:           eventID,
		IssuerAddress:     issuer,
		TokenAddress:      "0xtoken000000000000000000000000000000000a",
		TokenType:         domain.TokenTypeBond,
		EventType:         "Update",
		ScheduledDatetime: due,
		Status:            status,
		Data:              datatypes.JSON([]byte(`{"face_value": 10000}`)),
	}
	require.NoError(t, rawDB(t, s).Create(&event).Error)
	return event.ID
}

func seedRegisterUpload(t *testing.T, s Store, uploadID, issuer string, status schema.WorkStatus, createdAt time.Time) {
	upload := schema.BatchRegisterUpload{
		UploadID:      uploadID,
		IssuerAddress: issuer,
		Status:        status,
		CreatedAt:     createdAt,
	}
	require.NoError(t, rawDB(t, s).Create(&upload).Error)
}

func seedRegisterItem(t *testing.T, s Store, uploadID, tokenAddress, accountAddress string, status schema.WorkStatus) uint64 {
	item := schema.BatchRegisterPersonalInfo{
		UploadID:       uploadID,
		TokenAddress:   tokenAddress,
		AccountAddress: accountAddress,
		PersonalInfo:   datatypes.JSON([]byte(`{"name":"holder"}`)),
		Status:         status,
	}
	require.NoError(t, rawDB(t, s).Create(&item).Error)
	return item.ID
}

// =============================================================================
// Test: Watermark
// =============================================================================

func testWatermark(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("reads zero before any row exists", func(t *testing.T) {
		watermark, err := store.GetWatermark(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), watermark)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, store.SetWatermark(ctx, 120))

		watermark, err := store.GetWatermark(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(120), watermark)
	})

	t.Run("second set overwrites the singleton row", func(t *testing.T) {
		require.NoError(t, store.SetWatermark(ctx, 120))
		require.NoError(t, store.SetWatermark(ctx, 345))

		watermark, err := store.GetWatermark(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(345), watermark)

		var count int64
		require.NoError(t, rawDB(t, store).Model(&schema.UTXOBlockNumber{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

// =============================================================================
// Test: CreditUTXO
// =============================================================================

func testCreditUTXO(t *testing.T, store Store) {
	ctx := context.Background()
	tokenAddr := "0xtoken0000000000000000000000000000000001"
	holder := "0xholder000000000000000000000000000000001"
	ts := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("creates a new lot", func(t *testing.T) {
		err := store.CreditUTXO(ctx, buildTestCredit("0xtx1", tokenAddr, holder, 100, 50, ts))
		require.NoError(t, err)

		lots, err := store.ListUTXOsByAccount(ctx, tokenAddr, holder)
		require.NoError(t, err)
		require.Len(t, lots, 1)
		assert.Equal(t, "0xtx1", lots[0].TxHash)
		assert.Equal(t, uint64(100), lots[0].Amount)
		assert.Equal(t, uint64(50), lots[0].BlockNumber)
		assert.True(t, lots[0].BlockTimestamp.Equal(ts))
	})

	t.Run("same tx and account increments the existing lot", func(t *testing.T) {
		require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xtx2", tokenAddr, holder, 100, 51, ts)))
		require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xtx2", tokenAddr, holder, 30, 51, ts)))

		lots, err := store.ListUTXOsByAccount(ctx, tokenAddr, holder)
		require.NoError(t, err)

		var lot *schema.UTXO
		for i := range lots {
			if lots[i].TxHash == "0xtx2" {
				lot = &lots[i]
			}
		}
		require.NotNil(t, lot)
		assert.Equal(t, uint64(130), lot.Amount)
	})

	t.Run("same tx for a different account creates a separate lot", func(t *testing.T) {
		other := "0xholder000000000000000000000000000000002"
		require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xtx3", tokenAddr, holder, 10, 52, ts)))
		require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xtx3", tokenAddr, other, 20, 52, ts)))

		lots, err := store.ListUTXOsByAccount(ctx, tokenAddr, other)
		require.NoError(t, err)
		require.Len(t, lots, 1)
		assert.Equal(t, uint64(20), lots[0].Amount)
	})
}

// =============================================================================
// Test: DebitUTXO
// =============================================================================

func testDebitUTXO(t *testing.T, store Store) {
	ctx := context.Background()
	tokenAddr := "0xtoken0000000000000000000000000000000002"
	holder := "0xholder000000000000000000000000000000003"
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	seedLots := func(t *testing.T) {
		require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xlot1", tokenAddr, holder, 100, 10, base)))
		require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xlot2", tokenAddr, holder, 50, 11, base.Add(time.Minute))))
		require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xlot3", tokenAddr, holder, 25, 12, base.Add(2*time.Minute))))
	}

	amounts := func(t *testing.T) map[string]uint64 {
		lots, err := store.ListUTXOsByAccount(ctx, tokenAddr, holder)
		require.NoError(t, err)
		out := make(map[string]uint64, len(lots))
		for _, lot := range lots {
			out[lot.TxHash] = lot.Amount
		}
		return out
	}

	t.Run("consumes lots oldest first and keeps the residual", func(t *testing.T) {
		seedLots(t)

		require.NoError(t, store.DebitUTXO(ctx, tokenAddr, holder, 120))

		got := amounts(t)
		assert.Equal(t, uint64(0), got["0xlot1"])
		assert.Equal(t, uint64(30), got["0xlot2"])
		assert.Equal(t, uint64(25), got["0xlot3"])
	})

	t.Run("fully spent lots are zeroed, never deleted", func(t *testing.T) {
		require.NoError(t, store.DebitUTXO(ctx, tokenAddr, holder, 55))

		lots, err := store.ListUTXOsByAccount(ctx, tokenAddr, holder)
		require.NoError(t, err)
		assert.Len(t, lots, 3)
		for _, lot := range lots {
			assert.Equal(t, uint64(0), lot.Amount)
		}
	})

	t.Run("a shortfall drops the remainder without error", func(t *testing.T) {
		require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xlot4", tokenAddr, holder, 10, 13, base.Add(3*time.Minute))))

		require.NoError(t, store.DebitUTXO(ctx, tokenAddr, holder, 1000))

		got := amounts(t)
		assert.Equal(t, uint64(0), got["0xlot4"])
	})

	t.Run("debiting a holder with no lots is a no-op", func(t *testing.T) {
		err := store.DebitUTXO(ctx, tokenAddr, "0xnobody00000000000000000000000000000000", 5)
		require.NoError(t, err)
	})
}

// =============================================================================
// Test: UTXO listings
// =============================================================================

func testListUTXOs(t *testing.T, store Store) {
	ctx := context.Background()
	tokenAddr := "0xtoken0000000000000000000000000000000003"
	holderA := "0xaaa0000000000000000000000000000000000001"
	holderB := "0xbbb0000000000000000000000000000000000001"
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xu1", tokenAddr, holderB, 10, 10, base.Add(time.Hour))))
	require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xu2", tokenAddr, holderA, 20, 11, base.Add(2*time.Hour))))
	require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xu3", tokenAddr, holderA, 30, 12, base)))
	require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xu4", tokenAddr, holderA, 5, 13, base.Add(3*time.Hour))))
	require.NoError(t, store.CreditUTXO(ctx, buildTestCredit("0xu5", "0xothertoken00000000000000000000000000001", holderA, 99, 14, base)))

	// spend holderA's oldest lot fully
	require.NoError(t, store.DebitUTXO(ctx, tokenAddr, holderA, 30))

	t.Run("active listing filters spent lots and orders by account then timestamp", func(t *testing.T) {
		lots, err := store.ListActiveUTXOsByToken(ctx, tokenAddr)
		require.NoError(t, err)
		require.Len(t, lots, 3)
		assert.Equal(t, "0xu2", lots[0].TxHash)
		assert.Equal(t, "0xu4", lots[1].TxHash)
		assert.Equal(t, "0xu1", lots[2].TxHash)
	})

	t.Run("account listing includes spent lots in timestamp order", func(t *testing.T) {
		lots, err := store.ListUTXOsByAccount(ctx, tokenAddr, holderA)
		require.NoError(t, err)
		require.Len(t, lots, 3)
		assert.Equal(t, "0xu3", lots[0].TxHash)
		assert.Equal(t, uint64(0), lots[0].Amount)
		assert.Equal(t, "0xu2", lots[1].TxHash)
		assert.Equal(t, "0xu4", lots[2].TxHash)
	})
}

// =============================================================================
// Test: token registry
// =============================================================================

func testTokens(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	seedTestToken(t, store, "0xtok1", domain.TokenTypeBond, domain.TokenStatusActive, base.Add(2*time.Hour))
	seedTestToken(t, store, "0xtok2", domain.TokenTypeShare, domain.TokenStatusActive, base)
	seedTestToken(t, store, "0xtok3", domain.TokenTypeBond, domain.TokenStatusPending, base.Add(time.Hour))
	seedTestToken(t, store, "0xtok4", domain.TokenTypeBond, domain.TokenStatusFailed, base.Add(3*time.Hour))

	t.Run("lists only active tokens oldest first", func(t *testing.T) {
		tokens, err := store.ListActiveTokens(ctx)
		require.NoError(t, err)
		require.Len(t, tokens, 2)
		assert.Equal(t, "0xtok2", tokens[0].TokenAddress)
		assert.Equal(t, "0xtok1", tokens[1].TokenAddress)
	})

	t.Run("gets one token", func(t *testing.T) {
		token, err := store.GetToken(ctx, "0xtok2")
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, domain.TokenTypeShare, token.TokenType)
	})

	t.Run("returns nil for an unknown token", func(t *testing.T) {
		token, err := store.GetToken(ctx, "0xmissing")
		require.NoError(t, err)
		assert.Nil(t, token)
	})
}

// =============================================================================
// Test: ledger templates and snapshots
// =============================================================================

func testLedgerTemplates(t *testing.T, store Store) {
	ctx := context.Background()
	tokenAddr := "0xtoken0000000000000000000000000000000004"

	t.Run("template is nil when not configured", func(t *testing.T) {
		template, err := store.GetLedgerTemplate(ctx, tokenAddr)
		require.NoError(t, err)
		assert.Nil(t, template)
	})

	template := schema.LedgerTemplate{
		TokenAddress: tokenAddr,
		TokenName:    "Test Bond Ledger",
		Headers:      datatypes.JSON([]byte(`[{"title":"header"}]`)),
		Footers:      datatypes.JSON([]byte(`[{"title":"footer"}]`)),
	}
	require.NoError(t, rawDB(t, store).Create(&template).Error)

	sections := []schema.LedgerDetailsTemplate{
		{TokenAddress: tokenAddr, TokenDetailType: "on-chain holders", DataType: schema.LedgerDataTypeOnChain},
		{TokenAddress: tokenAddr, TokenDetailType: "offline holders", DataType: schema.LedgerDataTypeDB, DataSource: "data-1"},
	}
	for i := range sections {
		require.NoError(t, rawDB(t, store).Create(&sections[i]).Error)
	}

	rows := []schema.LedgerDetailsData{
		{TokenAddress: tokenAddr, DataID: "data-1", Name: "Alice", Address: "Tokyo", Amount: 10, Price: 100, Balance: 1000, AcquisitionDate: "2025/05/01"},
		{TokenAddress: tokenAddr, DataID: "data-1", Name: "Bob", Address: "Osaka", Amount: 5, Price: 100, Balance: 500, AcquisitionDate: "2025/05/02"},
		{TokenAddress: tokenAddr, DataID: "data-2", Name: "Carol", Address: "Kyoto", Amount: 1, Price: 100, Balance: 100, AcquisitionDate: "2025/05/03"},
	}
	for i := range rows {
		require.NoError(t, rawDB(t, store).Create(&rows[i]).Error)
	}

	t.Run("retrieves the configured template", func(t *testing.T) {
		got, err := store.GetLedgerTemplate(ctx, tokenAddr)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Test Bond Ledger", got.TokenName)
	})

	t.Run("lists detail sections in creation order", func(t *testing.T) {
		got, err := store.ListLedgerDetailsTemplates(ctx, tokenAddr)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "on-chain holders", got[0].TokenDetailType)
		assert.Equal(t, "offline holders", got[1].TokenDetailType)
	})

	t.Run("lists only the requested dataset", func(t *testing.T) {
		got, err := store.ListLedgerDetailsData(ctx, tokenAddr, "data-1")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Alice", got[0].Name)
		assert.Equal(t, "Bob", got[1].Name)
	})

	t.Run("appends ledger snapshots", func(t *testing.T) {
		ledger := schema.Ledger{
			TokenAddress: tokenAddr,
			TokenType:    domain.TokenTypeBond,
			Ledger:       datatypes.JSON([]byte(`{"token_name":"Test Bond Ledger"}`)),
			ContentHash:  "deadbeef",
		}
		require.NoError(t, store.CreateLedger(ctx, &ledger))
		assert.NotZero(t, ledger.ID)

		second := schema.Ledger{
			TokenAddress: tokenAddr,
			TokenType:    domain.TokenTypeBond,
			Ledger:       datatypes.JSON([]byte(`{"token_name":"Test Bond Ledger"}`)),
			ContentHash:  "deadbeef",
		}
		require.NoError(t, store.CreateLedger(ctx, &second))
		assert.NotEqual(t, ledger.ID, second.ID)
	})
}

// =============================================================================
// Test: personal info index
// =============================================================================

func testPersonalInfo(t *testing.T, store Store) {
	ctx := context.Background()
	account := "0xholder000000000000000000000000000000009"
	issuer := "0xissuer0000000000000000000000000000000009"

	t.Run("nil when no registration exists", func(t *testing.T) {
		info, err := store.GetPersonalInfo(ctx, account, issuer)
		require.NoError(t, err)
		assert.Nil(t, info)
	})

	t.Run("insert then read back", func(t *testing.T) {
		err := store.UpsertPersonalInfo(ctx, &schema.IDXPersonalInfo{
			AccountAddress: account,
			IssuerAddress:  issuer,
			PersonalInfo:   datatypes.JSON([]byte(`{"name":"Alice","address":"Tokyo"}`)),
		})
		require.NoError(t, err)

		info, err := store.GetPersonalInfo(ctx, account, issuer)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.JSONEq(t, `{"name":"Alice","address":"Tokyo"}`, string(info.PersonalInfo))
	})

	t.Run("upsert replaces the payload in place", func(t *testing.T) {
		err := store.UpsertPersonalInfo(ctx, &schema.IDXPersonalInfo{
			AccountAddress: account,
			IssuerAddress:  issuer,
			PersonalInfo:   datatypes.JSON([]byte(`{"name":"Alice","address":"Yokohama"}`)),
		})
		require.NoError(t, err)

		info, err := store.GetPersonalInfo(ctx, account, issuer)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.JSONEq(t, `{"name":"Alice","address":"Yokohama"}`, string(info.PersonalInfo))

		var count int64
		require.NoError(t, rawDB(t, store).Model(&schema.IDXPersonalInfo{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("same holder under another issuer is a separate row", func(t *testing.T) {
		otherIssuer := "0xissuer000000000000000000000000000000000a"
		err := store.UpsertPersonalInfo(ctx, &schema.IDXPersonalInfo{
			AccountAddress: account,
			IssuerAddress:  otherIssuer,
			PersonalInfo:   datatypes.JSON([]byte(`{"name":"Alice"}`)),
		})
		require.NoError(t, err)

		info, err := store.GetPersonalInfo(ctx, account, issuer)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.JSONEq(t, `{"name":"Alice","address":"Yokohama"}`, string(info.PersonalInfo))
	})
}

// =============================================================================
// Test: scheduled events
// =============================================================================

func testScheduledEvents(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	issuerA := "0xissuerA"
	issuerB := "0xissuerB"

	seedScheduledEvent(t, store, "ev-late", issuerA, now.Add(-time.Minute), schema.WorkStatusPending)
	idEarly := seedScheduledEvent(t, store, "ev-early", issuerA, now.Add(-time.Hour), schema.WorkStatusPending)
	seedScheduledEvent(t, store, "ev-future", issuerA, now.Add(time.Hour), schema.WorkStatusPending)
	seedScheduledEvent(t, store, "ev-done", issuerA, now.Add(-2*time.Hour), schema.WorkStatusSucceeded)
	seedScheduledEvent(t, store, "ev-other", issuerB, now.Add(-30*time.Minute), schema.WorkStatusPending)

	t.Run("returns the oldest due pending event", func(t *testing.T) {
		event, err := store.GetDueScheduledEvent(ctx, now, nil)
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, "ev-early", event.EventID)
	})

	t.Run("excluded issuers are skipped", func(t *testing.T) {
		event, err := store.GetDueScheduledEvent(ctx, now, []string{issuerA})
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, "ev-other", event.EventID)
	})

	t.Run("nil when everything due is excluded", func(t *testing.T) {
		event, err := store.GetDueScheduledEvent(ctx, now, []string{issuerA, issuerB})
		require.NoError(t, err)
		assert.Nil(t, event)
	})

	t.Run("status update takes the event out of the queue", func(t *testing.T) {
		require.NoError(t, store.UpdateScheduledEventStatus(ctx, idEarly, schema.WorkStatusSucceeded))

		event, err := store.GetDueScheduledEvent(ctx, now, nil)
		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, "ev-other", event.EventID)
	})

	t.Run("nil when nothing is due yet", func(t *testing.T) {
		event, err := store.GetDueScheduledEvent(ctx, now.Add(-3*time.Hour), nil)
		require.NoError(t, err)
		assert.Nil(t, event)
	})
}

// =============================================================================
// Test: register uploads
// =============================================================================

func testRegisterUploads(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Date(2025, 7, 1, 8, 0, 0, 0, time.UTC)

	issuerA := "0xissuerA"
	issuerB := "0xissuerB"

	seedRegisterUpload(t, store, "up-2", issuerA, schema.WorkStatusPending, base.Add(time.Hour))
	seedRegisterUpload(t, store, "up-1", issuerA, schema.WorkStatusPending, base)
	seedRegisterUpload(t, store, "up-3", issuerB, schema.WorkStatusPending, base.Add(2*time.Hour))
	seedRegisterUpload(t, store, "up-done", issuerA, schema.WorkStatusSucceeded, base.Add(-time.Hour))

	tokenAddr := "0xtoken0000000000000000000000000000000005"
	var itemIDs []uint64
	for i := 0; i < 3; i++ {
		account := []string{"0xacc1", "0xacc2", "0xacc3"}[i]
		itemIDs = append(itemIDs, seedRegisterItem(t, store, "up-1", tokenAddr, account, schema.WorkStatusPending))
	}
	seedRegisterItem(t, store, "up-2", tokenAddr, "0xacc4", schema.WorkStatusPending)

	t.Run("returns the oldest pending upload", func(t *testing.T) {
		upload, err := store.GetPendingRegisterUpload(ctx, nil)
		require.NoError(t, err)
		require.NotNil(t, upload)
		assert.Equal(t, "up-1", upload.UploadID)
	})

	t.Run("excluded issuers are skipped", func(t *testing.T) {
		upload, err := store.GetPendingRegisterUpload(ctx, []string{issuerA})
		require.NoError(t, err)
		require.NotNil(t, upload)
		assert.Equal(t, "up-3", upload.UploadID)
	})

	t.Run("nil when everything pending is excluded", func(t *testing.T) {
		upload, err := store.GetPendingRegisterUpload(ctx, []string{issuerA, issuerB})
		require.NoError(t, err)
		assert.Nil(t, upload)
	})

	t.Run("lists pending items up to the limit", func(t *testing.T) {
		items, err := store.ListPendingRegisterItems(ctx, "up-1", 2)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, itemIDs[0], items[0].ID)
		assert.Equal(t, itemIDs[1], items[1].ID)
	})

	t.Run("counts and updates item statuses", func(t *testing.T) {
		require.NoError(t, store.UpdateRegisterItemStatus(ctx, itemIDs[0], schema.WorkStatusSucceeded))
		require.NoError(t, store.UpdateRegisterItemStatus(ctx, itemIDs[1], schema.WorkStatusFailed))

		pending, err := store.CountRegisterItems(ctx, "up-1", schema.WorkStatusPending)
		require.NoError(t, err)
		assert.Equal(t, int64(1), pending)

		failed, err := store.CountRegisterItems(ctx, "up-1", schema.WorkStatusFailed)
		require.NoError(t, err)
		assert.Equal(t, int64(1), failed)
	})

	t.Run("upload status update takes it out of the queue", func(t *testing.T) {
		require.NoError(t, store.UpdateRegisterUploadStatus(ctx, "up-1", schema.WorkStatusFailed))

		upload, err := store.GetPendingRegisterUpload(ctx, []string{issuerB})
		require.NoError(t, err)
		require.NotNil(t, upload)
		assert.Equal(t, "up-2", upload.UploadID)
	})
}

// =============================================================================
// Test: notifications
// =============================================================================

func testNotifications(t *testing.T, store Store) {
	ctx := context.Background()

	notification := schema.Notification{
		NoticeID:      "01J0000000000000000000TEST",
		IssuerAddress: "0xissuerA",
		Type:          domain.NotificationTypeScheduledEventError,
		Code:          domain.NotificationCodeSendFailed,
		Metainfo:      datatypes.JSON([]byte(`{"scheduled_event_id":"ev-1"}`)),
	}
	require.NoError(t, store.CreateNotification(ctx, &notification))

	var got schema.Notification
	require.NoError(t, rawDB(t, store).Where("notice_id = ?", notification.NoticeID).First(&got).Error)
	assert.Equal(t, domain.NotificationTypeScheduledEventError, got.Type)
	assert.Equal(t, domain.NotificationCodeSendFailed, got.Code)
	assert.JSONEq(t, `{"scheduled_event_id":"ev-1"}`, string(got.Metainfo))
}

// RunStoreTests runs the full store test suite against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Watermark", testWatermark},
		{"CreditUTXO", testCreditUTXO},
		{"DebitUTXO", testDebitUTXO},
		{"ListUTXOs", testListUTXOs},
		{"Tokens", testTokens},
		{"LedgerTemplates", testLedgerTemplates},
		{"PersonalInfo", testPersonalInfo},
		{"ScheduledEvents", testScheduledEvents},
		{"RegisterUploads", testRegisterUploads},
		{"Notifications", testNotifications},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
