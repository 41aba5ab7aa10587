package ledger

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gowebpki/jcs"
	"go.uber.org/zap"

	"github.com/sectoken-labs/ledgerd/internal/adapter"
	"github.com/sectoken-labs/ledgerd/internal/chain"
	"github.com/sectoken-labs/ledgerd/internal/domain"
	"github.com/sectoken-labs/ledgerd/internal/logger"
	"github.com/sectoken-labs/ledgerd/internal/personalinfo"
	"github.com/sectoken-labs/ledgerd/internal/store"
	"github.com/sectoken-labs/ledgerd/internal/store/schema"
)

// DetailRow is one holder line within a ledger detail section
type DetailRow struct {
	AccountAddress  string `json:"account_address"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	Amount          uint64 `json:"amount"`
	Price           uint64 `json:"price"`
	Balance         uint64 `json:"balance"`
	AcquisitionDate string `json:"acquisition_date"`
}

// DetailSection is one rendered detail block of a ledger document
type DetailSection struct {
	TokenDetailType string          `json:"token_detail_type"`
	Headers         json.RawMessage `json:"headers,omitempty"`
	Data            []DetailRow     `json:"data"`
	Footers         json.RawMessage `json:"footers,omitempty"`
}

// Document is the rendered ledger snapshot persisted per build
type Document struct {
	Created   string          `json:"created"`
	TokenName string          `json:"token_name"`
	Headers   json.RawMessage `json:"headers,omitempty"`
	Details   []DetailSection `json:"details"`
	Footers   json.RawMessage `json:"footers,omitempty"`
}

// Builder renders and appends immutable ledger snapshot documents.
//
//go:generate mockgen -source=builder.go -destination=../mocks/ledger_builder.go -package=mocks -mock_names=Builder=MockLedgerBuilder
type Builder interface {
	// BuildSnapshot renders one ledger document for the token from current
	// UTXO state and appends it via the given transactional store view. Tokens
	// without a configured template, or of a family outside the ledger
	// pipeline, are skipped without error.
	BuildSnapshot(ctx context.Context, tx store.Store, tokenAddress string) error
}

type builder struct {
	chain    chain.Client
	resolver personalinfo.Resolver
	clock    adapter.Clock
	location *time.Location
}

// NewBuilder creates a ledger snapshot builder. Dates in documents are
// rendered in the given location.
func NewBuilder(chainClient chain.Client, resolver personalinfo.Resolver, clock adapter.Clock, location *time.Location) Builder {
	return &builder{
		chain:    chainClient,
		resolver: resolver,
		clock:    clock,
		location: location,
	}
}

// BuildSnapshot renders and appends one ledger document for the token
func (b *builder) BuildSnapshot(ctx context.Context, tx store.Store, tokenAddress string) error {
	token, err := tx.GetToken(ctx, tokenAddress)
	if err != nil {
		return fmt.Errorf("failed to load token: %w", err)
	}
	if token == nil || !domain.IsValidTokenType(token.TokenType) {
		return nil
	}

	template, err := tx.GetLedgerTemplate(ctx, tokenAddress)
	if err != nil {
		return fmt.Errorf("failed to load ledger template: %w", err)
	}
	if template == nil {
		logger.DebugCtx(ctx, "No ledger template configured, skipping snapshot",
			zap.String("token_address", tokenAddress))
		return nil
	}

	sectionTemplates, err := tx.ListLedgerDetailsTemplates(ctx, tokenAddress)
	if err != nil {
		return fmt.Errorf("failed to load detail templates: %w", err)
	}

	details := make([]DetailSection, 0, len(sectionTemplates))
	for _, st := range sectionTemplates {
		section := DetailSection{
			TokenDetailType: st.TokenDetailType,
			Headers:         json.RawMessage(st.Headers),
			Footers:         json.RawMessage(st.Footers),
		}

		switch st.DataType {
		case schema.LedgerDataTypeOnChain:
			rows, err := b.buildOnChainRows(ctx, tx, token)
			if err != nil {
				return err
			}
			section.Data = rows
		case schema.LedgerDataTypeDB:
			rows, err := b.buildUploadedRows(ctx, tx, tokenAddress, st.DataSource)
			if err != nil {
				return err
			}
			section.Data = rows
		default:
			logger.WarnCtx(ctx, "Unknown detail data type, rendering empty section",
				zap.String("token_address", tokenAddress),
				zap.String("data_type", string(st.DataType)))
			section.Data = []DetailRow{}
		}

		details = append(details, section)
	}

	doc := Document{
		Created:   b.clock.Now().In(b.location).Format("2006/01/02"),
		TokenName: template.TokenName,
		Headers:   json.RawMessage(template.Headers),
		Details:   details,
		Footers:   json.RawMessage(template.Footers),
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger document: %w", err)
	}

	hash, err := contentHash(raw)
	if err != nil {
		return fmt.Errorf("failed to hash ledger document: %w", err)
	}

	err = tx.CreateLedger(ctx, &schema.Ledger{
		TokenAddress: tokenAddress,
		TokenType:    token.TokenType,
		Ledger:       raw,
		ContentHash:  hash,
	})
	if err != nil {
		return fmt.Errorf("failed to append ledger snapshot: %w", err)
	}

	logger.InfoCtx(ctx, "Appended ledger snapshot",
		zap.String("token_address", tokenAddress),
		zap.String("content_hash", hash))
	return nil
}

// buildOnChainRows aggregates active UTXO lots into holder rows, one per
// (account, acquisition date), priced from the token contract
func (b *builder) buildOnChainRows(ctx context.Context, tx store.Store, token *schema.Token) ([]DetailRow, error) {
	lots, err := tx.ListActiveUTXOsByToken(ctx, token.TokenAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to list active lots: %w", err)
	}

	price := b.tokenPrice(ctx, token)

	type groupKey struct {
		account string
		date    string
	}
	amounts := make(map[groupKey]uint64)
	var order []groupKey
	for _, lot := range lots {
		key := groupKey{
			account: lot.AccountAddress,
			date:    lot.BlockTimestamp.In(b.location).Format("2006/01/02"),
		}
		if _, seen := amounts[key]; !seen {
			order = append(order, key)
		}
		amounts[key] += lot.Amount
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].account != order[j].account {
			return order[i].account < order[j].account
		}
		return order[i].date < order[j].date
	})

	rows := make([]DetailRow, 0, len(order))
	infoCache := make(map[string]domain.PersonalInfo)
	for _, key := range order {
		info, cached := infoCache[key.account]
		if !cached {
			info = b.resolver.GetInfo(ctx, key.account, token, "")
			infoCache[key.account] = info
		}
		amount := amounts[key]
		rows = append(rows, DetailRow{
			AccountAddress:  key.account,
			Name:            info.Name,
			Address:         info.Address,
			Amount:          amount,
			Price:           price,
			Balance:         price * amount,
			AcquisitionDate: key.date,
		})
	}
	return rows, nil
}

// buildUploadedRows renders rows of a db-sourced section verbatim from the
// referenced uploaded dataset
func (b *builder) buildUploadedRows(ctx context.Context, tx store.Store, tokenAddress, dataID string) ([]DetailRow, error) {
	data, err := tx.ListLedgerDetailsData(ctx, tokenAddress, dataID)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploaded detail data: %w", err)
	}

	rows := make([]DetailRow, 0, len(data))
	for _, d := range data {
		rows = append(rows, DetailRow{
			Name:            d.Name,
			Address:         d.Address,
			Amount:          d.Amount,
			Price:           d.Price,
			Balance:         d.Balance,
			AcquisitionDate: d.AcquisitionDate,
		})
	}
	return rows, nil
}

// tokenPrice reads the per-unit price for the token family; bonds use face
// value, shares use principal value. Read failures price at zero.
func (b *builder) tokenPrice(ctx context.Context, token *schema.Token) uint64 {
	contract := common.HexToAddress(token.TokenAddress)
	switch token.TokenType {
	case domain.TokenTypeBond:
		return b.chain.CallUint64(ctx, contract, "faceValue", 0)
	case domain.TokenTypeShare:
		return b.chain.CallUint64(ctx, contract, "principalValue", 0)
	default:
		return 0
	}
}

// contentHash returns the SHA-256 hex digest of the RFC 8785 canonical form
func contentHash(raw []byte) (string, error) {
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
