package personalinfo

import (
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/sectoken-labs/ledgerd/internal/chain"
	"github.com/sectoken-labs/ledgerd/internal/domain"
	"github.com/sectoken-labs/ledgerd/internal/logger"
	"github.com/sectoken-labs/ledgerd/internal/store"
	"github.com/sectoken-labs/ledgerd/internal/store/schema"
)

// Resolver resolves holder personal information, off-chain index first with
// an on-chain registry fallback. Absence is not an error: missing fields
// resolve to the default value.
//
//go:generate mockgen -source=resolver.go -destination=../mocks/personalinfo_resolver.go -package=mocks -mock_names=Resolver=MockPersonalInfoResolver
type Resolver interface {
	// GetInfo resolves personal info for a holder of the given token.
	// defaultValue fills any unresolvable field.
	GetInfo(ctx context.Context, accountAddress string, token *schema.Token, defaultValue string) domain.PersonalInfo
}

type resolver struct {
	store store.Store
	chain chain.Client
}

// NewResolver creates a personal info resolver
func NewResolver(st store.Store, chainClient chain.Client) Resolver {
	return &resolver{store: st, chain: chainClient}
}

// GetInfo resolves personal info for a holder of the given token
func (r *resolver) GetInfo(ctx context.Context, accountAddress string, token *schema.Token, defaultValue string) domain.PersonalInfo {
	info := domain.PersonalInfo{Name: defaultValue, Address: defaultValue}

	indexed, err := r.store.GetPersonalInfo(ctx, accountAddress, token.IssuerAddress)
	if err != nil {
		logger.WarnCtx(ctx, "Off-chain personal info lookup failed",
			zap.String("account_address", accountAddress),
			zap.Error(err))
		return info
	}

	var raw []byte
	if indexed != nil {
		raw = indexed.PersonalInfo
	} else {
		// Not indexed off-chain; fall back to the registry contract the token
		// is configured with. An unregistered holder reads as an empty string.
		registry := r.chain.CallAddress(ctx,
			common.HexToAddress(token.TokenAddress), "personalInfoAddress", domain.ZeroAddress)
		if registry == domain.ZeroAddress {
			return info
		}

		onchain := r.chain.CallString(ctx, registry, "personalInfo",
			[]interface{}{common.HexToAddress(accountAddress), common.HexToAddress(token.IssuerAddress)},
			"")
		if onchain == "" {
			return info
		}
		raw = []byte(onchain)
	}

	var decoded struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		logger.WarnCtx(ctx, "Malformed personal info payload",
			zap.String("account_address", accountAddress),
			zap.Error(err))
		return info
	}

	if decoded.Name != nil {
		info.Name = *decoded.Name
	}
	if decoded.Address != nil {
		info.Address = *decoded.Address
	}
	return info
}
