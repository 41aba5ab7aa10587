package reconciler

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/sectoken-labs/ledgerd/internal/block"
	"github.com/sectoken-labs/ledgerd/internal/chain"
	"github.com/sectoken-labs/ledgerd/internal/domain"
	"github.com/sectoken-labs/ledgerd/internal/logger"
	"github.com/sectoken-labs/ledgerd/internal/store"
	"github.com/sectoken-labs/ledgerd/internal/store/schema"
)

// Reconciler replays one token's balance-affecting events over a block range
// into the UTXO store, in strict (block_number, log_index) order.
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	// SyncToken applies Transfer, Issue, Redeem and Unlock events of one token
	// over [blockFrom, blockTo] against the given transactional store view.
	// It reports whether any balance-affecting event was applied. A fetch or
	// decode failure for one event kind suppresses that kind for this pass
	// without aborting the others; store failures abort the pass.
	SyncToken(ctx context.Context, tx store.Store, token *schema.Token, blockFrom, blockTo uint64) (bool, error)
}

type reconciler struct {
	chain  chain.Client
	blocks block.Provider
}

// New creates a Reconciler
func New(chainClient chain.Client, blocks block.Provider) Reconciler {
	return &reconciler{chain: chainClient, blocks: blocks}
}

// SyncToken applies one token's events over [blockFrom, blockTo]
func (r *reconciler) SyncToken(ctx context.Context, tx store.Store, token *schema.Token, blockFrom, blockTo uint64) (bool, error) {
	occurred := false

	// Fixed kind order; each kind is individually best-effort on the fetch
	// side so one failing RPC query cannot starve the others.
	kinds := []struct {
		name  string
		fetch func(ctx context.Context, token *schema.Token, blockFrom, blockTo uint64) ([]domain.UTXODelta, error)
	}{
		{"Transfer", r.fetchTransfers},
		{"Issue", r.fetchIssues},
		{"Redeem", r.fetchRedeems},
		{"Unlock", r.fetchUnlocks},
	}

	for _, kind := range kinds {
		deltas, err := kind.fetch(ctx, token, blockFrom, blockTo)
		if err != nil {
			logger.WarnCtx(ctx, "Event fetch failed, suppressing kind for this pass",
				zap.String("kind", kind.name),
				zap.String("token_address", token.TokenAddress),
				zap.Uint64("block_from", blockFrom),
				zap.Uint64("block_to", blockTo),
				zap.Error(err))
			continue
		}
		if len(deltas) == 0 {
			continue
		}

		sortDeltas(deltas)

		if err := r.apply(ctx, tx, deltas); err != nil {
			return occurred, fmt.Errorf("failed to apply %s deltas: %w", kind.name, err)
		}
		occurred = true
	}

	return occurred, nil
}

// sortDeltas orders operations by on-chain position. Two events in the same
// block are ordered by log index regardless of which fetch produced them.
func sortDeltas(deltas []domain.UTXODelta) {
	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].BlockNumber != deltas[j].BlockNumber {
			return deltas[i].BlockNumber < deltas[j].BlockNumber
		}
		return deltas[i].LogIndex < deltas[j].LogIndex
	})
}

// apply writes deltas to the UTXO store in order. Debit precedes credit
// within one delta so a self-transfer cannot spend its own fresh lot.
func (r *reconciler) apply(ctx context.Context, tx store.Store, deltas []domain.UTXODelta) error {
	for _, d := range deltas {
		if d.FromAddress != "" {
			if err := tx.DebitUTXO(ctx, d.TokenAddress, d.FromAddress, d.Amount); err != nil {
				return err
			}
		}
		if d.ToAddress != "" {
			err := tx.CreditUTXO(ctx, store.CreditUTXOInput{
				TxHash:         d.TxHash,
				TokenAddress:   d.TokenAddress,
				AccountAddress: d.ToAddress,
				Amount:         d.Amount,
				BlockNumber:    d.BlockNumber,
				BlockTimestamp: d.BlockTimestamp,
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// fetchTransfers merges native Transfer events with exchange HolderChanged
// events for this token. The exchange address is resolved per call because
// the tradable exchange a token points at can change over time.
func (r *reconciler) fetchTransfers(ctx context.Context, token *schema.Token, blockFrom, blockTo uint64) ([]domain.UTXODelta, error) {
	tokenAddr := common.HexToAddress(token.TokenAddress)

	logs, err := r.chain.GetEventLogs(ctx, tokenAddr, "Transfer", blockFrom, blockTo, nil)
	if err != nil {
		return nil, err
	}

	exchange := r.chain.CallAddress(ctx, tokenAddr, "tradableExchange", domain.ZeroAddress)
	if exchange != domain.ZeroAddress {
		exchangeLogs, err := r.chain.GetEventLogs(ctx, exchange, "HolderChanged", blockFrom, blockTo,
			map[string]interface{}{"token": tokenAddr})
		if err != nil {
			return nil, err
		}
		logs = append(logs, exchangeLogs...)
	}

	var deltas []domain.UTXODelta
	for _, log := range logs {
		from := addressArg(log.Args, "from")
		to := addressArg(log.Args, "to")
		amount, ok := amountArg(log.Args, "value")
		if !ok {
			r.logDropped(ctx, token.TokenAddress, log)
			continue
		}

		// Escrow legs through contract accounts are not holder-facing
		// ownership changes and are excluded from the UTXO ledger.
		isContract, err := r.eitherIsContract(ctx, from, to)
		if err != nil {
			return nil, err
		}
		if isContract {
			continue
		}

		delta, err := r.buildDelta(ctx, token.TokenAddress, log, from.Hex(), to.Hex(), amount)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, delta)
	}
	return deltas, nil
}

// fetchIssues credits newly issued amounts to the target account
func (r *reconciler) fetchIssues(ctx context.Context, token *schema.Token, blockFrom, blockTo uint64) ([]domain.UTXODelta, error) {
	logs, err := r.chain.GetEventLogs(ctx, common.HexToAddress(token.TokenAddress), "Issue", blockFrom, blockTo, nil)
	if err != nil {
		return nil, err
	}

	var deltas []domain.UTXODelta
	for _, log := range logs {
		target := addressArg(log.Args, "targetAddress")
		amount, ok := amountArg(log.Args, "amount")
		if !ok {
			r.logDropped(ctx, token.TokenAddress, log)
			continue
		}

		isContract, err := r.chain.IsContractAddress(ctx, target)
		if err != nil {
			return nil, err
		}
		if isContract {
			continue
		}

		delta, err := r.buildDelta(ctx, token.TokenAddress, log, "", target.Hex(), amount)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, delta)
	}
	return deltas, nil
}

// fetchRedeems debits redeemed amounts from the target account
func (r *reconciler) fetchRedeems(ctx context.Context, token *schema.Token, blockFrom, blockTo uint64) ([]domain.UTXODelta, error) {
	logs, err := r.chain.GetEventLogs(ctx, common.HexToAddress(token.TokenAddress), "Redeem", blockFrom, blockTo, nil)
	if err != nil {
		return nil, err
	}

	var deltas []domain.UTXODelta
	for _, log := range logs {
		target := addressArg(log.Args, "targetAddress")
		amount, ok := amountArg(log.Args, "amount")
		if !ok {
			r.logDropped(ctx, token.TokenAddress, log)
			continue
		}

		delta, err := r.buildDelta(ctx, token.TokenAddress, log, target.Hex(), "", amount)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, delta)
	}
	return deltas, nil
}

// fetchUnlocks moves unlocked amounts from the locked holder to the recipient
func (r *reconciler) fetchUnlocks(ctx context.Context, token *schema.Token, blockFrom, blockTo uint64) ([]domain.UTXODelta, error) {
	logs, err := r.chain.GetEventLogs(ctx, common.HexToAddress(token.TokenAddress), "Unlock", blockFrom, blockTo, nil)
	if err != nil {
		return nil, err
	}

	var deltas []domain.UTXODelta
	for _, log := range logs {
		account := addressArg(log.Args, "accountAddress")
		recipient := addressArg(log.Args, "recipientAddress")
		amount, ok := amountArg(log.Args, "value")
		if !ok {
			r.logDropped(ctx, token.TokenAddress, log)
			continue
		}

		// An unlock back to the same holder does not change ownership
		if account == recipient {
			continue
		}

		isContract, err := r.eitherIsContract(ctx, account, recipient)
		if err != nil {
			return nil, err
		}
		if isContract {
			continue
		}

		delta, err := r.buildDelta(ctx, token.TokenAddress, log, account.Hex(), recipient.Hex(), amount)
		if err != nil {
			return nil, err
		}
		deltas = append(deltas, delta)
	}
	return deltas, nil
}

// buildDelta stamps the block timestamp onto one operation
func (r *reconciler) buildDelta(ctx context.Context, tokenAddress string, log domain.EventLog, from, to string, amount uint64) (domain.UTXODelta, error) {
	timestamp, err := r.blocks.BlockTimestamp(ctx, log.BlockNumber)
	if err != nil {
		return domain.UTXODelta{}, err
	}
	return domain.UTXODelta{
		TxHash:         log.TxHash,
		TokenAddress:   tokenAddress,
		FromAddress:    from,
		ToAddress:      to,
		Amount:         amount,
		BlockNumber:    log.BlockNumber,
		LogIndex:       log.LogIndex,
		BlockTimestamp: timestamp,
	}, nil
}

// eitherIsContract reports whether either address carries bytecode
func (r *reconciler) eitherIsContract(ctx context.Context, a, b common.Address) (bool, error) {
	for _, addr := range []common.Address{a, b} {
		isContract, err := r.chain.IsContractAddress(ctx, addr)
		if err != nil {
			return false, err
		}
		if isContract {
			return true, nil
		}
	}
	return false, nil
}

// logDropped records a malformed or out-of-bounds event amount
func (r *reconciler) logDropped(ctx context.Context, tokenAddress string, log domain.EventLog) {
	logger.WarnCtx(ctx, "Dropping event with malformed amount",
		zap.String("token_address", tokenAddress),
		zap.String("event", log.Event),
		zap.String("tx_hash", log.TxHash),
		zap.Uint64("block_number", log.BlockNumber))
}

// addressArg reads an address argument, zero when absent
func addressArg(args map[string]interface{}, name string) common.Address {
	if v, ok := args[name].(common.Address); ok {
		return v
	}
	return domain.ZeroAddress
}

// amountArg reads a uint256 amount argument, rejecting values above the
// platform safe-integer bound
func amountArg(args map[string]interface{}, name string) (uint64, bool) {
	v, ok := args[name].(*big.Int)
	if !ok || v.Sign() < 0 || !v.IsUint64() {
		return 0, false
	}
	amount := v.Uint64()
	if amount > domain.MaxSafeAmount {
		return 0, false
	}
	return amount, true
}
