package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/sectoken-labs/ledgerd/internal/adapter"
	"github.com/sectoken-labs/ledgerd/internal/domain"
	"github.com/sectoken-labs/ledgerd/internal/logger"
)

// Client is the read-side contract capability the sync pipeline depends on.
// Business reads never error on a reverted or absent call; they fall back to
// the caller-supplied default instead.
//
//go:generate mockgen -source=client.go -destination=../mocks/chain_client.go -package=mocks -mock_names=Client=MockChainClient
type Client interface {
	// GetEventLogs fetches and decodes logs of one event over a closed block
	// range. Filters match decoded argument values; a log failing any filter
	// is dropped.
	GetEventLogs(ctx context.Context, contract common.Address, eventName string, blockFrom, blockTo uint64, filters map[string]interface{}) ([]domain.EventLog, error)

	// CallAddress reads an address-returning view function
	CallAddress(ctx context.Context, contract common.Address, method string, defaultValue common.Address) common.Address

	// CallUint64 reads a uint256-returning view function clamped to uint64
	CallUint64(ctx context.Context, contract common.Address, method string, defaultValue uint64) uint64

	// CallString reads a string-returning view function
	CallString(ctx context.Context, contract common.Address, method string, args []interface{}, defaultValue string) string

	// IsContractAddress reports whether bytecode is deployed at the address
	IsContractAddress(ctx context.Context, address common.Address) (bool, error)
}

type client struct {
	eth  adapter.EthClient
	abis []abi.ABI
}

// NewClient creates a chain client over an Ethereum connection
func NewClient(eth adapter.EthClient) (Client, error) {
	var abis []abi.ABI
	for _, raw := range []string{tokenABIJSON, exchangeABIJSON, personalInfoABIJSON} {
		parsed, err := abi.JSON(strings.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to parse ABI: %w", err)
		}
		abis = append(abis, parsed)
	}
	return &client{eth: eth, abis: abis}, nil
}

// eventByName finds the named event across the known ABIs
func (c *client) eventByName(name string) (*abi.ABI, *abi.Event, error) {
	for i := range c.abis {
		if event, ok := c.abis[i].Events[name]; ok {
			return &c.abis[i], &event, nil
		}
	}
	return nil, nil, fmt.Errorf("unknown event: %s", name)
}

// methodByName finds the named view function across the known ABIs
func (c *client) methodByName(name string) (*abi.ABI, error) {
	for i := range c.abis {
		if _, ok := c.abis[i].Methods[name]; ok {
			return &c.abis[i], nil
		}
	}
	return nil, fmt.Errorf("unknown method: %s", name)
}

// GetEventLogs fetches and decodes logs of one event over a closed block range
func (c *client) GetEventLogs(ctx context.Context, contract common.Address, eventName string, blockFrom, blockTo uint64, filters map[string]interface{}) ([]domain.EventLog, error) {
	contractABI, event, err := c.eventByName(eventName)
	if err != nil {
		return nil, err
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(blockFrom),
		ToBlock:   new(big.Int).SetUint64(blockTo),
		Addresses: []common.Address{contract},
		Topics:    [][]common.Hash{{event.ID}},
	}

	rawLogs, err := c.eth.FilterLogs(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to filter %s logs: %w", eventName, err)
	}

	logs := make([]domain.EventLog, 0, len(rawLogs))
	for _, raw := range rawLogs {
		if raw.Removed {
			continue
		}

		args, err := decodeLog(contractABI, event, raw)
		if err != nil {
			logger.WarnCtx(ctx, "Dropping undecodable event log",
				zap.String("event", eventName),
				zap.String("tx_hash", raw.TxHash.Hex()),
				zap.Error(err))
			continue
		}

		if !matchFilters(args, filters) {
			continue
		}

		logs = append(logs, domain.EventLog{
			Event:       eventName,
			Args:        args,
			TxHash:      raw.TxHash.Hex(),
			BlockNumber: raw.BlockNumber,
			LogIndex:    raw.Index,
		})
	}

	return logs, nil
}

// decodeLog unpacks both indexed topics and data fields into one args map
func decodeLog(contractABI *abi.ABI, event *abi.Event, raw types.Log) (map[string]interface{}, error) {
	args := make(map[string]interface{})

	if err := contractABI.UnpackIntoMap(args, event.Name, raw.Data); err != nil {
		return nil, fmt.Errorf("failed to unpack data: %w", err)
	}

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(indexed) > 0 {
		if len(raw.Topics) < len(indexed)+1 {
			return nil, fmt.Errorf("expected %d topics, got %d", len(indexed)+1, len(raw.Topics))
		}
		if err := abi.ParseTopicsIntoMap(args, indexed, raw.Topics[1:]); err != nil {
			return nil, fmt.Errorf("failed to parse topics: %w", err)
		}
	}

	return args, nil
}

// matchFilters checks decoded args against the requested filter values
func matchFilters(args map[string]interface{}, filters map[string]interface{}) bool {
	for key, want := range filters {
		got, ok := args[key]
		if !ok {
			return false
		}
		if wantAddr, ok := want.(common.Address); ok {
			gotAddr, ok := got.(common.Address)
			if !ok || gotAddr != wantAddr {
				return false
			}
			continue
		}
		if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
			return false
		}
	}
	return true
}

// callRaw packs, calls and returns the raw result of a view function
func (c *client) callRaw(ctx context.Context, contract common.Address, method string, args ...interface{}) ([]interface{}, error) {
	contractABI, err := c.methodByName(method)
	if err != nil {
		return nil, err
	}

	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	result, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("empty result from %s", method)
	}

	values, err := contractABI.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no values from %s", method)
	}
	return values, nil
}

// CallAddress reads an address-returning view function
func (c *client) CallAddress(ctx context.Context, contract common.Address, method string, defaultValue common.Address) common.Address {
	values, err := c.callRaw(ctx, contract, method)
	if err != nil {
		logger.DebugCtx(ctx, "Contract read fell back to default",
			zap.String("method", method), zap.Error(err))
		return defaultValue
	}
	addr, ok := values[0].(common.Address)
	if !ok {
		return defaultValue
	}
	return addr
}

// CallUint64 reads a uint256-returning view function clamped to uint64
func (c *client) CallUint64(ctx context.Context, contract common.Address, method string, defaultValue uint64) uint64 {
	values, err := c.callRaw(ctx, contract, method)
	if err != nil {
		logger.DebugCtx(ctx, "Contract read fell back to default",
			zap.String("method", method), zap.Error(err))
		return defaultValue
	}
	v, ok := values[0].(*big.Int)
	if !ok || !v.IsUint64() {
		return defaultValue
	}
	return v.Uint64()
}

// CallString reads a string-returning view function
func (c *client) CallString(ctx context.Context, contract common.Address, method string, args []interface{}, defaultValue string) string {
	values, err := c.callRaw(ctx, contract, method, args...)
	if err != nil {
		logger.DebugCtx(ctx, "Contract read fell back to default",
			zap.String("method", method), zap.Error(err))
		return defaultValue
	}
	s, ok := values[0].(string)
	if !ok {
		return defaultValue
	}
	return s
}

// IsContractAddress reports whether bytecode is deployed at the address
func (c *client) IsContractAddress(ctx context.Context, address common.Address) (bool, error) {
	code, err := c.eth.CodeAt(ctx, address, nil)
	if err != nil {
		return false, fmt.Errorf("failed to get code at %s: %w", address.Hex(), err)
	}
	return len(code) > 0, nil
}
