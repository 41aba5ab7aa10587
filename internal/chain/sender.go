package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/sectoken-labs/ledgerd/internal/adapter"
)

const sendGasLimit = uint64(6_000_000)

// Sender submits state-changing contract calls signed with the operator key.
// Nonce allocation is per-call via the pending pool; the batch processors
// serialize sends per issuer through the claim registry, so two workers never
// race on the same sending account.
//
//go:generate mockgen -source=sender.go -destination=../mocks/chain_sender.go -package=mocks -mock_names=Sender=MockChainSender
type Sender interface {
	// SendContractCall packs and submits one contract method call, returning
	// the transaction hash
	SendContractCall(ctx context.Context, contract common.Address, method string, args ...interface{}) (string, error)
}

type sender struct {
	eth     adapter.EthClient
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
	abis    []abi.ABI
}

// NewSender creates a Sender signing with the given hex-encoded private key
func NewSender(eth adapter.EthClient, privateKeyHex string, chainID int64) (Sender, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	var abis []abi.ABI
	for _, raw := range []string{tokenABIJSON, tokenSetterABIJSON, personalInfoABIJSON} {
		parsed, err := abi.JSON(strings.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to parse ABI: %w", err)
		}
		abis = append(abis, parsed)
	}

	return &sender{
		eth:     eth,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: big.NewInt(chainID),
		abis:    abis,
	}, nil
}

// SendContractCall packs and submits one contract method call
func (s *sender) SendContractCall(ctx context.Context, contract common.Address, method string, args ...interface{}) (string, error) {
	var data []byte
	var packErr error
	found := false
	for i := range s.abis {
		if _, ok := s.abis[i].Methods[method]; !ok {
			continue
		}
		found = true
		data, packErr = s.abis[i].Pack(method, args...)
		break
	}
	if !found {
		return "", fmt.Errorf("unknown method: %s", method)
	}
	if packErr != nil {
		return "", fmt.Errorf("failed to pack %s call: %w", method, packErr)
	}

	nonce, err := s.eth.PendingNonceAt(ctx, s.from)
	if err != nil {
		return "", fmt.Errorf("failed to get nonce: %w", err)
	}

	gasPrice, err := s.eth.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get gas price: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &contract,
		Gas:      sendGasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := s.eth.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	return signed.Hash().Hex(), nil
}
