package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/adapter"
	"github.com/feral-file/persona-indexer/internal/block"
	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/logger"
)

// DefaultLogStepSize is the initial block span of a paginated log query
const DefaultLogStepSize = uint64(100000)

// PersonaClient decodes logs of the Persona contracts and performs point-in-time reads
//
//go:generate mockgen -source=client.go -destination=../../mocks/persona_client.go -package=mocks -mock_names=PersonaClient=MockPersonaClient
type PersonaClient interface {
	// ParseEventLog decodes a Persona/PersonaMirror log into a normalized event
	ParseEventLog(ctx context.Context, vLog types.Log) (*domain.PersonaEvent, error)

	// FilterLogs retrieves the logs matching query in (block, log index) order,
	// splitting the block range when the node refuses large results
	FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error)

	// SubscribeFilterLogs subscribes to new logs matching query
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)

	// GetLatestBlock returns the head block number
	GetLatestBlock(ctx context.Context) (uint64, error)

	// CurrentPersonaID calls currentPersonaId() on the Persona registry at blockNumber
	CurrentPersonaID(ctx context.Context, contractAddress string, blockNumber uint64) (*big.Int, error)

	// TokenURI calls tokenURI(id) on the Persona registry at blockNumber
	TokenURI(ctx context.Context, contractAddress string, personaID string, blockNumber uint64) (string, error)

	// Close closes the connection
	Close()
}

type personaClient struct {
	chainID     domain.Chain
	layer       domain.Layer
	contractABI abi.ABI
	client      adapter.EthClient
	blocks      block.BlockProvider
	stepSize    uint64
}

// NewClient creates a client decoding the logs of the contract deployed on layer
func NewClient(chainID domain.Chain, layer domain.Layer, client adapter.EthClient, blocks block.BlockProvider) (PersonaClient, error) {
	contractABI, err := ContractABI(layer)
	if err != nil {
		return nil, err
	}

	return &personaClient{
		chainID:     chainID,
		layer:       layer,
		contractABI: contractABI,
		client:      client,
		blocks:      blocks,
		stepSize:    DefaultLogStepSize,
	}, nil
}

// EventTopics returns the topic0 values of every event emitted on layer
func EventTopics(layer domain.Layer) ([]common.Hash, error) {
	contractABI, err := ContractABI(layer)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(contractABI.Events))
	for name := range contractABI.Events {
		names = append(names, name)
	}
	sort.Strings(names)

	topics := make([]common.Hash, 0, len(names))
	for _, name := range names {
		topics = append(topics, contractABI.Events[name].ID)
	}
	return topics, nil
}

// ParseEventLog decodes a log of the layer's contract.
// Logs that cannot be decoded are reported with domain.ErrInvalidEvent.
func (c *personaClient) ParseEventLog(ctx context.Context, vLog types.Log) (*domain.PersonaEvent, error) {
	if len(vLog.Topics) == 0 {
		return nil, fmt.Errorf("%w: anonymous log %s:%d", domain.ErrInvalidEvent, vLog.TxHash.Hex(), vLog.Index)
	}

	abiEvent, err := c.contractABI.EventByID(vLog.Topics[0])
	if err != nil {
		return nil, fmt.Errorf("%w: unknown event signature %s", domain.ErrInvalidEvent, vLog.Topics[0].Hex())
	}

	var indexed abi.Arguments
	for _, input := range abiEvent.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(vLog.Topics)-1 != len(indexed) {
		return nil, fmt.Errorf("%w: %s expects %d indexed topics, got %d",
			domain.ErrInvalidEvent, abiEvent.Name, len(indexed), len(vLog.Topics)-1)
	}

	values := make(map[string]interface{})
	if err := abi.ParseTopicsIntoMap(values, indexed, vLog.Topics[1:]); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s topics: %v", domain.ErrInvalidEvent, abiEvent.Name, err)
	}
	if err := c.contractABI.UnpackIntoMap(values, abiEvent.Name, vLog.Data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s data: %v", domain.ErrInvalidEvent, abiEvent.Name, err)
	}

	timestamp, err := c.blocks.GetBlockTimestamp(ctx, vLog.BlockNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get block timestamp: %w", err)
	}

	blockHash := vLog.BlockHash.Hex()
	event := &domain.PersonaEvent{
		Layer:           c.layer,
		Kind:            eventKinds[abiEvent.Name],
		Chain:           c.chainID,
		ContractAddress: domain.NormalizeAddress(vLog.Address.Hex()),
		TxHash:          vLog.TxHash.Hex(),
		LogIndex:        vLog.Index,
		BlockNumber:     vLog.BlockNumber,
		BlockHash:       &blockHash,
		Timestamp:       timestamp,
		PersonaID:       firstNonEmpty(bigValue(values["personaId"]), bigValue(values["id"])),
		From:            addressValue(values["from"]),
		To:              addressValue(values["to"]),
		User:            addressValue(values["user"]),
		Consumer:        addressValue(values["consumer"]),
		Nonce:           bigValue(values["nonce"]),
		Generator:       addressValue(values["generator"]),
	}

	if selectors, ok := values["fnSignatures"].([][4]byte); ok {
		event.FnSignatures = make([]string, 0, len(selectors))
		for _, selector := range selectors {
			event.FnSignatures = append(event.FnSignatures, fmt.Sprintf("0x%x", selector[:]))
		}
	}

	if !event.Valid() {
		return nil, fmt.Errorf("%w: decoded %s is missing parameters", domain.ErrInvalidEvent, abiEvent.Name)
	}

	return event, nil
}

func bigValue(v interface{}) string {
	if n, ok := v.(*big.Int); ok && n != nil {
		return n.String()
	}
	return ""
}

func addressValue(v interface{}) string {
	if address, ok := v.(common.Address); ok {
		return domain.NormalizeAddress(address.Hex())
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// SubscribeFilterLogs subscribes to filter logs
func (c *personaClient) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.client.SubscribeFilterLogs(ctx, query, ch)
}

// GetLatestBlock returns the head block number
func (c *personaClient) GetLatestBlock(ctx context.Context) (uint64, error) {
	return c.blocks.GetLatestBlock(ctx)
}

// FilterLogs fetches the logs of query page by page. Infura and most providers cap
// a single eth_getLogs response, so a refused page is retried with half the span.
func (c *personaClient) FilterLogs(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	if query.BlockHash != nil {
		return c.client.FilterLogs(ctx, query)
	}

	fromBlock := uint64(0)
	if query.FromBlock != nil {
		fromBlock = query.FromBlock.Uint64()
	}

	var toBlock uint64
	if query.ToBlock != nil {
		toBlock = query.ToBlock.Uint64()
	} else {
		latest, err := c.GetLatestBlock(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest block: %w", err)
		}
		toBlock = latest
	}

	var allLogs []types.Log
	stepSize := c.stepSize
	for currentFrom := fromBlock; currentFrom <= toBlock; {
		currentTo := currentFrom + stepSize - 1
		if currentTo > toBlock {
			currentTo = toBlock
		}

		page := query
		page.FromBlock = new(big.Int).SetUint64(currentFrom)
		page.ToBlock = new(big.Int).SetUint64(currentTo)

		logs, err := c.client.FilterLogs(ctx, page)
		if err == nil {
			allLogs = append(allLogs, logs...)
			currentFrom = currentTo + 1
			continue
		}

		if !isTooManyResultsError(err) || stepSize == 1 {
			return nil, fmt.Errorf("failed to get logs for range %d-%d: %w", currentFrom, currentTo, err)
		}

		stepSize = stepSize / 2
		logger.WarnCtx(ctx, "Too many results, reducing step size",
			zap.Uint64("oldStepSize", stepSize*2),
			zap.Uint64("newStepSize", stepSize),
			zap.Uint64("fromBlock", currentFrom),
			zap.Uint64("toBlock", currentTo))
	}

	sort.SliceStable(allLogs, func(i, j int) bool {
		if allLogs[i].BlockNumber != allLogs[j].BlockNumber {
			return allLogs[i].BlockNumber < allLogs[j].BlockNumber
		}
		return allLogs[i].Index < allLogs[j].Index
	})

	return allLogs, nil
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum") ||
		strings.Contains(errStr, "block range")
}

// CurrentPersonaID reads the next persona ID to be minted
func (c *personaClient) CurrentPersonaID(ctx context.Context, contractAddress string, blockNumber uint64) (*big.Int, error) {
	result, err := c.call(ctx, contractAddress, blockNumber, "currentPersonaId")
	if err != nil {
		return nil, err
	}

	var current *big.Int
	if err := personaABI.UnpackIntoInterface(&current, "currentPersonaId", result); err != nil {
		return nil, fmt.Errorf("failed to unpack result: %w", err)
	}

	return current, nil
}

// TokenURI reads the metadata URI of a persona
func (c *personaClient) TokenURI(ctx context.Context, contractAddress string, personaID string, blockNumber uint64) (string, error) {
	id, ok := new(big.Int).SetString(personaID, 10)
	if !ok {
		return "", fmt.Errorf("invalid persona id: %s", personaID)
	}

	result, err := c.call(ctx, contractAddress, blockNumber, "tokenURI", id)
	if err != nil {
		return "", err
	}

	var uri string
	if err := personaABI.UnpackIntoInterface(&uri, "tokenURI", result); err != nil {
		return "", fmt.Errorf("failed to unpack result: %w", err)
	}

	return uri, nil
}

// call performs an eth_call against the Persona registry pinned at blockNumber (0 for latest)
func (c *personaClient) call(ctx context.Context, contractAddress string, blockNumber uint64, method string, args ...interface{}) ([]byte, error) {
	data, err := personaABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	var atBlock *big.Int
	if blockNumber > 0 {
		atBlock = new(big.Int).SetUint64(blockNumber)
	}

	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	contractAddr := common.HexToAddress(contractAddress)
	result, err := c.client.CallContract(callCtx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, atBlock)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	return result, nil
}

// Close closes the connection
func (c *personaClient) Close() {
	c.client.Close()
}
