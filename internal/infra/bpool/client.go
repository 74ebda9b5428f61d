package bpool

//go:generate mockgen -destination=mock/eth_caller.go -package=mock . EthCaller

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const poolABIJSON = `[
	{"inputs":[],"name":"getCurrentTokens","outputs":[{"internalType":"address[]","name":"tokens","type":"address[]"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"address","name":"token","type":"address"}],"name":"getBalance","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"address","name":"token","type":"address"}],"name":"getDenormalizedWeight","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getTotalDenormalizedWeight","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getSwapFee","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"totalSupply","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

const (
	methodCurrentTokens = "getCurrentTokens"
	methodBalance       = "getBalance"
	methodWeight        = "getDenormalizedWeight"
	methodTotalWeight   = "getTotalDenormalizedWeight"
	methodSwapFee       = "getSwapFee"
	methodTotalSupply   = "totalSupply"
)

// Client reads the state of a weighted pool contract.
type Client interface {
	// GetCurrentTokens returns the bound tokens of the pool in contract order.
	GetCurrentTokens(ctx context.Context, pool common.Address) ([]common.Address, error)
	// GetTokenState returns the balance and denormalized weight of one token.
	GetTokenState(ctx context.Context, pool, token common.Address) (TokenState, error)
	// GetPoolParams returns the swap fee, total weight and LP supply.
	GetPoolParams(ctx context.Context, pool common.Address) (PoolParams, error)
	// GetPoolState returns the parameters and the state of every bound token.
	GetPoolState(ctx context.Context, pool common.Address) (PoolState, error)
}

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type ethClientImpl struct {
	caller  EthCaller
	poolABI abi.ABI

	callTimeout time.Duration
}

// NewClient creates a pool Client backed by an Ethereum RPC connection.
func NewClient(rpcURL string, callTimeout time.Duration) (Client, error) {
	caller, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial")
	}

	return newClientWithCaller(caller, callTimeout)
}

func newClientWithCaller(caller EthCaller, callTimeout time.Duration) (Client, error) {
	poolABI, err := abi.JSON(strings.NewReader(poolABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}

	return &ethClientImpl{
		caller:  caller,
		poolABI: poolABI,

		callTimeout: callTimeout,
	}, nil
}

func (c *ethClientImpl) call(ctx context.Context, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := c.poolABI.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrap(err, "c.poolABI.Pack")
	}

	if c.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.callTimeout)
		defer cancel()
	}

	res, err := c.caller.CallContract(
		ctx,
		ethereum.CallMsg{
			To:   &to,
			Data: data,
		},
		nil,
	)
	if err != nil {
		return nil, errors.Wrap(err, "c.caller.CallContract")
	}

	out, err := c.poolABI.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrap(err, "c.poolABI.Unpack")
	}
	if len(out) == 0 {
		return nil, errors.Errorf("empty output from %s", method)
	}

	return out, nil
}

// callUint calls a method returning a single uint256.
func (c *ethClientImpl) callUint(ctx context.Context, to common.Address, method string, args ...interface{}) (*big.Int, error) {
	out, err := c.call(ctx, to, method, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call %s", method)
	}

	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, errors.Errorf("failed to cast %s result to *big.Int", method)
	}
	if v.Sign() < 0 {
		return nil, errors.Errorf("negative %s result %s", method, v)
	}
	if _, overflow := uint256.FromBig(v); overflow {
		return nil, errors.Errorf("%s result %s exceeds 256 bits", method, v)
	}

	return v, nil
}

// GetCurrentTokens returns the bound tokens of the pool in contract order.
func (c *ethClientImpl) GetCurrentTokens(ctx context.Context, pool common.Address) ([]common.Address, error) {
	out, err := c.call(ctx, pool, methodCurrentTokens)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to call %s", methodCurrentTokens)
	}

	tokens, ok := out[0].([]common.Address)
	if !ok {
		return nil, errors.Errorf("failed to cast %s result to []common.Address", methodCurrentTokens)
	}

	return tokens, nil
}

type uintResult struct {
	name  string
	value *big.Int
	err   error
}

// callUints issues the given uint256 calls concurrently and collects their
// results by method name.
func (c *ethClientImpl) callUints(ctx context.Context, pool common.Address, calls map[string][]interface{}) (map[string]*big.Int, error) {
	var wg sync.WaitGroup
	ch := make(chan uintResult, len(calls))

	wg.Add(len(calls))
	for method, args := range calls {
		go func(method string, args []interface{}) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				ch <- uintResult{name: method, err: errors.Wrap(ctx.Err(), "context cancelled before call")}
				return
			default:
			}

			v, err := c.callUint(ctx, pool, method, args...)
			ch <- uintResult{name: method, value: v, err: err}
		}(method, args)
	}

	go func() {
		wg.Wait()
		close(ch)
	}()

	var (
		values      = make(map[string]*big.Int, len(calls))
		combinedErr error
	)

	for result := range ch {
		if result.err != nil {
			combinedErr = multierr.Append(combinedErr, result.err)
			continue
		}
		values[result.name] = result.value
	}

	if combinedErr != nil {
		return nil, combinedErr
	}

	return values, nil
}

// GetTokenState returns the balance and denormalized weight of one token.
func (c *ethClientImpl) GetTokenState(ctx context.Context, pool, token common.Address) (TokenState, error) {
	values, err := c.callUints(ctx, pool, map[string][]interface{}{
		methodBalance: {token},
		methodWeight:  {token},
	})
	if err != nil {
		return TokenState{}, errors.Wrapf(err, "failed to get state of token %s", token.Hex())
	}

	return TokenState{
		Token:        token,
		Balance:      values[methodBalance],
		DenormWeight: values[methodWeight],
	}, nil
}

// GetPoolParams returns the swap fee, total weight and LP supply.
func (c *ethClientImpl) GetPoolParams(ctx context.Context, pool common.Address) (PoolParams, error) {
	values, err := c.callUints(ctx, pool, map[string][]interface{}{
		methodSwapFee:     nil,
		methodTotalWeight: nil,
		methodTotalSupply: nil,
	})
	if err != nil {
		return PoolParams{}, errors.Wrap(err, "failed to get pool params")
	}

	return PoolParams{
		SwapFee:     values[methodSwapFee],
		TotalWeight: values[methodTotalWeight],
		TotalSupply: values[methodTotalSupply],
	}, nil
}

// GetPoolState returns the parameters and the state of every bound token.
// Token states are read concurrently and keep the contract order.
func (c *ethClientImpl) GetPoolState(ctx context.Context, pool common.Address) (PoolState, error) {
	tokens, err := c.GetCurrentTokens(ctx, pool)
	if err != nil {
		return PoolState{}, errors.Wrap(err, "failed to get pool tokens")
	}

	type tokenResult struct {
		idx   int
		state TokenState
		err   error
	}

	var (
		wg     sync.WaitGroup
		ch     = make(chan tokenResult, len(tokens))
		params PoolParams
		pErr   error
	)

	wg.Add(len(tokens) + 1)
	go func() {
		defer wg.Done()
		params, pErr = c.GetPoolParams(ctx, pool)
	}()
	for i, token := range tokens {
		go func(i int, token common.Address) {
			defer wg.Done()

			state, err := c.GetTokenState(ctx, pool, token)
			ch <- tokenResult{idx: i, state: state, err: err}
		}(i, token)
	}

	wg.Wait()
	close(ch)

	states := make([]TokenState, len(tokens))
	combinedErr := pErr
	for result := range ch {
		if result.err != nil {
			combinedErr = multierr.Append(combinedErr, result.err)
			continue
		}
		states[result.idx] = result.state
	}

	if combinedErr != nil {
		return PoolState{}, errors.Wrap(combinedErr, "failed to get pool state")
	}

	return PoolState{PoolParams: params, Tokens: states}, nil
}
