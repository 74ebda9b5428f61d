package bpool

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fleshka4/weighted-pool/internal/fraction"
	"github.com/fleshka4/weighted-pool/internal/infra/bpool/mock"
)

var (
	poolAddr = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	token1   = common.HexToAddress("0x0000000000000000000000000000000000000001")
	token2   = common.HexToAddress("0x0000000000000000000000000000000000000002")
	token3   = common.HexToAddress("0x0000000000000000000000000000000000000003")
)

// fakePool answers eth_call requests the way a bound pool contract would.
type fakePool struct {
	abi abi.ABI

	tokens      []common.Address
	balances    map[common.Address]*big.Int
	weights     map[common.Address]*big.Int
	swapFee     *big.Int
	totalWeight *big.Int
	supply      *big.Int

	mu    sync.Mutex
	fail  map[string]bool
	calls map[string]int
}

func newFakePool(t *testing.T) *fakePool {
	t.Helper()

	a, err := abi.JSON(strings.NewReader(poolABIJSON))
	require.NoError(t, err)

	return &fakePool{
		abi:    a,
		tokens: []common.Address{token1, token2, token3},
		balances: map[common.Address]*big.Int{
			token1: big.NewInt(200),
			token2: big.NewInt(1111),
			token3: big.NewInt(7777),
		},
		weights: map[common.Address]*big.Int{
			token1: big.NewInt(10),
			token2: big.NewInt(15),
			token3: big.NewInt(25),
		},
		swapFee:     big.NewInt(1e16),
		totalWeight: big.NewInt(50),
		supply:      big.NewInt(578347),
		fail:        map[string]bool{},
		calls:       map[string]int{},
	}
}

func (f *fakePool) failOn(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[method] = true
}

func (f *fakePool) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakePool) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if msg.To == nil || *msg.To != poolAddr {
		return nil, errors.New("unexpected contract")
	}
	if len(msg.Data) < 4 {
		return nil, errors.New("short call data")
	}
	m, err := f.abi.MethodById(msg.Data[:4])
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.calls[m.Name]++
	failing := f.fail[m.Name]
	f.mu.Unlock()
	if failing {
		return nil, errors.Errorf("%s reverted", m.Name)
	}

	switch m.Name {
	case methodCurrentTokens:
		return m.Outputs.Pack(f.tokens)
	case methodBalance, methodWeight:
		args, err := m.Inputs.Unpack(msg.Data[4:])
		if err != nil {
			return nil, err
		}
		token, ok := args[0].(common.Address)
		if !ok {
			return nil, errors.New("bad token argument")
		}
		values := f.balances
		if m.Name == methodWeight {
			values = f.weights
		}
		v, ok := values[token]
		if !ok {
			return nil, errors.New("ERR_NOT_BOUND")
		}
		return m.Outputs.Pack(v)
	case methodSwapFee:
		return m.Outputs.Pack(f.swapFee)
	case methodTotalWeight:
		return m.Outputs.Pack(f.totalWeight)
	case methodTotalSupply:
		return m.Outputs.Pack(f.supply)
	}
	return nil, errors.Errorf("unexpected method %s", m.Name)
}

func newMockedClient(t *testing.T, pool *fakePool) Client {
	t.Helper()

	ctrl := gomock.NewController(t)
	caller := mock.NewMockEthCaller(ctrl)
	caller.EXPECT().
		CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(pool.CallContract).
		AnyTimes()

	client, err := newClientWithCaller(caller, time.Second)
	require.NoError(t, err)

	return client
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("dial error", func(t *testing.T) {
		t.Parallel()

		client, err := NewClient("invalid://url", time.Second)
		require.Error(t, err)
		require.Nil(t, client)
	})
}

func TestCallMethod(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	mockCaller := mock.NewMockEthCaller(ctrl)

	client, err := newClientWithCaller(mockCaller, time.Second)
	require.NoError(t, err)
	c := client.(*ethClientImpl)

	t.Run("pack error", func(t *testing.T) {
		_, err := c.call(context.Background(), poolAddr, "nonexistent")
		require.Error(t, err)
	})

	t.Run("call contract error", func(t *testing.T) {
		mockCaller.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(nil, errors.New("call error"))

		_, err := c.call(context.Background(), poolAddr, methodTotalSupply)
		require.Error(t, err)
	})

	t.Run("unpack error", func(t *testing.T) {
		mockCaller.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return([]byte("invalid data"), nil)

		_, err := c.call(context.Background(), poolAddr, methodTotalSupply)
		require.Error(t, err)
	})

	t.Run("call timeout", func(t *testing.T) {
		slow, err := newClientWithCaller(mockCaller, 10*time.Millisecond)
		require.NoError(t, err)

		mockCaller.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			DoAndReturn(func(ctx context.Context, _ ethereum.CallMsg, _ *big.Int) ([]byte, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			})

		_, err = slow.(*ethClientImpl).call(context.Background(), poolAddr, methodTotalSupply)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("cast error", func(t *testing.T) {
		invalidABI, err := abi.JSON(strings.NewReader(`[
			{"inputs":[],"name":"totalSupply","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"}
		]`))
		require.NoError(t, err)

		broken := &ethClientImpl{caller: mockCaller, poolABI: invalidABI}
		packed, err := invalidABI.Methods[methodTotalSupply].Outputs.Pack(token1)
		require.NoError(t, err)

		mockCaller.EXPECT().
			CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(packed, nil)

		_, err = broken.callUint(context.Background(), poolAddr, methodTotalSupply)
		require.ErrorContains(t, err, "failed to cast")
	})
}

func TestGetCurrentTokens(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		client := newMockedClient(t, pool)

		tokens, err := client.GetCurrentTokens(context.Background(), poolAddr)
		require.NoError(t, err)
		require.Equal(t, []common.Address{token1, token2, token3}, tokens)
	})

	t.Run("call error", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		pool.failOn(methodCurrentTokens)
		client := newMockedClient(t, pool)

		_, err := client.GetCurrentTokens(context.Background(), poolAddr)
		require.ErrorContains(t, err, "getCurrentTokens reverted")
	})
}

func TestGetTokenState(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		client := newMockedClient(t, pool)

		state, err := client.GetTokenState(context.Background(), poolAddr, token2)
		require.NoError(t, err)
		require.Equal(t, token2, state.Token)
		require.Equal(t, "1111", state.Balance.String())
		require.Equal(t, "15", state.DenormWeight.String())
		require.Zero(t, state.Weight().Cmp(fraction.New(15, 1)))
	})

	t.Run("unbound token", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		client := newMockedClient(t, pool)

		_, err := client.GetTokenState(context.Background(), poolAddr, common.HexToAddress("0x0b"))
		require.ErrorContains(t, err, "ERR_NOT_BOUND")
	})

	t.Run("weight error", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		pool.failOn(methodWeight)
		client := newMockedClient(t, pool)

		_, err := client.GetTokenState(context.Background(), poolAddr, token1)
		require.ErrorContains(t, err, "getDenormalizedWeight reverted")
		require.Equal(t, 1, pool.callCount(methodBalance))
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		client := newMockedClient(t, pool)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.GetTokenState(ctx, poolAddr, token1)
		require.ErrorIs(t, err, context.Canceled)
		require.Zero(t, pool.callCount(methodBalance))
	})
}

func TestGetPoolParams(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		client := newMockedClient(t, pool)

		params, err := client.GetPoolParams(context.Background(), poolAddr)
		require.NoError(t, err)
		require.Equal(t, "10000000000000000", params.SwapFee.String())
		require.Equal(t, "50", params.TotalWeight.String())
		require.Equal(t, "578347", params.TotalSupply.String())
		require.Zero(t, params.Fee().Cmp(fraction.New(1, 100)))
		require.Zero(t, params.TotalWeightFraction().Cmp(fraction.New(50, 1)))
	})

	t.Run("errors are combined", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		pool.failOn(methodSwapFee)
		pool.failOn(methodTotalSupply)
		client := newMockedClient(t, pool)

		_, err := client.GetPoolParams(context.Background(), poolAddr)
		require.ErrorContains(t, err, "getSwapFee reverted")
		require.ErrorContains(t, err, "totalSupply reverted")
	})
}

func TestGetPoolState(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		client := newMockedClient(t, pool)

		state, err := client.GetPoolState(context.Background(), poolAddr)
		require.NoError(t, err)
		require.Len(t, state.Tokens, 3)
		for i, token := range pool.tokens {
			require.Equal(t, token, state.Tokens[i].Token)
			require.Equal(t, pool.balances[token].String(), state.Tokens[i].Balance.String())
			require.Equal(t, pool.weights[token].String(), state.Tokens[i].DenormWeight.String())
		}
		require.Equal(t, "578347", state.TotalSupply.String())

		got, ok := state.Token(token3)
		require.True(t, ok)
		require.Equal(t, "7777", got.Balance.String())

		_, ok = state.Token(poolAddr)
		require.False(t, ok)
	})

	t.Run("token read error", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		pool.failOn(methodBalance)
		client := newMockedClient(t, pool)

		_, err := client.GetPoolState(context.Background(), poolAddr)
		require.ErrorContains(t, err, "failed to get pool state")
		require.ErrorContains(t, err, "getBalance reverted")
	})

	t.Run("params error", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		pool.failOn(methodTotalWeight)
		client := newMockedClient(t, pool)

		_, err := client.GetPoolState(context.Background(), poolAddr)
		require.ErrorContains(t, err, "getTotalDenormalizedWeight reverted")
	})

	t.Run("tokens error", func(t *testing.T) {
		t.Parallel()

		pool := newFakePool(t)
		pool.failOn(methodCurrentTokens)
		client := newMockedClient(t, pool)

		_, err := client.GetPoolState(context.Background(), poolAddr)
		require.ErrorContains(t, err, "failed to get pool tokens")
		require.Zero(t, pool.callCount(methodTotalSupply))
	})
}
