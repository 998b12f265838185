// Package substrate reads balances state from a Substrate node over JSON-RPC.
package substrate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/filecoin-project/go-jsonrpc"
	"github.com/rs/zerolog"

	"github.com/iho/chainsnap/internal/usecase"
)

// ErrNodeNotReady is returned by WaitReady when the node is still syncing
// at the deadline.
var ErrNodeNotReady = errors.New("node not ready")

// Layout names the pallets and storage items snapshots are read from.
type Layout struct {
	BalancesModule string
	AccountItem    string
	AggregatesItem string
	TotalItem      string
	VestingModule  string
	VestingItem    string
	VestedItem     string
}

// DefaultLayout returns the storage layout of the EqBalances/EqVesting pallets.
func DefaultLayout() Layout {
	return Layout{
		BalancesModule: "EqBalances",
		AccountItem:    "Account",
		AggregatesItem: "BalancesAggregates",
		TotalItem:      "TotalIssuance",
		VestingModule:  "EqVesting",
		VestingItem:    "Vesting",
		VestedItem:     "Vested",
	}
}

// Config configures the node client.
type Config struct {
	URL         string
	Token       string
	PageSize    uint32
	WaitTimeout time.Duration
	Layout      Layout
}

// Health is the system_health response.
type Health struct {
	Peers           int  `json:"peers"`
	IsSyncing       bool `json:"isSyncing"`
	ShouldHavePeers bool `json:"shouldHavePeers"`
}

type rpcAPI struct {
	GetStorage func(ctx context.Context, key string, at string) (*hexutil.Bytes, error) `rpc_method:"state_getStorage"`

	GetKeysPaged func(ctx context.Context, prefix string, count uint32, startKey *string, at string) ([]hexutil.Bytes, error) `rpc_method:"state_getKeysPaged"`

	GetBlockHash func(ctx context.Context) (string, error) `rpc_method:"chain_getBlockHash"`

	Health func(ctx context.Context) (Health, error) `rpc_method:"system_health"`
}

// Client is a JSON-RPC connection to a single node.
type Client struct {
	api    rpcAPI
	closer jsonrpc.ClientCloser
	cfg    Config
	logger zerolog.Logger
}

// Dial connects to the node at cfg.URL. http(s) and ws(s) URLs are accepted.
func Dial(ctx context.Context, cfg Config, logger zerolog.Logger) (*Client, error) {
	if cfg.PageSize == 0 {
		cfg.PageSize = 512
	}
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = time.Minute
	}

	headers := http.Header{}
	if cfg.Token != "" {
		headers.Add("Authorization", "Bearer "+cfg.Token)
	}

	c := &Client{cfg: cfg, logger: logger}
	closer, err := jsonrpc.NewMergeClient(ctx, cfg.URL, "substrate", []interface{}{&c.api}, headers)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.URL, err)
	}
	c.closer = closer

	return c, nil
}

// Close closes the connection.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// Endpoint returns the node URL.
func (c *Client) Endpoint() string {
	return c.cfg.URL
}

// Health queries system_health.
func (c *Client) Health(ctx context.Context) (Health, error) {
	return c.api.Health(ctx)
}

// WaitReady polls system_health until the node reports it is not syncing.
// Individual storage queries are never retried.
func (c *Client) WaitReady(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = c.cfg.WaitTimeout

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		health, err := c.api.Health(ctx)
		if err != nil {
			c.logger.Debug().Err(err).Int("attempt", attempt).Msg("node health check failed")
			return err
		}
		if health.IsSyncing {
			c.logger.Debug().Int("attempt", attempt).Int("peers", health.Peers).Msg("node is syncing")
			return ErrNodeNotReady
		}
		return nil
	}, backoff.WithContext(b, ctx))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrNodeNotReady, c.cfg.URL, err)
	}

	c.logger.Info().Str("url", c.cfg.URL).Int("attempts", attempt).Msg("node ready")
	return nil
}

// PinnedReader returns a reader bound to the current best block.
func (c *Client) PinnedReader(ctx context.Context) (usecase.StorageReader, string, error) {
	hash, err := c.api.GetBlockHash(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("chain_getBlockHash: %w", err)
	}
	return &Reader{client: c, at: hash}, hash, nil
}

func (c *Client) storage(ctx context.Context, key []byte, at string) ([]byte, bool, error) {
	value, err := c.api.GetStorage(ctx, hexutil.Encode(key), at)
	if err != nil {
		return nil, false, fmt.Errorf("state_getStorage %s: %w", hexutil.Encode(key), err)
	}
	if value == nil {
		return nil, false, nil
	}
	return *value, true, nil
}

func (c *Client) keysPaged(ctx context.Context, prefix []byte, startKey []byte, at string) ([][]byte, error) {
	var start *string
	if startKey != nil {
		s := hexutil.Encode(startKey)
		start = &s
	}

	keys, err := c.api.GetKeysPaged(ctx, hexutil.Encode(prefix), c.cfg.PageSize, start, at)
	if err != nil {
		return nil, fmt.Errorf("state_getKeysPaged: %w", err)
	}

	out := make([][]byte, len(keys))
	for i, k := range keys {
		out[i] = k
	}
	return out, nil
}
