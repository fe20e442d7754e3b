package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

const VALKEY_PROCESSED_KEY = "interviewlens:processed_requests"

var (
	valkeyInstance *ValkeyClient
	valkeyOnce     sync.Once
)

// ValkeyClient remembers which analysis requests were already answered so
// redelivered Kafka messages are not analyzed twice.
type ValkeyClient struct {
	Client valkey.Client
	mu     sync.Mutex
}

func valkeyOptions() valkey.ClientOption {
	opts := valkey.ClientOption{
		InitAddress:      []string{os.Getenv("VALKEY_INIT_ADDRESS")},
		Password:         os.Getenv("VALKEY_PASSWORD"),
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}

	if os.Getenv("VALKEY_TLS") == "true" {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}
	return opts
}

func connectValkey() (valkey.Client, error) {
	client, err := valkey.NewClient(valkeyOptions())
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey")
	return client, nil
}

func InitValkey() *ValkeyClient {
	valkeyOnce.Do(func() {
		client, err := connectValkey()
		if err != nil {
			panic(err)
		}
		valkeyInstance = &ValkeyClient{Client: client}
	})
	return valkeyInstance
}

func CloseValkey() {
	if valkeyInstance != nil {
		valkeyInstance.Client.Close()
	}
}

func (vc *ValkeyClient) current() valkey.Client {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.Client
}

func (vc *ValkeyClient) recreateClient() {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	client, err := connectValkey()
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed",
			slog.String("error", err.Error()))
		return
	}
	vc.Client.Close()
	vc.Client = client
}

func (vc *ValkeyClient) MarkProcessed(ctx context.Context, requestID string) error {
	build := func(c valkey.Client) []valkey.Completed {
		return []valkey.Completed{
			c.B().Sadd().Key(VALKEY_PROCESSED_KEY).Member(requestID).Build(),
			c.B().Expire().Key(VALKEY_PROCESSED_KEY).Seconds(int64(PROCESSED_TTL.Seconds())).Build(),
		}
	}

	for _, res := range vc.DoMultiWithRetry(ctx, build, MAX_RETRIES) {
		if err := res.Error(); err != nil {
			return fmt.Errorf("[ValkeyClient] failed to mark %s processed: %w", requestID, err)
		}
	}

	slog.Debug("[ValkeyClient] Marked request processed",
		slog.String("request_id", requestID))
	return nil
}

func (vc *ValkeyClient) IsProcessed(ctx context.Context, requestID string) (bool, error) {
	build := func(c valkey.Client) valkey.Completed {
		return c.B().Sismember().Key(VALKEY_PROCESSED_KEY).Member(requestID).Build()
	}

	res := vc.DoWithRetry(ctx, build, MAX_RETRIES)
	if err := res.Error(); err != nil {
		return false, fmt.Errorf("[ValkeyClient] failed to check %s: %w", requestID, err)
	}

	return res.AsBool()
}

// DoMultiWithRetry builds the commands again for every attempt. A Completed
// command is recycled by the client once sent and must not be reused, and
// after a reconnect it has to come from the new client.
func (vc *ValkeyClient) DoMultiWithRetry(ctx context.Context, build func(valkey.Client) []valkey.Completed, retries int) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult

	for i := 0; i < retries; i++ {
		client := vc.current()
		results = client.DoMulti(ctx, build(client)...)

		var err error
		for _, r := range results {
			if err = r.Error(); err != nil {
				break
			}
		}
		if err == nil {
			break
		}

		slog.Warn("[ValkeyClient] Do Multi failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		if isConnectionError(err) {
			vc.recreateClient()
		}
		time.Sleep(RETRY_DELAY)
	}

	return results
}

// DoWithRetry follows the same rebuild rule as DoMultiWithRetry.
func (vc *ValkeyClient) DoWithRetry(ctx context.Context, build func(valkey.Client) valkey.Completed, retries int) valkey.ValkeyResult {
	var result valkey.ValkeyResult
	for i := 0; i < retries; i++ {
		client := vc.current()
		result = client.Do(ctx, build(client))
		if result.Error() == nil {
			break
		}

		slog.Warn("[ValkeyClient] Do failed",
			slog.Int("attempt", i+1),
			slog.String("error", result.Error().Error()))
		if isConnectionError(result.Error()) {
			vc.recreateClient()
		}

		time.Sleep(RETRY_DELAY)
	}

	return result
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
