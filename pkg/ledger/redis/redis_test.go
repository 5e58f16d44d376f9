package redis

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to the server in REDIS_TEST_ADDR. The tests are
// skipped when it is unset or unreachable.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("redis at %s unreachable: %v", addr, err)
	}
	t.Cleanup(func() { _ = client.Close() })

	prefix := "regnet-test:" + t.Name() + ":" + time.Now().Format(time.RFC3339Nano) + ":"
	return New(client, prefix, nil, nil)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		store := newTestStore(t)

		err := store.Submit(ctx, func(tx ledger.Tx) error {
			return tx.PutState(ctx, "a", []byte("1"))
		})
		require.NoError(t, err)

		err = store.Evaluate(ctx, func(tx ledger.Tx) error {
			v, err := tx.GetState(ctx, "a")
			assert.Equal(t, []byte("1"), v)
			return err
		})
		require.NoError(t, err)
	})

	t.Run("Error Discards Writes", func(t *testing.T) {
		store := newTestStore(t)

		err := store.Submit(ctx, func(tx ledger.Tx) error {
			_ = tx.PutState(ctx, "a", []byte("1"))
			return errors.New("rejected")
		})
		assert.EqualError(t, err, "rejected")

		err = store.Evaluate(ctx, func(tx ledger.Tx) error {
			v, err := tx.GetState(ctx, "a")
			assert.Nil(t, v)
			return err
		})
		require.NoError(t, err)
	})

	t.Run("Conflict Re-Runs Against Committed State", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Submit(ctx, func(tx ledger.Tx) error {
			return tx.PutState(ctx, "prop", []byte("onSale"))
		}))

		var seen []string
		err := store.Submit(ctx, func(tx ledger.Tx) error {
			v, err := tx.GetState(ctx, "prop")
			if err != nil {
				return err
			}
			seen = append(seen, string(v))
			if len(seen) == 1 {
				// Another buyer commits between our read and EXEC.
				require.NoError(t, store.Client.Set(ctx, store.redisKey("prop"), "registered", 0).Err())
			}
			if string(v) != "onSale" {
				return errors.New("not for sale")
			}
			return tx.PutState(ctx, "prop", []byte("registered-by-us"))
		})

		assert.EqualError(t, err, "not for sale")
		assert.Equal(t, []string{"onSale", "registered"}, seen)
	})

	t.Run("Concurrent Writers Conflict", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.Submit(ctx, func(tx ledger.Tx) error {
			return tx.PutState(ctx, "counter", []byte{0})
		}))

		var wg sync.WaitGroup
		var mu sync.Mutex
		var succeeded, conflicted int
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := store.Submit(ctx, func(tx ledger.Tx) error {
					v, err := tx.GetState(ctx, "counter")
					if err != nil {
						return err
					}
					time.Sleep(5 * time.Millisecond)
					return tx.PutState(ctx, "counter", []byte{v[0] + 1})
				})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errors.Is(err, ledger.ErrConflict):
					conflicted++
				}
			}()
		}
		wg.Wait()

		var final byte
		require.NoError(t, store.Evaluate(ctx, func(tx ledger.Tx) error {
			v, err := tx.GetState(ctx, "counter")
			final = v[0]
			return err
		}))
		assert.Equal(t, 20, succeeded+conflicted)
		assert.Equal(t, byte(succeeded), final)
	})
}
