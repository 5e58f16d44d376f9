package registry_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/ledger/memory"
	"github.com/chris/regnet/pkg/models"
	"github.com/chris/regnet/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu     sync.Mutex
	events []ledger.Event
}

func (s *recordingSink) Publish(_ context.Context, e ledger.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Name)
	}
	return out
}

func (s *recordingSink) last(t *testing.T) models.EventPayload {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.events)
	var p models.EventPayload
	require.NoError(t, json.Unmarshal(s.events[len(s.events)-1].Payload, &p))
	return p
}

// stepClock returns a clock that advances one second per call.
func stepClock() ledger.Clock {
	var mu sync.Mutex
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

type fixture struct {
	svc   *registry.Service
	store *memory.Store
	sink  *recordingSink
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sink := &recordingSink{}
	store := memory.New(sink)
	store.Clock = stepClock()
	return &fixture{
		svc:   registry.NewService(store, nil),
		store: store,
		sink:  sink,
	}
}

func (f *fixture) mustKey(t *testing.T, ns string, attrs ...string) ledger.Key {
	t.Helper()
	key, err := ledger.CompositeKey(ns, attrs...)
	require.NoError(t, err)
	return key
}

// user creates and approves a user, optionally recharging it.
func (f *fixture) user(t *testing.T, name, ssn, code string) *models.User {
	t.Helper()
	ctx := context.Background()
	_, err := f.svc.RequestNewUser(ctx, name, name+"@example.com", "555-0000", ssn)
	require.NoError(t, err)
	u, err := f.svc.ApproveNewUser(ctx, name, ssn)
	require.NoError(t, err)
	if code != "" {
		u, err = f.svc.RechargeAccount(ctx, name, ssn, code)
		require.NoError(t, err)
	}
	return u
}

// property registers and approves propID for the given owner.
func (f *fixture) property(t *testing.T, propID string, price int64, ownerName, ownerSSN string) *models.Property {
	t.Helper()
	ctx := context.Background()
	_, err := f.svc.PropertyRegistrationRequest(ctx, propID, price, ownerName, ownerSSN)
	require.NoError(t, err)
	p, err := f.svc.ApprovePropertyRegistration(ctx, propID)
	require.NoError(t, err)
	return p
}

func TestEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RequestNewUser(ctx, "Alice", "a@x.com", "555-0100", "111-22-3333")
	require.NoError(t, err)
	_, err = f.svc.ApproveNewUser(ctx, "Alice", "111-22-3333")
	require.NoError(t, err)

	alice, err := f.svc.ViewUser(ctx, "Alice", "111-22-3333")
	require.NoError(t, err)
	assert.Equal(t, int64(0), alice.UpgradCoins)

	_, err = f.svc.RechargeAccount(ctx, "Alice", "111-22-3333", "upg500")
	require.NoError(t, err)
	alice, err = f.svc.ViewUser(ctx, "Alice", "111-22-3333")
	require.NoError(t, err)
	assert.Equal(t, int64(500), alice.UpgradCoins)

	f.user(t, "Bob", "444-55-6666", "upg1000")

	_, err = f.svc.PropertyRegistrationRequest(ctx, "P1", 300, "Alice", "111-22-3333")
	require.NoError(t, err)
	_, err = f.svc.ApprovePropertyRegistration(ctx, "P1")
	require.NoError(t, err)
	_, err = f.svc.UpdateProperty(ctx, "P1", models.StatusOnSale, "Alice", "111-22-3333")
	require.NoError(t, err)

	_, err = f.svc.PurchaseProperty(ctx, "P1", "Bob", "444-55-6666")
	require.NoError(t, err)

	p1, err := f.svc.ViewProperty(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, f.mustKey(t, ledger.NamespaceUser, "Bob", "444-55-6666"), p1.Owner)
	assert.Equal(t, models.StatusRegistered, p1.Status)

	bob, err := f.svc.ViewUser(ctx, "Bob", "444-55-6666")
	require.NoError(t, err)
	assert.Equal(t, int64(700), bob.UpgradCoins)

	alice, err = f.svc.ViewUser(ctx, "Alice", "111-22-3333")
	require.NoError(t, err)
	assert.Equal(t, int64(800), alice.UpgradCoins)

	assert.Equal(t, []string{
		registry.EventUserRequested,
		registry.EventUserApproved,
		registry.EventAccountRecharged,
		registry.EventUserRequested,
		registry.EventUserApproved,
		registry.EventAccountRecharged,
		registry.EventPropertyRequested,
		registry.EventPropertyApproved,
		registry.EventPropertyUpdated,
		registry.EventPropertyPurchased,
	}, f.sink.names())
}

func TestService_Concurrency(t *testing.T) {
	t.Run("Racing Purchases", func(t *testing.T) {
		f := newFixture(t)
		f.user(t, "Alice", "1", "")
		f.user(t, "Bob", "2", "upg1000")
		f.user(t, "Carol", "3", "upg1000")
		f.property(t, "P1", 300, "Alice", "1")
		_, err := f.svc.UpdateProperty(context.Background(), "P1", models.StatusOnSale, "Alice", "1")
		require.NoError(t, err)

		buyers := [][2]string{{"Bob", "2"}, {"Carol", "3"}}
		errs := make([]error, len(buyers))
		var wg sync.WaitGroup
		for i, b := range buyers {
			wg.Add(1)
			go func(i int, name, ssn string) {
				defer wg.Done()
				_, errs[i] = f.svc.PurchaseProperty(context.Background(), "P1", name, ssn)
			}(i, b[0], b[1])
		}
		wg.Wait()

		var succeeded, rejected int
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case assert.ErrorIs(t, err, registry.ErrInvalidTransaction):
				rejected++
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 1, rejected)

		alice, err := f.svc.ViewUser(context.Background(), "Alice", "1")
		require.NoError(t, err)
		assert.Equal(t, int64(300), alice.UpgradCoins)
	})
}
