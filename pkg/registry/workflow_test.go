package registry_test

import (
	"context"
	"testing"

	"github.com/chris/regnet/pkg/ledger"
	"github.com/chris/regnet/pkg/models"
	"github.com/chris/regnet/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflow_RequestNewUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		req, err := f.svc.RequestNewUser(context.Background(), "Alice", "a@x.com", "555-0100", "111-22-3333")
		require.NoError(t, err)

		assert.Equal(t, models.DocTypeRequest, req.DocType)
		assert.Equal(t, models.RequestTypeUser, req.RequestType)
		assert.Equal(t, "a@x.com", req.Email)
		assert.False(t, req.CreatedAt.IsZero())

		_, ok := f.store.Raw(f.mustKey(t, ledger.NamespaceRequest, "Alice", "111-22-3333"))
		assert.True(t, ok)
	})

	t.Run("Last Write Wins", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		_, err := f.svc.RequestNewUser(ctx, "Alice", "old@x.com", "1", "111")
		require.NoError(t, err)
		_, err = f.svc.RequestNewUser(ctx, "Alice", "new@x.com", "2", "111")
		require.NoError(t, err)

		user, err := f.svc.ApproveNewUser(ctx, "Alice", "111")
		require.NoError(t, err)
		assert.Equal(t, "new@x.com", user.Email)
		assert.Equal(t, "2", user.Phone)
	})

	t.Run("Invalid Key", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.RequestNewUser(context.Background(), "Al\x00ice", "a@x.com", "1", "111")
		assert.ErrorIs(t, err, registry.ErrInvalidTransaction)
		assert.Empty(t, f.sink.names())
	})
}

func TestWorkflow_ApproveNewUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		_, err := f.svc.RequestNewUser(ctx, "Alice", "a@x.com", "555-0100", "111-22-3333")
		require.NoError(t, err)

		user, err := f.svc.ApproveNewUser(ctx, "Alice", "111-22-3333")
		require.NoError(t, err)
		assert.Equal(t, models.DocTypeUser, user.DocType)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "a@x.com", user.Email)
		assert.Equal(t, "555-0100", user.Phone)
		assert.Equal(t, "111-22-3333", user.SSN)
		assert.Equal(t, int64(0), user.UpgradCoins)

		_, ok := f.store.Raw(f.mustKey(t, ledger.NamespaceRequest, "Alice", "111-22-3333"))
		assert.True(t, ok, "request is kept after approval")

		event := f.sink.last(t)
		assert.Equal(t, registry.EventUserApproved, event.Name)
		assert.Equal(t, "regnet.user:Alice:111-22-3333", event.Key)
		assert.Equal(t, ledger.Anonymous, event.SubmittedBy)
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ApproveNewUser(context.Background(), "Alice", "111-22-3333")
		assert.ErrorIs(t, err, registry.ErrNotFound)
		assert.Contains(t, err.Error(), "no matching request found")
	})

	t.Run("Balance Reset On Reapproval", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		first := f.user(t, "Alice", "111", "upg500")
		assert.Equal(t, int64(500), first.UpgradCoins)

		again, err := f.svc.ApproveNewUser(ctx, "Alice", "111")
		require.NoError(t, err)
		assert.Equal(t, int64(0), again.UpgradCoins)
	})

	t.Run("Twice Gives Fresher Timestamp", func(t *testing.T) {
		f := newFixture(t)
		ctx := context.Background()
		_, err := f.svc.RequestNewUser(ctx, "Alice", "a@x.com", "555-0100", "111")
		require.NoError(t, err)

		first, err := f.svc.ApproveNewUser(ctx, "Alice", "111")
		require.NoError(t, err)
		second, err := f.svc.ApproveNewUser(ctx, "Alice", "111")
		require.NoError(t, err)

		assert.True(t, second.CreatedAt.After(first.CreatedAt))
		second.CreatedAt = first.CreatedAt
		assert.Equal(t, first, second)
	})

	t.Run("Caller Recorded On Event", func(t *testing.T) {
		f := newFixture(t)
		ctx := ledger.WithCaller(context.Background(), ledger.Identity{ID: "registrar", MSPID: "RegistrarMSP"})
		_, err := f.svc.RequestNewUser(ctx, "Alice", "a@x.com", "1", "111")
		require.NoError(t, err)

		assert.Equal(t, "registrar", f.sink.last(t).SubmittedBy.ID)
	})
}

func TestWorkflow_ViewUser(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		approved := f.user(t, "Alice", "111", "")

		user, err := f.svc.ViewUser(context.Background(), "Alice", "111")
		require.NoError(t, err)
		assert.Equal(t, approved.SSN, user.SSN)
		assert.True(t, approved.CreatedAt.Equal(user.CreatedAt))
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ViewUser(context.Background(), "Nobody", "000")
		assert.ErrorIs(t, err, registry.ErrNotFound)
	})

	t.Run("Request Is Not A User", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.RequestNewUser(context.Background(), "Alice", "a@x.com", "1", "111")
		require.NoError(t, err)

		_, err = f.svc.ViewUser(context.Background(), "Alice", "111")
		assert.ErrorIs(t, err, registry.ErrNotFound)
	})

	t.Run("Data Corruption", func(t *testing.T) {
		f := newFixture(t)
		f.store.Put(f.mustKey(t, ledger.NamespaceUser, "Alice", "111"), []byte("{not json"))

		_, err := f.svc.ViewUser(context.Background(), "Alice", "111")
		assert.ErrorIs(t, err, registry.ErrDataCorruption)
	})
}

func TestWorkflow_ApprovePropertyRegistration(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.user(t, "Alice", "111", "")
		ctx := context.Background()
		_, err := f.svc.PropertyRegistrationRequest(ctx, "P1", 300, "Alice", "111")
		require.NoError(t, err)

		property, err := f.svc.ApprovePropertyRegistration(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, models.DocTypeProperty, property.DocType)
		assert.Equal(t, "P1", property.PropID)
		assert.Equal(t, int64(300), property.Price)
		assert.Equal(t, models.StatusRegistered, property.Status)
		assert.Equal(t, f.mustKey(t, ledger.NamespaceUser, "Alice", "111"), property.Owner)

		viewed, err := f.svc.ViewProperty(ctx, "P1")
		require.NoError(t, err)
		assert.Equal(t, property.Owner, viewed.Owner)
	})

	t.Run("Not Found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ApprovePropertyRegistration(context.Background(), "P404")
		assert.ErrorIs(t, err, registry.ErrNotFound)
	})

	t.Run("Wrong Request Variant", func(t *testing.T) {
		f := newFixture(t)
		f.store.Put(f.mustKey(t, ledger.NamespaceRequest, "P1"),
			[]byte(`{"docType":"request","requestType":"user","name":"P1"}`))

		_, err := f.svc.ApprovePropertyRegistration(context.Background(), "P1")
		assert.ErrorIs(t, err, registry.ErrDataCorruption)
	})
}

func TestWorkflow_ViewProperty(t *testing.T) {
	t.Run("Not Found", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.ViewProperty(context.Background(), "P1")
		assert.ErrorIs(t, err, registry.ErrNotFound)
		assert.Contains(t, err.Error(), "no matching property found")
	})

	t.Run("Data Corruption", func(t *testing.T) {
		f := newFixture(t)
		f.store.Put(f.mustKey(t, ledger.NamespaceProperty, "P1"), []byte(`{"docType":"user"}`))

		_, err := f.svc.ViewProperty(context.Background(), "P1")
		assert.ErrorIs(t, err, registry.ErrDataCorruption)
	})

	t.Run("Right DocType Missing Fields", func(t *testing.T) {
		f := newFixture(t)
		f.store.Put(f.mustKey(t, ledger.NamespaceProperty, "P1"), []byte(`{"docType":"property"}`))

		_, err := f.svc.ViewProperty(context.Background(), "P1")
		assert.ErrorIs(t, err, registry.ErrDataCorruption)
	})
}
