package ports

import (
	"context"
	"testing"

	"github.com/aretw0/steer/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// PublishingStore is a sink that can also read back what it published.
type PublishingStore interface {
	CommandSink
	CommandSource
}

// RunCommandSinkContract runs a suite of tests to verify that a sink implementation
// adheres to the defined interface contract. The store must start empty.
func RunCommandSinkContract(t *testing.T, store PublishingStore) {
	ctx := context.Background()

	t.Run("Empty", func(t *testing.T) {
		_, _, err := store.Last(ctx)
		assert.ErrorIs(t, err, domain.ErrNoCommand)
	})

	t.Run("Publish and Last", func(t *testing.T) {
		tick := domain.Tick{Seq: 1, DT: 0.02}
		cmd := domain.NewCommand(0.25, -0.5, 0.125)

		require.NoError(t, store.Publish(ctx, tick, cmd), "Publish should not return error")

		gotTick, gotCmd, err := store.Last(ctx)
		require.NoError(t, err, "Last should not return error")
		assert.Equal(t, tick, gotTick)
		assert.Equal(t, cmd, gotCmd)
	})

	t.Run("Latest Wins", func(t *testing.T) {
		require.NoError(t, store.Publish(ctx, domain.Tick{Seq: 2, DT: 0.02}, domain.NewCommand(1, 0, 0)))
		require.NoError(t, store.Publish(ctx, domain.Tick{Seq: 3, DT: 0.02}, domain.NewCommand(0, 1, 0)))

		tick, cmd, err := store.Last(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), tick.Seq)
		assert.Equal(t, domain.NewCommand(0, 1, 0), cmd)
	})
}
