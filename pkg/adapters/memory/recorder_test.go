package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/steer/pkg/adapters/memory"
	"github.com/aretw0/steer/pkg/domain"
	"github.com/aretw0/steer/pkg/ports"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_Contract(t *testing.T) {
	ports.RunCommandSinkContract(t, memory.NewRecorder(0))
}

func TestRecorder_Capacity(t *testing.T) {
	r := memory.NewRecorder(2)
	ctx := context.Background()

	for i := uint64(1); i <= 5; i++ {
		assert.NoError(t, r.Publish(ctx, domain.Tick{Seq: i}, domain.NewCommand(float64(i), 0, 0)))
	}

	recs := r.Records()
	assert.Len(t, recs, 2)
	assert.Equal(t, uint64(4), recs[0].Tick.Seq)
	assert.Equal(t, uint64(5), recs[1].Tick.Seq)
	assert.Equal(t, []domain.Command{domain.NewCommand(4, 0, 0), domain.NewCommand(5, 0, 0)}, r.Commands())
	assert.Equal(t, uint64(5), r.Total())
}
