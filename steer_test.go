package steer_test

import (
	"math"
	"testing"

	"github.com/aretw0/steer"
	"github.com/aretw0/steer/pkg/branch"
	"github.com/aretw0/steer/pkg/config"
	"github.com/aretw0/steer/pkg/domain"
	"github.com/aretw0/steer/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linear disables shaping so assertions can use raw stick values.
func linear() config.Tuning {
	t := config.Default()
	for _, at := range []*config.AxisTuning{&t.Lateral, &t.Axial, &t.Omega} {
		at.Deadband = 0
		at.Exponent = 1
		at.SlewRate = 0
	}
	return t
}

func stick(c domain.Command) domain.Source {
	return func(domain.Tick) domain.Command { return c }
}

func TestNew_Errors(t *testing.T) {
	_, err := steer.New(nil)
	assert.ErrorIs(t, err, domain.ErrNoDriver)

	bad := config.Default()
	bad.Omega.Limit = -1
	_, err = steer.New(stick(domain.Zero), steer.WithTuning(bad))
	assert.ErrorIs(t, err, domain.ErrInvalidTuning)

	_, err = steer.New(stick(domain.Zero), steer.WithAssists(
		branch.New("aim", stick(domain.Zero)),
		branch.New("aim", stick(domain.Zero)),
	))
	assert.ErrorIs(t, err, domain.ErrDuplicateBranch)
}

func TestEngine_AssistOnTopOfDriver(t *testing.T) {
	eng, err := steer.New(stick(domain.NewCommand(0.6, 0, 0)),
		steer.WithTuning(linear()),
		steer.WithAssists(
			branch.New("aim", stick(domain.NewCommand(0.9, 0, 0.7))).WithRole(domain.RoleOmegaOnly),
		),
		steer.WithName("test"),
	)
	require.NoError(t, err)

	out := eng.Evaluate(domain.Tick{Seq: 1, DT: 0.02})
	assert.Equal(t, domain.NewCommand(0.6, 0, 0.7), out)
	assert.Equal(t, []string{"driver", "aim"}, eng.Branches())
	assert.Equal(t, "test", eng.Name)
}

func TestEngine_FieldCentric(t *testing.T) {
	eng, err := steer.New(stick(domain.NewCommand(1, 0, 0)),
		steer.WithTuning(linear()),
		steer.WithFieldCentric(true),
		steer.WithHeading(func(domain.Tick) float64 { return math.Pi / 2 }),
	)
	require.NoError(t, err)
	assert.True(t, eng.Tuning().FieldCentric)

	out := eng.Evaluate(domain.Tick{Seq: 1, DT: 0.02})
	assert.InDelta(t, 0, out.Lateral, 1e-9)
	assert.InDelta(t, -1, out.Axial, 1e-9)
}

func TestEngine_PrecisionScale(t *testing.T) {
	eng, err := steer.New(stick(domain.NewCommand(1, 1, 1)),
		steer.WithTuning(linear()),
		steer.WithPrecisionScale(func(domain.Tick) float64 { return 0.5 }),
		steer.WithFineRotationScale(func(domain.Tick) float64 { return 0.25 }),
	)
	require.NoError(t, err)

	out := eng.Evaluate(domain.Tick{Seq: 1, DT: 0.02})
	// Uniform scaling keeps the 0.5/0.5 translation inside the unit limit.
	assert.InDelta(t, 0.5, out.Lateral, 1e-12)
	assert.InDelta(t, 0.5, out.Axial, 1e-12)
	assert.InDelta(t, 0.25, out.Omega, 1e-12)
}

func TestEngine_ResetClearsSlew(t *testing.T) {
	tuning := linear()
	tuning.Lateral.SlewRate = 1
	eng, err := steer.New(stick(domain.NewCommand(1, 0, 0)), steer.WithTuning(tuning))
	require.NoError(t, err)

	tick := domain.Tick{Seq: 1, DT: 0.1}
	assert.InDelta(t, 0.1, eng.Evaluate(tick).Lateral, 1e-12)
	assert.InDelta(t, 0.2, eng.Evaluate(tick).Lateral, 1e-12)

	eng.Reset()
	assert.InDelta(t, 0.1, eng.Evaluate(tick).Lateral, 1e-12)
}

func TestEngine_HooksAreMerged(t *testing.T) {
	var first, second int
	eng, err := steer.New(stick(domain.Zero),
		steer.WithLifecycleHooks(domain.LifecycleHooks{OnTick: func(domain.TickEvent) { first++ }}),
		steer.WithLifecycleHooks(domain.LifecycleHooks{OnTick: func(domain.TickEvent) { second++ }}),
	)
	require.NoError(t, err)

	eng.Evaluate(domain.Tick{Seq: 1})
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestEngine_WithBuilder(t *testing.T) {
	b := dsl.New()
	b.Add("aim").
		Source(stick(domain.NewCommand(0, 0, 0.4))).
		OmegaOnly().
		Then("hold").
		Source(stick(domain.NewCommand(0, 2, 0))).
		TranslationOnly().
		When(branch.Never)

	assists, err := b.Build()
	require.NoError(t, err)

	eng, err := steer.New(stick(domain.Zero), steer.WithTuning(linear()), steer.WithAssists(assists...))
	require.NoError(t, err)

	out := eng.Evaluate(domain.Tick{Seq: 1, DT: 0.02})
	assert.Equal(t, domain.NewCommand(0, 0, 0.4), out)
	assert.Equal(t, []string{"driver", "aim", "hold"}, eng.Branches())
}

func TestEngine_NonFiniteDriverIsNeutralized(t *testing.T) {
	eng, err := steer.New(stick(domain.NewCommand(math.NaN(), 0.5, 0.5)), steer.WithTuning(linear()))
	require.NoError(t, err)

	out := eng.Evaluate(domain.Tick{Seq: 1, DT: 0.02})
	assert.Equal(t, domain.NewCommand(0, 0.5, 0.5), out)
}
