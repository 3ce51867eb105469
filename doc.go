/*
Package steer is a vehicle-command composition engine for real-time robot control loops.

Once per control tick it turns one human-driven input stream and any number of
autonomous assist control laws into a single, bounded chassis-velocity command
(lateral, axial, omega).

# Concept

Every tick runs the same fixed pipeline:

  - the driver's raw axes are shaped (deadband, response curve, live scale, slew limit);
  - the shaped translation is optionally rotated into the robot frame (field-centric driving);
  - the driver seeds the mixer at weight 1.0;
  - each assist branch, in priority order, is gated, filtered, masked to its axis role
    and added at its live weight. Disabled branches are never asked to produce;
  - the mixer resolves the contributions under the configured strategy and limit policy;
  - the sink guard replaces non-finite values with zero and clamps every axis.

Evaluation is synchronous and deterministic: the engine owns no goroutines and
the only state it keeps is the driver's slew-limiter history.

# Usage

	eng, err := steer.New(gamepad.Read,
		steer.WithTuning(config.Default()),
		steer.WithPrecisionScale(slowMode),
		steer.WithAssists(
			branch.New("auto-aim", aim.Command).
				When(aim.HasTarget).
				WithRole(domain.RoleOmegaOnly),
		),
	)
	if err != nil {
		log.Fatal(err)
	}

	for tick := range loop.Ticks() {
		chassis.Drive(eng.Evaluate(tick))
	}

Configuration errors (no driver, duplicate branch names, out-of-range tuning)
are returned by New. Evaluate never fails: numeric anomalies degrade the
affected axis to zero.
*/
package steer
