/*
Package dsl provides a fluent builder for the ordered list of assist branches.

Branches are prioritized by the order they are added: the first one added
has the highest priority after the driver. Build validates every branch.

Example usage:

	b := dsl.New()

	b.Add("auto-aim").
		Source(aim.Command).
		When(aim.HasTarget).
		OmegaOnly()

	b.Add("pose-lock").
		Source(lock.Command).
		When(lock.Engaged).
		Weight(lock.Blend).
		WithFilter(shaping.SlewFilter(2, 2, 4))

	assists, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	eng, err := steer.New(gamepad.Read, steer.WithAssists(assists...))
*/
package dsl
