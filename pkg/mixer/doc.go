/*
Package mixer arbitrates between weighted contributions to produce one command.

Contributions are kept in insertion order, which is their priority order: the
first one added (the driver) has the highest priority. Two strategies are
available:

  - WeightedSum: per-axis weighted sum, optionally normalized by the weights
    of the contributions that participate on that axis.
  - PrioritySoftSaturate: contributions are applied in priority order against
    a per-axis limit. A contribution pushing in the same direction as the
    running total only fills the remaining headroom; one pushing the other
    way is applied in full, so any branch can brake a higher-priority one.

After mixing, an OutputLimitPolicy brings the result within the declared
limits. The mixer performs no I/O and does not special-case non-finite values.
*/
package mixer
