/*
Package shaping turns raw scalar axis values into shaped values.

A Chain applies four stages in a fixed order: deadband, response curve, live
scale and slew-rate limiting. Only the slew limiter holds state (its previous
output); everything else is a pure function of the input. No stage clamps or
sanitizes its output: bounding and NaN handling belong to package guard.
*/
package shaping
