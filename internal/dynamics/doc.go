// Package dynamics declares the terms of the equation of motion that a
// [micromag.Dynamics] accepts: [Precession], [Damping] and [ZhangLi]
// spin-transfer torque.
package dynamics
