// Package energy declares the energy terms a [micromag.Hamiltonian] accepts.
//
//   - [Exchange]: isotropic exchange, constant A
//   - [Zeeman]: coupling to an applied field H
//   - [UniaxialAnisotropy]: easy axis u with constant K1
//   - [Demag]: magnetostatic self-interaction
//   - [DMI]: Dzyaloshinskii-Moriya interaction for a crystal class
//
// Every term validates its parameters through [typesystem] on construction
// and on every setter call.
package energy
