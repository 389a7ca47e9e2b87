// Package config reads and writes YAML model files, holds the built-in
// model presets and loads CLI settings from the environment.
//
// A model file lists terms by catalog kind:
//
//	name: skyrmion
//	hamiltonian:
//	  - kind: exchange
//	    params: {A: 1.6e-11}
//	  - kind: dmi
//	    name: interfacial
//	    params: {D: 4.0e-3, crystalclass: Cnv}
//	dynamics:
//	  - kind: damping
//	    params: {alpha: 0.3}
package config
