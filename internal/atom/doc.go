// Package atom defines the five historical atomic models shown by atomviz.
//
// Each model is a static illustration drawn onto a [scene.Surface]:
//
//   - [Thomson]: positive sphere with electrons scattered through it
//   - [Rutherford]: point nucleus with electrons on a ring
//   - [Bohr]: nucleus with electrons on fixed circular orbits
//   - [RutherfordBohr]: Bohr orbits around a proton and neutron nucleus
//   - [Quantum]: nucleus inside a Gaussian electron cloud
//
// [Sequence] returns them in historical order and [Render] draws one onto a
// freshly cleared surface.
//
// # Example
//
//	models := atom.Sequence(rand.New(rand.NewSource(1)))
//	list := scene.NewDisplayList()
//	atom.Render(list, models[0])
//
// The electron cloud is a decoration, not a solution of the Schrödinger
// equation.
package atom
