// Package dip demonstrates the Dependency Inversion Principle: high-level
// and low-level modules should both depend on shared abstractions rather
// than on each other directly.
//
// The fixture is a software project. The smell, RigidProject, constructs its
// own concrete frontend and backend developers; the high-level module is
// welded to the low-level ones and can never be staffed differently.
//
// The refactored Project depends only on the Developer abstraction and an
// injected logger. Concrete developers, and the logger implementation, are
// handed in at the composition root; swapping a backend developer for a
// contractor touches no Project code. The repository practices what this
// package preaches: see showcase/catalog, whose service is built the same
// way.
package dip
