// Package lsp demonstrates the Liskov Substitution Principle: subtypes must
// be usable wherever their supertype is expected without altering
// correctness.
//
// The fixture is a pair of cars. The smell models every car after a gas car:
// the EngineCar contract promises TurnOnEngine, so a BoltedOnElectricCar can
// only panic when asked for an engine it does not have. Any caller holding
// the supertype breaks the moment the electric car is substituted in.
//
// The refactored form promises only what every car can honestly keep. The
// Driver capability (start, drive, range) is satisfied by GasCar and
// ElectricCar alike; engine access moves to a narrower EngineAccess
// capability only gas cars offer. CheckDriver is the executable form of the
// principle: a contract suite every Driver implementation must pass, invoked
// from both cars' tests.
package lsp
