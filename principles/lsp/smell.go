package lsp

// EngineCar is the smell: a car contract modeled after gas cars, promising an
// engine every implementation must pretend to have.
type EngineCar interface {
	TurnOnEngine() error
	Drive(km int) (int, error)
}

// BoltedOnElectricCar forces an ElectricCar into the EngineCar contract. The
// promise cannot be kept: there is no engine, so TurnOnEngine panics, and any
// caller holding an EngineCar breaks when this subtype is substituted in.
type BoltedOnElectricCar struct {
	ElectricCar
}

// TurnOnEngine panics. The type signed a contract it cannot honor.
func (c *BoltedOnElectricCar) TurnOnEngine() error {
	panic("electric car has no engine to turn on")
}

var _ EngineCar = &BoltedOnElectricCar{}
