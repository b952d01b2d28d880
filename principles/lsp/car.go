package lsp

import (
	"errors"
	"fmt"
)

var (
	// ErrNotStarted is returned when a car is driven before being started.
	ErrNotStarted = errors.New("car not started")
	// ErrNegativeDistance is returned when a drive of negative length is requested.
	ErrNegativeDistance = errors.New("negative distance")
)

// Driver is what every car can honestly promise: it can start, drive, and
// report remaining range. Nothing here assumes a combustion engine.
type Driver interface {
	Start() error
	// Drive consumes range and returns the distance actually covered in km.
	Drive(km int) (int, error)
	RangeKM() int
}

// EngineAccess is the capability only combustion cars offer. Callers who
// genuinely need an engine ask for this, not for Driver.
type EngineAccess interface {
	TurnOnEngine() error
	EngineRunning() bool
}

// GasCar is a combustion car. It satisfies Driver and EngineAccess.
type GasCar struct {
	TankKM  int
	started bool
	engine  bool
}

// Start turns the engine on and readies the car.
func (c *GasCar) Start() error {
	if err := c.TurnOnEngine(); err != nil {
		return err
	}
	c.started = true

	return nil
}

// TurnOnEngine starts the combustion engine.
func (c *GasCar) TurnOnEngine() error {
	c.engine = true

	return nil
}

// EngineRunning reports whether the engine is on.
func (c *GasCar) EngineRunning() bool { return c.engine }

// Drive covers up to km kilometers, limited by the fuel range.
func (c *GasCar) Drive(km int) (int, error) {
	if !c.started {
		return 0, fmt.Errorf("gas car: %w", ErrNotStarted)
	}
	if km < 0 {
		return 0, fmt.Errorf("gas car: drive %dkm: %w", km, ErrNegativeDistance)
	}

	covered := min(km, c.TankKM)
	c.TankKM -= covered

	return covered, nil
}

// RangeKM returns the remaining fuel range.
func (c *GasCar) RangeKM() int { return c.TankKM }

// ElectricCar is a battery car. It satisfies Driver and nothing more; there
// is no engine to turn on and the type never pretends otherwise.
type ElectricCar struct {
	BatteryKM int
	started   bool
}

// Start readies the drivetrain.
func (c *ElectricCar) Start() error {
	c.started = true

	return nil
}

// Drive covers up to km kilometers, limited by the battery range.
func (c *ElectricCar) Drive(km int) (int, error) {
	if !c.started {
		return 0, fmt.Errorf("electric car: %w", ErrNotStarted)
	}
	if km < 0 {
		return 0, fmt.Errorf("electric car: drive %dkm: %w", km, ErrNegativeDistance)
	}

	covered := min(km, c.BatteryKM)
	c.BatteryKM -= covered

	return covered, nil
}

// RangeKM returns the remaining battery range.
func (c *ElectricCar) RangeKM() int { return c.BatteryKM }

var (
	_ Driver       = &GasCar{}
	_ Driver       = &ElectricCar{}
	_ EngineAccess = &GasCar{}
)

// Commute drives any Driver to work and back. It is correct for every
// substitutable implementation because it asks for nothing a car might lack.
func Commute(c Driver, oneWayKM int) (int, error) {
	if err := c.Start(); err != nil {
		return 0, err
	}

	out, err := c.Drive(oneWayKM)
	if err != nil {
		return 0, err
	}
	back, err := c.Drive(oneWayKM)
	if err != nil {
		return out, err
	}

	return out + back, nil
}
