package lsp

import (
	"context"
	"fmt"
	"io"
)

// Lesson narrates the substitution example.
type Lesson struct{}

func (Lesson) Slug() string  { return "lsp" }
func (Lesson) Title() string { return "Liskov Substitution Principle" }

// Demonstrate commutes in a gas car and an electric car through the same
// Driver contract, then shows the smell contract failing at the engine.
func (Lesson) Demonstrate(ctx context.Context, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cars := []struct {
		name string
		car  Driver
	}{
		{name: "gas car", car: &GasCar{TankKM: 600}},
		{name: "electric car", car: &ElectricCar{BatteryKM: 400}},
	}

	for _, c := range cars {
		covered, err := Commute(c.car, 25)
		if err != nil {
			return fmt.Errorf("commute in %s: %w", c.name, err)
		}
		fmt.Fprintf(w, "Commuted %dkm in the %s; Commute never asked about engines.\n", covered, c.name)
	}

	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(w, "The bolted-on contract broke as promised: %v\n", r)
			}
		}()
		smell := &BoltedOnElectricCar{ElectricCar{BatteryKM: 400}}
		_ = smell.TurnOnEngine()
	}()

	return nil
}
