package lsp_test

import (
	"fmt"

	"github.com/goprinciples/solid/principles/lsp"
)

// Commute accepts any Driver; gas and electric cars substitute freely.
func ExampleCommute() {
	gas, _ := lsp.Commute(&lsp.GasCar{TankKM: 600}, 25)
	ev, _ := lsp.Commute(&lsp.ElectricCar{BatteryKM: 400}, 25)

	fmt.Println(gas, ev)

	// Output:
	// 50 50
}
