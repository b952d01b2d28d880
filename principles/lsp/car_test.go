package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGasCar_Contract(t *testing.T) {
	t.Parallel()

	CheckDriver(t, func() Driver { return &GasCar{TankKM: 50} })
}

func TestElectricCar_Contract(t *testing.T) {
	t.Parallel()

	CheckDriver(t, func() Driver { return &ElectricCar{BatteryKM: 50} })
}

func TestGasCar_Engine(t *testing.T) {
	t.Parallel()

	car := &GasCar{TankKM: 100}
	require.False(t, car.EngineRunning())

	require.NoError(t, car.Start())
	assert.True(t, car.EngineRunning())
}

func TestCommute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		car  Driver
		want int
	}{
		{name: "gas car with plenty of range", car: &GasCar{TankKM: 600}, want: 50},
		{name: "electric car with plenty of range", car: &ElectricCar{BatteryKM: 400}, want: 50},
		{name: "electric car running dry on the way back", car: &ElectricCar{BatteryKM: 30}, want: 30},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Commute(tt.car, 25)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoltedOnElectricCar_TurnOnEngine(t *testing.T) {
	t.Parallel()

	smell := &BoltedOnElectricCar{ElectricCar{BatteryKM: 100}}
	assert.PanicsWithValue(t, "electric car has no engine to turn on", func() {
		_ = smell.TurnOnEngine()
	})
}
