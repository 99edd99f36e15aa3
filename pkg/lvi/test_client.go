package lvi

import (
	"context"
	"errors"
	"sync"
)

func CreateTestHeaterClient() *TestHeaterClient {
	return &TestHeaterClient{
		heaters: map[string]Heater{
			"heater_livingroom": {
				Id:          "heater_livingroom",
				Name:        "LVI Yali 1",
				Room:        &Room{Id: "room_1", Name: "Living room"},
				PowerStatus: 1,
				GVMode:      GVModeManual,
				ComfortTemp: 21,
				ManualTemp:  19,
				EcoTemp:     17,
				BoostTemp:   24,
				FrostTemp:   7,
				CurrentTemp: 18.5,
				FanSpeed:    0,
				HeatingUp:   1,
				Available:   true,
			},
			"heater_attic": {
				Id:          "heater_attic",
				Name:        "LVI Yali 2",
				PowerStatus: 0,
				GVMode:      "unknown",
				ComfortTemp: 20,
				ManualTemp:  18,
				EcoTemp:     16,
				BoostTemp:   23,
				FrostTemp:   7,
				CurrentTemp: 12.1,
				FanSpeed:    2,
				HeatingUp:   0,
				Gen1:        true,
				Available:   true,
			},
		},
	}
}

// TestHeaterClient is an in-memory HeaterClient with just enough behaviour
// to exercise the actors without a vendor account.
type TestHeaterClient struct {
	mu        sync.Mutex
	connected bool
	heaters   map[string]Heater

	TempWrites    []TempWrite
	ControlWrites []ControlWrite
	RoomWrites    []RoomWrite
	FailConnect   bool
}

type TempWrite struct {
	DeviceId    string
	Temperature int
}

type ControlWrite struct {
	DeviceId string
	Params   ControlParams
}

type RoomWrite struct {
	RoomName string
	Params   RoomTempParams
}

func (c *TestHeaterClient) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.FailConnect {
		return errors.New("lvi: connect: invalid credentials")
	}
	c.connected = true
	return nil
}

func (c *TestHeaterClient) FindAllHeaters(ctx context.Context) (map[string]Heater, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil, ErrNotConnected
	}
	heaters := make(map[string]Heater, len(c.heaters))
	for id, h := range c.heaters {
		heaters[id] = h
	}
	return heaters, nil
}

func (c *TestHeaterClient) UpdateDevice(ctx context.Context, deviceId string) (*Heater, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return nil, ErrNotConnected
	}
	h, ok := c.heaters[deviceId]
	if !ok {
		return nil, errors.New("lvi: unknown device " + deviceId)
	}
	return &h, nil
}

func (c *TestHeaterClient) SetHeaterTemp(ctx context.Context, deviceId string, temperature int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return ErrNotConnected
	}
	h, ok := c.heaters[deviceId]
	if !ok {
		return errors.New("lvi: unknown device " + deviceId)
	}
	switch h.GVMode {
	case GVModeComfort:
		h.ComfortTemp = float64(temperature)
	case GVModeManual:
		h.ManualTemp = float64(temperature)
	case GVModeEco:
		h.EcoTemp = float64(temperature)
	case GVModeBoost:
		h.BoostTemp = float64(temperature)
	default:
		h.FrostTemp = float64(temperature)
	}
	c.heaters[deviceId] = h
	c.TempWrites = append(c.TempWrites, TempWrite{DeviceId: deviceId, Temperature: temperature})
	return nil
}

func (c *TestHeaterClient) HeaterControl(ctx context.Context, deviceId string, params ControlParams) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return ErrNotConnected
	}
	h, ok := c.heaters[deviceId]
	if !ok {
		return errors.New("lvi: unknown device " + deviceId)
	}
	if params.FanStatus != nil {
		if *params.FanStatus != 0 {
			h.FanSpeed = 1
		} else {
			h.FanSpeed = 0
		}
	}
	if params.PowerStatus != nil {
		h.PowerStatus = *params.PowerStatus
	}
	c.heaters[deviceId] = h
	c.ControlWrites = append(c.ControlWrites, ControlWrite{DeviceId: deviceId, Params: params})
	return nil
}

func (c *TestHeaterClient) SetRoomTemperaturesByName(ctx context.Context, roomName string, params RoomTempParams) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return ErrNotConnected
	}
	c.RoomWrites = append(c.RoomWrites, RoomWrite{RoomName: roomName, Params: params})
	return nil
}

// ensure interface compliance
var _ HeaterClient = (*TestHeaterClient)(nil)
