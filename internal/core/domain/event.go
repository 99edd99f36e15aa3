package domain

import "fmt"

type UpdateEventMixIn struct {
	Id string
}

type UpdateEvent interface {
	UpdateEvent() string
	EntityId() string
}

func (e UpdateEventMixIn) UpdateEvent() string {
	return fmt.Sprintf("%T", e)
}

func (e UpdateEventMixIn) EntityId() string {
	return e.Id
}

// ClimateStateUpdateEvent carries the full projected climate view of one
// heater. Id is the device id.
type ClimateStateUpdateEvent struct {
	UpdateEventMixIn
	CurrentTemperature float64
	TargetTemperature  float64
	Mode               HvacMode
	Action             HvacAction
	Fan                FanMode
	Room               string
	Available          bool
}

type BinarySensorUpdateEvent struct {
	UpdateEventMixIn
	Value bool
}

type TextSensorUpdateEvent struct {
	UpdateEventMixIn
	Value string
}

type BridgeStateUpdateEvent struct {
	UpdateEventMixIn
	Value bool
}
