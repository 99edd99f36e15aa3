package events

import (
	. "lvi2mqtt/internal/core/domain"
	"lvi2mqtt/internal/core/port"
)

// HeaterToUpdateEvents projects one snapshot into the event stream payloads
// the MQTT actor publishes.
func HeaterToUpdateEvents(p port.HeaterStateProjector, heater HeaterSnapshot) []any {
	var events []any

	events = append(events, ClimateStateUpdateEvent{
		UpdateEventMixIn: UpdateEventMixIn{
			Id: heater.DeviceId,
		},
		CurrentTemperature: p.CurrentTemperature(heater),
		TargetTemperature:  p.TargetTemperature(heater),
		Mode:               p.HvacMode(heater),
		Action:             p.HvacAction(heater),
		Fan:                p.FanMode(heater),
		Room:               p.RoomLabel(heater),
		Available:          heater.Available,
	})

	return events
}

func HeatersToUpdateEvents(p port.HeaterStateProjector, heaters []HeaterSnapshot) []any {
	var events []any
	for _, heater := range heaters {
		events = append(events, HeaterToUpdateEvents(p, heater)...)
	}
	return events
}

func BridgeStateEvent(online bool) any {
	return BridgeStateUpdateEvent{
		UpdateEventMixIn: UpdateEventMixIn{
			Id: SENSOR_ID_BRIDGE_STATE,
		},
		Value: online,
	}
}
