package port

import (
	"lvi2mqtt/internal/core/domain"
)

// HeaterStateProjector maps vendor heater snapshots to the climate view
// exposed over MQTT, and user intent back to vendor control commands.
type HeaterStateProjector interface {
	TargetTemperature(s domain.HeaterSnapshot) float64
	CurrentTemperature(s domain.HeaterSnapshot) float64
	HvacMode(s domain.HeaterSnapshot) domain.HvacMode
	HvacAction(s domain.HeaterSnapshot) domain.HvacAction
	FanMode(s domain.HeaterSnapshot) domain.FanMode
	RoomLabel(s domain.HeaterSnapshot) string

	BuildTemperatureCommand(deviceId string, temperature *float64) (*domain.VendorCommand, error)
	BuildFanCommand(deviceId string, mode domain.FanMode) domain.VendorCommand
	BuildPowerCommand(deviceId string, mode domain.HvacMode) (domain.VendorCommand, error)
}
