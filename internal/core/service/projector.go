package service

import (
	"errors"
	"fmt"
	"math"

	"lvi2mqtt/internal/core/domain"
	"lvi2mqtt/internal/core/port"
)

// ErrUnsupportedMode rejects hvac modes outside {heat, off}. Only those two
// are ever advertised, so anything else is a caller bug, never a silent
// default.
var ErrUnsupportedMode = errors.New("unsupported hvac mode")

// ErrInvalidTemperature rejects NaN and infinite setpoints before they reach
// the vendor API.
var ErrInvalidTemperature = errors.New("temperature is not a finite number")

// DefaultHeaterStateProjector is a stateless, pure projection. Every method
// is deterministic over its snapshot and safe for concurrent use.
//
// Contract note: HvacMode is driven by the device power status, not by the
// heating-active signal. A powered heater that is currently idle still
// reports mode heat; the heating-active signal only drives HvacAction.
type DefaultHeaterStateProjector struct {
}

// TargetTemperature selects the setpoint matching the snapshot's mode code.
// Unknown or unset codes fall back to the frost protection setpoint, so the
// result is always defined.
func (p DefaultHeaterStateProjector) TargetTemperature(s domain.HeaterSnapshot) float64 {
	switch s.ModeCode {
	case domain.ModeCodeComfort:
		return s.SetpointComfort
	case domain.ModeCodeManual:
		return s.SetpointManual
	case domain.ModeCodeEco:
		return s.SetpointEco
	case domain.ModeCodeBoost:
		return s.SetpointBoost
	default:
		return s.SetpointFrostProtection
	}
}

func (p DefaultHeaterStateProjector) CurrentTemperature(s domain.HeaterSnapshot) float64 {
	return s.CurrentTemperature
}

func (p DefaultHeaterStateProjector) HvacMode(s domain.HeaterSnapshot) domain.HvacMode {
	if s.PowerStatus != 0 {
		return domain.HvacModeHeat
	}
	return domain.HvacModeOff
}

// HvacAction reports heating whenever the element is engaged. Legacy gen1
// hardware has no idle detection and always reports heating while queried.
func (p DefaultHeaterStateProjector) HvacAction(s domain.HeaterSnapshot) domain.HvacAction {
	if s.LegacyGeneration || s.Heating != 0 {
		return domain.HvacActionHeating
	}
	return domain.HvacActionIdle
}

func (p DefaultHeaterStateProjector) FanMode(s domain.HeaterSnapshot) domain.FanMode {
	if s.FanSpeed != 0 {
		return domain.FanModeOn
	}
	return domain.FanModeOff
}

func (p DefaultHeaterStateProjector) RoomLabel(s domain.HeaterSnapshot) string {
	if s.RoomName != "" {
		return s.RoomName
	}
	return domain.IndependentDeviceLabel
}

// BuildTemperatureCommand truncates the requested temperature to a whole
// degree, the only precision the vendor API accepts. A nil temperature means
// the caller supplied no value: the command is skipped (nil, nil).
func (p DefaultHeaterStateProjector) BuildTemperatureCommand(deviceId string, temperature *float64) (*domain.VendorCommand, error) {
	if temperature == nil {
		return nil, nil
	}
	if math.IsNaN(*temperature) || math.IsInf(*temperature, 0) {
		return nil, ErrInvalidTemperature
	}
	return &domain.VendorCommand{
		DeviceId: deviceId,
		Field:    domain.CommandFieldTemperature,
		Value:    int(*temperature),
	}, nil
}

func (p DefaultHeaterStateProjector) BuildFanCommand(deviceId string, mode domain.FanMode) domain.VendorCommand {
	value := 0
	if mode == domain.FanModeOn {
		value = 1
	}
	return domain.VendorCommand{
		DeviceId: deviceId,
		Field:    domain.CommandFieldFanStatus,
		Value:    value,
	}
}

func (p DefaultHeaterStateProjector) BuildPowerCommand(deviceId string, mode domain.HvacMode) (domain.VendorCommand, error) {
	switch mode {
	case domain.HvacModeHeat:
		return domain.VendorCommand{
			DeviceId: deviceId,
			Field:    domain.CommandFieldPowerStatus,
			Value:    1,
		}, nil
	case domain.HvacModeOff:
		return domain.VendorCommand{
			DeviceId: deviceId,
			Field:    domain.CommandFieldPowerStatus,
			Value:    0,
		}, nil
	default:
		return domain.VendorCommand{}, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
}

// ensure interface compliance
var _ port.HeaterStateProjector = (*DefaultHeaterStateProjector)(nil)
