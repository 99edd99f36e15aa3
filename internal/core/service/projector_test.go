package service

import (
	"testing"

	"lvi2mqtt/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var projector = DefaultHeaterStateProjector{}

func snapshotWithSetpoints() domain.HeaterSnapshot {
	return domain.HeaterSnapshot{
		DeviceId:                "dev1",
		SetpointComfort:         21,
		SetpointManual:          19,
		SetpointEco:             17,
		SetpointBoost:           24,
		SetpointFrostProtection: 7,
	}
}

func TestTargetTemperaturePerModeCode(t *testing.T) {

	cases := []struct {
		modeCode string
		expected float64
	}{
		{domain.ModeCodeComfort, 21},
		{domain.ModeCodeManual, 19},
		{domain.ModeCodeEco, 17},
		{domain.ModeCodeBoost, 24},
		{"unknown", 7},
		{"", 7},
		{"99", 7},
	}

	for _, c := range cases {
		s := snapshotWithSetpoints()
		s.ModeCode = c.modeCode
		assert.EqualValues(t, c.expected, projector.TargetTemperature(s), "mode code %q", c.modeCode)
	}
}

func TestCurrentTemperatureVerbatim(t *testing.T) {

	s := snapshotWithSetpoints()
	s.CurrentTemperature = 18.4

	assert.EqualValues(t, 18.4, projector.CurrentTemperature(s))
}

func TestHvacModeFollowsPowerStatus(t *testing.T) {

	s := snapshotWithSetpoints()

	s.PowerStatus = 1
	assert.Equal(t, domain.HvacModeHeat, projector.HvacMode(s))

	s.PowerStatus = 0
	assert.Equal(t, domain.HvacModeOff, projector.HvacMode(s))

	// heating-active signal must not drive the mode
	s.Heating = 1
	assert.Equal(t, domain.HvacModeOff, projector.HvacMode(s))
}

func TestHvacAction(t *testing.T) {

	s := snapshotWithSetpoints()

	s.Heating = 1
	assert.Equal(t, domain.HvacActionHeating, projector.HvacAction(s))

	s.Heating = 0
	assert.Equal(t, domain.HvacActionIdle, projector.HvacAction(s))

	// gen1 devices always report heating, they have no idle detection
	s.LegacyGeneration = true
	assert.Equal(t, domain.HvacActionHeating, projector.HvacAction(s))
}

func TestFanModeBoundaries(t *testing.T) {

	s := snapshotWithSetpoints()

	s.FanSpeed = 0
	assert.Equal(t, domain.FanModeOff, projector.FanMode(s))

	s.FanSpeed = 1
	assert.Equal(t, domain.FanModeOn, projector.FanMode(s))

	s.FanSpeed = -1
	assert.Equal(t, domain.FanModeOn, projector.FanMode(s))
}

func TestRoomLabelFallback(t *testing.T) {

	s := snapshotWithSetpoints()

	s.RoomName = "Kitchen"
	assert.Equal(t, "Kitchen", projector.RoomLabel(s))

	s.RoomName = ""
	assert.Equal(t, "Independent device", projector.RoomLabel(s))
}

func TestBuildTemperatureCommandTruncates(t *testing.T) {

	temp := 21.7
	cmd, err := projector.BuildTemperatureCommand("dev1", &temp)
	require.NoError(t, err)
	require.NotNil(t, cmd)

	assert.Equal(t, "dev1", cmd.DeviceId)
	assert.Equal(t, domain.CommandFieldTemperature, cmd.Field)
	assert.Equal(t, 21, cmd.Value)
}

func TestBuildTemperatureCommandMissingValueIsNoop(t *testing.T) {

	cmd, err := projector.BuildTemperatureCommand("dev1", nil)
	require.NoError(t, err)
	assert.Nil(t, cmd)
}

func TestBuildTemperatureCommandIdempotent(t *testing.T) {

	temp := 21.0
	first, err := projector.BuildTemperatureCommand("dev1", &temp)
	require.NoError(t, err)
	second, err := projector.BuildTemperatureCommand("dev1", &temp)
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
}

func TestBuildFanCommand(t *testing.T) {

	on := projector.BuildFanCommand("dev1", domain.FanModeOn)
	assert.Equal(t, domain.CommandFieldFanStatus, on.Field)
	assert.Equal(t, 1, on.Value)

	off := projector.BuildFanCommand("dev1", domain.FanModeOff)
	assert.Equal(t, domain.CommandFieldFanStatus, off.Field)
	assert.Equal(t, 0, off.Value)
}

func TestBuildPowerCommandInverseOfHvacMode(t *testing.T) {

	heat, err := projector.BuildPowerCommand("dev1", domain.HvacModeHeat)
	require.NoError(t, err)
	assert.Equal(t, domain.CommandFieldPowerStatus, heat.Field)
	assert.Equal(t, 1, heat.Value)

	off, err := projector.BuildPowerCommand("dev1", domain.HvacModeOff)
	require.NoError(t, err)
	assert.Equal(t, 0, off.Value)

	// round trip: applying the command value as power status yields the mode back
	s := snapshotWithSetpoints()
	s.PowerStatus = heat.Value
	assert.Equal(t, domain.HvacModeHeat, projector.HvacMode(s))
	s.PowerStatus = off.Value
	assert.Equal(t, domain.HvacModeOff, projector.HvacMode(s))
}

func TestBuildPowerCommandRejectsUnsupportedMode(t *testing.T) {

	_, err := projector.BuildPowerCommand("dev1", domain.HvacMode("cool"))
	require.ErrorIs(t, err, ErrUnsupportedMode)
}

func TestProjectionScenarioManualHeating(t *testing.T) {

	s := domain.HeaterSnapshot{
		ModeCode:        domain.ModeCodeManual,
		SetpointManual:  19,
		SetpointComfort: 21,
		PowerStatus:     1,
		FanSpeed:        0,
		Heating:         1,
	}

	assert.EqualValues(t, 19, projector.TargetTemperature(s))
	assert.Equal(t, domain.HvacModeHeat, projector.HvacMode(s))
	assert.Equal(t, domain.HvacActionHeating, projector.HvacAction(s))
	assert.Equal(t, domain.FanModeOff, projector.FanMode(s))
}

func TestProjectionScenarioUnknownModePoweredOff(t *testing.T) {

	s := domain.HeaterSnapshot{
		ModeCode:                "unknown",
		SetpointFrostProtection: 7,
		PowerStatus:             0,
	}

	assert.EqualValues(t, 7, projector.TargetTemperature(s))
	assert.Equal(t, domain.HvacModeOff, projector.HvacMode(s))
}
