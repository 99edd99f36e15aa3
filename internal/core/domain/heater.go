package domain

// Vendor gv_mode codes. Any other value selects the frost protection
// setpoint.
const (
	ModeCodeComfort = "0"
	ModeCodeEco     = "3"
	ModeCodeBoost   = "4"
	ModeCodeManual  = "8"
)

type HvacMode string

const (
	HvacModeHeat HvacMode = "heat"
	HvacModeOff  HvacMode = "off"
)

type HvacAction string

const (
	HvacActionHeating HvacAction = "heating"
	HvacActionIdle    HvacAction = "idle"
)

type FanMode string

const (
	FanModeOn  FanMode = "on"
	FanModeOff FanMode = "off"
)

const (
	MinTemp  = 5
	MaxTemp  = 30
	TempStep = 1

	Manufacturer = "Lvi"
	HeaterModel  = "generation 2"

	// IndependentDeviceLabel replaces the room name for heaters outside any
	// room.
	IndependentDeviceLabel = "Independent device"
)

// HeaterSnapshot is the vendor-agnostic view of one heater poll. Snapshots
// are immutable values, a refresh produces a new one.
type HeaterSnapshot struct {
	DeviceId    string
	Name        string
	RoomName    string
	PowerStatus int
	ModeCode    string

	SetpointComfort         float64
	SetpointManual          float64
	SetpointEco             float64
	SetpointBoost           float64
	SetpointFrostProtection float64

	CurrentTemperature float64
	FanSpeed           int
	Heating            int
	LegacyGeneration   bool
	Available          bool
}

// Vendor control fields addressable by a VendorCommand.
const (
	CommandFieldTemperature = "temperature"
	CommandFieldFanStatus   = "fan_status"
	CommandFieldPowerStatus = "power_status"
)

// VendorCommand is one write against the vendor control API.
type VendorCommand struct {
	DeviceId string
	Field    string
	Value    int
}
