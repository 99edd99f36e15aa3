package domain

type Device struct {
	Id           string
	Name         string
	Version      string
	Model        string
	Manufacturer string
	ViaDevice    string
}

// GenericClimate describes one heater as a climate entity for discovery
// purposes.
type GenericClimate struct {
	Device   Device
	Id       string
	Name     string
	UniqueId string
	Icon     string

	MinTemp  float64
	MaxTemp  float64
	TempStep float64
	Modes    []string
	FanModes []string
}

type GenericSensor struct {
	Device           Device
	Id               string
	SensorType       string
	Name             string
	UniqueId         string
	DeviceClass      string
	EntityCategory   string // diagnostic, config, nil
	EnabledByDefault *bool
	Icon             string
}
