package lvi

import "context"

// Vendor gv_mode codes. Any other value selects the frost protection setpoint.
const (
	GVModeComfort = "0"
	GVModeEco     = "3"
	GVModeBoost   = "4"
	GVModeManual  = "8"
)

// Room groups heaters inside the vendor account. Heaters without a room are
// standalone devices.
type Room struct {
	Id   string `json:"id"`
	Name string `json:"room_name"`
}

// Heater is one poll's worth of reported device state. A new value is
// produced on every read, it is never updated in place.
type Heater struct {
	Id          string  `json:"id_device"`
	Name        string  `json:"nom_appareil"`
	Room        *Room   `json:"room,omitempty"`
	PowerStatus int     `json:"power_status"`
	GVMode      string  `json:"gv_mode"`
	ComfortTemp float64 `json:"consigne_confort"`
	ManualTemp  float64 `json:"consigne_manuel"`
	EcoTemp     float64 `json:"consigne_eco"`
	BoostTemp   float64 `json:"consigne_boost"`
	FrostTemp   float64 `json:"consigne_hg"`
	CurrentTemp float64 `json:"temperature_air"`
	FanSpeed    int     `json:"fan_speed"`
	HeatingUp   int     `json:"heating_up"`
	Gen1        bool    `json:"gen1"`
	Available   bool    `json:"available"`
}

// ControlParams selects which control fields to write. Nil fields are left
// untouched on the device.
type ControlParams struct {
	FanStatus   *int
	PowerStatus *int
}

// RoomTempParams carries the optional per-program temperatures of the bulk
// room write. Nil fields are not sent.
type RoomTempParams struct {
	SleepTemp   *int
	ComfortTemp *int
	AwayTemp    *int
}

type HeaterClient interface {
	Connect(ctx context.Context) error
	FindAllHeaters(ctx context.Context) (map[string]Heater, error)
	UpdateDevice(ctx context.Context, deviceId string) (*Heater, error)
	SetHeaterTemp(ctx context.Context, deviceId string, temperature int) error
	HeaterControl(ctx context.Context, deviceId string, params ControlParams) error
	SetRoomTemperaturesByName(ctx context.Context, roomName string, params RoomTempParams) error
}
