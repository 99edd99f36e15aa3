package mqtt

import (
	"fmt"

	"lvi2mqtt/internal/core/domain"
)

type HADiscoveryConfig struct {
	Device                  HADiscoveryDevice `json:"device"`
	StateTopic              string            `json:"state_topic,omitempty"`
	DeviceClass             string            `json:"device_class,omitempty"`
	AvTopic                 string            `json:"availability_topic,omitempty"`
	EntityCategory          string            `json:"entity_category,omitempty"`
	Name                    string            `json:"name"`
	UniqueId                string            `json:"unique_id"`
	Platform                string            `json:"platform"`
	EnabledByDefault        *bool             `json:"enabled_by_default,omitempty"`
	PayloadOn               string            `json:"payload_on,omitempty"`
	PayloadOff              string            `json:"payload_off,omitempty"`
	Icon                    string            `json:"icon,omitempty"`
	CurrentTemperatureTopic string            `json:"current_temperature_topic,omitempty"`
	TemperatureStateTopic   string            `json:"temperature_state_topic,omitempty"`
	TemperatureCommandTopic string            `json:"temperature_command_topic,omitempty"`
	ModeStateTopic          string            `json:"mode_state_topic,omitempty"`
	ModeCommandTopic        string            `json:"mode_command_topic,omitempty"`
	ActionTopic             string            `json:"action_topic,omitempty"`
	FanModeStateTopic       string            `json:"fan_mode_state_topic,omitempty"`
	FanModeCommandTopic     string            `json:"fan_mode_command_topic,omitempty"`
	TemperatureUnit         string            `json:"temperature_unit,omitempty"`
	MinTemp                 float64           `json:"min_temp,omitempty"`
	MaxTemp                 float64           `json:"max_temp,omitempty"`
	TempStep                float64           `json:"temp_step,omitempty"`
	Modes                   []string          `json:"modes,omitempty"`
	FanModes                []string          `json:"fan_modes,omitempty"`
}

type HADiscoveryDevice struct {
	Id           []string `json:"identifiers"`
	Manufacturer string   `json:"manufacturer,omitempty"`
	Version      string   `json:"sw_version,omitempty"`
	Model        string   `json:"model,omitempty"`
	Name         string   `json:"name,omitempty"`
	ViaDevice    string   `json:"via_device,omitempty"`
}

func HADiscoveryClimateTopic(climate domain.GenericClimate) string {
	return fmt.Sprintf("homeassistant/climate/%s/%s/config", climate.Device.Id, climate.Id)
}

func HADiscoverySensorTopic(sensor domain.GenericSensor) string {
	return fmt.Sprintf("homeassistant/%s/%s/%s/config", sensor.SensorType, sensor.Device.Id, sensor.Id)
}

func GenericClimateToHADiscoveryMessage(client *MQTTClient, climate domain.GenericClimate) HADiscoveryConfig {
	return HADiscoveryConfig{
		Device:                  device(climate.Device),
		AvTopic:                 client.ClimateStateTopic(climate.Id, "availability"),
		Name:                    climate.Name,
		UniqueId:                climate.UniqueId,
		Icon:                    climate.Icon,
		Platform:                "mqtt",
		CurrentTemperatureTopic: client.ClimateStateTopic(climate.Id, "current_temperature"),
		TemperatureStateTopic:   client.ClimateStateTopic(climate.Id, COMMAND_TARGET_TEMPERATURE),
		TemperatureCommandTopic: client.ClimateCommandTopic(climate.Id, COMMAND_TARGET_TEMPERATURE),
		ModeStateTopic:          client.ClimateStateTopic(climate.Id, COMMAND_MODE),
		ModeCommandTopic:        client.ClimateCommandTopic(climate.Id, COMMAND_MODE),
		ActionTopic:             client.ClimateStateTopic(climate.Id, "action"),
		FanModeStateTopic:       client.ClimateStateTopic(climate.Id, COMMAND_FAN_MODE),
		FanModeCommandTopic:     client.ClimateCommandTopic(climate.Id, COMMAND_FAN_MODE),
		TemperatureUnit:         "C",
		MinTemp:                 climate.MinTemp,
		MaxTemp:                 climate.MaxTemp,
		TempStep:                climate.TempStep,
		Modes:                   climate.Modes,
		FanModes:                climate.FanModes,
	}
}

func GenericSensorToHADiscoveryMessage(client *MQTTClient, sensor domain.GenericSensor) HADiscoveryConfig {
	var topic string
	if sensor.Id == domain.SENSOR_ID_BRIDGE_STATE {
		topic = client.BridgeStateTopic()
	} else {
		topic = client.BinarySensorStateTopic(sensor.Id)
	}
	disConfig := HADiscoveryConfig{
		Device:           device(sensor.Device),
		StateTopic:       topic,
		DeviceClass:      sensor.DeviceClass,
		AvTopic:          client.BridgeStateTopic(),
		EntityCategory:   sensor.EntityCategory,
		Name:             sensor.Name,
		UniqueId:         sensor.UniqueId,
		Icon:             sensor.Icon,
		EnabledByDefault: sensor.EnabledByDefault,
		Platform:         "mqtt",
	}
	if sensor.Id == domain.SENSOR_ID_BRIDGE_STATE {
		disConfig.PayloadOn = MQTT_PAYLOAD_ONLINE
		disConfig.PayloadOff = MQTT_PAYLOAD_OFFLINE
	} else if sensor.SensorType == domain.SENSOR_TYPE_BINARY {
		disConfig.PayloadOn = MQTT_PAYLOAD_ON
		disConfig.PayloadOff = MQTT_PAYLOAD_OFF
	}
	return disConfig
}

func device(d domain.Device) HADiscoveryDevice {
	return HADiscoveryDevice{
		Id:           []string{d.Id},
		Manufacturer: d.Manufacturer,
		Version:      d.Version,
		Model:        d.Model,
		Name:         d.Name,
		ViaDevice:    d.ViaDevice,
	}
}
