package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"

	"github.com/carlmjohnson/versioninfo"
)

const (
	SENSOR_ID_BRIDGE_STATE    = "bridge"
	SENSOR_TYPE_BINARY        = "binary_sensor"
	DEVICE_CLASS_CONNECTIVITY = "connectivity"
)

func BridgeDevice(baseTopic string) Device {
	return Device{
		Id:           fmt.Sprintf("lvi2mqtt_bridge_%s", md5HashShort(baseTopic)),
		Manufacturer: Manufacturer,
		Model:        "lvi2mqtt",
		Version:      versioninfo.Short(),
		Name:         fmt.Sprintf("LVI bridge %s", md5HashShort(baseTopic)),
	}
}

func HeaterDevice(heater HeaterSnapshot) Device {
	return Device{
		Id:           fmt.Sprintf("lvi_heater_%s", md5HashShort(heater.DeviceId)),
		Manufacturer: Manufacturer,
		Model:        HeaterModel,
		Name:         heater.Name,
	}
}

func IdDevice(device Device) Device {
	return Device{
		Id:   device.Id,
		Name: device.Name,
	}
}

// HeaterClimate builds the discovery descriptor for one heater. The entity
// only ever advertises heat/off and on/off, whatever the device reports.
func HeaterClimate(device Device, heater HeaterSnapshot) GenericClimate {
	return GenericClimate{
		Device:   device,
		Id:       heater.DeviceId,
		Name:     heater.Name,
		UniqueId: uniqueId(device.Id, heater.DeviceId),
		MinTemp:  MinTemp,
		MaxTemp:  MaxTemp,
		TempStep: TempStep,
		Modes:    []string{string(HvacModeHeat), string(HvacModeOff)},
		FanModes: []string{string(FanModeOn), string(FanModeOff)},
	}
}

func BridgeSensors(bridgeDevice Device) []GenericSensor {
	var sensors []GenericSensor

	sensors = append(sensors, GenericSensor{
		Device:      bridgeDevice,
		Id:          SENSOR_ID_BRIDGE_STATE,
		SensorType:  SENSOR_TYPE_BINARY,
		Name:        "Bridge state",
		DeviceClass: DEVICE_CLASS_CONNECTIVITY,
		UniqueId:    uniqueId(bridgeDevice.Id, SENSOR_ID_BRIDGE_STATE),
	})

	return sensors
}

func uniqueId(deviceId, entityId string) string {
	return fmt.Sprintf("%s_%s", deviceId, entityId)
}

func md5HashShort(value string) string {
	hash := md5.Sum([]byte(value))
	return hex.EncodeToString(hash[:])[:8]
}
