package domain

import "fmt"

// ClimateRequest

type ClimateRequest interface {
	ActorRequest
	ClimateCommand() string
	ClimateDeviceId() string
}

type ClimateRequestMixIn struct {
	ActorRequestMixIn
	DeviceId string
}

func (r ClimateRequestMixIn) ClimateCommand() string {
	return fmt.Sprintf("%T", r)
}

func (r ClimateRequestMixIn) ClimateDeviceId() string {
	return r.DeviceId
}

// ClimateResponse

type ClimateResponse interface {
	ActorResponse
	ClimateResponse() string
}

type ClimateResponseMixIn struct {
	ActorResponseMixIn
}

func (r ClimateResponseMixIn) ClimateResponse() string {
	return fmt.Sprintf("%T", r)
}

// Climate commands

type ClimateSetTemperatureRequest struct {
	ClimateRequestMixIn
	// Temperature is nil when the caller issued a set request without a
	// value. That case is a no-op, not an error.
	Temperature *float64
}

type ClimateSetTemperatureResponse struct {
	ClimateResponseMixIn
	Skipped bool
}

type ClimateSetHvacModeRequest struct {
	ClimateRequestMixIn
	Mode HvacMode
}

type ClimateSetHvacModeResponse struct {
	ClimateResponseMixIn
}

type ClimateSetFanModeRequest struct {
	ClimateRequestMixIn
	Mode FanMode
}

type ClimateSetFanModeResponse struct {
	ClimateResponseMixIn
}

// RoomTemperatureRequest is the bulk room-scoped write. It bypasses the
// per-device projection entirely and maps to a single vendor call.
type RoomTemperatureRequest struct {
	ActorRequestMixIn
	RoomName    string `json:"room_name"`
	SleepTemp   *int   `json:"sleep_temp,omitempty"`
	ComfortTemp *int   `json:"comfort_temp,omitempty"`
	AwayTemp    *int   `json:"away_temp,omitempty"`
}

type RoomTemperatureResponse struct {
	ActorResponseMixIn
}

// ensure interface compliance
var _ ClimateRequest = (*ClimateSetTemperatureRequest)(nil)
var _ ClimateRequest = (*ClimateSetHvacModeRequest)(nil)
var _ ClimateRequest = (*ClimateSetFanModeRequest)(nil)
