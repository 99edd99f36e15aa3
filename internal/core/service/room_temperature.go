package service

import (
	"context"
	"errors"
	"fmt"

	"lvi2mqtt/internal/core/domain"
	"lvi2mqtt/pkg/lvi"
)

var ErrMissingRoomName = errors.New("room name is required")

// SetRoomTemperatures applies the bulk room-scoped temperature write. It is
// deliberately an explicit use case over the vendor client rather than a
// per-device operation: the vendor resolves the room membership itself.
func SetRoomTemperatures(ctx context.Context, client lvi.HeaterClient, req domain.RoomTemperatureRequest) error {
	if req.RoomName == "" {
		return ErrMissingRoomName
	}
	if err := checkPositive("sleep_temp", req.SleepTemp); err != nil {
		return err
	}
	if err := checkPositive("comfort_temp", req.ComfortTemp); err != nil {
		return err
	}
	if err := checkPositive("away_temp", req.AwayTemp); err != nil {
		return err
	}
	return client.SetRoomTemperaturesByName(ctx, req.RoomName, lvi.RoomTempParams{
		SleepTemp:   req.SleepTemp,
		ComfortTemp: req.ComfortTemp,
		AwayTemp:    req.AwayTemp,
	})
}

func checkPositive(name string, value *int) error {
	if value != nil && *value <= 0 {
		return fmt.Errorf("%s must be a positive integer", name)
	}
	return nil
}
