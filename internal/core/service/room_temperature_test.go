package service

import (
	"context"
	"testing"

	"lvi2mqtt/internal/core/domain"
	"lvi2mqtt/pkg/lvi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func connectedTestClient(t *testing.T) *lvi.TestHeaterClient {
	t.Helper()
	client := lvi.CreateTestHeaterClient()
	require.NoError(t, client.Connect(context.Background()))
	return client
}

func TestSetRoomTemperatures(t *testing.T) {

	client := connectedTestClient(t)

	sleep := 16
	comfort := 21
	err := SetRoomTemperatures(context.Background(), client, domain.RoomTemperatureRequest{
		RoomName:    "Living room",
		SleepTemp:   &sleep,
		ComfortTemp: &comfort,
	})
	require.NoError(t, err)

	require.Len(t, client.RoomWrites, 1)
	assert.Equal(t, "Living room", client.RoomWrites[0].RoomName)
	assert.Equal(t, 16, *client.RoomWrites[0].Params.SleepTemp)
	assert.Equal(t, 21, *client.RoomWrites[0].Params.ComfortTemp)
	assert.Nil(t, client.RoomWrites[0].Params.AwayTemp)
}

func TestSetRoomTemperaturesRequiresRoomName(t *testing.T) {

	client := connectedTestClient(t)

	err := SetRoomTemperatures(context.Background(), client, domain.RoomTemperatureRequest{})
	require.ErrorIs(t, err, ErrMissingRoomName)
	assert.Empty(t, client.RoomWrites)
}

func TestSetRoomTemperaturesRejectsNonPositiveTemp(t *testing.T) {

	client := connectedTestClient(t)

	zero := 0
	err := SetRoomTemperatures(context.Background(), client, domain.RoomTemperatureRequest{
		RoomName:  "Living room",
		SleepTemp: &zero,
	})
	require.Error(t, err)
	assert.Empty(t, client.RoomWrites)
}
