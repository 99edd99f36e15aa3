package lvi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testServer(t *testing.T) (*httptest.Server, *[]map[string]any) {
	t.Helper()

	var writes []map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["username"] != "user@example.com" || body["password"] != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"token": "session-token"})
	})
	mux.HandleFunc("/human/smarthome/devices", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer session-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"devices": []map[string]any{
				{
					"id_device":        "abc123",
					"nom_appareil":     "Yali Digital",
					"gv_mode":          "8",
					"consigne_manuel":  19,
					"consigne_confort": 21,
					"consigne_hg":      7,
					"temperature_air":  18.4,
					"power_status":     1,
					"heating_up":       1,
					"available":        true,
					"room":             map[string]any{"id": "r1", "room_name": "Kitchen"},
				},
			},
		})
	})
	mux.HandleFunc("/human/query/push/temperature", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		writes = append(writes, body)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	mux.HandleFunc("/human/query/push/control", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		writes = append(writes, body)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})
	mux.HandleFunc("/human/query/push/room_temperature", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		writes = append(writes, body)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &writes
}

func testClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	return CreateClient("user@example.com", "secret", server.URL, 2*time.Second, zap.NewNop())
}

func TestConnect(t *testing.T) {
	server, _ := testServer(t)
	client := testClient(t, server)

	require.NoError(t, client.Connect(context.Background()))
}

func TestConnectBadCredentials(t *testing.T) {
	server, _ := testServer(t)
	client := CreateClient("user@example.com", "wrong", server.URL, 2*time.Second, zap.NewNop())

	require.Error(t, client.Connect(context.Background()))
}

func TestCallsRequireConnect(t *testing.T) {
	server, _ := testServer(t)
	client := testClient(t, server)

	_, err := client.FindAllHeaters(context.Background())
	assert.ErrorIs(t, err, ErrNotConnected)

	err = client.SetHeaterTemp(context.Background(), "abc123", 20)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestFindAllHeaters(t *testing.T) {
	server, _ := testServer(t)
	client := testClient(t, server)

	require.NoError(t, client.Connect(context.Background()))

	heaters, err := client.FindAllHeaters(context.Background())
	require.NoError(t, err)
	require.Len(t, heaters, 1)

	h, ok := heaters["abc123"]
	require.True(t, ok)
	assert.Equal(t, "Yali Digital", h.Name)
	assert.Equal(t, GVModeManual, h.GVMode)
	assert.EqualValues(t, 19, h.ManualTemp)
	assert.EqualValues(t, 18.4, h.CurrentTemp)
	assert.Equal(t, 1, h.PowerStatus)
	require.NotNil(t, h.Room)
	assert.Equal(t, "Kitchen", h.Room.Name)
}

func TestSetHeaterTemp(t *testing.T) {
	server, writes := testServer(t)
	client := testClient(t, server)

	require.NoError(t, client.Connect(context.Background()))
	require.NoError(t, client.SetHeaterTemp(context.Background(), "abc123", 21))

	require.Len(t, *writes, 1)
	assert.EqualValues(t, 21, (*writes)[0]["temperature"])
	assert.Equal(t, "abc123", (*writes)[0]["id_device"])
}

func TestHeaterControlPartialParams(t *testing.T) {
	server, writes := testServer(t)
	client := testClient(t, server)

	require.NoError(t, client.Connect(context.Background()))

	power := 1
	require.NoError(t, client.HeaterControl(context.Background(), "abc123", ControlParams{PowerStatus: &power}))

	require.Len(t, *writes, 1)
	assert.EqualValues(t, 1, (*writes)[0]["power_status"])
	_, hasFan := (*writes)[0]["fan_status"]
	assert.False(t, hasFan, "unset fan_status must not be sent")
}

func TestSetRoomTemperaturesByName(t *testing.T) {
	server, writes := testServer(t)
	client := testClient(t, server)

	require.NoError(t, client.Connect(context.Background()))

	sleep := 16
	comfort := 21
	require.NoError(t, client.SetRoomTemperaturesByName(context.Background(), "Kitchen", RoomTempParams{
		SleepTemp:   &sleep,
		ComfortTemp: &comfort,
	}))

	require.Len(t, *writes, 1)
	assert.Equal(t, "Kitchen", (*writes)[0]["room_name"])
	assert.EqualValues(t, 16, (*writes)[0]["sleep_temp"])
	assert.EqualValues(t, 21, (*writes)[0]["comfort_temp"])
	_, hasAway := (*writes)[0]["away_temp"]
	assert.False(t, hasAway, "unset away_temp must not be sent")
}
