package lvi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const DefaultBaseURL = "https://api.lvi-heating.com/api/v0.1"

var ErrNotConnected = errors.New("lvi: not connected")

type Client struct {
	username   string
	password   string
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

func CreateClient(username, password, baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		username:   username,
		password:   password,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type authResponse struct {
	Token string `json:"token"`
	Code  int    `json:"code"`
}

type heaterListResponse struct {
	Heaters []Heater `json:"devices"`
}

type heaterResponse struct {
	Heater Heater `json:"device"`
}

type ackResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Connect authenticates against the vendor cloud and stores the session
// token. All other calls fail with ErrNotConnected until it succeeds.
func (c *Client) Connect(ctx context.Context) error {
	body := map[string]any{
		"username": c.username,
		"password": c.password,
	}
	var resp authResponse
	if err := c.post(ctx, "/auth/login", body, &resp); err != nil {
		return fmt.Errorf("lvi: connect: %w", err)
	}
	if resp.Token == "" {
		return errors.New("lvi: connect: empty session token")
	}
	c.token = resp.Token
	c.logger.Debug("lvi: connected")
	return nil
}

// FindAllHeaters lists every heater on the account, keyed by device id.
func (c *Client) FindAllHeaters(ctx context.Context) (map[string]Heater, error) {
	if c.token == "" {
		return nil, ErrNotConnected
	}
	var resp heaterListResponse
	if err := c.get(ctx, "/human/smarthome/devices", &resp); err != nil {
		return nil, fmt.Errorf("lvi: list heaters: %w", err)
	}
	heaters := make(map[string]Heater, len(resp.Heaters))
	for _, h := range resp.Heaters {
		heaters[h.Id] = h
	}
	return heaters, nil
}

// UpdateDevice reads a fresh snapshot of a single heater.
func (c *Client) UpdateDevice(ctx context.Context, deviceId string) (*Heater, error) {
	if c.token == "" {
		return nil, ErrNotConnected
	}
	var resp heaterResponse
	path := fmt.Sprintf("/human/smarthome/devices/%s", url.PathEscape(deviceId))
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("lvi: update device %s: %w", deviceId, err)
	}
	return &resp.Heater, nil
}

// SetHeaterTemp writes the setpoint of the heater's active mode. The vendor
// API only accepts whole degrees.
func (c *Client) SetHeaterTemp(ctx context.Context, deviceId string, temperature int) error {
	if c.token == "" {
		return ErrNotConnected
	}
	body := map[string]any{
		"id_device":   deviceId,
		"temperature": temperature,
	}
	return c.control(ctx, "/human/query/push/temperature", body)
}

// HeaterControl writes fan and/or power status. Nil params are not sent.
func (c *Client) HeaterControl(ctx context.Context, deviceId string, params ControlParams) error {
	if c.token == "" {
		return ErrNotConnected
	}
	body := map[string]any{
		"id_device": deviceId,
	}
	if params.FanStatus != nil {
		body["fan_status"] = *params.FanStatus
	}
	if params.PowerStatus != nil {
		body["power_status"] = *params.PowerStatus
	}
	return c.control(ctx, "/human/query/push/control", body)
}

// SetRoomTemperaturesByName writes the program temperatures of every heater
// grouped under the named room in a single call.
func (c *Client) SetRoomTemperaturesByName(ctx context.Context, roomName string, params RoomTempParams) error {
	if c.token == "" {
		return ErrNotConnected
	}
	body := map[string]any{
		"room_name": roomName,
	}
	if params.SleepTemp != nil {
		body["sleep_temp"] = *params.SleepTemp
	}
	if params.ComfortTemp != nil {
		body["comfort_temp"] = *params.ComfortTemp
	}
	if params.AwayTemp != nil {
		body["away_temp"] = *params.AwayTemp
	}
	return c.control(ctx, "/human/query/push/room_temperature", body)
}

func (c *Client) control(ctx context.Context, path string, body map[string]any) error {
	var resp ackResponse
	if err := c.post(ctx, path, body, &resp); err != nil {
		return fmt.Errorf("lvi: control: %w", err)
	}
	if !resp.Success {
		return fmt.Errorf("lvi: control rejected: %s", resp.Error)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, body map[string]any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.New("unexpected status " + strconv.Itoa(resp.StatusCode))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ensure interface compliance
var _ HeaterClient = (*Client)(nil)
