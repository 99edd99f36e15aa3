package domain

const (
	ACTOR_ID_MASTER       = "master"
	ACTOR_ID_CLOUD        = "cloud"
	ACTOR_ID_HEATERS      = "heaters"
	ACTOR_ID_MQTT         = "mqtt"
	ACTOR_ID_HA_DISCOVERY = "hadiscovery"
)

type GetHeatersInfoRequest struct {
	ActorRequestMixIn
}

type GetHeatersInfoResponse struct {
	ActorResponseMixIn
	Heaters []HeaterSnapshot
}

type RefreshHeatersRequest struct {
	ActorRequestMixIn
	DeviceIds []string
}

type RefreshHeatersResponse struct {
	ActorResponseMixIn
	Heaters []HeaterSnapshot
}

type PublishMessageRequest struct {
	ActorRequestMixIn
	Topic   string
	Payload string
	Retain  bool
}

type PublishMessageResponse struct {
	ActorResponseMixIn
}

type PublishUpdateRequest struct {
	ActorRequestMixIn
	Retain bool
	Event  UpdateEvent
}

type PublishUpdateResponse struct {
	ActorResponseMixIn
}

type PublishDiscoveryRequest struct {
	ActorRequestMixIn
	Climates []GenericClimate
	Sensors  []GenericSensor
}

type PublishDiscoveryResponse struct {
	ActorResponseMixIn
}

type ActorHealthRequest struct {
	ActorRequestMixIn
}

type ActorHealthResponse struct {
	ActorResponseMixIn
	Id      string
	Healthy bool
	State   string
}
