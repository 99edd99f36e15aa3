package actor

import (
	"testing"
	"time"

	"lvi2mqtt/internal/core/domain"
	"lvi2mqtt/internal/core/events"
	"lvi2mqtt/internal/core/service"
	"lvi2mqtt/internal/util"
	"lvi2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestMQTTActor(t *testing.T) {

	cfg := util.LoadTestConfig()

	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)

	context := as.Root

	es := eventstream.EventStream{}

	props := actor.PropsFromProducer(func() actor.Actor { return NewTestMQTTActor(&cfg, &es, logger) })
	pid := context.Spawn(props)

	time.Sleep(2 * time.Second)

	msg := domain.ActorHealthRequest{}
	result, err := context.RequestFuture(pid, msg, 2*time.Second).Result()
	if err != nil {
		t.Error(err)
		return
	}
	resp, ok := result.(domain.ActorHealthResponse)
	assert.True(t, ok)
	assert.NotNil(t, resp)

	projector := service.DefaultHeaterStateProjector{}
	snapshot := domain.HeaterSnapshot{
		DeviceId:           "heater_livingroom",
		Name:               "LVI Yali 1",
		RoomName:           "Living room",
		PowerStatus:        1,
		ModeCode:           domain.ModeCodeManual,
		SetpointManual:     19,
		CurrentTemperature: 18.5,
		Heating:            1,
		Available:          true,
	}
	for _, event := range events.HeaterToUpdateEvents(projector, snapshot) {
		es.Publish(event)
	}
	es.Publish(events.BridgeStateEvent(true))

	time.Sleep(1 * time.Second)

	context.Stop(pid)

	time.Sleep(1 * time.Second)

	as.Shutdown()
}
