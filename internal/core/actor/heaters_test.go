package actor

import (
	"sync"
	"testing"
	"time"

	adactor "lvi2mqtt/internal/adapter/actor"
	"lvi2mqtt/internal/core/domain"
	"lvi2mqtt/internal/core/service"
	"lvi2mqtt/internal/util"
	"lvi2mqtt/internal/util/actorutil"
	"lvi2mqtt/pkg/lvi"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHeatersActorInitialPublish(t *testing.T) {

	logger := zap.Must(zap.NewDevelopment())

	as := actorutil.NewActorSystemWithZapLogger(logger)

	context := as.Root

	cfg := util.LoadTestConfig()
	projector := service.DefaultHeaterStateProjector{}

	es := eventstream.EventStream{}
	var mu sync.Mutex
	var climateEvents []domain.ClimateStateUpdateEvent
	sub := es.Subscribe(func(value any) {
		if ev, ok := value.(domain.ClimateStateUpdateEvent); ok {
			mu.Lock()
			climateEvents = append(climateEvents, ev)
			mu.Unlock()
		}
	})
	defer es.Unsubscribe(sub)

	// cloud actor
	cloudProps := actor.PropsFromProducer(func() actor.Actor {
		return adactor.NewCloudActor(lvi.CreateTestHeaterClient(), projector, logger)
	})
	cloudActorPID := context.Spawn(cloudProps)

	// heaters actor
	heatersProps := actor.PropsFromProducer(func() actor.Actor {
		return NewHeatersActor(&cfg, cloudActorPID, &es, projector, logger)
	})
	heatersActorPID := context.Spawn(heatersProps)

	time.Sleep(2 * time.Second)

	hcr, err := healthCheck(context, heatersActorPID)
	if err != nil {
		t.Error(err)
		return
	}
	assert.True(t, hcr.Healthy, "actor should be healthy")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, len(climateEvents), "one climate event per heater")

	byId := map[string]domain.ClimateStateUpdateEvent{}
	for _, ev := range climateEvents {
		byId[ev.Id] = ev
	}

	livingroom := byId["heater_livingroom"]
	assert.Equal(t, domain.HvacModeHeat, livingroom.Mode, "powered heater reports heat")
	assert.Equal(t, domain.HvacActionHeating, livingroom.Action, "heating element engaged")
	assert.Equal(t, 19.0, livingroom.TargetTemperature, "manual setpoint selected")
	assert.Equal(t, "Living room", livingroom.Room)

	attic := byId["heater_attic"]
	assert.Equal(t, domain.HvacModeOff, attic.Mode, "powered off heater reports off")
	assert.Equal(t, domain.HvacActionHeating, attic.Action, "gen1 always reports heating")
	assert.Equal(t, 7.0, attic.TargetTemperature, "unknown mode falls back to frost protection")
	assert.Equal(t, domain.FanModeOn, attic.Fan)
	assert.Equal(t, domain.IndependentDeviceLabel, attic.Room)

	context.Stop(heatersActorPID)
	context.Stop(cloudActorPID)

	as.Shutdown()
}

func healthCheck(context *actor.RootContext, pid *actor.PID) (*domain.ActorHealthResponse, error) {
	res, err := context.RequestFuture(pid, domain.ActorHealthRequest{}, 5*time.Second).Result()
	if err != nil {
		return nil, err
	}
	resp := res.(domain.ActorHealthResponse)
	return &resp, nil
}
