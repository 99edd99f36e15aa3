package actor

import (
	"fmt"
	"time"

	"lvi2mqtt/internal/config"
	"lvi2mqtt/internal/core/domain"
	"lvi2mqtt/internal/core/events"
	"lvi2mqtt/internal/core/port"
	. "lvi2mqtt/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/asynkron/protoactor-go/scheduler"
	"go.uber.org/zap"
)

// HeatersActor polls the cloud actor and publishes projected climate state
// to the event stream.
type HeatersActor struct {
	behavior  actor.Behavior
	stash     *Stash
	scheduler *scheduler.TimerScheduler

	cloudActor  *actor.PID
	config      *config.Config
	eventStream *eventstream.EventStream
	projector   port.HeaterStateProjector
	deviceIds   []string

	logger *zap.Logger
}

type heatersTick struct {
}

func NewHeatersActor(config *config.Config, cloudActor *actor.PID, eventStream *eventstream.EventStream,
	projector port.HeaterStateProjector, logger *zap.Logger) *HeatersActor {
	act := &HeatersActor{
		config:      config,
		cloudActor:  cloudActor,
		behavior:    actor.NewBehavior(),
		stash:       &Stash{},
		logger:      ActorLogger(domain.ACTOR_ID_HEATERS, logger),
		eventStream: eventStream,
		projector:   projector,
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *HeatersActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *HeatersActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("heaters@starting started")

		if state.config.MonitorConfig.PollIntervalMillis > 0 {
			state.scheduler = scheduler.NewTimerScheduler(ctx)
		}

		PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.cloudActor, domain.GetHeatersInfoRequest{}, 15*time.Second), func(err error) any {
			return domain.GetHeatersInfoResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: err,
				},
			}
		})
		state.behavior.Become(state.WaitingInfoReceive)
	case *actor.Restarting:
	default:
		state.logger.Debug("heaters@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HeatersActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("heaters@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_HEATERS,
			Healthy: true,
			State:   "idle",
		})
	case heatersTick:
		state.logger.Debug("heaters@default tick")
		// refresh every known device
		PipeToSelfWithRecover(ctx, ctx.RequestFuture(state.cloudActor, domain.RefreshHeatersRequest{
			DeviceIds: state.deviceIds,
		}, 15*time.Second), func(err error) any {
			return domain.RefreshHeatersResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: err,
				},
			}
		})

		// schedule next tick
		state.scheduleTick(ctx)
		state.behavior.BecomeStacked(state.WaitingRefreshReceive)
	default:
		state.logger.Debug("heaters@default: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HeatersActor) WaitingRefreshReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.RefreshHeatersResponse:
		if msg.HasResponseError() {
			state.logger.Error("heaters@waiting RefreshHeatersResponse error", zap.Error(msg.GetResponseError()))
			state.behavior.UnbecomeStacked()
			state.stash.UnstashAll(ctx)
			return
		}
		state.logger.Debug("heaters@waiting RefreshHeatersResponse")
		evs := events.HeatersToUpdateEvents(state.projector, msg.Heaters)
		for _, ev := range evs {
			state.eventStream.Publish(ev)
		}

		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("heaters@waiting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HeatersActor) WaitingInfoReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.GetHeatersInfoResponse:
		if msg.HasResponseError() {
			state.logger.Error("heaters@waitingInfo GetHeatersInfoResponse", zap.Error(msg.GetResponseError()))
			state.behavior.Become(state.DefaultReceive)
			state.stash.UnstashAll(ctx)
			return
		}
		state.logger.Debug("heaters@waitingInfo GetHeatersInfoResponse")
		state.deviceIds = make([]string, 0, len(msg.Heaters))
		for _, heater := range msg.Heaters {
			state.deviceIds = append(state.deviceIds, heater.DeviceId)
		}
		// publish the initial state before the first tick
		evs := events.HeatersToUpdateEvents(state.projector, msg.Heaters)
		for _, ev := range evs {
			state.eventStream.Publish(ev)
		}
		state.scheduleTick(ctx)
		state.behavior.Become(state.DefaultReceive)
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("heaters@waitingInfo: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *HeatersActor) scheduleTick(ctx actor.Context) {
	if state.scheduler != nil {
		state.scheduler.RequestOnce(time.Duration(state.config.MonitorConfig.PollIntervalMillis)*time.Millisecond, ctx.Self(), heatersTick{})
	}
}
