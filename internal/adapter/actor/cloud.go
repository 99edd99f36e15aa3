package actor

import (
	"context"
	"fmt"
	"sort"
	"time"

	"lvi2mqtt/internal/core/domain"
	"lvi2mqtt/internal/core/port"
	"lvi2mqtt/internal/core/service"
	"lvi2mqtt/internal/util/actorutil"
	"lvi2mqtt/pkg/lvi"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/reugn/go-quartz/logger"
	"go.uber.org/zap"
)

const (
	CLOUD_ACTOR_ID = "cloud"

	cloudCallTimeout = 10 * time.Second
)

type CloudActor struct {
	behavior  actor.Behavior
	stash     *actorutil.Stash
	client    lvi.HeaterClient
	projector port.HeaterStateProjector
	logger    *zap.Logger
}

type backgroundTaskResult struct {
	message any
	replyTo *actor.PID
}

func NewCloudActor(client lvi.HeaterClient, projector port.HeaterStateProjector, logger *zap.Logger) *CloudActor {
	act := &CloudActor{
		client:    client,
		projector: projector,
		behavior:  actor.NewBehavior(),
		stash:     &actorutil.Stash{},
		logger:    actorutil.ActorLogger("cloud", logger),
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *CloudActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *CloudActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("cloud@starting started")
		err := state.client.Connect(state.callContext())
		if err != nil {
			panic(err)
		}
		state.behavior.Become(state.DefaultReceive)
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("cloud@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *CloudActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("cloud@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      CLOUD_ACTOR_ID,
			Healthy: true,
			State:   "idle",
		})
	case domain.GetHeatersInfoRequest:
		state.logger.Debug("cloud@default: GetHeatersInfoRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)

		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, state.getHeatersInfo),
			mapTaskResult[domain.GetHeatersInfoResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.GetHeatersInfoResponse{
					ActorResponseMixIn: domain.ActorResponseMixIn{
						ResponseError: err,
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(cloudCallTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	case domain.RefreshHeatersRequest:
		state.logger.Debug("cloud@default: RefreshHeatersRequest")
		sender := ctx.Sender()
		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, func() (*domain.RefreshHeatersResponse, error) {
			return state.refreshHeaters(msg.DeviceIds)
		}),
			mapTaskResult[domain.RefreshHeatersResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.RefreshHeatersResponse{
					ActorResponseMixIn: domain.ActorResponseMixIn{
						ResponseError: err,
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(cloudCallTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	case domain.ClimateSetTemperatureRequest:
		state.logger.Debug("cloud@default: ClimateSetTemperatureRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)
		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, func() (*domain.ClimateSetTemperatureResponse, error) {
			return state.setTemperature(msg)
		}),
			mapTaskResult[domain.ClimateSetTemperatureResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.ClimateSetTemperatureResponse{
					ClimateResponseMixIn: domain.ClimateResponseMixIn{
						ActorResponseMixIn: domain.ActorResponseMixIn{
							ResponseError: err,
						},
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(cloudCallTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	case domain.ClimateSetHvacModeRequest:
		state.logger.Debug("cloud@default: ClimateSetHvacModeRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)
		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, func() (*domain.ClimateSetHvacModeResponse, error) {
			return state.setHvacMode(msg)
		}),
			mapTaskResult[domain.ClimateSetHvacModeResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.ClimateSetHvacModeResponse{
					ClimateResponseMixIn: domain.ClimateResponseMixIn{
						ActorResponseMixIn: domain.ActorResponseMixIn{
							ResponseError: err,
						},
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(cloudCallTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	case domain.ClimateSetFanModeRequest:
		state.logger.Debug("cloud@default: ClimateSetFanModeRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)
		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, func() (*domain.ClimateSetFanModeResponse, error) {
			return state.setFanMode(msg)
		}),
			mapTaskResult[domain.ClimateSetFanModeResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.ClimateSetFanModeResponse{
					ClimateResponseMixIn: domain.ClimateResponseMixIn{
						ActorResponseMixIn: domain.ActorResponseMixIn{
							ResponseError: err,
						},
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(cloudCallTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	case domain.RoomTemperatureRequest:
		state.logger.Debug("cloud@default: RoomTemperatureRequest")
		sender := actorutil.ForRequest(msg).ReplyTo(ctx)
		actorutil.MapBackgroundTask(actorutil.NewBackgroundTask(ctx, func() (*domain.RoomTemperatureResponse, error) {
			return state.setRoomTemperatures(msg)
		}),
			mapTaskResult[domain.RoomTemperatureResponse](sender)).Recover(func(err error) backgroundTaskResult {
			return backgroundTaskResult{
				message: domain.RoomTemperatureResponse{
					ActorResponseMixIn: domain.ActorResponseMixIn{
						ResponseError: err,
					},
				},
				replyTo: sender,
			}
		}).WithTimeout(cloudCallTimeout).PipeTo(ctx.Self())
		state.behavior.BecomeStacked(state.WaitingCloud)
	default:
		state.logger.Debug("cloud@default default recv", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

func (state *CloudActor) WaitingCloud(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case backgroundTaskResult:
		state.logger.Debug("cloud@WaitingCloud backgroundTaskResult", zap.String("type", fmt.Sprintf("%T", msg.message)))
		if msg.replyTo != nil {
			ctx.Send(msg.replyTo, msg.message)
		}
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	default:
		state.logger.Debug("cloud@WaitingCloud stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (a *CloudActor) getHeatersInfo() (*domain.GetHeatersInfoResponse, error) {
	heaters, err := a.client.FindAllHeaters(a.callContext())
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	return &domain.GetHeatersInfoResponse{
		Heaters: snapshotsFromHeaters(heaters),
	}, nil
}

func (a *CloudActor) refreshHeaters(deviceIds []string) (*domain.RefreshHeatersResponse, error) {
	snapshots := make([]domain.HeaterSnapshot, 0, len(deviceIds))
	for _, id := range deviceIds {
		heater, err := a.client.UpdateDevice(a.callContext(), id)
		if err != nil {
			logger.Error(err)
			return nil, err
		}
		snapshots = append(snapshots, SnapshotFromHeater(*heater))
	}
	return &domain.RefreshHeatersResponse{
		Heaters: snapshots,
	}, nil
}

func (a *CloudActor) setTemperature(req domain.ClimateSetTemperatureRequest) (*domain.ClimateSetTemperatureResponse, error) {
	cmd, err := a.projector.BuildTemperatureCommand(req.DeviceId, req.Temperature)
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	if cmd == nil {
		return &domain.ClimateSetTemperatureResponse{Skipped: true}, nil
	}
	err = a.client.SetHeaterTemp(a.callContext(), cmd.DeviceId, cmd.Value)
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	return &domain.ClimateSetTemperatureResponse{}, nil
}

func (a *CloudActor) setHvacMode(req domain.ClimateSetHvacModeRequest) (*domain.ClimateSetHvacModeResponse, error) {
	cmd, err := a.projector.BuildPowerCommand(req.DeviceId, req.Mode)
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	err = a.client.HeaterControl(a.callContext(), cmd.DeviceId, lvi.ControlParams{
		PowerStatus: &cmd.Value,
	})
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	return &domain.ClimateSetHvacModeResponse{}, nil
}

func (a *CloudActor) setFanMode(req domain.ClimateSetFanModeRequest) (*domain.ClimateSetFanModeResponse, error) {
	cmd := a.projector.BuildFanCommand(req.DeviceId, req.Mode)
	err := a.client.HeaterControl(a.callContext(), cmd.DeviceId, lvi.ControlParams{
		FanStatus: &cmd.Value,
	})
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	return &domain.ClimateSetFanModeResponse{}, nil
}

func (a *CloudActor) setRoomTemperatures(req domain.RoomTemperatureRequest) (*domain.RoomTemperatureResponse, error) {
	err := service.SetRoomTemperatures(a.callContext(), a.client, req)
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	return &domain.RoomTemperatureResponse{}, nil
}

// callContext is deliberately not deadline bound. Timeouts are enforced by
// the background task wrapper and the HTTP client itself.
func (a *CloudActor) callContext() context.Context {
	return context.Background()
}

// SnapshotFromHeater flattens one vendor heater into its domain snapshot.
func SnapshotFromHeater(heater lvi.Heater) domain.HeaterSnapshot {
	roomName := ""
	if heater.Room != nil {
		roomName = heater.Room.Name
	}
	return domain.HeaterSnapshot{
		DeviceId:                heater.Id,
		Name:                    heater.Name,
		RoomName:                roomName,
		PowerStatus:             heater.PowerStatus,
		ModeCode:                heater.GVMode,
		SetpointComfort:         heater.ComfortTemp,
		SetpointManual:          heater.ManualTemp,
		SetpointEco:             heater.EcoTemp,
		SetpointBoost:           heater.BoostTemp,
		SetpointFrostProtection: heater.FrostTemp,
		CurrentTemperature:      heater.CurrentTemp,
		FanSpeed:                heater.FanSpeed,
		Heating:                 heater.HeatingUp,
		LegacyGeneration:        heater.Gen1,
		Available:               heater.Available,
	}
}

func snapshotsFromHeaters(heaters map[string]lvi.Heater) []domain.HeaterSnapshot {
	ids := make([]string, 0, len(heaters))
	for id := range heaters {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	snapshots := make([]domain.HeaterSnapshot, 0, len(heaters))
	for _, id := range ids {
		snapshots = append(snapshots, SnapshotFromHeater(heaters[id]))
	}
	return snapshots
}

func mapTaskResult[T any](sender *actor.PID) func(t *T) *backgroundTaskResult {
	return func(t *T) *backgroundTaskResult {
		return &backgroundTaskResult{
			message: *t,
			replyTo: sender,
		}
	}
}
