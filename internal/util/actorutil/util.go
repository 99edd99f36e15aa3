package actorutil

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"lvi2mqtt/internal/core/domain"
	"lvi2mqtt/internal/mqtt"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/lmittmann/tint"
	"go.uber.org/zap"
)

func PipeToSelfWithRecover(ctx actor.Context, future *actor.Future, mapFn func(error) any) {
	ctx.ReenterAfter(future, func(msg any, err error) {
		if err != nil {
			ctx.Send(ctx.Self(), mapFn(err))
			return
		}
		ctx.Send(ctx.Self(), msg)
	})
}

func NewActorSystemWithZapLogger(logger *zap.Logger) *actor.ActorSystem {
	stdOutLogger := zap.NewStdLog(logger)

	var slogLevel slog.Level = slog.LevelInfo

	switch logger.Level() {
	case zap.DebugLevel:
		slogLevel = slog.LevelDebug
	case zap.InfoLevel:
		slogLevel = slog.LevelInfo
	case zap.WarnLevel:
		slogLevel = slog.LevelWarn
	case zap.ErrorLevel:
		slogLevel = slog.LevelError
	case zap.PanicLevel:
		slogLevel = slog.LevelError
	}

	return actor.NewActorSystem(actor.WithLoggerFactory(func(system *actor.ActorSystem) *slog.Logger {

		// create a new logger
		return slog.New(tint.NewHandler(stdOutLogger.Writer(), &tint.Options{
			Level:      slogLevel,
			TimeFormat: time.DateTime,
		}))
	}))
}

func ActorLogger(actorName string, logger *zap.Logger) *zap.Logger {
	return logger.With(zap.String("actor", actorName))
}

// ParsedMQTTCommandToCommand maps an inbound MQTT command to its typed actor
// request. Unknown commands and unparseable payloads map to (nil, err) or
// (nil, nil) and are dropped by the caller.
func ParsedMQTTCommandToCommand(cmd mqtt.ParsedMQTTCommand) (domain.ActorRequest, error) {
	switch cmd.Command {
	case mqtt.COMMAND_TARGET_TEMPERATURE:
		value, err := strconv.ParseFloat(cmd.Payload, 64)
		if err != nil {
			return nil, err
		}
		return domain.ClimateSetTemperatureRequest{
			ClimateRequestMixIn: domain.ClimateRequestMixIn{DeviceId: cmd.DeviceId},
			Temperature:         &value,
		}, nil
	case mqtt.COMMAND_MODE:
		return domain.ClimateSetHvacModeRequest{
			ClimateRequestMixIn: domain.ClimateRequestMixIn{DeviceId: cmd.DeviceId},
			Mode:                domain.HvacMode(cmd.Payload),
		}, nil
	case mqtt.COMMAND_FAN_MODE:
		return domain.ClimateSetFanModeRequest{
			ClimateRequestMixIn: domain.ClimateRequestMixIn{DeviceId: cmd.DeviceId},
			Mode:                domain.FanMode(cmd.Payload),
		}, nil
	case mqtt.COMMAND_ROOM_TEMPERATURE:
		var req domain.RoomTemperatureRequest
		if err := json.Unmarshal([]byte(cmd.Payload), &req); err != nil {
			return nil, err
		}
		return req, nil
	}
	return nil, nil
}
