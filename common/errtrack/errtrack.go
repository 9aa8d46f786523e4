// Package errtrack reports unexpected failures to Rollbar.
//
// Reporting is a no-op until Setup is called with a configured token, so tests
// and local runs never reach the network.
package errtrack

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/rollbar/rollbar-go"

	"academyhub.app/server/common/logger"
	"academyhub.app/server/core/config"
)

var enabled atomic.Bool

func Setup(cfg config.Config) {
	if !cfg.Rollbar.Enabled() {
		enabled.Store(false)
		rollbar.SetEnabled(false)
		return
	}

	host, _ := os.Hostname()

	rollbar.SetToken(cfg.Rollbar.Token)
	rollbar.SetEnvironment(cfg.Env)
	rollbar.SetServerHost(host)
	rollbar.SetServerRoot("academyhub.app/server")
	rollbar.SetCodeVersion(cfg.Rollbar.CodeVersion)
	rollbar.SetEnabled(true)
	enabled.Store(true)
}

func Enabled() bool {
	return enabled.Load()
}

// Error reports err together with the log fields carried by ctx.
func Error(ctx context.Context, err error, extras map[string]interface{}) {
	if err == nil || !enabled.Load() {
		return
	}
	rollbar.Error(err, custom(ctx, extras))
}

// Critical reports a recovered panic or an unrecoverable failure.
func Critical(ctx context.Context, err error, extras map[string]interface{}) {
	if err == nil || !enabled.Load() {
		return
	}
	rollbar.Critical(err, custom(ctx, extras))
}

// Flush blocks until queued reports are sent. Call it during shutdown.
func Flush() {
	if enabled.Load() {
		rollbar.Wait()
	}
}

func custom(ctx context.Context, extras map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(extras)+4)

	fields := logger.GetLogFields(ctx)
	if fields.AcademyID != nil {
		out["academy_id"] = *fields.AcademyID
	}
	if fields.UserID != nil {
		out["user_id"] = *fields.UserID
	}
	if fields.RoomID != nil {
		out["room_id"] = *fields.RoomID
	}
	if fields.MessageID != nil {
		out["message_id"] = *fields.MessageID
	}
	if fields.TaskType != nil {
		out["task_type"] = *fields.TaskType
	}
	if fields.Component != "" {
		out["component"] = fields.Component
	}

	for k, v := range extras {
		out[k] = v
	}
	return out
}
