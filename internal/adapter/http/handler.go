package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"battlebridge/internal/app/action"
	"battlebridge/internal/app/bridge"
	"battlebridge/internal/app/journal"
	"battlebridge/internal/app/observe"
	"battlebridge/internal/app/ports"
	"battlebridge/internal/app/schema"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

var (
	ErrBridgeUnbound         = errors.New("no scene registered with the bridge")
	ErrActionChannelDisabled = errors.New("action channel is disabled")
)

// Endpoints is the bridge surface served over HTTP.
type Endpoints interface {
	SnapshotFunc() (bridge.SnapshotFunc, bool)
	ActionFunc() (bridge.ActionFunc, bool)
	ActionsEnabled() bool
	Table() schema.Table
}

type snapshotRecorder interface {
	Record(ctx context.Context, snap observe.Snapshot) error
}

type Handler struct {
	Bridge    Endpoints
	Recorder  snapshotRecorder
	JournalUC journal.UseCase
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api/bridge")
	api.GET("/snapshot", h.snapshot)
	api.POST("/action", h.action)
	api.GET("/schema", h.schema)
	api.GET("/replay", h.replay)

	s.GET("/ops/kpi", h.kpi)
}

type actionRequest struct {
	Command string `json:"command"`
}

type actionResponse struct {
	Accepted bool   `json:"accepted"`
	Command  string `json:"command"`
}

func (h Handler) snapshot(c context.Context, ctx *app.RequestContext) {
	take, ok := h.Bridge.SnapshotFunc()
	if !ok {
		writeError(ctx, ErrBridgeUnbound)
		return
	}
	snap := take()
	if h.Recorder != nil {
		if err := h.Recorder.Record(c, snap); err != nil {
			hlog.CtxWarnf(c, "record observation failed: %v", err)
		}
	}
	ctx.JSON(consts.StatusOK, snap)
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	if !h.Bridge.ActionsEnabled() {
		writeError(ctx, ErrActionChannelDisabled)
		return
	}

	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	cmd, err := action.ParseCommand(body.Command)
	if err != nil {
		writeError(ctx, err)
		return
	}
	act, ok := h.Bridge.ActionFunc()
	if !ok {
		writeError(ctx, ErrBridgeUnbound)
		return
	}
	if err := act(cmd); err != nil {
		writeError(ctx, err)
		return
	}
	hlog.CtxDebugf(c, "action dispatched command=%s", cmd)
	ctx.JSON(consts.StatusAccepted, actionResponse{Accepted: true, Command: string(cmd)})
}

func (h Handler) schema(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, h.Bridge.Table().JSONSchema())
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	if h.JournalUC.Repo == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "observation journal not configured")
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	capturedFrom, _ := strconv.ParseInt(string(ctx.Query("captured_from")), 10, 64)
	capturedTo, _ := strconv.ParseInt(string(ctx.Query("captured_to")), 10, 64)
	resp, err := h.JournalUC.Execute(c, journal.Request{
		Limit:        limit,
		CapturedFrom: capturedFrom,
		CapturedTo:   capturedTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrBridgeUnbound):
		writeErrorBody(ctx, consts.StatusServiceUnavailable, "bridge_unbound", err.Error())
	case errors.Is(err, ErrActionChannelDisabled):
		writeErrorBody(ctx, consts.StatusNotFound, "action_channel_disabled", err.Error())
	case errors.Is(err, action.ErrInvalidCommand):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_command", err.Error())
	case errors.Is(err, journal.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
