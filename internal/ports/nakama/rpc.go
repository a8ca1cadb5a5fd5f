package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"degola/internal/app"
	"degola/internal/bot"

	"github.com/heroiclabs/nakama-common/runtime"
)

var (
	seatTokens      *app.SeatTokenService
	decisionService *app.DecisionService
)

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcBotDecide, RpcBotDecideHandler); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcIssueSeatToken, RpcIssueSeatTokenHandler)
}

type decideRequest struct {
	Token    string   `json:"token"`
	Decision string   `json:"decision"`
	Intel    intelDTO `json:"intel"`
}

// RpcBotDecideHandler answers one decision point for the bot the seat token was issued to.
// Payload: {"token": "...", "decision": "choose_card", "intel": {...}}
// Returns: JSON object with the decision kind and its answer.
func RpcBotDecideHandler(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	if seatTokens == nil || decisionService == nil {
		return "", runtime.NewError("bot decisions are not configured", codeInternal)
	}

	var req decideRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("invalid payload", codeInvalidArgument)
	}

	seat, err := seatTokens.Verify(req.Token)
	if err != nil {
		logger.Warn("RpcBotDecide: rejected seat token: %v", err)
		return "", runtime.NewError("invalid seat token", codePermissionDenied)
	}

	intel, err := req.Intel.toDomain()
	if err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	result, err := decisionService.Decide(ctx, app.DecisionRequest{
		Kind:    app.DecisionKind(req.Decision),
		BotID:   seat.BotID,
		MatchID: seat.MatchID,
		Intel:   intel,
	})
	if err != nil {
		if isBadRequest(err) {
			return "", runtime.NewError(err.Error(), codeInvalidArgument)
		}
		logger.Error("RpcBotDecide [Bot:%s Match:%s]: decision failed: %v", seat.BotID, seat.MatchID, err)
		return "", runtime.NewError("internal error", codeInternal)
	}
	if result.LogErr != nil {
		logger.Warn("RpcBotDecide [Bot:%s Match:%s]: failed to record decision: %v", seat.BotID, seat.MatchID, result.LogErr)
	}

	out, err := marshalDecision(result)
	if err != nil {
		logger.Error("RpcBotDecide: failed to marshal response: %v", err)
		return "", runtime.NewError("internal error", codeInternal)
	}
	return out, nil
}

type seatTokenRequest struct {
	BotID   string `json:"bot_id"`
	MatchID string `json:"match_id"`
}

// RpcIssueSeatTokenHandler issues a seat token. Only callable server-to-server.
// Payload: {"bot_id": "...", "match_id": "..."}
// Returns: {"token": "..."}
func RpcIssueSeatTokenHandler(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	if userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string); userID != "" {
		logger.Warn("RpcIssueSeatToken [User:%s]: rejected client call", userID)
		return "", runtime.NewError("seat tokens are server-only", codePermissionDenied)
	}
	if seatTokens == nil {
		return "", runtime.NewError("bot decisions are not configured", codeInternal)
	}

	var req seatTokenRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("invalid payload", codeInvalidArgument)
	}
	if req.BotID == "" || req.MatchID == "" {
		return "", runtime.NewError("bot_id and match_id are required", codeInvalidArgument)
	}

	token, err := seatTokens.Issue(req.BotID, req.MatchID)
	if err != nil {
		logger.Error("Failed to issue seat token: %v", err)
		return "", runtime.NewError("internal error", codeInternal)
	}

	res := map[string]string{
		"token": token,
	}
	resBytes, _ := json.Marshal(res)
	return string(resBytes), nil
}

func isBadRequest(err error) bool {
	return errors.Is(err, app.ErrUnknownDecision) ||
		errors.Is(err, app.ErrInvalidIntel) ||
		errors.Is(err, bot.ErrUnexpectedRound) ||
		errors.Is(err, bot.ErrEmptyHand)
}
