package nakama

const (
	// RpcBotDecide is the Nakama RPC id game hosts call to ask a seated bot for a decision.
	RpcBotDecide = "truco_bot_decide"

	// RpcIssueSeatToken is the server-to-server RPC id that issues a seat token for a bot.
	RpcIssueSeatToken = "truco_bot_seat_token"
)

// Runtime env keys.
const (
	EnvBotTokenSecret = "bot_token_secret"
	EnvBotConfigPath  = "bot_config_path"
)

// gRPC status codes used by runtime.NewError.
const (
	codeInvalidArgument  = 3
	codePermissionDenied = 7
	codeInternal         = 13
)
