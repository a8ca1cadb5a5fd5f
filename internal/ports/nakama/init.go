package nakama

import (
	"context"
	"database/sql"

	"degola/internal/app"
	"degola/internal/bot"
	"degola/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires the bot services and RPCs for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)

	if path := env[EnvBotConfigPath]; path != "" {
		if err := config.LoadGameConfig(path); err != nil {
			logger.Error("Failed to load bot config from %s: %v", path, err)
			return err
		}
	}
	cfg := config.GetGameConfig()

	tuning, err := cfg.BotTuning(bot.DefaultTuning)
	if err != nil {
		logger.Error("Invalid bot tuning: %v", err)
		return err
	}

	secret := env[EnvBotTokenSecret]
	if secret == "" {
		logger.Warn("%s missing from env, seat tokens cannot be issued or verified.", EnvBotTokenSecret)
	}

	seatTokens = app.NewSeatTokenService(secret, cfg.Issuer(), cfg.TokenTTL())
	decisionService = app.NewDecisionService(bot.New(tuning), NewNakamaDecisionLogAdapter(nk, cfg.DecisionCollection()))

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Truco bot module loaded.")
	return nil
}
