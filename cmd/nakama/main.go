package main

import (
	"context"
	"database/sql"

	"degola/internal/ports/nakama"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule is the entry point Nakama calls when loading the truco bot plugin.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	return nakama.InitModule(ctx, logger, db, nk, initializer)
}

// main is unused: this package is built with -buildmode=plugin and loaded by Nakama.
func main() {}
