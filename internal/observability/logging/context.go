package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Chaves privadas do pacote; nada fora daqui lê o ctx diretamente.
type ctxKey int

const (
	runIDKey ctxKey = iota
	loggerKey
)

func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext devolve "" quando o ctx não carrega run_id.
func RunIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// EnsureRunID garante um run_id no ctx; um id já presente é mantido.
func EnsureRunID(ctx context.Context) (context.Context, string) {
	return EnsureRunIDWithIncoming(ctx, "")
}

// EnsureRunIDWithIncoming grava incoming (ex.: --run-id) como run_id.
// Em branco, cai no id do ctx ou num uuid novo.
func EnsureRunIDWithIncoming(ctx context.Context, incoming string) (context.Context, string) {
	id := strings.TrimSpace(incoming)
	if id == "" {
		if id = RunIDFromContext(ctx); id != "" {
			return ctx, id
		}
		id = uuid.NewString()
	}
	return WithRunID(ctx, id), id
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext cai em slog.Default() sem logger no ctx.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok && l != nil {
		return l
	}
	return slog.Default()
}
