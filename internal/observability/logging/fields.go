package logging

import "log/slog"

// Campos fixos do projeto.
// Mantêm os nomes consistentes entre runner, app e cli.

// RunID identifica uma execução (uma chamada de Runner.Run).
func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Executable é o caminho do binário lançado.
func Executable(path string) slog.Attr {
	return slog.String("executable", path)
}

// Output é o modo de streams do filho (inherit, capture, discard).
func Output(mode string) slog.Attr {
	return slog.String("output", mode)
}

// PID do processo filho.
func PID(pid int) slog.Attr {
	return slog.Int("pid", pid)
}

// ExitCode do processo filho.
func ExitCode(code int) slog.Attr {
	return slog.Int("exit_code", code)
}

// Kind é a categoria da falha (not-found, other).
func Kind(kind string) slog.Attr {
	return slog.String("kind", kind)
}

// DurationMs representa duração em milissegundos.
// Use sempre duration_ms (não misturar com duration_ns/s).
func DurationMs(ms int64) slog.Attr {
	return slog.Int64("duration_ms", ms)
}

// Err normaliza erros em logs.
// Sempre logado como string (não como objeto Go).
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}
	return slog.String("error", err.Error())
}
