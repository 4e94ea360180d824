package langx

import "log/slog"

// LogValue implements slog.LogValuer, allowing a Language to be logged
// directly as a structured value with its name and quality as attributes.
func (l Language) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", l.Name),
		slog.Float64("quality", l.Quality),
	)
}

// Ensure Language implements slog.LogValuer at compile time.
var _ slog.LogValuer = Language{}
