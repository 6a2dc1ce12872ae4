package sl

import "log/slog"

func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Secret hides sensitive values in logs, keeping only a short prefix.
func Secret(key, value string) slog.Attr {
	r := "?"
	switch {
	case len(value) > 5:
		r = value[:5] + "***"
	case value != "":
		r = "***"
	}
	return slog.Attr{
		Key:   key,
		Value: slog.StringValue(r),
	}
}

func Module(mod string) slog.Attr {
	return slog.Attr{
		Key:   "mod",
		Value: slog.StringValue(mod),
	}
}
