package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// LOG_LEVELとGO_ENVからルートloggerを作る。devだけconsole出力。
// レベルはグローバルに設定する（設定ファイルの再読み込みで変えられるように）。
func New(level string, dev bool) zerolog.Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))

	var w io.Writer = os.Stdout
	if dev {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(w, zerolog.LevelTraceValue)
}

func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("service", "catalog").
		Logger()
}

// 不明な値はinfo
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
