package log

import (
	"bytes"
	"log/slog"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/holiman/uint256"
)

func TestWriteTimeTermFormat(t *testing.T) {
	var b bytes.Buffer
	writeTimeTermFormat(&b, time.Date(2024, 3, 7, 9, 5, 2, 45e6, time.UTC))
	if have, want := b.String(), "03-07|09:05:02.045"; have != want {
		t.Fatalf("have %q want %q", have, want)
	}
}

func TestTerminalHandlerLevel(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(NewTerminalHandlerWithLevel(out, LevelInfo, false))
	l.Debug("hidden")
	l.Info("Encoded call data", "size", 68)
	have := out.String()
	if strings.Contains(have, "hidden") {
		t.Fatalf("debug record leaked: %q", have)
	}
	if !strings.HasPrefix(have, "INFO [") || !strings.Contains(have, "size=68") {
		t.Fatalf("unexpected output: %q", have)
	}
}

func TestLogfmtBigValues(t *testing.T) {
	out := new(bytes.Buffer)
	l := NewLogger(LogfmtHandlerWithLevel(out, LevelTrace))
	l.Trace("values", "big", big.NewInt(-5), "u256", uint256.NewInt(1000000), "nilbig", (*big.Int)(nil))
	have := out.String()
	for _, want := range []string{"lvl=trace", "big=-5", "u256=1000000", "nilbig=<nil>"} {
		if !strings.Contains(have, want) {
			t.Errorf("missing %q in %q", want, have)
		}
	}
}

func TestFormatSlogValue(t *testing.T) {
	tests := []struct {
		v    slog.Value
		want string
	}{
		{slog.Int64Value(-1234567), "-1,234,567"},
		{slog.Uint64Value(99999), "99999"},
		{slog.AnyValue(new(big.Int).Lsh(big.NewInt(1), 70)), "1,180,591,620,717,411,303,424"},
		{slog.StringValue("a b"), `"a b"`},
	}
	for _, tt := range tests {
		if have := string(FormatSlogValue(tt.v, nil)); have != tt.want {
			t.Errorf("have %s want %s", have, tt.want)
		}
	}
}

func TestFromLegacyLevel(t *testing.T) {
	if FromLegacyLevel(5) != LevelTrace || FromLegacyLevel(9) != LevelTrace {
		t.Error("trace mapping broken")
	}
	if FromLegacyLevel(3) != LevelInfo || FromLegacyLevel(-1) != LevelCrit {
		t.Error("info/crit mapping broken")
	}
}
