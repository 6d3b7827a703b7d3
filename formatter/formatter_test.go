package formatter

import (
	"bytes"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/philipp01105/levellog/core"
)

func TestTextFormatter_Basic(t *testing.T) {
	f := NewTextFormatter(Config{})

	rec := core.NewRecord(time.Now(), core.InfoLevel, "svc", "[INFO] (svc)", []interface{}{"test message", 42})

	result, err := f.Format(rec)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if got := string(result); got != "[INFO] (svc) test message 42\n" {
		t.Errorf("Format() = %q", got)
	}
}

func TestTextFormatter_Separator(t *testing.T) {
	f := NewTextFormatter(Config{Separator: " | ", LineEnding: "\r\n"})

	rec := core.NewRecord(time.Now(), core.WarnLevel, "svc", "[WARN] (svc)", []interface{}{"a", true})

	var buf bytes.Buffer
	if err := f.FormatTo(rec, &buf); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if got := buf.String(); got != "[WARN] (svc) | a | true\r\n" {
		t.Errorf("FormatTo() = %q", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTextFormatter_FormatToError(t *testing.T) {
	f := NewTextFormatter(Config{})
	rec := core.NewRecord(time.Now(), core.InfoLevel, "svc", "[INFO] (svc)", nil)
	if err := f.FormatTo(rec, failingWriter{}); err == nil {
		t.Error("FormatTo() should return the writer error")
	}
}

func TestTimestamp(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"padded", time.Date(2026, 1, 2, 3, 4, 5, 6*int(time.Millisecond), time.Local), "03:04:05:006"},
		{"two digit ms", time.Date(2026, 1, 2, 13, 14, 15, 45*int(time.Millisecond), time.Local), "13:14:15:045"},
		{"full", time.Date(2026, 1, 2, 23, 59, 59, 999*int(time.Millisecond), time.Local), "23:59:59:999"},
		{"midnight", time.Date(2026, 1, 2, 0, 0, 0, 0, time.Local), "00:00:00:000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Timestamp(tt.at)
			if got != tt.want {
				t.Errorf("Timestamp() = %q, want %q", got, tt.want)
			}
			if len(got) != TimestampWidth {
				t.Errorf("len(Timestamp()) = %d, want %d", len(got), TimestampWidth)
			}
		})
	}
}

func TestPrefix(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 6*int(time.Millisecond), time.Local)

	if got := Prefix(core.FatalLevel, "svc", false, at); got != "[FATAL] (svc)" {
		t.Errorf("Prefix() = %q, want %q", got, "[FATAL] (svc)")
	}
	if got := Prefix(core.WarnLevel, "db", true, at); got != "[WARN] 03:04:05:006 (db)" {
		t.Errorf("Prefix() = %q, want %q", got, "[WARN] 03:04:05:006 (db)")
	}

	pattern := regexp.MustCompile(`^\[INFO\] \d{2}:\d{2}:\d{2}:\d{3} \(api\)$`)
	if got := Prefix(core.InfoLevel, "api", true, time.Now()); !pattern.MatchString(got) {
		t.Errorf("Prefix() = %q does not match %s", got, pattern)
	}
}

func TestSubstitute(t *testing.T) {
	obj := struct{ X int }{42}

	tests := []struct {
		name string
		args []interface{}
		want []interface{}
	}{
		{
			name: "all consumed",
			args: []interface{}{"a{}b{}c", 1, 2},
			want: []interface{}{"a1b2c"},
		},
		{
			name: "leftover arguments kept",
			args: []interface{}{"user {} logged in", "alice", obj},
			want: []interface{}{"user alice logged in", obj},
		},
		{
			name: "arguments run out",
			args: []interface{}{"{} and {} and {}", "x"},
			want: []interface{}{"x and {} and {}"},
		},
		{
			name: "falsy values substituted",
			args: []interface{}{"{}|{}|{}", 0, "", false},
			want: []interface{}{"0||false"},
		},
		{
			name: "no placeholder",
			args: []interface{}{"plain", 1},
			want: []interface{}{"plain", 1},
		},
		{
			name: "non-string first argument",
			args: []interface{}{obj, "{}", 1},
			want: []interface{}{obj, "{}", 1},
		},
		{
			name: "placeholder in argument is not expanded",
			args: []interface{}{"{}-{}", "{}", "z"},
			want: []interface{}{"{}-z"},
		},
		{
			name: "empty",
			args: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Substitute(tt.args)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Substitute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSubstitute_DoesNotMutateInput(t *testing.T) {
	args := []interface{}{"a{}", 1, 2}
	_ = Substitute(args)
	if args[0] != "a{}" || len(args) != 3 {
		t.Errorf("Substitute() mutated its input: %v", args)
	}
}

func BenchmarkPrefix(b *testing.B) {
	now := time.Now()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Prefix(core.InfoLevel, "bench", true, now)
	}
}

func BenchmarkSubstitute(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Substitute([]interface{}{"user {} id {}", "alice", 123})
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	f := NewTextFormatter(Config{})
	rec := core.NewRecord(time.Now(), core.InfoLevel, "bench", "[INFO] (bench)", []interface{}{"test message", 42})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(rec)
	}
}
