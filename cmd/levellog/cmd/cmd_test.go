package cmd_test

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipp01105/levellog/cmd/levellog/cmd"
	"github.com/philipp01105/levellog/logger"
)

var homeDir string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "levellog-cmd-")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	homeDir = dir

	code := m.Run()
	if err := os.RemoveAll(dir); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}

func newCommand(t *testing.T, opts ...cmd.Option) (c *cmd.Command) {
	t.Helper()

	c, err := cmd.NewCommand(append([]cmd.Option{cmd.WithHomeDir(homeDir)}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func run(t *testing.T, in string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	err = newCommand(t,
		cmd.WithArgs(args...),
		cmd.WithInput(strings.NewReader(in)),
		cmd.WithOutput(&outBuf),
		cmd.WithErrorOutput(&errBuf),
	).Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestVersionCmd(t *testing.T) {
	got, _, err := run(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}

	want := logger.Version + "\n"
	if got != want {
		t.Errorf("got output %q, want %q", got, want)
	}
}

func TestLevelsCmd(t *testing.T) {
	got, _, err := run(t, "", "levels")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), got)
	}
	if lines[0] != "TRACE  0" || lines[8] != "FATAL  5" {
		t.Errorf("unexpected first/last lines %q, %q", lines[0], lines[8])
	}
}

func TestEmitCmd(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{
			name: "template",
			args: []string{"emit", "warn", "pool at {}%", "90"},
			want: "[WARN] (cli) pool at 90%\n",
		},
		{
			name: "named logger",
			args: []string{"emit", "--name", "svc", "fatal", "down"},
			want: "[FATAL] (svc) down\n",
		},
		{
			name: "below global level",
			args: []string{"emit", "--level", "error", "info", "dropped"},
			want: "",
		},
		{
			name: "below logger level",
			args: []string{"emit", "--min-level", "warn", "debug", "dropped"},
			want: "",
		},
		{
			name: "verbose without verbosity",
			args: []string{"emit", "--verbose", "info", "dropped"},
			want: "",
		},
		{
			name: "verbose with verbosity",
			args: []string{"emit", "--verbose", "--verbosity", "info", "kept"},
			want: "[INFO] (cli) kept\n",
		},
		{
			name: "globally disabled",
			args: []string{"emit", "--enabled=false", "fatal", "dropped"},
			want: "",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, _, err := run(t, "", tc.args...)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got output %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEmitCmd_UnknownLevel(t *testing.T) {
	if _, _, err := run(t, "", "emit", "loud", "x"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestEmitCmd_Timestamps(t *testing.T) {
	got, _, err := run(t, "", "emit", "--timestamps", "info", "tick")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "[INFO] ") || !strings.HasSuffix(got, " (cli) tick\n") || len(got) != len("[INFO] 00:00:00:000 (cli) tick\n") {
		t.Errorf("got output %q", got)
	}
}

func TestEmitCmd_Env(t *testing.T) {
	os.Setenv("LEVELLOG_LEVEL", "fatal")
	defer os.Unsetenv("LEVELLOG_LEVEL")

	got, _, err := run(t, "", "emit", "error", "dropped")
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Errorf("got output %q, want none", got)
	}
}

func TestEmitCmd_ConfigFile(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "levellog.yaml")
	if err := ioutil.WriteFile(cfgFile, []byte("level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var outBuf bytes.Buffer
	for _, args := range [][]string{
		{"emit", "info", "dropped"},
		{"emit", "warn", "kept"},
	} {
		if err := newCommand(t,
			cmd.WithCfgFile(cfgFile),
			cmd.WithArgs(args...),
			cmd.WithOutput(&outBuf),
		).Execute(); err != nil {
			t.Fatal(err)
		}
	}
	if got := outBuf.String(); got != "[WARN] (cli) kept\n" {
		t.Errorf("got output %q", got)
	}
}

func TestPipeCmd(t *testing.T) {
	in := "plain line\nWARN: disk at 91%\nnope: not a level\ndebug:tagged\n"

	got, stderr, err := run(t, in, "pipe", "--verbosity", "--level", "info")
	if err != nil {
		t.Fatal(err)
	}

	want := "[INFO] (pipe) plain line\n" +
		"[WARN] (pipe) disk at 91%\n" +
		"[INFO] (pipe) nope: not a level\n"
	if got != want {
		t.Errorf("got output %q, want %q", got, want)
	}
	if stderr != "[DEBUG] (levellog) read 4 lines\n" {
		t.Errorf("got diagnostics %q", stderr)
	}
}

func TestPipeCmd_Level(t *testing.T) {
	got, stderr, err := run(t, "a\nb\n", "pipe", "--name", "in", "error")
	if err != nil {
		t.Fatal(err)
	}
	if got != "[ERROR] (in) a\n[ERROR] (in) b\n" {
		t.Errorf("got output %q", got)
	}
	if stderr != "" {
		t.Errorf("diagnostics without verbosity: %q", stderr)
	}
}
