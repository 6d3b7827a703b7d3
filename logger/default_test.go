package logger

import (
	"errors"
	"testing"

	"github.com/philipp01105/levellog/appender"
	"github.com/philipp01105/levellog/core"
)

func TestReplaceDefault(t *testing.T) {
	prev := Default()
	mem := appender.NewMemoryAppender()
	c := NewConfig(WithDefaultAppender(mem))

	restore := ReplaceDefault(c)
	if Default() != c {
		t.Fatal("ReplaceDefault did not install the config")
	}

	MustGet("pkg").Info("hello")
	if mem.Len() != 1 {
		t.Errorf("got %d records, want 1", mem.Len())
	}

	restore()
	if Default() != prev {
		t.Error("restore did not reinstate the previous config")
	}

	ReplaceDefault(nil)()
	if Default() != prev {
		t.Error("ReplaceDefault(nil) changed the default")
	}
}

func TestPackageFacade(t *testing.T) {
	mem := appender.NewMemoryAppender()
	defer ReplaceDefault(NewConfig(WithDefaultAppender(appender.Nop)))()

	Add(mem)
	if len(Appenders()) != 2 {
		t.Fatalf("len(Appenders()) = %d, want 2", len(Appenders()))
	}
	SetLevel(WarnLevel)
	if !GlobalLevel().Equal(WarnLevel) {
		t.Errorf("GlobalLevel() = %s", GlobalLevel())
	}

	log := MustGet("facade")
	log.Info("dropped").Warn("kept")
	if mem.Len() != 1 {
		t.Errorf("got %d records, want 1", mem.Len())
	}

	Disable()
	Disable()
	if IsEnabled() {
		t.Error("IsEnabled() after Disable")
	}
	log.Fatal("dropped")
	Enable()
	Configure(Options{Level: ErrorLevel})
	Merge(map[string]interface{}{"timestamps": true})
	if !Default().Timestamps() || !GlobalLevel().Equal(ErrorLevel) {
		t.Error("Configure or Merge not applied to the default")
	}

	Remove(1)
	if len(Appenders()) != 1 {
		t.Errorf("len(Appenders()) = %d after Remove(1)", len(Appenders()))
	}
}

func TestGet_EmptyName(t *testing.T) {
	if _, err := Get(""); !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("Get(\"\") error = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet(\"\") did not panic")
		}
	}()
	MustGet("")
}

func TestParseLevelAndDefineLevel(t *testing.T) {
	if lvl, ok := ParseLevel("warning"); !ok || !lvl.Equal(WarnLevel) {
		t.Errorf("ParseLevel(warning) = %s, %v", lvl, ok)
	}

	defer ReplaceDefault(NewConfig())()
	notice, err := DefineLevel("NOTICE", 2)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := Default().Registry().Lookup("NOTICE"); !ok || !got.Equal(notice) {
		t.Error("DefineLevel did not register with the default config")
	}
}
