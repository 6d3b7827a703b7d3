package metricsappender

import (
	"testing"
	"time"

	"github.com/philipp01105/levellog/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestAppender_Counts(t *testing.T) {
	a := New(Options{})
	reg := prometheus.NewRegistry()
	reg.MustRegister(a.Metrics()...)

	now := time.Now()
	for i := 0; i < 3; i++ {
		_ = a.Append(core.NewRecord(now, core.WarnLevel, "db", "", nil))
	}
	_ = a.Append(core.NewRecord(now, core.ErrorLevel, "db", "", nil))
	_ = a.Append(core.NewRecord(now, core.WarnLevel, "http", "", nil))

	tests := []struct {
		level, logger string
		want          float64
	}{
		{"WARN", "db", 3},
		{"ERROR", "db", 1},
		{"WARN", "http", 1},
		{"INFO", "db", 0},
	}
	for _, tt := range tests {
		got := testutil.ToFloat64(a.Counter().WithLabelValues(tt.level, tt.logger))
		if got != tt.want {
			t.Errorf("%s/%s = %v, want %v", tt.level, tt.logger, got, tt.want)
		}
	}

	if n := testutil.CollectAndCount(a.Counter()); n != 4 {
		t.Errorf("CollectAndCount() = %d, want 4", n)
	}
}
