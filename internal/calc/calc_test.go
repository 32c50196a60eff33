package calc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Iron-Ham/taskmemo/internal/logging"
	"github.com/Iron-Ham/taskmemo/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestIterate(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		iterations int
		want       int
	}{
		{"zero count", 0, 1000, 0},
		{"one count", 1, 1000, 1000},
		{"several", 7, 250, 1750},
		{"negative count", -3, 10, -30},
		{"zero iterations", 5, 0, 0},
		{"negative iterations", 5, -4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Iterate(tt.count, tt.iterations); got != tt.want {
				t.Errorf("Iterate(%d, %d) = %d, want %d", tt.count, tt.iterations, got, tt.want)
			}
		})
	}
}

func TestExpensiveCalculation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size calculation in short mode")
	}

	for _, n := range []int{0, 1, 2} {
		if got, want := ExpensiveCalculation(n), n*100_000_000; got != want {
			t.Errorf("ExpensiveCalculation(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestCalculator_Value(t *testing.T) {
	t.Run("defaults to full iteration count", func(t *testing.T) {
		c := NewCalculator()
		if c.Iterations() != DefaultIterations {
			t.Errorf("Iterations() = %d, want %d", c.Iterations(), DefaultIterations)
		}
	})

	t.Run("runs once per distinct count", func(t *testing.T) {
		c := NewCalculator(WithIterations(1000))

		for i := 0; i < 10; i++ {
			if got := c.Value(0); got != 0 {
				t.Fatalf("Value(0) = %d, want 0", got)
			}
		}
		if c.Runs() != 1 {
			t.Errorf("Runs() = %d after repeated Value(0), want 1", c.Runs())
		}

		if got := c.Value(3); got != 3000 {
			t.Errorf("Value(3) = %d, want 3000", got)
		}
		c.Value(3)
		if c.Runs() != 2 {
			t.Errorf("Runs() = %d, want 2", c.Runs())
		}
	})

	t.Run("result tracks counter across increments", func(t *testing.T) {
		c := NewCalculator(WithIterations(100))
		for n := 0; n <= 20; n++ {
			if got := c.Value(n); got != n*100 {
				t.Fatalf("Value(%d) = %d, want %d", n, got, n*100)
			}
		}
		if c.Runs() != 21 {
			t.Errorf("Runs() = %d, want 21", c.Runs())
		}
	})

	t.Run("logs and counts each run", func(t *testing.T) {
		var buf bytes.Buffer
		m := metrics.New()
		c := NewCalculator(
			WithIterations(10),
			WithLogger(logging.NewWriterLogger(&buf, logging.LevelDebug)),
			WithMetrics(m),
		)

		c.Value(1)
		c.Value(1)
		c.Value(2)

		if got := strings.Count(buf.String(), "expensive calculation running"); got != 2 {
			t.Errorf("logged %d runs, want 2", got)
		}

		families, err := m.Registry().Gather()
		if err != nil {
			t.Fatalf("Gather: %v", err)
		}
		found := false
		for _, f := range families {
			if f.GetName() == "taskmemo_expensive_calculations_total" {
				found = true
				if v := f.GetMetric()[0].GetCounter().GetValue(); v != 2 {
					t.Errorf("calculation counter = %v, want 2", v)
				}
			}
		}
		if !found {
			t.Error("calculation counter not gathered")
		}

		n, err := testutil.GatherAndCount(m.Registry(), "taskmemo_expensive_calculations_total")
		if err != nil {
			t.Fatalf("GatherAndCount: %v", err)
		}
		if n != 1 {
			t.Errorf("GatherAndCount = %d, want 1", n)
		}
	})
}
