package suite

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(Run(Default()), &buf)

	out := buf.String()
	assert.Contains(t, out, "=== Suite: classic ===")
	assert.Contains(t, out, "perfect-game")
	assert.Contains(t, out, "PASS")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "3 passed, 1 failed")
}

func TestWriteBenchTable(t *testing.T) {
	var buf bytes.Buffer
	WriteBenchTable(Bench(Default(), 10), &buf)

	out := buf.String()
	assert.Contains(t, out, "=== Bench: classic (10 iterations per case) ===")
	assert.Contains(t, out, "mixed-marks")
	assert.Contains(t, out, "overall")
}

func TestFmtDuration(t *testing.T) {
	assert.Equal(t, "-", fmtDuration(0))
	assert.Equal(t, "250ns", fmtDuration(250*time.Nanosecond))
	assert.Equal(t, "1.5µs", fmtDuration(1500*time.Nanosecond))
	assert.Equal(t, "12.00ms", fmtDuration(12*time.Millisecond))
	assert.Equal(t, "2.50s", fmtDuration(2500*time.Millisecond))
}
