package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, s := range []string{"auto", "bar", "plain", "none"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}
	_, err := ParseMode("fancy")
	require.Error(t, err)
}

func TestNoneIsSilent(t *testing.T) {
	var buf bytes.Buffer
	tr := New(ModeNone, true, "fixture", 3, &buf, 0)
	for i := 0; i < 3; i++ {
		tr.Incr()
	}
	tr.Finish(true)
	assert.Empty(t, buf.String())
	assert.EqualValues(t, 3, tr.Done())
}

func TestAutoWithoutVerboseIsSilent(t *testing.T) {
	var buf bytes.Buffer
	tr := New(ModeAuto, false, "fixture", 2, &buf, 0)
	tr.Incr()
	tr.Finish(true)
	assert.Empty(t, buf.String())
}

func TestPlainPrintsFinalLine(t *testing.T) {
	var buf bytes.Buffer
	tr := New(ModePlain, false, "fixture", 4, &buf, time.Hour)
	for i := 0; i < 4; i++ {
		tr.Incr()
	}
	tr.Finish(true)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "fixture 100 %")
	assert.Contains(t, lines[0], "(4 / 4 entries)")
}

func TestBarCompletes(t *testing.T) {
	var buf bytes.Buffer
	tr := New(ModeBar, false, "fixture", 5, &buf, 0)
	for i := 0; i < 5; i++ {
		tr.Incr()
	}
	tr.Finish(true)
	assert.EqualValues(t, 5, tr.Done())
}

func TestBarAbortDoesNotHang(t *testing.T) {
	var buf bytes.Buffer
	tr := New(ModeBar, false, "fixture", 5, &buf, 0)
	tr.Incr()
	done := make(chan struct{})
	go func() {
		tr.Finish(false)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Finish(false) did not return")
	}
}
