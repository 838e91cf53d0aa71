// ABOUTME: Tests for the terminal notifier and the test recorder
// ABOUTME: Covers output formatting and ordered capture semantics

package notify

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminal_WritesEachLevel(t *testing.T) {
	var buf bytes.Buffer
	n := NewTerminal(&buf)

	n.Success("created")
	n.Error("delete failed")
	n.Info("3 items")

	out := buf.String()
	assert.Contains(t, out, "created")
	assert.Contains(t, out, "delete failed")
	assert.Contains(t, out, "3 items")
}

func TestRecorder_CapturesInOrder(t *testing.T) {
	r := NewRecorder()
	r.Error("first")
	r.Success("second")
	r.Error("third")

	recs := r.Records()
	assert.Len(t, recs, 3)
	assert.Equal(t, Record{LevelError, "first"}, recs[0])
	assert.Equal(t, Record{LevelSuccess, "second"}, recs[1])
	assert.Equal(t, []string{"first", "third"}, r.ByLevel(LevelError))
}

func TestRecorder_Reset(t *testing.T) {
	r := NewRecorder()
	r.Info("something")
	r.Reset()
	assert.Empty(t, r.Records())
}
