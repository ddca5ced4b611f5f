package blocks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// traceTo routes the core tracer to a buffer at debug level until the
// returned func is called.
func traceTo(t *testing.T, buf *bytes.Buffer) func() {
	t.Helper()
	teardown := gotestingadapter.QuickConfig(t, "deque.blocks")
	saved := gtrace.CoreTracer
	tr := gologadapter.New()
	tr.SetOutput(buf)
	tr.SetTraceLevel(tracing.LevelDebug)
	gtrace.CoreTracer = tr
	return func() {
		gtrace.CoreTracer = saved
		teardown()
	}
}

func TestStructuralEventsAreTraced(t *testing.T) {
	var buf bytes.Buffer
	defer traceTo(t, &buf)()
	//
	g := layout(t, flatConfig, 4, 4)
	buf.Reset()
	g.Split(blockAt(t, g, 0), g.nth(blockAt(t, g, 0), 2))
	g.Merge(blockAt(t, g, 0), blockAt(t, g, 1))
	out := buf.String()
	for _, want := range []string{"blocks: split 2|2", "blocks: merge 2+2", "(n=8)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("trace output lacks %q:\n%s", want, out)
		}
	}
}

func TestEventsAreNotTracedAboveDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	defer traceTo(t, &buf)()
	//
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	g := newGraph(t, Config{})
	fill(g, 50)
	if g.BlockCount() < 2 {
		t.Fatalf("expected pushes to split, have %d block(s)", g.BlockCount())
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected trace output at info level:\n%s", buf.String())
	}
}
