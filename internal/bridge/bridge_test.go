package bridge

import (
	"fmt"
	"sync"
	"testing"
)

func TestDrainPreservesOrder(t *testing.T) {
	b := New()
	b.SubmitToolSelection("Mountain Peak, Rocky")
	b.SubmitLabelToggle()
	b.SubmitToolSelection("bogus")
	b.SubmitLabelToggle()

	cmds := b.Drain()
	if len(cmds.Tools) != 2 || cmds.Tools[0].Name != "Mountain Peak, Rocky" || cmds.Tools[1].Name != "bogus" {
		t.Fatalf("unexpected tool commands %+v", cmds.Tools)
	}
	if len(cmds.Labels) != 2 {
		t.Fatalf("expected 2 label toggles, got %d", len(cmds.Labels))
	}
	if again := b.Drain(); !again.Empty() {
		t.Fatalf("expected drained commands not to be replayed, got %+v", again)
	}
}

func TestPending(t *testing.T) {
	b := New()
	b.SubmitToolSelection("Erase")
	b.SubmitLabelToggle()
	b.SubmitLabelToggle()
	tools, labels := b.Pending()
	if tools != 1 || labels != 2 {
		t.Fatalf("expected 1 tool and 2 labels pending, got %d and %d", tools, labels)
	}
	b.Drain()
	tools, labels = b.Pending()
	if tools != 0 || labels != 0 {
		t.Fatalf("expected empty queues after drain, got %d and %d", tools, labels)
	}
}

func TestConcurrentSubmitters(t *testing.T) {
	b := New()
	const producers, perProducer = 8, 500

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				b.SubmitToolSelection(fmt.Sprintf("%d:%d", p, i))
				b.SubmitLabelToggle()
			}
		}(p)
	}

	// Drain while producers are running, like the simulation loop would.
	var tools []ToolSelection
	labels := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for finished := false; !finished; {
		select {
		case <-done:
			finished = true
		default:
		}
		cmds := b.Drain()
		tools = append(tools, cmds.Tools...)
		labels += len(cmds.Labels)
	}

	if len(tools) != producers*perProducer || labels != producers*perProducer {
		t.Fatalf("expected %d of each command, got %d tools and %d labels", producers*perProducer, len(tools), labels)
	}

	// Per producer the submission order must survive.
	next := make(map[int]int)
	for _, cmd := range tools {
		var p, i int
		if _, err := fmt.Sscanf(cmd.Name, "%d:%d", &p, &i); err != nil {
			t.Fatalf("bad command %q: %v", cmd.Name, err)
		}
		if i != next[p] {
			t.Fatalf("producer %d: expected command %d, got %d", p, next[p], i)
		}
		next[p]++
	}
}

func TestBridgeIsHost(t *testing.T) {
	var _ Host = New()
}
