package reveal

import (
	"testing"
	"time"
)

func aboutFragments() []Fragment {
	quick := Config{StartDelay: 500 * time.Millisecond, Interval: 30 * time.Millisecond, Glyphs: SGA}
	return []Fragment{
		{Text: "I work at ", Config: quick},
		{Text: "Micron", Config: quick},
		{Text: ".", Config: DefaultRuneConfig()},
	}
}

func TestGroupCompletesWhenEveryFragmentIs(t *testing.T) {
	clock := NewFakeClock(epoch)
	g := NewGroup(clock, aboutFragments())
	rec := &recorder[GroupFrame]{}
	g.Subscribe(rec.add)
	g.Start()

	// the first two fragments finish at 500+9*30 and 500+5*30
	clock.Advance(800 * time.Millisecond)
	if g.Done() {
		t.Fatal("Expected group still running while the slow fragment waits")
	}
	f := g.Frame()
	if got := f.String(); got != "I work at Micron." {
		t.Errorf("Frame = %q, want the first fragments resolved", got)
	}
	if f.Fragments[2].Revealed != 0 {
		t.Errorf("Expected slow fragment untouched, got %d", f.Fragments[2].Revealed)
	}

	clock.Advance(200 * time.Millisecond)
	if !g.Done() {
		t.Fatal("Expected group done after the slow fragment")
	}
	frames := rec.all()
	if last := frames[len(frames)-1]; !last.Done {
		t.Errorf("Expected final snapshot marked done, got %+v", last)
	}
	for i := 1; i < len(frames); i++ {
		for j := range frames[i].Fragments {
			if frames[i].Fragments[j].Revealed < frames[i-1].Fragments[j].Revealed {
				t.Fatalf("snapshot %d went backwards on fragment %d", i, j)
			}
		}
	}
}

func TestGroupCancelStopsAllFragments(t *testing.T) {
	clock := NewFakeClock(epoch)
	g := NewGroup(clock, aboutFragments())
	rec := &recorder[GroupFrame]{}
	g.Subscribe(rec.add)
	g.Start()
	clock.Advance(550 * time.Millisecond)

	frames := rec.len()
	g.Cancel()
	clock.Advance(time.Minute)

	if rec.len() != frames {
		t.Errorf("Expected no snapshots after Cancel, got %d", rec.len()-frames)
	}
	if clock.Pending() != 0 {
		t.Errorf("Expected every fragment timer released, got %d", clock.Pending())
	}
	if g.Done() {
		t.Error("Expected cancelled group to stay incomplete")
	}
}

func TestEmptyGroup(t *testing.T) {
	g := NewGroup(NewFakeClock(epoch), nil)
	rec := &recorder[GroupFrame]{}
	g.Subscribe(rec.add)
	g.Start()

	if !g.Done() || g.Len() != 0 {
		t.Error("Expected empty group to be done")
	}
	if frames := rec.all(); len(frames) != 1 || !frames[0].Done {
		t.Errorf("Expected one done snapshot, got %+v", frames)
	}
}

func TestGroupPublishAfterCancelIsSilent(t *testing.T) {
	clock := NewFakeClock(epoch)
	g := NewGroup(clock, aboutFragments())
	rec := &recorder[GroupFrame]{}
	g.Subscribe(rec.add)
	g.Start()
	clock.Advance(600 * time.Millisecond)

	frames := rec.len()
	g.Cancel()
	// a fragment drain that copied its subscribers before Cancel
	g.publish()

	if rec.len() != frames {
		t.Errorf("Expected no snapshot after Cancel, got %d", rec.len()-frames)
	}
	g.Start()
	if rec.len() != frames || clock.Pending() != 0 {
		t.Error("Expected Start after Cancel to stay silent")
	}
}
