package genesis

import (
	"testing"
	"time"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/hal/hostsim"
	wgenesis "github.com/retrowired/wiredcore/internal/wired/genesis"
)

// TestGenesisStartPressScenario reproduces a Start press/release at
// the shadow-GPIO-register level.
func TestGenesisStartPressScenario(t *testing.T) {
	tr := wgenesis.New()
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)

	eng := New(hostsim.NewDelay(), hostsim.Clock{})
	now := time.Unix(0, 0)

	word := eng.Poll(0, &wd, false, false, now)
	if word != IdleGPIOWord {
		t.Fatalf("idle TH-low poll = %#010x, want %#010x", word, IdleGPIOWord)
	}

	ctrl := ctrlmodel.WiredCtrl{}
	ctrl.Btns[0].Value = 1 << ctrlmodel.Start
	ctrl.MapMask[0] = 1 << ctrlmodel.Start
	tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)

	word = eng.Poll(0, &wd, false, false, now)
	want := IdleGPIOWord &^ (1 << uint(P1TRPin))
	if word != want {
		t.Fatalf("Start-pressed TH-low poll = %#010x, want %#010x", word, want)
	}

	ctrl.Btns[0].Value = 0
	tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)
	eng.Poll(0, &wd, false, false, now)
	word = eng.Poll(0, &wd, false, false, now)
	if word != IdleGPIOWord {
		t.Fatalf("post-release TH-low poll = %#010x, want %#010x", word, IdleGPIOWord)
	}
}
