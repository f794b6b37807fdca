package adapter

import (
	"testing"

	"github.com/retrowired/wiredcore/internal/config"
	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/remap"
	"github.com/retrowired/wiredcore/internal/wired"
	"github.com/retrowired/wiredcore/internal/wired/saturn"
)

// stubEngine records the port_cfg masks the supervisor applies.
type stubEngine struct {
	masks []uint32
}

func (e *stubEngine) PortCfg(mask uint32) { e.masks = append(e.masks, mask) }

func TestAllocateSlots(t *testing.T) {
	tests := []struct {
		name   string
		system wired.System
		topo   Topology
		want   []int
	}{
		{"psx tap1", wired.SystemPSX, TopologyPSXTap1, []int{0, 1, 2, 3}},
		{"psx tap2", wired.SystemPSX, TopologyPSXTap2, []int{4, 5, 6, 7}},
		{"genesis teamplayer", wired.SystemGenesis, TopologyGenesisTeamPlayer, []int{0, 1, 2, 3}},
		{"genesis ea4w", wired.SystemGenesis, TopologyGenesisEA4Way, []int{0, 1}},
		{"saturn tap1", wired.SystemSaturn, TopologySaturnTap1, []int{0, 1, 2, 3, 4, 5}},
		{"saturn tap2", wired.SystemSaturn, TopologySaturnTap2, []int{1, 2, 3, 4, 5, 6}},
		{"saturn dual", wired.SystemSaturn, TopologySaturnDualTap, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
		{"snes multitap", wired.SystemSNES, TopologySNESMultitap, []int{1, 2, 3, 4}},
		{"n64 single", wired.SystemN64, TopologySingle, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AllocateSlots(tt.system, tt.topo)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("slots = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("slots = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestAllocateSlotsRejectsForeignTopology(t *testing.T) {
	if _, err := AllocateSlots(wired.SystemN64, TopologyPSXTap1); err == nil {
		t.Fatal("N64 accepted a PSX multitap topology")
	}
}

func TestSelectInitializesAllocatedSlots(t *testing.T) {
	s := New(nil)
	eng := &stubEngine{}
	if err := s.Select(wired.SystemSaturn, saturn.New(), eng, TopologySaturnTap1); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 6; i++ {
		if !s.Allocated(i) {
			t.Fatalf("slot %d not allocated", i)
		}
		// Saturn idle frame: both data bytes released (active-low).
		if s.Data[i].Output[0] != 0xFF || s.Data[i].Output[1] != 0xFF {
			t.Fatalf("slot %d not idle-initialized: %#x %#x", i, s.Data[i].Output[0], s.Data[i].Output[1])
		}
	}
	if s.Allocated(6) {
		t.Fatal("slot 6 allocated for a 6-port tap")
	}
	if len(eng.masks) != 1 || eng.masks[0] != 0x3F {
		t.Fatalf("port_cfg masks = %#v, want one 0x3F", eng.masks)
	}
}

func TestFromGenericRejectsUnallocatedPort(t *testing.T) {
	s := New(nil)
	if err := s.Select(wired.SystemSaturn, saturn.New(), &stubEngine{}, TopologySingle); err != nil {
		t.Fatal(err)
	}
	ctrl := ctrlmodel.WiredCtrl{Index: 5}
	if _, err := s.FromGeneric(ctrlmodel.DevModePad, &ctrl); err == nil {
		t.Fatal("unallocated port accepted")
	}
}

// TestDevModeToggleMacroResets exercises the PAD_MT path end to end:
// press-and-release of ModeToggle flips the port's dev_mode low bit and
// triggers a WIRED_RST that reinitializes buffers and re-applies
// port_cfg.
func TestDevModeToggleMacroResets(t *testing.T) {
	s := New(nil)
	eng := &stubEngine{}
	if err := s.Select(wired.SystemSaturn, saturn.New(), eng, TopologySingle); err != nil {
		t.Fatal(err)
	}

	ctrl := ctrlmodel.WiredCtrl{Index: 0}
	ctrl.Btns[3].Value = 1 << ctrlmodel.ModeToggle
	cmd, err := s.FromGeneric(ctrlmodel.DevModePad, &ctrl)
	if err != nil {
		t.Fatal(err)
	}
	if cmd != remap.CmdNone {
		t.Fatalf("fired %v on press", cmd)
	}

	ctrl.Btns[3].Value = 0
	cmd, err = s.FromGeneric(ctrlmodel.DevModePad, &ctrl)
	if err != nil {
		t.Fatal(err)
	}
	if cmd != remap.CmdWiredRst {
		t.Fatalf("release fired %v, want CmdWiredRst", cmd)
	}
	if s.Cfg[0].DevMode != ctrlmodel.DevModePadAlt {
		t.Fatalf("dev_mode = %v, want pad-alt", s.Cfg[0].DevMode)
	}
	// Select applied port_cfg once; the reset applies it again.
	if len(eng.masks) != 2 {
		t.Fatalf("port_cfg applied %d times, want 2", len(eng.masks))
	}
	// Reset rewrote the idle frame.
	if s.Data[0].Output[0] != 0xFF {
		t.Fatalf("buffer not reinitialized: %#x", s.Data[0].Output[0])
	}
}

// TestRemapTableReroutesButton wires a persisted config mapping into
// the report path: with FaceDown remapped to Start, a FaceDown press
// must assert Start's wire bit.
func TestRemapTableReroutesButton(t *testing.T) {
	s := New(nil)
	if err := s.Select(wired.SystemSaturn, saturn.New(), &stubEngine{}, TopologySingle); err != nil {
		t.Fatal(err)
	}
	cfg := config.New()
	cfg.ActiveSet()[ctrlmodel.FaceDown] = ctrlmodel.Start
	s.SetRemapTable(cfg.ActiveSet())

	ctrl := ctrlmodel.WiredCtrl{Index: 0}
	ctrl.Btns[0].Value = 1 << ctrlmodel.FaceDown
	ctrl.MapMask[0] = 1 << ctrlmodel.FaceDown
	if _, err := s.FromGeneric(ctrlmodel.DevModePad, &ctrl); err != nil {
		t.Fatal(err)
	}
	// Saturn Start is data byte 0 bit 3 (active-low); A (FaceDown's
	// native target, bit 2) must stay released.
	if got := s.Data[0].Output[0]; got != 0xF7 {
		t.Fatalf("data byte = %#x, want Start asserted (0xF7)", got)
	}
}

func TestInitBufferSinglePort(t *testing.T) {
	s := New(nil)
	if err := s.Select(wired.SystemSaturn, saturn.New(), &stubEngine{}, TopologySaturnTap1); err != nil {
		t.Fatal(err)
	}
	s.Data[2].Output[0] = 0x00
	if err := s.InitBuffer(2, ctrlmodel.DevModePad); err != nil {
		t.Fatal(err)
	}
	if s.Data[2].Output[0] != 0xFF {
		t.Fatalf("port 2 not re-idled: %#x", s.Data[2].Output[0])
	}
	if err := s.InitBuffer(9, ctrlmodel.DevModePad); err == nil {
		t.Fatal("unallocated port accepted")
	}
}
