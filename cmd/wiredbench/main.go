// Command wiredbench is a small CLI harness that drives one system's
// translator and protocol engine against synthetic input instead of a real
// console, printing the resulting wire frame so the translation and
// protocol-engine logic can be exercised without hardware.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
	"github.com/retrowired/wiredcore/internal/engine/dc"
	"github.com/retrowired/wiredcore/internal/engine/generic"
	"github.com/retrowired/wiredcore/internal/engine/genesis"
	"github.com/retrowired/wiredcore/internal/engine/jaguar"
	"github.com/retrowired/wiredcore/internal/engine/n64"
	"github.com/retrowired/wiredcore/internal/engine/pce"
	"github.com/retrowired/wiredcore/internal/engine/psx"
	"github.com/retrowired/wiredcore/internal/engine/saturn"
	"github.com/retrowired/wiredcore/internal/engine/snes"
	"github.com/retrowired/wiredcore/internal/feedback"
	"github.com/retrowired/wiredcore/internal/hal/hostsim"
	"github.com/retrowired/wiredcore/internal/memcard"
	wcdi "github.com/retrowired/wiredcore/internal/wired/cdi"
	wdc "github.com/retrowired/wiredcore/internal/wired/dc"
	wgc "github.com/retrowired/wiredcore/internal/wired/gc"
	wgenesis "github.com/retrowired/wiredcore/internal/wired/genesis"
	wjaguar "github.com/retrowired/wiredcore/internal/wired/jaguar"
	wjvs "github.com/retrowired/wiredcore/internal/wired/jvs"
	wn64 "github.com/retrowired/wiredcore/internal/wired/n64"
	wparallel "github.com/retrowired/wiredcore/internal/wired/parallel"
	wpce "github.com/retrowired/wiredcore/internal/wired/pce"
	wpcfx "github.com/retrowired/wiredcore/internal/wired/pcfx"
	wpsx "github.com/retrowired/wiredcore/internal/wired/psx"
	wreal3do "github.com/retrowired/wiredcore/internal/wired/real3do"
	wsaturn "github.com/retrowired/wiredcore/internal/wired/saturn"
	wsnes "github.com/retrowired/wiredcore/internal/wired/snes"
	wgeneric "github.com/retrowired/wiredcore/internal/wired/generic"
	wwii "github.com/retrowired/wiredcore/internal/wired/wii"
)

func main() {
	system := flag.String("system", "genesis", "target system: "+systemList())
	buttons := flag.String("press", "", "comma-separated normalized button names held this frame (e.g. FaceDown,Start)")
	flag.Parse()

	btn, err := parseButtons(*buttons)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wiredbench:", err)
		os.Exit(1)
	}

	frame, err := bench(*system, btn)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wiredbench:", err)
		os.Exit(1)
	}
	fmt.Println(hex.EncodeToString(frame))
}

func systemList() string {
	return "genesis, n64, psx, saturn, dc, snes, pce, jaguar, parallel, real3do, gc, wii, cdi, pcfx, jvs"
}

func parseButtons(s string) (uint32, error) {
	var mask uint32
	if s == "" {
		return 0, nil
	}
	names := map[string]ctrlmodel.Button{
		"HatUp": ctrlmodel.HatUp, "HatDown": ctrlmodel.HatDown,
		"HatLeft": ctrlmodel.HatLeft, "HatRight": ctrlmodel.HatRight,
		"FaceDown": ctrlmodel.FaceDown, "FaceRight": ctrlmodel.FaceRight,
		"FaceLeft": ctrlmodel.FaceLeft, "FaceUp": ctrlmodel.FaceUp,
		"LShoulder": ctrlmodel.LShoulder, "RShoulder": ctrlmodel.RShoulder,
		"Select": ctrlmodel.Select, "Start": ctrlmodel.Start, "Home": ctrlmodel.Home,
	}
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			name := s[start:i]
			start = i + 1
			if name == "" {
				continue
			}
			b, ok := names[name]
			if !ok {
				return 0, fmt.Errorf("unknown button %q", name)
			}
			mask |= 1 << b
		}
	}
	return mask, nil
}

// bench builds the translator+engine pair for system, feeds one
// synthetic report with heldMask buttons pressed, and returns the
// resulting wire frame for the system's natural poll entry point.
func bench(system string, heldMask uint32) ([]byte, error) {
	ctrl := ctrlmodel.WiredCtrl{}
	ctrl.Btns[0].Value = heldMask
	ctrl.MapMask[0] = heldMask

	switch system {
	case "genesis":
		tr := wgenesis.New()
		var wd ctrlmodel.WiredData
		tr.InitBuffer(ctrlmodel.DevModePad, &wd)
		tr.MetaInit([]ctrlmodel.WiredCtrl{ctrl})
		tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)
		eng := genesis.New(hostsim.NewDelay(), hostsim.Clock{})
		v := eng.Poll(0, &wd, true, true, time.Now())
		return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}, nil

	case "n64":
		tr := wn64.New()
		var wd ctrlmodel.WiredData
		tr.InitBuffer(ctrlmodel.DevModePad, &wd)
		tr.MetaInit([]ctrlmodel.WiredCtrl{ctrl})
		tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)
		mc := memcard.New()
		fb := &feedback.Router{}
		eng := n64.New(mc, fb)
		out, _ := eng.HandleCommand(0, &wd, []byte{0x01})
		return out, nil

	case "psx":
		tr := wpsx.New()
		var wd ctrlmodel.WiredData
		tr.InitBuffer(ctrlmodel.DevModePad, &wd)
		tr.MetaInit([]ctrlmodel.WiredCtrl{ctrl})
		tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)
		eng := psx.New()
		return eng.HandleCommand(0, ctrlmodel.DevModePad, &wd, []byte{0x01, 0x42}), nil

	case "saturn":
		tr := wsaturn.New()
		var wd ctrlmodel.WiredData
		tr.InitBuffer(ctrlmodel.DevModePad, &wd)
		tr.MetaInit([]ctrlmodel.WiredCtrl{ctrl})
		tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)
		eng := saturn.New()
		return eng.BuildTWHFrame(&wd), nil

	case "dc":
		tr := wdc.New()
		var wd ctrlmodel.WiredData
		tr.InitBuffer(ctrlmodel.DevModePad, &wd)
		tr.MetaInit([]ctrlmodel.WiredCtrl{ctrl})
		tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)
		mc := memcard.New()
		fb := &feedback.Router{}
		eng := dc.New(mc, fb)
		out, _ := eng.HandleCommand(0, &wd, []byte{0x09})
		return out, nil

	case "snes":
		tr := wsnes.New()
		var wd ctrlmodel.WiredData
		tr.InitBuffer(ctrlmodel.DevModePad, &wd)
		tr.MetaInit([]ctrlmodel.WiredCtrl{ctrl})
		tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)
		eng := snes.New()
		eng.Latch(0)
		out := make([]byte, 2)
		for i := range out {
			for b := 0; b < 8; b++ {
				bit := byte(0)
				if eng.Clock(0, &wd) {
					bit = 1
				}
				out[i] |= bit << uint(b)
			}
		}
		return out, nil

	case "pce":
		tr := wpce.New()
		var wd ctrlmodel.WiredData
		tr.InitBuffer(ctrlmodel.DevModePad, &wd)
		tr.MetaInit([]ctrlmodel.WiredCtrl{ctrl})
		tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)
		eng := pce.New()
		eng.SetLines(true, true)
		return []byte{eng.Nibble(&wd)}, nil

	case "jaguar":
		tr := wjaguar.New()
		var wd ctrlmodel.WiredData
		tr.InitBuffer(ctrlmodel.DevModePad, &wd)
		tr.MetaInit([]ctrlmodel.WiredCtrl{ctrl})
		tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)
		eng := jaguar.New()
		return eng.Poll(&wd), nil

	case "parallel":
		return genericBench(wparallel.Descriptor, ctrl)
	case "real3do":
		return genericBench(wreal3do.Descriptor, ctrl)
	case "gc":
		return genericBench(wgc.Descriptor, ctrl)
	case "wii":
		return genericBench(wwii.Descriptor, ctrl)
	case "cdi":
		return genericBench(wcdi.Descriptor, ctrl)
	case "pcfx":
		return genericBench(wpcfx.Descriptor, ctrl)
	case "jvs":
		return genericBench(wjvs.Descriptor, ctrl)
	}
	return nil, fmt.Errorf("unknown system %q (want one of: %s)", system, systemList())
}

// genericBench drives any of the seven consolidated-descriptor
// systems identically, since they all share wired/generic's
// Descriptor-driven Translator.
func genericBench(d wgeneric.Descriptor, ctrl ctrlmodel.WiredCtrl) ([]byte, error) {
	tr := wgeneric.New(d)
	var wd ctrlmodel.WiredData
	tr.InitBuffer(ctrlmodel.DevModePad, &wd)
	tr.MetaInit([]ctrlmodel.WiredCtrl{ctrl})
	tr.FromGeneric(ctrlmodel.DevModePad, &ctrl, &wd)

	frameBytes := 4
	if d.HasHigh {
		frameBytes = 8
	}
	eng := generic.New(frameBytes, frameBytes, d.ActiveHigh)
	return eng.Poll(&wd), nil
}
