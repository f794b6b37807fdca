package adapter

import (
	"fmt"

	"github.com/retrowired/wiredcore/internal/wired"
)

// Topology selects a multitap configuration for systems that support
// more than one.
type Topology int

const (
	// TopologySingle is a single direct-connected port, sub-slot 0.
	TopologySingle Topology = iota

	// TopologyPSXTap1 is a PSX multitap on physical slot 1: sub-slots 0..3.
	TopologyPSXTap1
	// TopologyPSXTap2 is a PSX multitap on physical slot 2: sub-slots 4..7.
	TopologyPSXTap2
	// TopologyPSXBothTaps allocates both PSX taps: 0..7.
	TopologyPSXBothTaps

	// TopologyGenesisTeamPlayer is the Genesis TeamPlayer adapter on
	// slot 1: sub-slots 0..3.
	TopologyGenesisTeamPlayer
	// TopologyGenesisEA4Way uses the two physical ports directly, with
	// an internal 0..3 selector rather than extra sub-slots (the two
	// TL/TR lines select controller 0..3 per frame).
	TopologyGenesisEA4Way

	// TopologySaturnTap1 is a Saturn 6-port tap on slot 1: sub-slots 0..5.
	TopologySaturnTap1
	// TopologySaturnTap2 is a Saturn 6-port tap on slot 2: port 0 stays
	// direct, tap occupies sub-slots 1..6.
	TopologySaturnTap2
	// TopologySaturnDualTap is taps on both physical ports: 0..5 and 6..11.
	TopologySaturnDualTap

	// TopologySNESMultitap is the SNES multitap on slot 2: sub-slots 1..4.
	TopologySNESMultitap
)

// AllocateSlots returns the fixed sub-slot indices a topology occupies
// for system, per the table The policy is fixed per
// (system, topology) pair, not computed from runtime device count.
func AllocateSlots(system wired.System, topo Topology) ([]int, error) {
	switch system {
	case wired.SystemPSX:
		switch topo {
		case TopologySingle:
			return []int{0}, nil
		case TopologyPSXTap1:
			return rangeSlots(0, 3), nil
		case TopologyPSXTap2:
			return rangeSlots(4, 7), nil
		case TopologyPSXBothTaps:
			return rangeSlots(0, 7), nil
		}
	case wired.SystemGenesis:
		switch topo {
		case TopologySingle:
			return []int{0}, nil
		case TopologyGenesisTeamPlayer:
			return rangeSlots(0, 3), nil
		case TopologyGenesisEA4Way:
			// Two physical ports; the 0..3 controller selector lives
			// inside the engine, not as extra allocated slots.
			return []int{0, 1}, nil
		}
	case wired.SystemSaturn:
		switch topo {
		case TopologySingle:
			return []int{0}, nil
		case TopologySaturnTap1:
			return rangeSlots(0, 5), nil
		case TopologySaturnTap2:
			return rangeSlots(1, 6), nil
		case TopologySaturnDualTap:
			return append(rangeSlots(0, 5), rangeSlots(6, 11)...), nil
		}
	case wired.SystemSNES:
		switch topo {
		case TopologySingle:
			return []int{0}, nil
		case TopologySNESMultitap:
			return rangeSlots(1, 4), nil
		}
	default:
		if topo != TopologySingle {
			return nil, fmt.Errorf("adapter: system %v has no multitap topology", system)
		}
		return []int{0}, nil
	}
	return nil, fmt.Errorf("adapter: topology %v not valid for system %v", topo, system)
}

func rangeSlots(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}
