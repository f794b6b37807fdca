package jaguar

import (
	"testing"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
)

func TestNibbleReadsSelectedBank(t *testing.T) {
	e := New()
	var wd ctrlmodel.WiredData
	wd.Output[0] = 0xAB
	wd.Output[4] = 0xCD
	e.SelectBank(1)
	if got := e.Nibble(&wd, false); got != 0x0D {
		t.Fatalf("bank 1 low nibble = %#x, want 0xd", got)
	}
}

func TestSelectBankIgnoresOutOfRange(t *testing.T) {
	e := New()
	e.SelectBank(0)
	e.SelectBank(9)
	if e.bank != 0 {
		t.Fatalf("bank = %d, want unchanged 0", e.bank)
	}
}

func TestPollReturns16Bytes(t *testing.T) {
	e := New()
	var wd ctrlmodel.WiredData
	out := e.Poll(&wd)
	if len(out) != 16 {
		t.Fatalf("len(out) = %d, want 16", len(out))
	}
}
