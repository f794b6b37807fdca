// Package config persists the wired-side remap configuration,
// `{magic=0x5A5AA5A5, mode, set_map, reserved[2], mapping[4][32]}`:
// the active device mode, the currently selected remap set, and the
// four remap sets themselves
// (`mapping[set][src_button_index] = dst_button_index`).
//
// Persistence uses the same durability pattern as internal/memcard: writes land in
// a temporary file beside the real one and are renamed into place, so
// a crash mid-write never leaves a half-written config on disk.
package config

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/retrowired/wiredcore/internal/ctrlmodel"
)

// Magic identifies a valid persisted config blob.
const Magic uint32 = 0x5A5AA5A5

// NumSets is the number of independently selectable remap sets.
const NumSets = 4

// NumButtons is the number of normalized source button indices a
// mapping set covers (the 32-bit button bitmap).
const NumButtons = 32

// Size is the exact on-disk/in-memory encoded size of a Config blob:
// magic(4) + mode(1) + set_map(1) + reserved(2) + mapping(4*32*1).
const Size = 4 + 1 + 1 + 2 + NumSets*NumButtons

// Config is the in-memory decode of the persisted layout.
type Config struct {
	Mode     ctrlmodel.DevMode
	SetMap   uint8
	Mapping  [NumSets][NumButtons]uint8

	path string
}

// New returns an identity-mapped config (mapping[s][i] = i for every
// set), matching an unconfigured factory-default unit.
func New() *Config {
	c := &Config{}
	for s := 0; s < NumSets; s++ {
		for i := 0; i < NumButtons; i++ {
			c.Mapping[s][i] = uint8(i)
		}
	}
	return c
}

// Load reads a persisted config from path. A missing file is not an
// error — a fresh unit starts from New()'s identity mapping.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		c := New()
		c.path = path
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	c, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	c.path = path
	return c, nil
}

// Decode parses a Size-byte little-endian blob into a Config,
// rejecting anything whose magic doesn't match.
func Decode(b []byte) (*Config, error) {
	if len(b) < Size {
		return nil, fmt.Errorf("config: short blob: %d bytes, want %d", len(b), Size)
	}
	if magic := binary.LittleEndian.Uint32(b[0:4]); magic != Magic {
		return nil, fmt.Errorf("config: bad magic %#x, want %#x", magic, Magic)
	}
	c := &Config{
		Mode:   ctrlmodel.DevMode(b[4]),
		SetMap: b[5],
	}
	off := 8
	for s := 0; s < NumSets; s++ {
		copy(c.Mapping[s][:], b[off:off+NumButtons])
		off += NumButtons
	}
	return c, nil
}

// Encode renders c into the Size-byte persisted layout.
func (c *Config) Encode() []byte {
	b := make([]byte, Size)
	binary.LittleEndian.PutUint32(b[0:4], Magic)
	b[4] = byte(c.Mode)
	b[5] = c.SetMap
	// b[6:8] is reserved, left zero.
	off := 8
	for s := 0; s < NumSets; s++ {
		copy(b[off:off+NumButtons], c.Mapping[s][:])
		off += NumButtons
	}
	return b
}

// Save persists c durably: write to a sibling temp file, fsync, then
// rename over the destination.
func (c *Config) Save() error {
	if c.path == "" {
		return nil
	}
	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("config: create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(c.Encode()); err != nil {
		tmp.Close()
		return fmt.Errorf("config: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("config: sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.path); err != nil {
		return fmt.Errorf("config: rename: %w", err)
	}
	return nil
}

// ActiveSet returns the remap set currently selected by SetMap.
func (c *Config) ActiveSet() *[NumButtons]uint8 {
	return &c.Mapping[c.SetMap%NumSets]
}

// Remap returns the destination button index src maps to under the
// active set.
func (c *Config) Remap(src uint8) uint8 {
	if int(src) >= NumButtons {
		return src
	}
	return c.ActiveSet()[src]
}
