package hwio

import "esfm/log"

// log unmapped accesses; verbose for hosts that probe ranges speculatively.
const logUnmapped = false

// BankIO8 is the interface MapReg8/MapManual targets accept.
type BankIO8 interface {
	Read8(addr uint16, peek bool) uint8
	Write8(addr uint16, val uint8)
}

// Table routes byte accesses to whichever BankIO8 is mapped at an
// address, falling back to Unmapped. ESFM's native register space is a
// flat 2KB window (`address & 0x7ff` in the reference core), so a table
// this size is backed by a plain array rather than the sparse radix tree
// a 64KB console bus would need.
type Table struct {
	Name string

	Unmapped BankIO8

	slots [0x800]BankIO8
}

func NewTable(name string) *Table {
	return &Table{Name: name}
}

func (t *Table) MapReg8(addr uint16, reg *Reg8) {
	t.slots[addr&0x7ff] = reg
}

func (t *Table) MapManual(addr uint16, io *Manual) {
	for i := 0; i < io.Size; i++ {
		t.slots[(addr+uint16(i))&0x7ff] = io
	}
}

func (t *Table) Unmap(begin, end uint16) {
	for a := begin; a <= end; a++ {
		t.slots[a&0x7ff] = nil
		if a == end {
			break
		}
	}
}

func (t *Table) Read8(addr uint16, peek bool) uint8 {
	io := t.slots[addr&0x7ff]
	if io == nil {
		if t.Unmapped != nil {
			return t.Unmapped.Read8(addr, peek)
		}
		if logUnmapped && !peek {
			log.ModIO.ErrorZ("unmapped Read8").
				Str("name", t.Name).
				Hex16("addr", addr).
				End()
		}
		return 0
	}
	return io.Read8(addr, peek)
}

func (t *Table) Peek8(addr uint16) uint8 {
	return t.Read8(addr, true)
}

func (t *Table) Write8(addr uint16, val uint8) {
	io := t.slots[addr&0x7ff]
	if io == nil {
		if t.Unmapped != nil {
			t.Unmapped.Write8(addr, val)
			return
		}
		if logUnmapped {
			log.ModIO.ErrorZ("unmapped Write8").
				Str("name", t.Name).
				Hex16("addr", addr).
				Hex8("val", val).
				End()
		}
		return
	}
	io.Write8(addr, val)
}

// Manual is a BankIO8 that defers entirely to caller-supplied callbacks,
// for register ranges whose layout doesn't decompose into individual
// Reg8 fields (ESFM's per-slot register bank, decoded by address
// arithmetic instead of struct tags, is mapped this way).
type Manual struct {
	Name string
	Size int

	ReadCb  func(addr uint16, peek bool) uint8
	WriteCb func(addr uint16, val uint8)
}

func (m *Manual) Read8(addr uint16, peek bool) uint8 {
	if m.ReadCb == nil {
		return 0
	}
	return m.ReadCb(addr, peek)
}

func (m *Manual) Write8(addr uint16, val uint8) {
	if m.WriteCb == nil {
		return
	}
	m.WriteCb(addr, val)
}
