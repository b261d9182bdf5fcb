package esfm

import (
	"testing"

	"esfm/hwio"
)

func TestDeviceTableRoutesRegisterAccess(t *testing.T) {
	var chip Chip
	Init(&chip)
	chip.NativeMode = true

	table := NewTable(&chip, "esfm0")

	table.Write8(0x0000, 0x07) // channel 0 slot 0 mult=7
	if chip.Channels[0].Slots[0].Mult != 7 {
		t.Fatalf("Mult = %d after table write, want 7", chip.Channels[0].Slots[0].Mult)
	}

	if got := table.Read8(0x0000, false); got&0x0f != 7 {
		t.Fatalf("table readback = %#02x, want low nibble 7", got)
	}

	table.Write8(keyOnRegsStart+2, 0x01)
	if !chip.Channels[2].KeyOn {
		t.Fatal("key-on register write through the table did not key on channel 2")
	}
}

func TestDeviceTableBindsNamedControlRegisters(t *testing.T) {
	var chip Chip
	Init(&chip)
	chip.NativeMode = true

	table := NewTable(&chip, "esfm0")

	table.Write8(timer1Reg, 0x42)
	if chip.Timers[0] != 0x42 {
		t.Fatalf("Timers[0] = %#02x after table write, want 0x42", chip.Timers[0])
	}
	if got := table.Read8(timer1Reg, false); got != 0x42 {
		t.Fatalf("table readback of Timer1 = %#02x, want 0x42", got)
	}

	table.Write8(timerSetupReg, 0x03) // enable both timers
	if got := table.Read8(timerSetupReg, false); got&0x03 != 0x03 {
		t.Fatalf("table readback of TimerSetup = %#02x, want both enable bits set", got)
	}

	bank := &controlBank{chip: &chip}
	hwio.MustInitRegs(bank)
	if bank.Timer1.Name != "Timer1" {
		t.Fatalf("MustInitRegs did not name the Timer1 field, got %q", bank.Timer1.Name)
	}
}

func TestPortTableRoutesLegacyInterface(t *testing.T) {
	var chip Chip
	Init(&chip)
	chip.NativeMode = true

	ports := NewPortTable(&chip, "esfm0-port")

	ports.Write8(2, 0x00) // addr low
	ports.Write8(3, 0x00) // addr high
	ports.Write8(1, 0x0a) // mult = 10

	if chip.Channels[0].Slots[0].Mult != 10 {
		t.Fatalf("Mult = %d after port-table write, want 10", chip.Channels[0].Slots[0].Mult)
	}
}
