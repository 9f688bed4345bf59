// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/random"
	"github.com/jetsetilly/gopher8/hardware/timers"
	"github.com/jetsetilly/gopher8/hardware/video"
)

// NumRegisters is the number of 8 bit V registers.
const NumRegisters = 16

// VF doubles as the flag register. it is overwritten by any instruction
// that defines a carry, borrow or collision outcome.
const flag = 0xf

// CPU implements the fetch/decode/execute cycle of the CHIP-8 machine. It
// owns the registers and the return address stack; the other components of
// the machine are referenced and mutated as instructions require.
type CPU struct {
	// the program counter and index register are 16 bits wide
	PC uint16
	I  uint16

	// the general purpose 8 bit registers, V0 to VF
	V [NumRegisters]uint8

	stack stack

	mem  *memory.RAM
	vid  *video.Video
	keys *keypad.Keypad
	tmr  *timers.Timers
	rnd  *random.Random

	// the most recently executed instruction. for the benefit of error
	// reporting and the host's diagnostics; not used by the CPU itself
	LastInstruction instructions.Instruction
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.RAM, vid *video.Video, keys *keypad.Keypad, tmr *timers.Timers, rnd *random.Random) *CPU {
	mc := &CPU{
		mem:  mem,
		vid:  vid,
		keys: keys,
		tmr:  tmr,
		rnd:  rnd,
	}
	mc.Reset()
	return mc
}

// Reset the CPU. Registers are zeroed, the stack is emptied and the program
// counter is set to the ROM origin.
func (mc *CPU) Reset() {
	mc.PC = memory.OriginROM
	mc.I = 0
	for i := range mc.V {
		mc.V[i] = 0
	}
	mc.stack.reset()
	mc.LastInstruction = instructions.Instruction{}
}

// Step executes exactly one instruction: fetch, decode, execute. The
// program counter is advanced during fetch; instructions that change the
// flow of control overwrite it during execution.
//
// A returned error is a fault - a malformed ROM or a defect in the core.
// The CPU does not continue past a fault; the host decides whether to
// reset, abort or surface a diagnostic.
func (mc *CPU) Step() error {
	opcode, err := mc.mem.ReadOpcode(mc.PC)
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}
	mc.PC += 2

	in, err := instructions.Decode(opcode)
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}
	mc.LastInstruction = in

	return mc.execute(in)
}

func (mc *CPU) execute(in instructions.Instruction) error {
	switch in.Operator {
	case instructions.Nop:
		// explicitly nothing

	case instructions.Clear:
		mc.vid.Clear()

	case instructions.Return:
		address, err := mc.stack.pop()
		if err != nil {
			return err
		}
		mc.PC = address

	case instructions.Jump:
		mc.PC = in.NNN

	case instructions.Call:
		if err := mc.stack.push(mc.PC); err != nil {
			return err
		}
		mc.PC = in.NNN

	case instructions.JumpV0:
		mc.PC = uint16(mc.V[0]) + in.NNN

	case instructions.SkipEqual:
		if mc.V[in.X] == in.NN {
			mc.PC += 2
		}

	case instructions.SkipNotEqual:
		if mc.V[in.X] != in.NN {
			mc.PC += 2
		}

	case instructions.SkipEqualRegister:
		if mc.V[in.X] == mc.V[in.Y] {
			mc.PC += 2
		}

	case instructions.SkipNotEqualRegister:
		if mc.V[in.X] != mc.V[in.Y] {
			mc.PC += 2
		}

	case instructions.Load:
		mc.V[in.X] = in.NN

	case instructions.Add:
		// wraps at 8 bits. no carry flag for the immediate form
		mc.V[in.X] += in.NN

	case instructions.LoadRegister:
		mc.V[in.X] = mc.V[in.Y]

	case instructions.Or:
		mc.V[in.X] |= mc.V[in.Y]

	case instructions.And:
		mc.V[in.X] &= mc.V[in.Y]

	case instructions.Xor:
		mc.V[in.X] ^= mc.V[in.Y]

	case instructions.AddRegister:
		result := uint16(mc.V[in.X]) + uint16(mc.V[in.Y])
		mc.V[in.X] = uint8(result)
		mc.V[flag] = uint8(result >> 8)

	case instructions.SubRegister:
		// VF is cleared on borrow, set otherwise
		borrow := mc.V[in.X] < mc.V[in.Y]
		mc.V[in.X] -= mc.V[in.Y]
		if borrow {
			mc.V[flag] = 0
		} else {
			mc.V[flag] = 1
		}

	case instructions.SubRegisterReverse:
		borrow := mc.V[in.Y] < mc.V[in.X]
		mc.V[in.X] = mc.V[in.Y] - mc.V[in.X]
		if borrow {
			mc.V[flag] = 0
		} else {
			mc.V[flag] = 1
		}

	case instructions.ShiftRight:
		// the dropped bit is captured in VF before the shift
		lsb := mc.V[in.X] & 0x01
		mc.V[in.X] >>= 1
		mc.V[flag] = lsb

	case instructions.ShiftLeft:
		msb := mc.V[in.X] >> 7
		mc.V[in.X] <<= 1
		mc.V[flag] = msb

	case instructions.LoadIndex:
		mc.I = in.NNN

	case instructions.AddIndex:
		// wraps at 16 bits
		mc.I += uint16(mc.V[in.X])

	case instructions.Random:
		mc.V[in.X] = mc.rnd.Uint8() & in.NN

	case instructions.Draw:
		sprite := make([]uint8, in.N)
		for row := uint16(0); row < uint16(in.N); row++ {
			d, err := mc.mem.Read(mc.I + row)
			if err != nil {
				return curated.Errorf("cpu: %v", err)
			}
			sprite[row] = d
		}

		if mc.vid.Draw(mc.V[in.X], mc.V[in.Y], sprite) {
			mc.V[flag] = 1
		} else {
			mc.V[flag] = 0
		}

	case instructions.SkipKeyPressed:
		pressed, err := mc.keys.IsPressed(mc.V[in.X])
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		if pressed {
			mc.PC += 2
		}

	case instructions.SkipKeyNotPressed:
		pressed, err := mc.keys.IsPressed(mc.V[in.X])
		if err != nil {
			return curated.Errorf("cpu: %v", err)
		}
		if !pressed {
			mc.PC += 2
		}

	case instructions.LoadFromDelay:
		mc.V[in.X] = mc.tmr.Delay()

	case instructions.WaitKey:
		// cooperative waiting: if no key is pressed the program counter is
		// rewound so the same instruction is fetched on the next call to
		// Step(). the host delivers key events between calls
		if key, ok := mc.keys.FirstPressed(); ok {
			mc.V[in.X] = key
		} else {
			mc.PC -= 2
		}

	case instructions.LoadDelay:
		mc.tmr.SetDelay(mc.V[in.X])

	case instructions.LoadSound:
		mc.tmr.SetSound(mc.V[in.X])

	case instructions.LoadFontAddress:
		mc.I = memory.CharAddress(mc.V[in.X])

	case instructions.BCD:
		v := mc.V[in.X]
		for i, d := range [3]uint8{v / 100, (v / 10) % 10, v % 10} {
			if err := mc.mem.Write(mc.I+uint16(i), d); err != nil {
				return curated.Errorf("cpu: %v", err)
			}
		}

	case instructions.StoreRegisters:
		for i := uint16(0); i <= uint16(in.X); i++ {
			if err := mc.mem.Write(mc.I+i, mc.V[i]); err != nil {
				return curated.Errorf("cpu: %v", err)
			}
		}

	case instructions.ReadRegisters:
		for i := uint16(0); i <= uint16(in.X); i++ {
			d, err := mc.mem.Read(mc.I + i)
			if err != nil {
				return curated.Errorf("cpu: %v", err)
			}
			mc.V[i] = d
		}
	}

	return nil
}
