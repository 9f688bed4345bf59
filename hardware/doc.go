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

// Package hardware assembles the components of the CHIP-8 machine - memory,
// CPU, framebuffer, keypad and timers - into the single Chip8 type.
//
// The machine is entirely passive. It has no clock and performs no I/O: the
// host calls Step() at its chosen instruction rate, TickTimers() at the
// conventional 60Hz, delivers key events with SetKey() and renders the
// Display() snapshot however it likes. The playmode package is the
// reference host.
//
// The machine is for single-owner, single-threaded use. To run several
// machines in parallel create several Chip8 instances; they share nothing.
package hardware
