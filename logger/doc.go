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

// Package logger is the central log for the entire application. Log entries
// are made with the Log() and Logf() functions, each entry comprising a tag
// (conventionally the originating package name) and the detail of what is
// being logged.
//
// Consecutive identical entries are coalesced into a single entry with a
// repeat count. The log is capped; the oldest entries are lost first.
//
// The log is kept in memory and written out on request with the Write() or
// Tail() functions. Alternatively, SetEcho() will duplicate new entries to an
// io.Writer as they arrive, which is useful when diagnosing a hang.
//
// Logging is for the host side of the emulator only. Nothing in the hardware
// package logs anything during the emulation's main loop - faults in the
// emulated machine are reported through error values, not the log.
package logger
