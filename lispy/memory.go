/*
Copyright (C) 2024  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lispy

import (
	"fmt"
	"io"
	"runtime"

	units "github.com/docker/go-units"
)

// WriteMemoryReport prints allocation counters of the process: objects
// freed and still in use, followed by heap sizes.
func WriteMemoryReport(w io.Writer) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Fprintf(w, "DEBUG - freed: %d, used: %d\n", m.Frees, m.Mallocs-m.Frees)
	fmt.Fprintf(w, "DEBUG - heap: %s, allocated total: %s, system: %s, gc runs: %d\n",
		units.HumanSize(float64(m.HeapAlloc)),
		units.HumanSize(float64(m.TotalAlloc)),
		units.HumanSize(float64(m.Sys)),
		m.NumGC)
}
