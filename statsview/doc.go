// This file is part of Pim65.
//
// Pim65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pim65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pim65.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview offers a local HTTP server with runtime statistics. The
// server is only available when the program is built with the statsview build
// tag:
//
//	go build -tags statsview .
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12650/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12650/debug/pprof/
//
// Long simulations with a high instruction limit are the main use.
// Underlying functionality is provided by "github.com/go-echarts/statsview".
package statsview

// Address of the stats server.
const Address = "localhost:12650"

const url = "/debug/statsview"
