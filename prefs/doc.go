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

// Package prefs facilitates the storage of preferential values in the Pim65
// system. It is intended to be used for values that can be changed by the
// user and which should be remembered between sessions.
//
// Values are represented by the Bool, Int and String types. A value is
// registered with a Disk instance with the Add() function, under a key:
//
//	var max prefs.Int
//	dsk, _ := prefs.NewDisk(paths.ResourcePath(prefs.DefaultPrefsFile))
//	_ = dsk.Add("pim65.maxinstructions", &max)
//	_ = dsk.Load(false)
//
// The file on disk is a simple list of key/value pairs, separated by KeySep,
// one to a line. The first line of the file is WarningBoilerPlate. Keys in
// the file that have not been added to a Disk instance are preserved when the
// file is saved.
//
// Values can also be specified on the command line with a prefs string, which
// is pushed onto a stack with PushCommandLineStack(). Values in the top group
// of the stack take precedence over values loaded from disk, but only for the
// first Load() after the push.
package prefs
