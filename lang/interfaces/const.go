// Mathlang
// Copyright (C) James Shubin and the project contributors
// Written by James Shubin <james@shubin.ca> and the project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package interfaces

const (
	// DotFileNameExtension is the filename extension used for programs.
	DotFileNameExtension = ".mth"

	// MainFilename is the name of the program which is run when a directory
	// is given as input.
	MainFilename = "main" + DotFileNameExtension

	// ConfigFilename is the name of the config file which is read from the
	// same directory as the program if no other config is specified.
	ConfigFilename = "mathlang.yaml"

	// StdinInput is the input string which means the program should be read
	// from stdin.
	StdinInput = "-"
)
