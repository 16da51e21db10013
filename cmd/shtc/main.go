// Shtc - an SHT colour code converter
//
// Shtc converts colours between SHT codes, hex RGB strings and exact
// rational RGB triples.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import "github.com/jmylchreest/shtc/internal/cli"

func main() {
	cli.Execute()
}
