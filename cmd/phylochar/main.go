// SPDX-License-Identifier: MIT

// Command phylochar inspects, converts and combines character matrices.
package main

func main() {
	Execute()
}
