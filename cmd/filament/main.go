// Command filament loads HTTP header blocks into filament header maps and
// reports how the maps behave.
//
// Usage:
//
//	filament inspect headers.txt
//	filament inspect --json < headers.txt
//	filament bench --tables 8 --names 2000
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
