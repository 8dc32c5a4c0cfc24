package main

import (
	"fmt"
	"os"

	"writeints.mleku.dev/chk"
)

func main() {
	fh, err := os.Create("base10k.txt")
	if chk.E(err) {
		panic(err)
	}
	defer fh.Close()
	for i := range 10000 {
		if _, err = fmt.Fprintf(fh, "%04d", i); chk.E(err) {
			panic(err)
		}
	}
}
