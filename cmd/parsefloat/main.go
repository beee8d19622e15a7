// Command parsefloat is a thin smoke-testing CLI around the fastfloat
// package: it parses each literal given on the command line (or, with no
// arguments, one literal per line of stdin) and prints the correctly
// rounded bit pattern in hex.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/shogo82148/fastfloat"
)

func main() {
	bits := flag.Int("bits", 64, "target precision: 16, 32, 64 or 128")
	flag.Parse()

	switch *bits {
	case 16, 32, 64, 128:
	default:
		log.Fatalf("parsefloat: -bits must be 16, 32, 64 or 128, got %d", *bits)
	}

	args := flag.Args()
	if len(args) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			parseAndPrint(*bits, sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
		return
	}
	for _, s := range args {
		parseAndPrint(*bits, s)
	}
}

func parseAndPrint(bits int, s string) {
	switch bits {
	case 16:
		f, err := fastfloat.ParseFloat16(s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s -> %#04x\n", s, f.Bits())
	case 32:
		f, err := fastfloat.ParseFloat32(s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s -> %#08x\n", s, math.Float32bits(f))
	case 64:
		f, err := fastfloat.ParseFloat64(s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s -> %#016x\n", s, math.Float64bits(f))
	case 128:
		f, err := fastfloat.ParseFloat128(s)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s -> %#016x%016x\n", s, f.Hi, f.Lo)
	}
}
