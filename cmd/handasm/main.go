// handasm takes a hand-assembled listing and produces a flat binary,
// parsing lines of the form:
//
//	XXXX OP A1 A2 ...
//
// where XXXX is a four hex digit address field (ignored beyond validating
// the line) and the remaining tokens are hex bytes to emit in order. Used
// to build small test ROM fixtures without a full assembler toolchain.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var offset = flag.Int("offset", 0x0000, "Offset to start writing assembled data. Everything prior is zero filled.")

var lineRE = regexp.MustCompile(`^[0-9A-Fa-f]{4}\s+(\S.*?)(?:\s*\(\*\).*)?$`)

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("Invalid command: %s <input> <output>", os.Args[0])
	}
	in, out := flag.Args()[0], flag.Args()[1]

	f, err := os.Open(in)
	if err != nil {
		log.Fatalf("Can't open %q for input - %v", in, err)
	}
	defer f.Close()

	output := make([]byte, *offset)
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		m := lineRE.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		fields := strings.Fields(m[1])
		if len(fields) == 0 || len(fields) > 3 {
			log.Fatalf("Invalid line %d - %q", line, text)
		}
		for _, v := range fields {
			b, err := strconv.ParseUint(v, 16, 8)
			if err != nil {
				log.Fatalf("Can't process input line %d %q - %v", line, text, err)
			}
			output = append(output, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Error reading %q - %v", in, err)
	}

	of, err := os.Create(out)
	if err != nil {
		log.Fatalf("Can't open output %q - %v", out, err)
	}
	defer of.Close()
	n, err := of.Write(output)
	if err != nil {
		log.Fatalf("Error writing to %q - %v", out, err)
	}
	if got, want := n, len(output); got != want {
		log.Fatalf("Short write to %q. Got %d and want %d", out, got, want)
	}
	fmt.Printf("Wrote %d bytes to %q\n", n, out)
}
