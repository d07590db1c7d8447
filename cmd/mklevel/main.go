// Command mklevel writes the built-in level as a cartridge file. A path
// ending in .gz is gzip compressed.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/Chairfield97/CPSC-305-GBA-Game/level"
)

func main() {
	out := flag.String("o", "default"+level.Extension, "output path")
	flag.Parse()

	if err := run(*out); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s", *out)
}

func run(path string) error {
	data, err := level.Encode(level.Default())
	if err != nil {
		return fmt.Errorf("failed to encode level: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".gz") {
		var buf bytes.Buffer
		gz := gzip.NewWriter(&buf)
		gz.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if _, err := gz.Write(data); err != nil {
			return fmt.Errorf("failed to compress level: %w", err)
		}
		if err := gz.Close(); err != nil {
			return fmt.Errorf("failed to compress level: %w", err)
		}
		data = buf.Bytes()
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write level: %w", err)
	}
	return nil
}
