// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/blosc-go/ndlz

package main

import (
	"encoding/gob"
	"os"

	"github.com/pkg/errors"

	"github.com/blosc-go/ndlz/chunk"
)

// archive is ndlzcli's own on-disk container for a tiled, compressed array:
// purely a CLI-level concern, not part of the NDLZ wire format itself.
type archive struct {
	Rows, Cols int
	Blocks     []chunk.Block
	Streams    [][]byte
}

func writeArchive(path string, rows, cols int, blocks []chunk.Block, streams [][]byte) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %q", path)
	}
	defer f.Close()

	a := archive{Rows: rows, Cols: cols, Blocks: blocks, Streams: streams}
	if err := gob.NewEncoder(f).Encode(&a); err != nil {
		return errors.Wrapf(err, "writing archive %q", path)
	}
	return nil
}

func readArchive(path string) (archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return archive{}, errors.Wrapf(err, "opening %q", path)
	}
	defer f.Close()

	var a archive
	if err := gob.NewDecoder(f).Decode(&a); err != nil {
		return archive{}, errors.Wrapf(err, "reading archive %q", path)
	}
	return a, nil
}
