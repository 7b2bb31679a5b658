/*
Copyright (C) 2024  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package lispy

import "io"
import "os"
import "fmt"
import "strings"
import "path/filepath"
import "compress/gzip"
import "github.com/ulikunitz/xz"
import "github.com/pierrec/lz4/v4"

// decompressor picks the stream decoder from the file extension.
func decompressor(filename string, r io.Reader) (io.Reader, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz":
		return gzip.NewReader(r)
	case ".xz":
		return xz.NewReader(r)
	case ".lz4":
		return lz4.NewReader(r), nil
	}
	return r, nil
}

// ReadSource reads program text from a file, uncompressing it on the fly
// if the file ends in .gz, .xz or .lz4.
func ReadSource(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()
	r, err := decompressor(filename, f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}
	return string(b), nil
}
