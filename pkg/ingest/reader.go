// Copyright 2025 The ocp-visualizer Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrInputNotFound is returned when an export file does not exist
	ErrInputNotFound = errors.New("input file not found")
	// ErrNoHeader is returned when an export has no recognizable header line
	ErrNoHeader = errors.New("header not found")
)

// readTSV decodes a UTF-16 tab separated export. Little endian is assumed when
// the file carries no byte order mark
func readTSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Errorf("File not found: %s", path)
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("error reading file %s: %w", path, err)
	}
	defer f.Close()
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	r := csv.NewReader(transform.NewReader(f, decoder))
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading file %s: %w", path, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// header maps column names to their position in a record
type header map[string]int

func newHeader(record []string) header {
	h := header{}
	for i, col := range record {
		col = strings.TrimSpace(col)
		if _, ok := h[col]; !ok {
			h[col] = i
		}
	}
	return h
}

func (h header) has(col string) bool {
	_, ok := h[col]
	return ok
}

// get returns the trimmed value of col, false when the column is absent or
// the record is too short to hold it
func (h header) get(record []string, col string) (string, bool) {
	i, ok := h[col]
	if !ok || i >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[i]), true
}

// value is get without the presence flag
func (h header) value(record []string, col string) string {
	v, _ := h.get(record, col)
	return v
}

// missing returns the first required column the record cannot provide
func (h header) missing(record []string, required []string) string {
	for _, col := range required {
		if _, ok := h.get(record, col); !ok {
			return col
		}
	}
	return ""
}

func isTrue(v string) bool {
	return v == "True"
}
