// Package format provides file format detection for grid inputs and outputs.
package format

import (
	"archive/zip"
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// JSON indicates a page dump: one JSON array holding one array of runs per page.
	JSON
	// JSONLines indicates a page dump with one JSON array of runs per line.
	JSONLines
	// XLSX indicates an Excel workbook.
	XLSX
	// YAML indicates a YAML document (output only).
	YAML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case JSON:
		return "JSON"
	case JSONLines:
		return "JSONLines"
	case XLSX:
		return "XLSX"
	case YAML:
		return "YAML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case JSON:
		return ".json"
	case JSONLines:
		return ".jsonl"
	case XLSX:
		return ".xlsx"
	case YAML:
		return ".yaml"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".json":
		return JSON
	case ".jsonl", ".ndjson":
		return JSONLines
	case ".xlsx":
		return XLSX
	case ".yaml", ".yml":
		return YAML
	default:
		return Unknown
	}
}

// Parse converts a format name as given on a command line ("json",
// "yaml", "xlsx", ...) to a Format.
func Parse(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pdf":
		return PDF, nil
	case "json":
		return JSON, nil
	case "jsonl", "ndjson", "jsonlines":
		return JSONLines, nil
	case "xlsx", "excel":
		return XLSX, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return Unknown, fmt.Errorf("unknown format %q", name)
	}
}

// DetectFromMagic checks leading bytes to determine format. ZIP archives
// are reported as XLSX without inspecting their contents; use
// DetectFromReader to confirm.
func DetectFromMagic(data []byte) Format {
	if len(data) >= 4 && data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' {
		return PDF
	}

	// ZIP magic: PK\x03\x04
	if len(data) >= 4 && data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		return XLSX
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return detectJSONLayout(trimmed)
	}

	return Unknown
}

// detectJSONLayout tells a single JSON array apart from JSON Lines: in the
// latter the first line is already a complete array and more follows.
func detectJSONLayout(data []byte) Format {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	if !sc.Scan() {
		return JSON
	}
	first := bytes.TrimSpace(sc.Bytes())
	if !json.Valid(first) {
		return JSON
	}
	for sc.Scan() {
		if len(bytes.TrimSpace(sc.Bytes())) > 0 {
			return JSONLines
		}
	}
	return JSON
}

// DetectFromReader inspects the content to determine format. ZIP archives
// are only reported as XLSX when they hold a workbook part.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	head := make([]byte, 4096)
	n, err := r.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	head = head[:n]

	f := DetectFromMagic(head)
	switch f {
	case XLSX:
		return detectZIPFormat(r, size)
	case JSON, JSONLines:
		// The head may cut the first line short; re-check on the whole input.
		data := make([]byte, size)
		if _, err := r.ReadAt(data, 0); err != nil && err != io.EOF {
			return Unknown, err
		}
		return detectJSONLayout(bytes.TrimLeft(data, " \t\r\n")), nil
	default:
		return f, nil
	}
}

// detectZIPFormat checks a ZIP archive for an Excel workbook part.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}
	for _, f := range zr.File {
		if f.Name == "xl/workbook.xml" {
			return XLSX, nil
		}
	}
	return Unknown, nil
}
