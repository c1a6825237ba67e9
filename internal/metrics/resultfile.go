package metrics

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
	"github.com/xeipuuv/gojsonschema"
)

// lz4Ext marks result files stored as LZ4-framed CI artifacts.
const lz4Ext = ".lz4"

// resultFilePerm is the permission mode for written result files.
const resultFilePerm = 0o644

// jsonIndent is the indentation used for written result documents.
const jsonIndent = "  "

// ErrInvalidDocument indicates a result file that is valid JSON but does not
// have the required benchmark result structure.
var ErrInvalidDocument = errors.New("invalid benchmark result document")

// Document is the on-disk benchmark result format: two name-keyed summary
// maps for external readers plus the detailed per-function list the
// comparison engine consumes.
type Document struct {
	GateCounts map[string]uint64 `json:"gate_counts"`
	Functions  []Record          `json:"functions"`
	TotalGas   map[string]uint64 `json:"total_gas"`
}

// ReadResultSet loads one run's measurements for a unit from path.
// Files ending in .lz4 are decompressed transparently. The document is
// validated against the result schema before decoding, so a malformed file
// fails with ErrInvalidDocument instead of decoding into garbage.
func ReadResultSet(path, unit string) (ResultSet, error) {
	raw, err := readMaybeCompressed(path)
	if err != nil {
		return ResultSet{}, fmt.Errorf("read results %s: %w", path, err)
	}

	validateErr := validateDocument(raw)
	if validateErr != nil {
		return ResultSet{}, fmt.Errorf("validate results %s: %w", path, validateErr)
	}

	var doc Document

	decodeErr := json.Unmarshal(raw, &doc)
	if decodeErr != nil {
		return ResultSet{}, fmt.Errorf("decode results %s: %w", path, decodeErr)
	}

	return ResultSet{Unit: unit, Records: doc.Functions}, nil
}

// WriteResultSet persists one run's measurements as a result document,
// including the summary maps. Files ending in .lz4 are compressed.
func WriteResultSet(path string, set ResultSet) error {
	doc := Document{
		GateCounts: make(map[string]uint64, len(set.Records)),
		Functions:  set.Records,
		TotalGas:   make(map[string]uint64, len(set.Records)),
	}

	for _, rec := range set.Records {
		doc.GateCounts[rec.Name] = rec.GateCount
		doc.TotalGas[rec.Name] = rec.DAGas.Total() + rec.L2Gas.Total()
	}

	raw, err := json.MarshalIndent(doc, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	if strings.HasSuffix(path, lz4Ext) {
		raw, err = compress(raw)
		if err != nil {
			return fmt.Errorf("compress results: %w", err)
		}
	}

	writeErr := os.WriteFile(path, raw, resultFilePerm)
	if writeErr != nil {
		return fmt.Errorf("write results %s: %w", path, writeErr)
	}

	return nil
}

func readMaybeCompressed(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(path, lz4Ext) {
		return raw, nil
	}

	decompressed, err := io.ReadAll(lz4.NewReader(bytes.NewReader(raw)))
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}

	return decompressed, nil
}

func compress(raw []byte) ([]byte, error) {
	var buf bytes.Buffer

	writer := lz4.NewWriter(&buf)

	_, writeErr := writer.Write(raw)
	if writeErr != nil {
		return nil, writeErr
	}

	closeErr := writer.Close()
	if closeErr != nil {
		return nil, closeErr
	}

	return buf.Bytes(), nil
}

func validateDocument(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resultSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	if result.Valid() {
		return nil
	}

	descriptions := make([]string, 0, len(result.Errors()))
	for _, violation := range result.Errors() {
		descriptions = append(descriptions, violation.String())
	}

	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(descriptions, "; "))
}
