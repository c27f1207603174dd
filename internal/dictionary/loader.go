package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrFileInvalid indicates a dictionary file failed schema validation.
var ErrFileInvalid = errors.New("dictionary: file failed schema validation")

// fileSchema constrains dictionary files to lowercase hyphen-delimited slug
// entries before they reach New, so malformed content fails with a location
// instead of a downstream lookup miss.
const fileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "entries": {
      "type": "object",
      "minProperties": 1,
      "propertyNames": {
        "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"
      },
      "additionalProperties": {
        "type": "string",
        "pattern": "^[a-z0-9]+(-[a-z0-9]+)*$"
      }
    }
  },
  "required": ["entries"],
  "additionalProperties": false
}`

// File is the serialised dictionary format consumed by the loader.
type File struct {
	Entries map[string]string `json:"entries"`
}

// Loader reads dictionary files from disk.
type Loader struct {
	path string
}

// NewLoader constructs a loader that reads the provided file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses and validates the configured dictionary file.
func (l *Loader) Load(ctx context.Context) (*Dictionary, error) {
	if l == nil || l.path == "" {
		return nil, errors.New("dictionary: loader path cannot be empty")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %q: %w", l.path, err)
	}
	defer file.Close()

	return decodeFile(file)
}

func decodeFile(r io.Reader) (*Dictionary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read file: %w", err)
	}

	if err := validateFile(data); err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var f File
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("dictionary: decode file: %w", err)
	}

	return New(f.Entries)
}

func validateFile(data []byte) error {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("dictionary.json", strings.NewReader(fileSchema)); err != nil {
		return fmt.Errorf("dictionary: compile schema: %w", err)
	}
	schema, err := compiler.Compile("dictionary.json")
	if err != nil {
		return fmt.Errorf("dictionary: compile schema: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("dictionary: decode file: %w", err)
	}
	if err := schema.Validate(decoded); err != nil {
		return fmt.Errorf("%w: %v", ErrFileInvalid, err)
	}
	return nil
}
