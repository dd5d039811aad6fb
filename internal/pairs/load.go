package pairs

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/syncopener/internal/errors"
	"github.com/thoreinstein/syncopener/pkg/fileutil"
)

// FileName is the canonical pairs file name.
const FileName = ".syncopener"

// Encoding identifies the syntax of a pairs file.
type Encoding string

const (
	EncodingJSON Encoding = "json"
	EncodingYAML Encoding = "yaml"
	EncodingTOML Encoding = "toml"
)

// candidates lists pairs file names in lookup order.
var candidates = []struct {
	name string
	enc  Encoding
}{
	{FileName, EncodingJSON},
	{FileName + ".yaml", EncodingYAML},
	{FileName + ".yml", EncodingYAML},
	{FileName + ".toml", EncodingTOML},
}

// FileNames returns every file name Load looks for, in order.
func FileNames() []string {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.name
	}
	return names
}

// tomlDocument is the TOML shape: TOML has no top-level arrays.
type tomlDocument struct {
	Pairs []Pair `toml:"pairs"`
}

// Find returns the path and encoding of the pairs file in root.
func Find(root string) (string, Encoding, error) {
	for _, c := range candidates {
		p := filepath.Join(root, c.name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, c.enc, nil
		}
	}
	return "", "", errors.Wrapf(errors.ErrNotFound, "no %s in %s", FileName, root)
}

// Load reads the pairs file of the workspace at root.
// A missing file yields errors.ErrNotFound; an unreadable or malformed one
// yields an error marked errors.ErrInvalidConfig.
func Load(root string) (*Config, error) {
	path, enc, err := Find(root)
	if err != nil {
		return nil, err
	}
	return LoadFile(path, enc)
}

// LoadFile reads a pairs file with an explicit encoding.
func LoadFile(path string, enc Encoding) (*Config, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "reading %s", path), errors.ErrInvalidConfig)
	}

	list, err := Decode(data, enc)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parsing %s", path), errors.ErrInvalidConfig)
	}

	for i := range list {
		list[i].Directory1.normalize()
		list[i].Directory2.normalize()
	}

	return &Config{Pairs: list, Source: path}, nil
}

// Decode parses pairs from data.
func Decode(data []byte, enc Encoding) ([]Pair, error) {
	var list []Pair

	switch enc {
	case EncodingYAML:
		if err := yaml.Unmarshal(data, &list); err != nil {
			return nil, errors.Wrap(err, "decoding YAML")
		}
	case EncodingTOML:
		var doc tomlDocument
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, errors.Wrap(err, "decoding TOML")
		}
		list = doc.Pairs
	default:
		if err := json.Unmarshal(bytes.TrimSpace(data), &list); err != nil {
			return nil, errors.Wrap(err, "decoding JSON")
		}
	}

	return list, nil
}

// Encode renders pairs in the given encoding.
func Encode(list []Pair, enc Encoding) ([]byte, error) {
	switch enc {
	case EncodingYAML:
		data, err := yaml.Marshal(list)
		return data, errors.Wrap(err, "encoding YAML")
	case EncodingTOML:
		data, err := toml.Marshal(tomlDocument{Pairs: list})
		return data, errors.Wrap(err, "encoding TOML")
	default:
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encoding JSON")
		}
		return append(data, '\n'), nil
	}
}

// Write stores pairs at root under the file name for enc, atomically.
// It returns the written path.
func Write(root string, list []Pair, enc Encoding) (string, error) {
	data, err := Encode(list, enc)
	if err != nil {
		return "", err
	}

	name := FileName
	if enc != EncodingJSON {
		name += "." + string(enc)
	}
	path := filepath.Join(root, name)

	if err := fileutil.AtomicWriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	return path, nil
}
