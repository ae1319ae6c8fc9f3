package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	keyStudioDappID      = "studioDappId"
	keyIPFSHeliaGateways = "ipfsHeliaGateways"
)

// Document is a JSON config object kept as raw bytes, so fields this
// package does not own survive untouched, in their original order.
type Document struct {
	raw []byte
}

// ParseDocument checks that data holds a single JSON object.
func ParseDocument(data []byte) (*Document, error) {
	data = bytes.TrimSpace(data)
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("failed to parse config: invalid UTF-8")
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to parse config: invalid JSON")
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("failed to parse config: top level is not an object")
	}
	return &Document{raw: data}, nil
}

// Set replaces the first occurrence of key in place and drops any later
// duplicates, or appends key when absent.
func (d *Document) Set(key string, value interface{}) error {
	encKey, err := encodeJSON(key)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	encValue, err := encodeJSON(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	var (
		buf   bytes.Buffer
		found bool
		n     int
	)
	buf.WriteByte('{')
	gjson.ParseBytes(d.raw).ForEach(func(k, v gjson.Result) bool {
		name, raw := k.Raw, v.Raw
		if k.String() == key {
			if found {
				return true
			}
			found = true
			name, raw = string(encKey), string(encValue)
		}
		if n > 0 {
			buf.WriteByte(',')
		}
		n++
		buf.WriteString(name)
		buf.WriteByte(':')
		buf.WriteString(raw)
		return true
	})
	buf.WriteByte('}')
	if found {
		d.raw = buf.Bytes()
		return nil
	}

	out, err := sjson.SetRawBytes(d.raw, key, encValue)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	d.raw = out
	return nil
}

func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

func (d *Document) get(key string) gjson.Result {
	return gjson.GetBytes(d.raw, key)
}

// Apply writes the patch fields into the document.
func (d *Document) Apply(p Patch) error {
	if err := d.Set(keyStudioDappID, p.StudioDappID); err != nil {
		return err
	}
	if p.IPFSHeliaGateways != nil {
		if err := d.Set(keyIPFSHeliaGateways, p.IPFSHeliaGateways); err != nil {
			return err
		}
	}
	return nil
}

// Bytes renders the document with two-space indentation and a trailing
// newline.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, d.raw, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to format config: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// PatchFile applies p to the JSON file at path and returns the absolute path
// it wrote. The file is read fully, closed, then overwritten; nothing is
// written when any earlier step fails.
func PatchFile(path string, p Patch) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", dataErrorf("failed to resolve %s: %w", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return abs, dataErrorf("failed to read config file: %w", err)
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return abs, &DataError{Err: fmt.Errorf("%s: %w", abs, err)}
	}
	if err := doc.Apply(p); err != nil {
		return abs, &DataError{Err: err}
	}

	out, err := doc.Bytes()
	if err != nil {
		return abs, &DataError{Err: err}
	}
	if err := os.WriteFile(abs, out, 0644); err != nil {
		return abs, dataErrorf("failed to write config file: %w", err)
	}
	return abs, nil
}
