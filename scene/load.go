package scene

import (
	"bufio"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ReadSceneStream reads a scene from the given io.Reader.
//
// Two formats are accepted, detected from the first significant byte:
//   - JSON: a top level array of objects, whose keys are the field names.
//   - XML: a root element whose children are the objects. The attributes
//     are the fields; when `class` is not given, the element name is used,
//     so that <Rectangle x="0" .../> and <object class="Rectangle" .../> are
//     equivalent. Non UTF-8 encodings declared in the prolog are supported.
//
// Every failure, including an empty list, wraps ErrSceneLoad.
func ReadSceneStream(stream io.Reader) (Scene, error) {
	r := bufio.NewReader(stream)
	first, err := peekSignificant(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSceneLoad, err)
	}
	var sc Scene
	switch first {
	case '<':
		sc, err = readXML(r)
	default:
		sc, err = readJSON(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSceneLoad, err)
	}
	if len(sc) == 0 {
		return nil, fmt.Errorf("%w: no objects", ErrSceneLoad)
	}
	return sc, nil
}

// ReadScene reads the scene from the named file.
func ReadScene(file string) (Scene, error) {
	fin, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSceneLoad, err)
	}
	defer fin.Close()
	return ReadSceneStream(fin)
}

// peekSignificant returns the first byte which is not white space
// (or part of an UTF-8 BOM), without consuming it.
func peekSignificant(r *bufio.Reader) (byte, error) {
	for {
		b, err := r.Peek(1)
		if err != nil {
			if err == io.EOF {
				return 0, errors.New("empty source")
			}
			return 0, err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n', 0xEF, 0xBB, 0xBF:
			r.ReadByte()
		default:
			return b[0], nil
		}
	}
}

func readJSON(r io.Reader) (Scene, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after scene array")
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("top level value is %s, not an array", jsonKind(raw))
	}
	sc := make(Scene, len(list))
	for i, item := range list {
		// a non object entry is an object without fields
		fields, _ := item.(map[string]interface{})
		d := make(Descriptor, len(fields))
		for k, v := range fields {
			if value, ok := jsonScalar(v); ok {
				d[k] = value
			}
		}
		sc[i] = d
	}
	return sc, nil
}

// jsonScalar converts a decoded JSON value. Arrays, objects and null
// are not scalars and read as absent fields.
func jsonScalar(v interface{}) (Value, bool) {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return NewInt(i), true
		}
		f, err := v.Float64()
		if err != nil || math.IsNaN(f) {
			return Value{}, false
		}
		return NewInt(int64(f)), true
	case string:
		return NewString(v), true
	case bool:
		if v {
			return NewInt(1), true
		}
		return NewInt(0), true
	default:
		return Value{}, false
	}
}

func jsonKind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "an object"
	case string:
		return "a string"
	case json.Number:
		return "a number"
	case bool:
		return "a boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func readXML(r io.Reader) (Scene, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		sc       Scene
		depth    int
		seenRoot bool
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenRoot {
					return nil, errors.New("invalid xml scene")
				}
				return sc, nil
			}
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				seenRoot = true
			case 2:
				sc = append(sc, xmlObject(se))
			}
		case xml.EndElement:
			depth--
		}
	}
}

func xmlObject(se xml.StartElement) Descriptor {
	d := make(Descriptor, len(se.Attr)+1)
	for _, attr := range se.Attr {
		if i, err := parseXMLInt(attr.Value); err == nil {
			d[attr.Name.Local] = NewInt(i)
		} else {
			d[attr.Name.Local] = NewString(attr.Value)
		}
	}
	if !d.Has(fieldClass) && se.Name.Local != "object" {
		d[fieldClass] = NewString(se.Name.Local)
	}
	return d
}

// parseXMLInt accepts decimal integers and 0x prefixed hexadecimal ones,
// which are convenient for colors.
func parseXMLInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		u, err := strconv.ParseUint(s[2:], 16, 64)
		return int64(u), err
	}
	return strconv.ParseInt(s, 10, 64)
}
