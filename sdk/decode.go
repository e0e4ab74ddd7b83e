package sdk

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"

	"github.com/tidwall/gjson"
)

// snippetLimit caps the body excerpt carried by errors.
const snippetLimit = 512

var (
	errInvalidJSON = errors.New("body is not valid JSON")
	errNotObject   = errors.New("body is not a JSON object")
)

func snippetOf(body []byte) (string, bool) {
	if len(body) <= snippetLimit {
		return string(body), false
	}
	return string(body[:snippetLimit]), true
}

// missingFieldError reports a mandatory field that was absent or null.
type missingFieldError struct {
	path string
}

func (e *missingFieldError) Error() string {
	return "mandatory field " + e.path + " is missing"
}

// decodeResponse parses body into a T and checks that every mandatory
// field was present.
func decodeResponse[T any](body []byte, policy *FieldPolicy) (*T, error) {
	var out T
	t := reflect.TypeOf(out)
	fail := func(field string, err error) (*T, error) {
		snippet, truncated := snippetOf(body)
		return nil, &DecodeError{Type: t.Name(), Field: field, Snippet: snippet, Truncated: truncated, Err: err}
	}

	if !gjson.ValidBytes(body) {
		return fail("", errInvalidJSON)
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return fail("", errNotObject)
	}
	if err := json.Unmarshal(body, &out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return fail(typeErr.Field, err)
		}
		return fail("", err)
	}
	if err := checkPresence(t, doc, policy, ""); err != nil {
		var missing *missingFieldError
		if errors.As(err, &missing) {
			return fail(missing.path, err)
		}
		return fail("", err)
	}
	return &out, nil
}

// checkPresence walks t alongside the parsed document. Type mismatches were
// already caught by json.Unmarshal, so only presence is checked here.
func checkPresence(t reflect.Type, doc gjson.Result, policy *FieldPolicy, path string) error {
	if !hasRecords(t) {
		return nil
	}
	switch t.Kind() {
	case reflect.Pointer:
		if !doc.Exists() || doc.Type == gjson.Null {
			return nil
		}
		return checkPresence(t.Elem(), doc, policy, path)
	case reflect.Slice:
		if !doc.IsArray() {
			return nil
		}
		for i, el := range doc.Array() {
			if err := checkPresence(t.Elem(), el, policy, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
		if doc.Type == gjson.Null {
			return &missingFieldError{path: path}
		}
		if !doc.IsObject() {
			return nil
		}
		for _, f := range fieldsOf(t) {
			v := doc.Get(gjsonKey(f.key))
			fieldPath := joinPath(path, f.key)
			present := v.Exists() && v.Type != gjson.Null
			if !present {
				if policy.Mandatory(t.Name(), f.key, !f.optional) {
					return &missingFieldError{path: fieldPath}
				}
				continue
			}
			if err := checkPresence(f.typ, v, policy, fieldPath); err != nil {
				return err
			}
		}
	}
	return nil
}

// hasRecords reports whether t contains a struct somewhere, i.e. whether
// there is anything to check below it.
func hasRecords(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return hasRecords(t.Elem())
	}
	return false
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// gjsonKey escapes the gjson path metacharacters in a plain object key.
func gjsonKey(key string) string {
	escaped := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		switch key[i] {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, key[i])
	}
	return string(escaped)
}
