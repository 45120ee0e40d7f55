package workspace

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaBaseURL = "https://github.com/pablasso/tasktree/schemas/"

const taskSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["description", "priority", "status"],
  "properties": {
    "description": {"type": "string"},
    "priority": {"enum": ["HIGH", "MEDIUM", "LOW"]},
    "status": {"enum": ["TO_BE_DONE", "IN_PROGRESS", "DONE"]}
  }
}`

const taskListSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "tasks"],
  "properties": {
    "name": {"type": "string"},
    "tasks": {"type": "array", "items": {"type": "string"}}
  }
}`

const workspaceSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "task_list"],
  "properties": {
    "name": {"type": "string"},
    "task_list": {"type": "array", "items": {"type": "string"}}
  }
}`

var (
	taskSchema      = jsonschema.MustCompileString(schemaBaseURL+"task.json", taskSchemaJSON)
	taskListSchema  = jsonschema.MustCompileString(schemaBaseURL+"task-list.json", taskListSchemaJSON)
	workspaceSchema = jsonschema.MustCompileString(schemaBaseURL+"workspace.json", workspaceSchemaJSON)
)

// encodeJSON marshals v compactly without escaping <, > and &.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// decodeDocument checks data against schema before unmarshaling it into dst.
func decodeDocument(data []byte, schema *jsonschema.Schema, dst any) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return &FormatError{Err: err}
	}

	if err := schema.Validate(raw); err != nil {
		return schemaFormatError(err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return &FormatError{Err: err}
	}
	return nil
}

// schemaFormatError reports the first leaf cause of a schema violation.
func schemaFormatError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &FormatError{Err: err}
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &FormatError{
		Path: jsonPointerToPath(ve.InstanceLocation),
		Err:  errors.New(ve.Message),
	}
}

// nestError prefixes the location of a failure inside an embedded document.
func nestError(prefix string, err error) error {
	var fe *FormatError
	if errors.As(err, &fe) {
		path := prefix
		if fe.Path != "" {
			path += "." + fe.Path
		}
		return &FormatError{Path: path, Err: fe.Err}
	}
	return &nestedError{prefix: prefix, err: err}
}

type nestedError struct {
	prefix string
	err    error
}

func (e *nestedError) Error() string { return e.prefix + ": " + e.err.Error() }

func (e *nestedError) Unwrap() error { return e.err }

// jsonPointerToPath turns "/tasks/1" into "tasks[1]".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var path strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path.WriteString("[" + strconv.Itoa(idx) + "]")
			continue
		}
		if path.Len() > 0 {
			path.WriteString(".")
		}
		path.WriteString(part)
	}
	return path.String()
}
