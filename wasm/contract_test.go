package wasm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stretchr/testify/require"

	"github.com/TedDriggs/fql"
)

// exportSchema is the checked-in JSON Schema for ExportedParse's wire
// shape. It lives here rather than a .json file on disk so the contract
// and the test that enforces it travel together.
const exportSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["debugTree", "diagnostics"],
  "properties": {
    "debugTree": {"type": "string"},
    "diagnostics": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["message", "start", "end"],
        "properties": {
          "message": {"type": "string"},
          "start": {"type": "integer"},
          "end": {"type": "integer"}
        }
      }
    },
    "toExpr": {"$ref": "#/$defs/expr"}
  },
  "$defs": {
    "expr": {
      "type": "object",
      "required": ["kind"],
      "properties": {
        "kind": {"enum": ["binary", "paren", "clause"]},
        "op": {"type": "string"},
        "lhs": {"$ref": "#/$defs/expr"},
        "rhs": {"$ref": "#/$defs/expr"},
        "body": {"$ref": "#/$defs/expr"},
        "property": {"type": "string"},
        "operator": {"type": "string"},
        "operand": {
          "type": "object",
          "required": ["exact"],
          "properties": {
            "exact": {"type": "boolean"},
            "literalKind": {"enum": ["string", "integer", "boolean"]},
            "literalValue": {"type": ["string", "number", "boolean", "null"]}
          }
        }
      }
    }
  }
}`

func compileExportSchema(t *testing.T) *jsonschema.Schema {
	t.Helper()
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	url := "schema://fql-export.json"
	require.NoError(t, compiler.AddResource(url, strings.NewReader(exportSchema)))
	schema, err := compiler.Compile(url)
	require.NoError(t, err)
	return schema
}

func TestExportMatchesContractSchema(t *testing.T) {
	schema := compileExportSchema(t)

	filters := []string{
		"host.online:true",
		"host.online:true+tag:['prod']",
		"(a:1,b:2)+c:!~'x'",
		"",
		"host..online:true",
		"count:>9999999999999999999999",
	}

	for _, filter := range filters {
		filter := filter
		t.Run(filter, func(t *testing.T) {
			p := fql.ParseString(filter)
			exported := Export(p)

			data, err := json.Marshal(exported)
			require.NoError(t, err)

			var generic interface{}
			require.NoError(t, json.Unmarshal(data, &generic))

			require.NoError(t, schema.Validate(generic), "export for %q violates the contract schema", filter)
		})
	}
}

// TestExportIsStableAcrossReparse guards the wire shape itself, not just
// its schema conformance: exporting two independent parses of the same
// filter must produce field-for-field identical structures, the same
// property a decoded wire plan is checked against its source in the
// teacher pack's round-trip tests.
func TestExportIsStableAcrossReparse(t *testing.T) {
	filters := []string{
		"host.online:true+tag:['prod']",
		"(a:1,b:2)+c:!~'x'",
		"count:>9999999999999999999999",
	}
	for _, filter := range filters {
		a := Export(fql.ParseString(filter))
		b := Export(fql.ParseString(filter))
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("export for %q differs across identical parses (-first +second):\n%s", filter, diff)
		}
	}
}
