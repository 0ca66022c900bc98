//go:build js && wasm

package main

import (
	"encoding/json"
	"math"
	"syscall/js"

	"github.com/TedDriggs/fql"
	"github.com/TedDriggs/fql/wasm"
)

func main() {
	js.Global().Set("fqlParse", js.FuncOf(fqlParse))
	select {} // keep the wasm instance alive for further calls from JS
}

// fqlParse(text string) js.Value parses text and returns an object mirroring
// Parse: toExpr, debugTree, diagnostics. Built by round-tripping through the
// same JSON shape wasm/contract_test.go validates, so the live binding and
// the tested contract never drift apart.
func fqlParse(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 || args[0].Type() != js.TypeString {
		return js.ValueOf(map[string]interface{}{
			"error": "fqlParse expects a single string argument",
		})
	}

	p := fql.ParseString(args[0].String())
	exported := wasm.Export(p)

	data, err := json.Marshal(exported)
	if err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return js.ValueOf(map[string]interface{}{"error": err.Error()})
	}

	value := js.ValueOf(patchOverflowLiterals(generic))
	return value
}

// patchOverflowLiterals walks the decoded JSON tree and replaces
// literalValue: null (the overflow sentinel for a too-large integer
// literal) with NaN, which js.ValueOf can't represent via JSON but can via
// a plain float64.
func patchOverflowLiterals(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		if kind, ok := val["literalKind"]; ok && kind == "integer" {
			if lv, present := val["literalValue"]; present && lv == nil {
				val["literalValue"] = math.NaN()
			}
		}
		for k, child := range val {
			val[k] = patchOverflowLiterals(child)
		}
		return val
	case []interface{}:
		for i, child := range val {
			val[i] = patchOverflowLiterals(child)
		}
		return val
	default:
		return v
	}
}
