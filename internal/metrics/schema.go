package metrics

// resultSchema is the JSON schema a benchmark result file must satisfy
// before it is decoded. The two summary maps are optional conveniences for
// external readers; only the detailed function list is required.
const resultSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "gatediff benchmark result document",
  "type": "object",
  "required": ["functions"],
  "properties": {
    "gate_counts": {
      "type": "object",
      "additionalProperties": {"type": "integer", "minimum": 0}
    },
    "functions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "gate_count": {"type": "integer", "minimum": 0},
          "da_gas": {"$ref": "#/definitions/gas"},
          "l2_gas": {"$ref": "#/definitions/gas"}
        }
      }
    },
    "total_gas": {
      "type": "object",
      "additionalProperties": {"type": "integer", "minimum": 0}
    }
  },
  "definitions": {
    "gas": {
      "type": "object",
      "properties": {
        "execution": {"type": "integer", "minimum": 0},
        "teardown": {"type": "integer", "minimum": 0}
      }
    }
  }
}`
