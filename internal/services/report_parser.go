package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const (
	FieldMatchPercentage   = "match_percentage"
	FieldMissingSkills     = "missing_skills"
	FieldSuggestedProjects = "suggested_projects"
)

// RequiredFields are checked once, after every normalization rule has run.
var RequiredFields = []string{FieldMatchPercentage, FieldMissingSkills, FieldSuggestedProjects}

// envelopeKeys may wrap the real payload, in priority order.
var envelopeKeys = []string{"analysis_result", "result"}

// legacyFieldNames maps alternate names some models emit to canonical fields.
var legacyFieldNames = []struct{ from, to string }{
	{"match_score", FieldMatchPercentage},
	{"missing", FieldMissingSkills},
	{"projects", FieldSuggestedProjects},
}

// NormalizationRule rewrites a decoded payload toward the canonical shape.
// A rule that returns an error stops normalization.
type NormalizationRule struct {
	Name  string
	Apply func(payload map[string]any) (map[string]any, error)
}

// NormalizationRules run in order before validation.
var NormalizationRules = []NormalizationRule{
	{Name: "unwrap_envelope", Apply: UnwrapEnvelope},
	{Name: "rename_legacy_fields", Apply: func(payload map[string]any) (map[string]any, error) {
		return RenameLegacyFields(payload), nil
	}},
}

// ParseError means the analysis text could not be read as JSON at all.
// Nothing should be rendered when it is returned.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not parse analysis: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("could not parse analysis: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type Report struct {
	MatchPercentage   any
	Score             int
	MissingSkills     []string
	SuggestedProjects []string
	// MissingFields lists required fields that were absent or null.
	MissingFields []string
	// Fields is the normalized payload.
	Fields map[string]any
}

func (r *Report) Complete() bool {
	return len(r.MissingFields) == 0
}

func (r *Report) Warning() string {
	if r.Complete() {
		return ""
	}
	return fmt.Sprintf("Missing fields: [%s]", strings.Join(r.MissingFields, ", "))
}

// ParseAnalysis reads an analyze endpoint response body. The payload is taken
// from "analysis_result", then "result", then the body itself; a string
// payload is decoded again as JSON. A body that carries an envelope key with
// an empty value is a parse failure.
func ParseAnalysis(body []byte) (*Report, error) {
	decoded, err := decodeJSON(body)
	if err != nil {
		return nil, &ParseError{Reason: "response is not valid JSON", Err: err}
	}

	resp, ok := decoded.(map[string]any)
	if !ok {
		return nil, &ParseError{Reason: fmt.Sprintf("response is a %s, not an object", jsonKind(decoded))}
	}

	var payload any = resp
	if key, v, present := envelopeValue(resp); present {
		if !truthy(v) {
			return nil, &ParseError{Reason: fmt.Sprintf("%s is an empty %s", key, jsonKind(v))}
		}
		payload = v
	}

	return parsePayload(payload)
}

// ParseAnalysisText reads the raw model text.
func ParseAnalysisText(text string) (*Report, error) {
	return parsePayload(text)
}

func parsePayload(payload any) (*Report, error) {
	if s, ok := payload.(string); ok {
		decoded, err := decodeJSON([]byte(s))
		if err != nil {
			return nil, &ParseError{Reason: "analysis result is not valid JSON", Err: err}
		}
		payload = decoded
	}

	fields, ok := payload.(map[string]any)
	if !ok {
		return nil, &ParseError{Reason: fmt.Sprintf("analysis result is a %s, not an object", jsonKind(payload))}
	}

	fields, err := Normalize(fields)
	if err != nil {
		return nil, err
	}
	return buildReport(fields), nil
}

// Normalize applies NormalizationRules in order.
func Normalize(payload map[string]any) (map[string]any, error) {
	for _, rule := range NormalizationRules {
		var err error
		payload, err = rule.Apply(payload)
		if err != nil {
			return nil, err
		}
	}
	return payload, nil
}

// UnwrapEnvelope removes one level of analysis_result/result nesting. A
// nested JSON string is decoded. An envelope whose value is not an object,
// or a string holding one, is a *ParseError.
func UnwrapEnvelope(payload map[string]any) (map[string]any, error) {
	key, inner, present := envelopeValue(payload)
	if !present {
		return payload, nil
	}

	if s, ok := inner.(string); ok {
		decoded, err := decodeJSON([]byte(s))
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("%s is not valid JSON", key), Err: err}
		}
		inner = decoded
	}

	m, ok := inner.(map[string]any)
	if !ok {
		return nil, &ParseError{Reason: fmt.Sprintf("%s is a %s, not an object", key, jsonKind(inner))}
	}
	return m, nil
}

// envelopeValue returns the first non-empty envelope value, or the first
// envelope key present when all are empty.
func envelopeValue(payload map[string]any) (key string, value any, present bool) {
	for _, k := range envelopeKeys {
		if truthy(payload[k]) {
			return k, payload[k], true
		}
	}
	for _, k := range envelopeKeys {
		if v, ok := payload[k]; ok {
			return k, v, true
		}
	}
	return "", nil, false
}

// RenameLegacyFields moves alternate field names to their canonical names
// unless the canonical field is already present.
func RenameLegacyFields(payload map[string]any) map[string]any {
	for _, name := range legacyFieldNames {
		v, ok := payload[name.from]
		if !ok {
			continue
		}
		if _, exists := payload[name.to]; exists {
			continue
		}
		payload[name.to] = v
		delete(payload, name.from)
	}
	return payload
}

func buildReport(fields map[string]any) *Report {
	report := &Report{Fields: fields}

	for _, name := range RequiredFields {
		if v, ok := fields[name]; !ok || v == nil {
			report.MissingFields = append(report.MissingFields, name)
		}
	}

	report.MatchPercentage = fields[FieldMatchPercentage]
	report.Score = ParseScore(fields[FieldMatchPercentage])
	report.MissingSkills = stringList(fields[FieldMissingSkills])
	report.SuggestedProjects = stringList(fields[FieldSuggestedProjects])

	return report
}

// ParseScore strips percent signs and parses the rest as an integer. Absent
// or unparsable values score 0.
func ParseScore(v any) int {
	if v == nil {
		return 0
	}

	raw := strings.TrimSpace(strings.ReplaceAll(stringify(v), "%", ""))
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return score
}

func stringList(v any) []string {
	var items []any
	switch list := v.(type) {
	case nil:
		return nil
	case []any:
		items = list
	default:
		items = []any{list}
	}

	var out []string
	for _, item := range items {
		if item == nil {
			continue
		}
		s := strings.TrimSpace(stringify(item))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

// decodeJSON keeps numbers as json.Number so "85" and "85.0" stay distinct.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return v, nil
}

func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return val != ""
	case bool:
		return val
	case json.Number:
		f, err := val.Float64()
		return err != nil || f != 0
	case map[string]any:
		return len(val) > 0
	case []any:
		return len(val) > 0
	default:
		return true
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
