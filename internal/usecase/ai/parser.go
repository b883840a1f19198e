package ai

import (
	"encoding/json"
	"strings"
)

// Shape names the envelope layout a payload was recognized as
type Shape string

const (
	// ShapeUnrecognized means no decode case matched
	ShapeUnrecognized Shape = "unrecognized"
	// ShapeWrappedText is a mapping whose "text" field holds an encoded mapping
	ShapeWrappedText Shape = "wrapped_text"
	// ShapeObject is a mapping used as the record itself
	ShapeObject Shape = "object"
	// ShapeEncoded is a string holding an encoded mapping
	ShapeEncoded Shape = "encoded"
	// ShapeDoubleEncoded is a string holding an encoded string holding an encoded mapping
	ShapeDoubleEncoded Shape = "double_encoded"
)

// Outcome is the result of normalizing one envelope
type Outcome struct {
	Shape   Shape
	Payload map[string]any
}

// Recognized reports whether a record was extracted
func (o Outcome) Recognized() bool {
	return o.Shape != ShapeUnrecognized && o.Payload != nil
}

var unrecognized = Outcome{Shape: ShapeUnrecognized}

// decodeCase is one candidate envelope layout, tried in fixed order
type decodeCase struct {
	shape Shape
	match func(payload any) (map[string]any, bool)
}

var decodeCases = []decodeCase{
	{ShapeWrappedText, matchWrappedText},
	{ShapeObject, matchObject},
	{ShapeEncoded, matchEncoded},
	{ShapeDoubleEncoded, matchDoubleEncoded},
}

// Normalizer extracts structured records from agent response envelopes
type Normalizer struct{}

// NewNormalizer creates a new Normalizer instance
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize extracts a record from the envelope. It never panics; anything it
// cannot interpret comes back as ShapeUnrecognized. The envelope is not modified.
func (n *Normalizer) Normalize(envelope map[string]any) (out Outcome) {
	defer func() {
		if recover() != nil {
			out = unrecognized
		}
	}()

	payload, ok := Payload(envelope)
	if !ok {
		return unrecognized
	}

	for _, c := range decodeCases {
		if record, ok := c.match(payload); ok {
			return Outcome{Shape: c.shape, Payload: record}
		}
	}
	return unrecognized
}

// Payload returns the envelope's "result" slot, or its "message" slot when the
// result is empty. The second return is false when neither holds anything.
func Payload(envelope map[string]any) (any, bool) {
	if envelope == nil {
		return nil, false
	}
	if v := envelope["result"]; !isEmpty(v) {
		return v, true
	}
	if v := envelope["message"]; !isEmpty(v) {
		return v, true
	}
	return nil, false
}

func matchWrappedText(payload any) (map[string]any, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, false
	}
	text, ok := obj["text"].(string)
	if !ok {
		return nil, false
	}
	decoded, ok := decodeJSON(text)
	if !ok {
		return nil, false
	}
	inner, ok := decoded.(map[string]any)
	return inner, ok
}

func matchObject(payload any) (map[string]any, bool) {
	obj, ok := payload.(map[string]any)
	return obj, ok
}

func matchEncoded(payload any) (map[string]any, bool) {
	s, ok := payload.(string)
	if !ok {
		return nil, false
	}
	decoded, ok := decodeJSON(s)
	if !ok {
		return nil, false
	}
	obj, ok := decoded.(map[string]any)
	return obj, ok
}

func matchDoubleEncoded(payload any) (map[string]any, bool) {
	s, ok := payload.(string)
	if !ok {
		return nil, false
	}
	first, ok := decodeJSON(s)
	if !ok {
		return nil, false
	}
	inner, ok := first.(string)
	if !ok {
		return nil, false
	}
	return matchEncoded(inner)
}

// DecodeObject decodes s as an encoded mapping, accepting markdown code fences
func DecodeObject(s string) (map[string]any, bool) {
	return matchEncoded(s)
}

// decodeJSON parses s, retrying once with markdown code fences stripped
func decodeJSON(s string) (any, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v, true
	}

	stripped := extractJSON(s)
	if stripped == strings.TrimSpace(s) {
		return nil, false
	}
	if err := json.Unmarshal([]byte(stripped), &v); err != nil {
		return nil, false
	}
	return v, true
}

// isEmpty mirrors the "nothing there" values an agent may leave in a slot
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	}
	return false
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
