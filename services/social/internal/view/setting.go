package view

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mob-social/services/social/internal/entity"
)

type SettingKind string

const (
	KindNull   SettingKind = "null"
	KindString SettingKind = "string"
	KindNumber SettingKind = "number"
	KindBool   SettingKind = "bool"
	KindObject SettingKind = "object"
	KindArray  SettingKind = "array"
)

var ErrSettingKindMismatch = errors.New("setting value does not match its declared kind")

// settingKinds declares the value kind of the well-known user properties.
var settingKinds = map[string]SettingKind{
	entity.PropertyDefaultPictureID:     KindNumber,
	entity.PropertyDefaultCoverID:       KindNumber,
	entity.PropertyTimeZoneID:           KindString,
	entity.PropertyLanguage:             KindString,
	entity.PropertyNotificationsEnabled: KindBool,
	entity.PropertyPrivateProfile:       KindBool,
	entity.PropertySocialLinks:          KindObject,
}

// DeclaredKind reports the kind registered for name, if any.
func DeclaredKind(name string) (SettingKind, bool) {
	kind, ok := settingKinds[name]
	return kind, ok
}

// SettingValue is a decoded property value tagged with its kind.
type SettingValue struct {
	Kind   SettingKind
	String string
	Number float64
	Bool   bool
	// Raw holds the JSON text of object and array values.
	Raw json.RawMessage
}

func (v SettingValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.String)
	case KindNumber:
		return json.Marshal(v.Number)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindObject, KindArray:
		return v.Raw, nil
	default:
		return []byte("null"), nil
	}
}

// EncodeSetting is the form of value persisted in the entity property name.
// It decodes back to the same value: only strings of a declared string
// property that read back unchanged are stored unquoted.
func EncodeSetting(name string, value SettingValue) string {
	switch value.Kind {
	case KindString:
		if kind, _ := DeclaredKind(name); kind == KindString {
			if back, err := DecodeSetting(name, value.String); err == nil &&
				back.Kind == KindString && back.String == value.String {
				return value.String
			}
		}
		data, _ := json.Marshal(value.String)
		return string(data)
	case KindNumber:
		return strconv.FormatFloat(value.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(value.Bool)
	case KindObject, KindArray:
		return string(value.Raw)
	default:
		return ""
	}
}

type SettingView struct {
	Name  string       `json:"name"`
	Kind  SettingKind  `json:"kind"`
	Value SettingValue `json:"value"`
}

func ProjectSetting(prop entity.EntityProperty) (SettingView, error) {
	value, err := DecodeSetting(prop.PropertyName, prop.Value)
	if err != nil {
		return SettingView{}, err
	}
	return SettingView{Name: prop.PropertyName, Kind: value.Kind, Value: value}, nil
}

// DecodeSetting decodes raw against the kind declared for name. Names with no
// declared kind take whatever kind the JSON has, and non-JSON text is read as a
// plain string.
func DecodeSetting(name, raw string) (SettingValue, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SettingValue{Kind: KindNull}, nil
	}

	declared, hasDeclared := settingKinds[name]

	if !json.Valid([]byte(raw)) {
		if !hasDeclared || declared == KindString {
			return SettingValue{Kind: KindString, String: raw}, nil
		}
		return SettingValue{}, fmt.Errorf("%w: %s expects %s", ErrSettingKindMismatch, name, declared)
	}

	value, err := decodeJSON(raw)
	if err != nil {
		return SettingValue{}, err
	}
	if !hasDeclared || value.Kind == declared || value.Kind == KindNull {
		return value, nil
	}

	switch declared {
	case KindString:
		return SettingValue{Kind: KindString, String: raw}, nil
	case KindNumber:
		// numeric ids are sometimes stored quoted
		if value.Kind == KindString {
			if n, err := strconv.ParseFloat(value.String, 64); err == nil {
				return SettingValue{Kind: KindNumber, Number: n}, nil
			}
		}
	}
	return SettingValue{}, fmt.Errorf("%w: %s expects %s, got %s", ErrSettingKindMismatch, name, declared, value.Kind)
}

func decodeJSON(raw string) (SettingValue, error) {
	data := []byte(raw)
	switch data[0] {
	case '{':
		return SettingValue{Kind: KindObject, Raw: compact(data)}, nil
	case '[':
		return SettingValue{Kind: KindArray, Raw: compact(data)}, nil
	case 'n':
		return SettingValue{Kind: KindNull}, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return SettingValue{}, fmt.Errorf("failed to decode bool: %w", err)
		}
		return SettingValue{Kind: KindBool, Bool: b}, nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return SettingValue{}, fmt.Errorf("failed to decode string: %w", err)
		}
		return SettingValue{Kind: KindString, String: s}, nil
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return SettingValue{}, fmt.Errorf("failed to decode number: %w", err)
		}
		return SettingValue{Kind: KindNumber, Number: n}, nil
	}
}

func compact(data []byte) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return data
	}
	return buf.Bytes()
}
