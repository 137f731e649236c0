package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// TimestampKey is the field injected into every saved preference set.
const TimestampKey = "timestamp"

// Preference is one caller-supplied preference set. Its shape is not
// checked beyond being a non-empty JSON object.
type Preference map[string]interface{}

// PreferenceDocument is the persisted form of the saved preferences.
// SavedPreferences holds at most one entry, each save replaces it.
type PreferenceDocument struct {
	SavedPreferences []Preference `json:"saved_preferences"`
}

// EmptyDocument returns a document whose saved_preferences encodes as [].
func EmptyDocument() PreferenceDocument {
	return PreferenceDocument{SavedPreferences: []Preference{}}
}

// Normalize replaces a nil sequence with an empty one so the document
// never encodes saved_preferences as null.
func (d PreferenceDocument) Normalize() PreferenceDocument {
	if d.SavedPreferences == nil {
		d.SavedPreferences = []Preference{}
	}
	return d
}

// Decode parses data into v keeping JSON numbers as json.Number, so integers
// beyond float64 precision survive a save and load unchanged.
func Decode(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("invalid character after top-level value")
	}
	return nil
}

// Clone returns a deep copy of the preference set.
func (p Preference) Clone() Preference {
	if p == nil {
		return nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		out := make(Preference, len(p))
		for k, v := range p {
			out[k] = v
		}
		return out
	}
	var out Preference
	if err := Decode(b, &out); err != nil {
		return p
	}
	return out
}

// Clone returns a deep copy of the document.
func (d PreferenceDocument) Clone() PreferenceDocument {
	out := PreferenceDocument{SavedPreferences: make([]Preference, 0, len(d.SavedPreferences))}
	for _, p := range d.SavedPreferences {
		out.SavedPreferences = append(out.SavedPreferences, p.Clone())
	}
	return out
}
