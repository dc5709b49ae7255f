package behavior

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	apperr "github.com/matzehuels/cardlayout/pkg/errors"
)

//go:embed card.schema.json
var cardSchemaJSON string

var (
	schemaOnce sync.Once
	cardSchema *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		cardSchema, schemaErr = jsonschema.CompileString("card.schema.json", cardSchemaJSON)
	})
	return cardSchema, schemaErr
}

// =============================================================================
// Card Decoding API
// =============================================================================

// ReadCardsFile reads a card file and returns the decoded cards.
// See [ReadCards] for the accepted format.
func ReadCardsFile(path string) ([]Card, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, apperr.Wrap(apperr.ErrCodeFileNotFound, err, "card file %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	cards, err := DecodeCards(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cards, nil
}

// ReadCards decodes cards from r.
//
// The input is either a JSON array of cards or a single card object:
//
//	[{"id": "117", "name": "Mine", "behaviors": [{"outputs": [{"type": "steel-production", "amount": 1}]}]}]
//
// The document is validated against the embedded card schema before decoding.
// Unknown fields are ignored. ReadCards does not close r.
func ReadCards(r io.Reader) ([]Card, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return DecodeCards(data)
}

// DecodeCards decodes and validates a card document held in memory.
func DecodeCards(data []byte) ([]Card, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var c Card
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, apperr.Wrap(apperr.ErrCodeInvalidCard, err, "decode card")
		}
		return []Card{c}, nil
	}

	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidCard, err, "decode cards")
	}
	return cards, nil
}

// DecodeBehaviors decodes a bare JSON array of behaviors.
func DecodeBehaviors(data []byte) ([]Behavior, error) {
	var bs []Behavior
	if err := json.Unmarshal(data, &bs); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidInput, err, "decode behaviors")
	}
	return bs, nil
}

// Validate checks a card document against the card schema.
func Validate(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeInternal, err, "compile card schema")
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidCard, err, "malformed JSON")
	}
	if err := schema.Validate(doc); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidCard, err, "card does not match schema")
	}
	return nil
}

// =============================================================================
// Encoding
// =============================================================================

// WriteCards writes cards as indented JSON to w.
func WriteCards(cards []Card, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalBehaviors returns the canonical JSON form of bs. It is used for
// content hashing, so the output must stay deterministic.
func MarshalBehaviors(bs []Behavior) ([]byte, error) {
	return json.Marshal(bs)
}
