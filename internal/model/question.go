package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type QuestionType string

const (
	QuestionTypeShortText    QuestionType = "short_text"
	QuestionTypeLongText     QuestionType = "long_text"
	QuestionTypeSingleSelect QuestionType = "single_select"
	QuestionTypeMultiSelect  QuestionType = "multi_select"
	QuestionTypeCheckbox     QuestionType = "checkbox"
)

// QuestionTypes lists every supported question type in display order.
var QuestionTypes = []QuestionType{
	QuestionTypeShortText,
	QuestionTypeLongText,
	QuestionTypeSingleSelect,
	QuestionTypeMultiSelect,
	QuestionTypeCheckbox,
}

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeShortText, QuestionTypeLongText,
		QuestionTypeSingleSelect, QuestionTypeMultiSelect,
		QuestionTypeCheckbox:
		return true
	}
	return false
}

type Question struct {
	ID           int64           `json:"id,string"`
	CampaignID   int64           `json:"campaign_id,string"`
	Text         string          `json:"question_text"`
	Type         QuestionType    `json:"question_type"`
	Options      json.RawMessage `json:"options"`
	IsRequired   bool            `json:"is_required"`
	DisplayOrder int32           `json:"display_order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// SameContent reports whether two questions would persist identically.
func (q Question) SameContent(other Question) bool {
	return q.Text == other.Text &&
		q.Type == other.Type &&
		q.IsRequired == other.IsRequired &&
		q.DisplayOrder == other.DisplayOrder &&
		bytes.Equal(q.Options, other.Options)
}

// QuestionInput is one entry of a desired question set. Items without an ID are
// created; items with an ID are merged field by field into the stored question.
type QuestionInput struct {
	ID           *int64          `json:"id,omitempty,string" jsonschema:"description=Existing question id. Omit to create a new question."`
	Text         *string         `json:"question_text,omitempty" jsonschema:"minLength=1,description=Required when creating."`
	Type         *QuestionType   `json:"question_type,omitempty" jsonschema:"enum=short_text,enum=long_text,enum=single_select,enum=multi_select,enum=checkbox,description=Required when creating."`
	Options      json.RawMessage `json:"options,omitempty" jsonschema:"description=TextOptions for text types; ChoiceOptions for select types; omitted for checkbox."`
	IsRequired   *bool           `json:"is_required,omitempty"`
	DisplayOrder *int32          `json:"display_order,omitempty" jsonschema:"description=Defaults to 0 on create."`
}

// QuestionOptions is the type-specific payload of a question. The set of
// implementations is closed: TextOptions, ChoiceOptions and CheckboxOptions.
type QuestionOptions interface {
	questionOptions()
}

type TextOptions struct {
	Placeholder string `json:"placeholder,omitempty"`
	MaxLength   int    `json:"max_length,omitempty" jsonschema:"minimum=0"`
}

type ChoiceOptions struct {
	Choices    []string `json:"choices" jsonschema:"minItems=1"`
	AllowOther bool     `json:"allow_other,omitempty"`
}

type CheckboxOptions struct{}

func (TextOptions) questionOptions()     {}
func (ChoiceOptions) questionOptions()   {}
func (CheckboxOptions) questionOptions() {}

var errCheckboxOptions = errors.New("checkbox questions take no options")

// DecodeQuestionOptions validates raw options against the question type and
// returns the parsed variant together with its canonical JSON encoding.
func DecodeQuestionOptions(t QuestionType, raw json.RawMessage) (QuestionOptions, json.RawMessage, error) {
	empty := isEmptyJSON(raw)

	switch t {
	case QuestionTypeShortText, QuestionTypeLongText:
		var opts TextOptions
		if !empty {
			if err := decodeStrict(raw, &opts); err != nil {
				return nil, nil, err
			}
		}
		if opts.MaxLength < 0 {
			return nil, nil, errors.New("max_length must not be negative")
		}
		return encodeOptions(opts)

	case QuestionTypeSingleSelect, QuestionTypeMultiSelect:
		if empty {
			return nil, nil, errors.New("at least one choice is required")
		}
		var opts ChoiceOptions
		if err := decodeStrict(raw, &opts); err != nil {
			return nil, nil, err
		}
		choices, err := normaliseChoices(opts.Choices)
		if err != nil {
			return nil, nil, err
		}
		opts.Choices = choices
		return encodeOptions(opts)

	case QuestionTypeCheckbox:
		if !empty {
			return nil, nil, errCheckboxOptions
		}
		return encodeOptions(CheckboxOptions{})
	}

	return nil, nil, fmt.Errorf("unsupported question type %q", t)
}

func normaliseChoices(in []string) ([]string, error) {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, errors.New("choices must not be blank")
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("duplicate choice %q", c)
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, errors.New("at least one choice is required")
	}
	return out, nil
}

func encodeOptions(opts QuestionOptions) (QuestionOptions, json.RawMessage, error) {
	b, err := json.Marshal(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("encoding options: %w", err)
	}
	return opts, b, nil
}

func decodeStrict(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 ||
		bytes.Equal(trimmed, []byte("null")) ||
		bytes.Equal(trimmed, []byte("{}"))
}
