package model

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrNameRequired       = errors.New("model: name is required")
	ErrNoTranslatedFields = errors.New("model: at least one translated attribute is required")
	ErrDuplicateField     = errors.New("model: duplicate translated attribute")
	ErrReservedField      = errors.New("model: translated attribute collides with a reserved column")
)

// FieldKind classifies how a field access is routed by the record facade.
type FieldKind int

const (
	// FieldDirect routes reads and writes to the base record.
	FieldDirect FieldKind = iota
	// FieldTranslatable routes reads through locale resolution and writes to
	// the per-locale translation record.
	FieldTranslatable
)

// Descriptor declares the translatable surface of one model. Table and key
// names default to conventions derived from Name when left empty.
type Descriptor struct {
	// Name identifies the model, e.g. "product". Used for hook payloads,
	// logging and naming conventions.
	Name string
	// Table is the base table, defaulting to Name + "s".
	Table string
	// TranslationTable holds the per-locale rows, defaulting to
	// Name + "_translations", e.g. "product_translations".
	TranslationTable string
	// ForeignKey is the translation-table column referencing the base record,
	// defaulting to Name + "_id".
	ForeignKey string
	// TranslatedAttributes lists the fields routed through translations, in
	// declaration order.
	TranslatedAttributes []string
}

// Model is a validated descriptor with the field routing table resolved at
// construction time, avoiding string dispatch on every access.
type Model struct {
	Descriptor
	kinds map[string]FieldKind
}

// New normalizes and validates a descriptor, compiling the field accessor
// table.
func New(d Descriptor) (*Model, error) {
	d.Name = strings.TrimSpace(strings.ToLower(d.Name))
	d.Table = strings.TrimSpace(d.Table)
	d.TranslationTable = strings.TrimSpace(d.TranslationTable)
	d.ForeignKey = strings.TrimSpace(d.ForeignKey)

	if d.Table == "" && d.Name != "" {
		d.Table = d.Name + "s"
	}
	if d.TranslationTable == "" && d.Name != "" {
		d.TranslationTable = d.Name + "_translations"
	}
	if d.ForeignKey == "" && d.Name != "" {
		d.ForeignKey = d.Name + "_id"
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	kinds := make(map[string]FieldKind, len(d.TranslatedAttributes))
	attrs := make([]string, 0, len(d.TranslatedAttributes))
	for _, attr := range d.TranslatedAttributes {
		attr = strings.TrimSpace(attr)
		kinds[attr] = FieldTranslatable
		attrs = append(attrs, attr)
	}
	d.TranslatedAttributes = attrs

	return &Model{Descriptor: d, kinds: kinds}, nil
}

// MustNew panics when the descriptor is invalid. Intended for package-level
// model declarations.
func MustNew(d Descriptor) *Model {
	m, err := New(d)
	if err != nil {
		panic(err)
	}
	return m
}

// Validate checks the descriptor without compiling it.
func (d Descriptor) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required.Error(ErrNameRequired.Error())),
		validation.Field(&d.TranslatedAttributes,
			validation.Required.Error(ErrNoTranslatedFields.Error()),
			validation.By(d.validateTranslatedAttributes),
		),
	)
}

func (d Descriptor) validateTranslatedAttributes(value any) error {
	attrs, ok := value.([]string)
	if !ok {
		return ErrNoTranslatedFields
	}
	reserved := map[string]struct{}{
		"id":     {},
		"locale": {},
	}
	if d.ForeignKey != "" {
		reserved[strings.ToLower(d.ForeignKey)] = struct{}{}
	}
	seen := make(map[string]struct{}, len(attrs))
	for _, attr := range attrs {
		attr = strings.ToLower(strings.TrimSpace(attr))
		if attr == "" {
			return ErrNoTranslatedFields
		}
		if _, dup := seen[attr]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateField, attr)
		}
		if _, res := reserved[attr]; res {
			return fmt.Errorf("%w: %s", ErrReservedField, attr)
		}
		seen[attr] = struct{}{}
	}
	return nil
}

// Kind reports how the facade routes the given field.
func (m *Model) Kind(field string) FieldKind {
	if m == nil {
		return FieldDirect
	}
	if kind, ok := m.kinds[field]; ok {
		return kind
	}
	return FieldDirect
}

// Translatable reports whether the field is declared translatable.
func (m *Model) Translatable(field string) bool {
	return m.Kind(field) == FieldTranslatable
}
