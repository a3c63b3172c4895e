package translation

import "errors"

var (
	// ErrDuplicateLocale reports an attempt to insert a second translation for
	// a locale already present in a set. Construction through GetOrCreate
	// never trips this; direct inserts that do are caller errors.
	ErrDuplicateLocale = errors.New("translation: duplicate locale in set")
	// ErrLocaleRequired reports an empty locale where one is mandatory.
	ErrLocaleRequired = errors.New("translation: locale is required")
)
