package reldate

import "errors"

var (
	// ErrUnsupportedLocale means the requested locale has no registered lexicon.
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrNoMatch means the input matched no phrase or template of the locale.
	ErrNoMatch = errors.New("no relative date expression matched")

	// ErrInvalidQuantity means a numeral slot held a token that is not a digit
	// sequence or number word, or that parsed to a non-positive count.
	ErrInvalidQuantity = errors.New("invalid quantity")
)
