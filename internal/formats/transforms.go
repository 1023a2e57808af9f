package formats

import "strings"

// lowered folds a value to lowercase, used for set codes and database IDs.
func lowered(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// quantityDigits strips the multiplier notation some deck exports use, so
// "4x" and "x4" both become "4".
func quantityDigits(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	value = strings.TrimPrefix(value, "x")
	value = strings.TrimSuffix(value, "x")
	return strings.TrimSpace(value)
}

// finishWord folds the many vendor spellings of a finish column into the
// canonical "", "foil", or "etched". Values that plainly mean a regular
// printing ("normal", "regular", "false", "no") erase to empty; anything
// containing "etched" wins over plain foil.
func finishWord(value string) string {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "normal", "regular", "false", "no", "non-foil", "nonfoil", "0":
		return ""
	}
	if strings.Contains(v, "etched") {
		return "etched"
	}
	if strings.Contains(v, "foil") || v == "true" || v == "yes" || v == "1" {
		return "foil"
	}
	return ""
}

// priceValue strips currency markers so "$1.23" and "1.23 USD" normalize to
// the bare decimal.
func priceValue(value string) string {
	v := strings.TrimSpace(value)
	v = strings.TrimPrefix(v, "$")
	v = strings.TrimPrefix(v, "€")
	v = strings.TrimSuffix(strings.TrimSpace(v), "USD")
	v = strings.TrimSuffix(strings.TrimSpace(v), "EUR")
	return strings.TrimSpace(v)
}
