package todo

import "strconv"

// ParseCompleted maps request input to a completion flag. Only the literal
// "true" means true; every other value, including "", "TRUE" and "1", is false.
func ParseCompleted(raw string) bool {
	return raw == "true"
}

// ParseIndex parses a positional index from request input. Only plain ASCII
// digits are accepted: signs, spaces and anything out of int range yield an
// ErrNotFound-kind error, since no list or todo can live at that position.
func ParseIndex(raw string) (int, error) {
	if raw == "" {
		return 0, ErrNotFound
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return 0, ErrNotFound
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrNotFound
	}
	return n, nil
}
