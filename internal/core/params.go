package core

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

const DefaultQuantity = 1

var wordQuantities = map[string]int{
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
	"ten":   10,
}

// Quantity holds the raw qty field, which callers send either as a JSON
// number or as a string.
type Quantity struct {
	raw    string
	quoted bool
	set    bool
}

func (q *Quantity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*q = Quantity{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = Quantity{raw: s, quoted: true, set: true}
		return nil
	}
	*q = Quantity{raw: string(data), set: true}
	return nil
}

func (q Quantity) IsSet() bool {
	return q.set
}

// resolve reads quoted values the way a trigger's free text usually
// arrives: an optional sign and the leading decimal digits, ignoring the
// rest ("5 labels" is 5, "2.5" is 2). Bare JSON numbers are truncated.
func (q Quantity) resolve() int {
	if !q.set {
		return DefaultQuantity
	}

	var n int
	var ok bool
	if q.quoted {
		n, ok = leadingInt(q.raw)
	} else {
		f, err := strconv.ParseFloat(strings.TrimSpace(q.raw), 64)
		ok = err == nil && f > -(1<<53) && f < 1<<53
		n = int(f)
	}

	if !ok || n < 1 {
		return DefaultQuantity
	}
	return n
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// LabelRequest is one label as it arrives from the trigger, either as the
// whole /printLabel body or as an element of /printBatch items.
type LabelRequest struct {
	Body       string   `json:"body"`
	Qty        Quantity `json:"qty"`
	WordNumber string   `json:"wordNumber"`
}

type LabelParams struct {
	Text     string
	Quantity int
}

// ExtractParams resolves the copy count: wordNumber first, then qty, then
// DefaultQuantity. Unrecognised or non-positive values fall back to the
// default, so the result is always at least 1.
func ExtractParams(req LabelRequest) LabelParams {
	params := LabelParams{Text: req.Body, Quantity: DefaultQuantity}

	switch {
	case req.WordNumber != "":
		if n, ok := wordQuantities[strings.ToLower(strings.TrimSpace(req.WordNumber))]; ok {
			params.Quantity = n
		}
	case req.Qty.IsSet():
		params.Quantity = req.Qty.resolve()
	}

	return params
}
