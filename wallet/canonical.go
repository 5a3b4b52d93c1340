package wallet

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// The canonical message is the exact byte sequence that gets signed. The
// verifying ledger recomputes it from its own numeric types, so every rule
// here (key order, no whitespace, the amount formatting, nonce quoted as a
// string) must match the reference serializer bit-for-bit. Do not "fix" the
// nonce-as-string asymmetry: the transport payload carries nonce as an
// integer, the signed message carries it quoted.

// FormatAmount renders a transfer amount in canonical form:
//   - non-finite values are rejected,
//   - mathematically integral values render as "<int>.0" (1 -> "1.0"),
//   - anything else renders as the shortest fixed-notation decimal that
//     round-trips to the same float64 (0.01 -> "0.01", 2.5 -> "2.5").
func FormatAmount(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", &NonFiniteAmountError{Message: fmt.Sprintf("amount must be finite, got %v", amount)}
	}
	if amount == math.Trunc(amount) {
		return strconv.FormatFloat(amount, 'f', 1, 64), nil
	}
	return strconv.FormatFloat(amount, 'f', -1, 64), nil
}

// EncodeTransfer builds the canonical message for a transfer. Keys are
// emitted in lexicographic order with no whitespace:
//
//	{"amount":<amt>,"from":"..","memo":"..","nonce":"<n>","to":".."}
func EncodeTransfer(from, to string, amount float64, memo string, nonce int64) ([]byte, error) {
	amt, err := FormatAmount(amount)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString(`{"amount":`)
	b.WriteString(amt)
	b.WriteString(`,"from":`)
	writeJSONString(&b, from)
	b.WriteString(`,"memo":`)
	writeJSONString(&b, memo)
	b.WriteString(`,"nonce":`)
	writeJSONString(&b, strconv.FormatInt(nonce, 10))
	b.WriteString(`,"to":`)
	writeJSONString(&b, to)
	b.WriteByte('}')
	return b.Bytes(), nil
}

const hexDigits = "0123456789abcdef"

// writeJSONString emits s as a JSON string with standard escaping only.
// encoding/json is not used here: its HTML-safe escaping of <, > and &
// would diverge from the reference serializer.
func writeJSONString(b *bytes.Buffer, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xf])
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte('"')
}
