package coffer

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/boxmeout/coffer/errors"
)

// conditionFormat matches "<extension>/<type>/<data>". (?s) lets the
// binary data contain newlines.
var conditionFormat = regexp.MustCompile(`(?s)^([a-zA-Z0-9_\-]{3,8})/([a-zA-Z0-9_\-]{3,8})/(.+)$`)

// Condition names a party that can authorize an action: a signing key
// ("sigs/ed25519/<pubkey>") or a module owned account such as the fee
// pool ("treasury/pool/fees"). Funds are held by the Address of a
// condition.
type Condition []byte

// NewCondition builds the condition "<ext>/<typ>/<data>".
func NewCondition(ext, typ string, data []byte) Condition {
	c := make(Condition, 0, len(ext)+len(typ)+len(data)+2)
	c = append(c, ext...)
	c = append(c, '/')
	c = append(c, typ...)
	c = append(c, '/')
	return append(c, data...)
}

// Parse splits the condition into its extension, type and data.
func (c Condition) Parse() (ext, typ string, data []byte, err error) {
	m := conditionFormat.FindSubmatch(c)
	if m == nil {
		return "", "", nil, errors.ErrInput.Newf("malformed condition %X", []byte(c))
	}
	return string(m[1]), string(m[2]), m[3], nil
}

func (c Condition) Validate() error {
	_, _, _, err := c.Parse()
	return err
}

// Address is the account controlled by this condition.
func (c Condition) Address() Address {
	return NewAddress(c)
}

func (c Condition) Equals(o Condition) bool {
	return bytes.Equal(c, o)
}

// String keeps the extension and type readable and hex encodes the data.
func (c Condition) String() string {
	ext, typ, data, err := c.Parse()
	if err != nil {
		return fmt.Sprintf("Invalid Condition: %X", []byte(c))
	}
	return fmt.Sprintf("%s/%s/%X", ext, typ, data)
}

// MarshalJSON encodes the condition as its String form, or "" when nil.
func (c Condition) MarshalJSON() ([]byte, error) {
	if c == nil {
		return json.Marshal("")
	}
	return json.Marshal(c.String())
}

func (c *Condition) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	cond, err := parseCondition(s)
	if err != nil {
		return err
	}
	*c = cond
	return nil
}

// parseCondition reads the String form back. An empty string is the nil
// condition.
func parseCondition(s string) (Condition, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return nil, errors.ErrInput.Newf("condition %q is not ext/type/data", s)
	}
	data, err := hex.DecodeString(parts[2])
	if err != nil {
		return nil, errors.ErrInput.Newf("condition data: %s", err)
	}
	return NewCondition(parts[0], parts[1], data), nil
}
