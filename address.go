package coffer

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/boxmeout/coffer/crypto/bech32"
	"github.com/boxmeout/coffer/errors"
)

// AddressLength is the size of every address. It is part of the stored
// keys, so it cannot change once a chain is running.
const AddressLength = 20

// Address identifies an account of the ledger. It is the truncated
// sha256 digest of the Condition controlling the account.
type Address []byte

// NewAddress derives the address of the given condition bytes.
func NewAddress(cond []byte) Address {
	if cond == nil {
		return nil
	}
	sum := sha256.Sum256(cond)
	return Address(sum[:AddressLength])
}

func (a Address) Equals(o Address) bool {
	return bytes.Equal(a, o)
}

func (a Address) Validate() error {
	if n := len(a); n != AddressLength {
		return errors.ErrInput.Newf("address of %d bytes, want %d", n, AddressLength)
	}
	return nil
}

// String returns upper case hex, or "(nil)" for an empty address.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return fmt.Sprintf("%X", []byte(a))
}

// Bech32 encodes a valid address with the given human readable prefix.
func (a Address) Bech32(hrp string) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	return bech32.Encode(hrp, a)
}

// MarshalJSON uses the hex form instead of the base64 default of []byte.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// addressDecoders by format name. Each one gets a non empty input.
var addressDecoders = map[string]func(string) (Address, error){
	"hex": func(s string) (Address, error) {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, "cannot decode hex")
		}
		return Address(raw), nil
	},
	"cond": func(s string) (Address, error) {
		c, err := parseCondition(s)
		if err != nil {
			return nil, err
		}
		if err := c.Validate(); err != nil {
			return nil, err
		}
		return c.Address(), nil
	},
	"bech32": func(s string) (Address, error) {
		_, raw, err := bech32.Decode(s)
		if err != nil {
			return nil, err
		}
		return Address(raw), nil
	},
}

// ParseAddress reads an address written as "<format>:<value>", where
// format is hex, cond or bech32. Without a format prefix the value is
// hex. An empty value is the nil address.
func ParseAddress(s string) (Address, error) {
	format, value := "hex", s
	if i := strings.IndexByte(s, ':'); i >= 0 {
		format, value = s[:i], s[i+1:]
	}
	decode, ok := addressDecoders[format]
	if !ok {
		return nil, errors.ErrType.Newf("unknown address format %q", format)
	}
	if value == "" {
		return nil, nil
	}
	addr, err := decode(value)
	if err != nil {
		return nil, err
	}
	if err := addr.Validate(); err != nil {
		return nil, err
	}
	return addr, nil
}
