// Copyright 2026 Internet Route Verification Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/netip"

	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

// RouteSetMember is either an address prefix range or a reference to another
// set, optionally qualified by a range operator. Exactly one of Range and
// Name is set.
type RouteSetMember struct {
	Range *AddrPfxRange
	// Name of the referenced set; Op is the operator applied to it.
	Name string
	Op   RangeOperator
}

// IsRange returns whether m is an address prefix range member.
func (m RouteSetMember) IsRange() bool {
	return m.Range != nil
}

// UnmarshalJSON decodes {"RSRange": {...}} or {"NameOp": [name, op]}.
func (m *RouteSetMember) UnmarshalJSON(b []byte) error {
	var raw struct {
		RSRange *AddrPfxRange     `json:"RSRange"`
		NameOp  []json.RawMessage `json:"NameOp"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch {
	case raw.RSRange != nil:
		*m = RouteSetMember{Range: raw.RSRange}
	case len(raw.NameOp) == 2:
		var name string
		if err := json.Unmarshal(raw.NameOp[0], &name); err != nil {
			return serrors.Wrap("decoding route-set member name", err)
		}
		var op RangeOperator
		if err := json.Unmarshal(raw.NameOp[1], &op); err != nil {
			return serrors.Wrap("decoding route-set member operator", err, "name", name)
		}
		*m = RouteSetMember{Name: name, Op: op}
	default:
		return serrors.New("unknown route-set member", "json", string(b))
	}
	return nil
}

// MarshalJSON encodes m in the same externally tagged form it is decoded
// from.
func (m RouteSetMember) MarshalJSON() ([]byte, error) {
	if m.Range != nil {
		return json.Marshal(map[string]*AddrPfxRange{"RSRange": m.Range})
	}
	return json.Marshal(map[string][]any{"NameOp": {m.Name, m.Op}})
}

// AddrPfxRange is an address prefix with a range operator, e.g. 10.0.0.0/8^+.
type AddrPfxRange struct {
	AddressPrefix netip.Prefix  `json:"address_prefix"`
	RangeOperator RangeOperator `json:"range_operator"`
}

// OperatorKind is the kind of a range operator.
type OperatorKind int

const (
	NoOp OperatorKind = iota
	// Minus is ^-, all more specifics excluding the prefix itself.
	Minus
	// Plus is ^+, all more specifics including the prefix itself.
	Plus
	// Num is ^n or ^n-m.
	Num
)

// RangeOperator is a prefix range operator.
type RangeOperator struct {
	Kind OperatorKind
	// N and M are the bounds of a Num operator.
	N, M uint8
}

func (o RangeOperator) String() string {
	switch o.Kind {
	case Minus:
		return "^-"
	case Plus:
		return "^+"
	case Num:
		if o.N == o.M {
			return fmt.Sprintf("^%d", o.N)
		}
		return fmt.Sprintf("^%d-%d", o.N, o.M)
	}
	return ""
}

// UnmarshalJSON decodes "NoOp", "Minus", "Plus" or {"Num": [n, m]}.
func (o *RangeOperator) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		switch s {
		case "NoOp":
			*o = RangeOperator{Kind: NoOp}
		case "Minus":
			*o = RangeOperator{Kind: Minus}
		case "Plus":
			*o = RangeOperator{Kind: Plus}
		default:
			return serrors.New("unknown range operator", "operator", s)
		}
		return nil
	}
	var num struct {
		Num []int `json:"Num"`
	}
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	if len(num.Num) != 2 {
		return serrors.New("malformed range operator", "json", string(b))
	}
	*o = RangeOperator{Kind: Num, N: uint8(num.Num[0]), M: uint8(num.Num[1])}
	return nil
}

// MarshalJSON encodes o in the form UnmarshalJSON accepts.
func (o RangeOperator) MarshalJSON() ([]byte, error) {
	switch o.Kind {
	case Minus:
		return []byte(`"Minus"`), nil
	case Plus:
		return []byte(`"Plus"`), nil
	case Num:
		return json.Marshal(map[string][]int{"Num": {int(o.N), int(o.M)}})
	}
	return []byte(`"NoOp"`), nil
}
