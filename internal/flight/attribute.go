package flight

import (
	"fmt"
	"strconv"
	"strings"
)

// Attribute is one of the five categorical flight-configuration dimensions.
type Attribute int

const (
	WingLength Attribute = iota
	BodyLength
	Shape
	Material
	Humidity

	numAttributes = 5
)

// Attributes lists every attribute in display order.
var Attributes = [numAttributes]Attribute{WingLength, BodyLength, Shape, Material, Humidity}

type attributeSpec struct {
	name    string
	key     string
	label   string
	options [3]string
	optimal string
	bonus   float64
}

var specs = [numAttributes]attributeSpec{
	WingLength: {
		name: "WingLength", key: "wing", label: "Wing length",
		options: [3]string{"Short", "Medium", "Long"},
		optimal: "Long", bonus: 5,
	},
	BodyLength: {
		name: "BodyLength", key: "body", label: "Body length",
		options: [3]string{"Short", "Medium", "Long"},
		optimal: "Medium", bonus: 4,
	},
	Shape: {
		name: "Shape", key: "shape", label: "Shape",
		options: [3]string{"Delta", "Standard", "Arrow"},
		optimal: "Delta", bonus: 5,
	},
	Material: {
		name: "Material", key: "material", label: "Material",
		options: [3]string{"Recycled", "Regular", "Glossy"},
		optimal: "Glossy", bonus: 3,
	},
	Humidity: {
		name: "Humidity", key: "humidity", label: "Humidity",
		options: [3]string{"Dry", "Normal", "Humid"},
		optimal: "Normal", bonus: 2,
	},
}

func (a Attribute) valid() bool { return a >= 0 && a < numAttributes }

func (a Attribute) String() string {
	if !a.valid() {
		return fmt.Sprintf("Attribute(%d)", int(a))
	}
	return specs[a].name
}

// Key is the short lowercase name used in form fields, flags and YAML.
func (a Attribute) Key() string {
	if !a.valid() {
		return ""
	}
	return specs[a].key
}

// Label is the human readable caption.
func (a Attribute) Label() string {
	if !a.valid() {
		return ""
	}
	return specs[a].label
}

// Options returns the three allowed values in display order.
func (a Attribute) Options() []string {
	if !a.valid() {
		return nil
	}
	opts := specs[a].options
	return opts[:]
}

// Optimal returns the value that earns the attribute's bonus.
func (a Attribute) Optimal() string {
	if !a.valid() {
		return ""
	}
	return specs[a].optimal
}

// Bonus is the distance added when the selection equals Optimal.
func (a Attribute) Bonus() float64 {
	if !a.valid() {
		return 0
	}
	return specs[a].bonus
}

// ParseAttribute accepts either the key ("wing") or the name ("WingLength"),
// case-insensitively.
func ParseAttribute(s string) (Attribute, error) {
	for _, a := range Attributes {
		if strings.EqualFold(s, specs[a].key) || strings.EqualFold(s, specs[a].name) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, s)
}

// ParseValue validates v against the options of a. Matching is
// case-insensitive and the canonical spelling is returned.
func ParseValue(a Attribute, v string) (string, error) {
	if !a.valid() {
		return "", fmt.Errorf("%w: %d", ErrUnknownAttribute, int(a))
	}
	v = strings.TrimSpace(v)
	for _, opt := range specs[a].options {
		if strings.EqualFold(v, opt) {
			return opt, nil
		}
	}
	return "", &ValueError{Attribute: a, Value: v}
}

// OptimalCondition returns a fresh copy of the attribute → best value table.
func OptimalCondition() map[Attribute]string {
	m := make(map[Attribute]string, numAttributes)
	for _, a := range Attributes {
		m[a] = specs[a].optimal
	}
	return m
}

func quote(s string) string { return strconv.Quote(s) }

func joinOptions(a Attribute) string {
	return strings.Join(a.Options(), ", ")
}
