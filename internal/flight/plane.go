package flight

import "fmt"

// Plane holds one selection per attribute.
type Plane struct {
	Wing     string `yaml:"wing" json:"wing"`
	Body     string `yaml:"body" json:"body"`
	Shape    string `yaml:"shape" json:"shape"`
	Material string `yaml:"material" json:"material"`
	Humidity string `yaml:"humidity" json:"humidity"`
}

// DefaultPlane selects the first option of every attribute, the same
// initial state as a fresh row of radio buttons.
func DefaultPlane() Plane {
	var p Plane
	for _, a := range Attributes {
		p.Set(a, a.Options()[0])
	}
	return p
}

// OptimalPlane selects the optimal value of every attribute.
func OptimalPlane() Plane {
	var p Plane
	for _, a := range Attributes {
		p.Set(a, a.Optimal())
	}
	return p
}

// ParsePlane validates all five selections.
func ParsePlane(wing, body, shape, material, humidity string) (Plane, error) {
	return Plane{Wing: wing, Body: body, Shape: shape, Material: material, Humidity: humidity}.Normalize()
}

// Get returns the selection for a.
func (p Plane) Get(a Attribute) string {
	switch a {
	case WingLength:
		return p.Wing
	case BodyLength:
		return p.Body
	case Shape:
		return p.Shape
	case Material:
		return p.Material
	case Humidity:
		return p.Humidity
	}
	return ""
}

// Set stores v as the selection for a without validating it.
func (p *Plane) Set(a Attribute, v string) {
	switch a {
	case WingLength:
		p.Wing = v
	case BodyLength:
		p.Body = v
	case Shape:
		p.Shape = v
	case Material:
		p.Material = v
	case Humidity:
		p.Humidity = v
	}
}

// Normalize validates every selection and returns the plane with canonical
// spellings.
func (p Plane) Normalize() (Plane, error) {
	var out Plane
	for _, a := range Attributes {
		v, err := ParseValue(a, p.Get(a))
		if err != nil {
			return Plane{}, err
		}
		out.Set(a, v)
	}
	return out, nil
}

// Matches reports whether the selection for a is the optimal one.
func (p Plane) Matches(a Attribute) bool {
	return p.Get(a) == a.Optimal()
}

func (p Plane) String() string {
	return fmt.Sprintf("wing=%s body=%s shape=%s material=%s humidity=%s",
		p.Wing, p.Body, p.Shape, p.Material, p.Humidity)
}
