package indicator

import (
	"errors"
	"fmt"
	"math"
)

// ParameterKind is the value type of a settings parameter
type ParameterKind int

const (
	IntParameter ParameterKind = iota
	FloatParameter
	EnumParameter
)

func (k ParameterKind) String() string {
	switch k {
	case IntParameter:
		return "int"
	case FloatParameter:
		return "float"
	case EnumParameter:
		return "enum"
	default:
		return fmt.Sprintf("ParameterKind(%d)", int(k))
	}
}

// Parameter describes one settings field: its name, valid range and
// default. The same value validates settings structs and drives the catalog.
type Parameter struct {
	Name        string
	DisplayName string
	Description string
	Kind        ParameterKind
	Min         float64
	Max         float64
	Default     float64
	Options     []string // enum value names, indexed by value
}

// Scale is the number of decimals used to display the parameter. Only
// integer parameters display without decimals.
func (p Parameter) Scale() int {
	if p.Kind == IntParameter {
		return 0
	}
	return 3
}

// Check validates a value against the parameter range
func (p Parameter) Check(v float64) error {
	if math.IsNaN(v) || v < p.Min || v > p.Max {
		return fmt.Errorf("%w: %s must be in [%g, %g], got %g", ErrInvalidConfiguration, p.Name, p.Min, p.Max, v)
	}
	return nil
}

func (p Parameter) checkInt(v int) error { return p.Check(float64(v)) }

func intParam(name, displayName, description string, min, max, def int) Parameter {
	return Parameter{
		Name:        name,
		DisplayName: displayName,
		Description: description,
		Kind:        IntParameter,
		Min:         float64(min),
		Max:         float64(max),
		Default:     float64(def),
	}
}

func floatParam(name, displayName, description string, min, max, def float64) Parameter {
	return Parameter{
		Name:        name,
		DisplayName: displayName,
		Description: description,
		Kind:        FloatParameter,
		Min:         min,
		Max:         max,
		Default:     def,
	}
}

func periodsParam(min, max, def int) Parameter {
	return intParam("Periods", "Periods", "The number of look-back periods.", min, max, def)
}

func fastPeriodsParam(def int) Parameter {
	return intParam("FastPeriods", "Fast Periods", "The number of look-back periods for the fast moving average.", 1, 100, def)
}

func slowPeriodsParam(def int) Parameter {
	return intParam("SlowPeriods", "Slow Periods", "The number of look-back periods for the slow moving average.", 1, 100, def)
}

func signalPeriodsParam(max, def int) Parameter {
	return intParam("SignalPeriods", "Signal Periods", "The number of look-back periods for the signal period.", 1, max, def)
}

func movingAverageTypeParam(def MovingAverageType) Parameter {
	return Parameter{
		Name:        "MovingAverageType",
		DisplayName: "Moving Average Type",
		Description: "The type of moving average to use.",
		Kind:        EnumParameter,
		Min:         float64(SimpleMovingAverageType),
		Max:         float64(HullMovingAverageType),
		Default:     float64(def),
		Options:     MovingAverageTypeNames(),
	}
}

// Params holds resolved parameter values keyed by parameter name. Every
// parameter of the schema is present once the catalog resolved it.
type Params map[string]float64

// Int returns the named value truncated toward zero
func (p Params) Int(name string) int { return int(p[name]) }

// Float returns the named value
func (p Params) Float(name string) float64 { return p[name] }

// MovingAverageType returns the named enum value
func (p Params) MovingAverageType(name string) MovingAverageType {
	return MovingAverageType(int(p[name]))
}

// resolve checks values against the schema and fills defaults
func resolve(indicator string, schema []Parameter, values map[string]float64) (Params, error) {
	known := make(map[string]Parameter, len(schema))
	for _, p := range schema {
		known[p.Name] = p
	}

	out := make(Params, len(schema))
	for _, p := range schema {
		out[p.Name] = p.Default
	}

	var errs []error
	for name, v := range values {
		p, ok := known[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: indicator %q does not have a parameter with name %q", ErrUnknownParameter, indicator, name))
			continue
		}
		if p.Kind != FloatParameter {
			v = math.Trunc(v)
		}
		if err := p.Check(v); err != nil {
			errs = append(errs, err)
			continue
		}
		out[name] = v
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}
