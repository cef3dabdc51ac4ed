package orrery

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Body ties a display name to a set of orbital elements.
type Body struct {
	Name     string
	Elements Elements
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}

/* Definitions. Mean J2000.0 elements, semi-major axes in AU, periods in days. */

// Sun sits at the origin of the heliocentric frame.
var Sun = Body{"Sun", Elements{}}

// Mercury is the innermost planet.
var Mercury = Body{"Mercury", Elements{0.387098, 0.205630, 7.005, 48.331, 29.124, 174.796, 87.969}}

// Venus spins the wrong way.
var Venus = Body{"Venus", Elements{0.723332, 0.006772, 3.39458, 76.680, 54.884, 50.115, 224.701}}

// Earth carries the observers.
var Earth = Body{"Earth", Elements{1.000002, 0.016709, 0.00005, 348.739, 114.208, 357.517, 365.256}}

// Mars is the red one.
var Mars = Body{"Mars", Elements{1.523679, 0.093400, 1.850, 49.558, 286.502, 19.387, 686.980}}

// Jupiter dwarfs the rest.
var Jupiter = Body{"Jupiter", Elements{5.204400, 0.048900, 1.303, 100.464, 273.867, 20.020, 4332.59}}

// Saturn has the rings.
var Saturn = Body{"Saturn", Elements{9.582600, 0.056500, 2.485, 113.665, 339.392, 317.020, 10759.22}}

// Uranus rolls on its side.
var Uranus = Body{"Uranus", Elements{19.218400, 0.046381, 0.773, 74.006, 96.999, 142.239, 30688.5}}

// Neptune was found on paper before glass.
var Neptune = Body{"Neptune", Elements{30.070000, 0.008678, 1.768, 131.784, 276.336, 256.228, 60182.0}}

// Pluto keeps its demoted orbit anyway.
var Pluto = Body{"Pluto", Elements{39.482000, 0.248800, 17.160, 110.299, 113.834, 14.530, 90560.0}}

// Catalog is the built-in body catalog, central star first.
var Catalog = []Body{Sun, Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// BodyFromString returns the built-in body matching the provided name.
func BodyFromString(name string) (Body, error) {
	for _, b := range Catalog {
		if strings.EqualFold(b.Name, name) {
			return b, nil
		}
	}
	return Body{}, errors.Wrapf(ErrInvalidInput, "undefined body '%s'", name)
}

// bodyDef mirrors one [[bodies]] record of a catalog file.
type bodyDef struct {
	Name          string  `mapstructure:"name"`
	SemiMajorAxis float64 `mapstructure:"semi_major_axis"`
	Eccentricity  float64 `mapstructure:"eccentricity"`
	Inclination   float64 `mapstructure:"inclination"`
	Node          float64 `mapstructure:"node"`
	ArgPeriapsis  float64 `mapstructure:"arg_periapsis"`
	MeanAnomaly   float64 `mapstructure:"mean_anomaly"`
	Period        float64 `mapstructure:"period"`
}

// LoadCatalog reads a TOML catalog of bodies, one [[bodies]] record per body.
// Angles are in degrees, distances in AU and periods in days, exactly as in
// Elements. Every record is validated before the catalog is returned.
func LoadCatalog(path string) ([]Body, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "could not read catalog %s", path)
	}
	var defs []bodyDef
	if err := v.UnmarshalKey("bodies", &defs); err != nil {
		return nil, errors.Wrapf(err, "malformed catalog %s", path)
	}
	if len(defs) == 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "catalog %s defines no bodies", path)
	}
	bodies := make([]Body, len(defs))
	for k, def := range defs {
		if def.Name == "" {
			return nil, errors.Wrapf(ErrInvalidInput, "catalog %s: body %d has no name", path, k)
		}
		el := Elements{def.SemiMajorAxis, def.Eccentricity, def.Inclination, def.Node, def.ArgPeriapsis, def.MeanAnomaly, def.Period}
		if err := el.Validate(); err != nil {
			return nil, errors.Wrapf(err, "catalog %s: body %s", path, def.Name)
		}
		bodies[k] = Body{def.Name, el}
	}
	return bodies, nil
}
