package ambient

import (
	"github.com/cwbudde/algo-ambient/dsp/core"
	"github.com/cwbudde/algo-ambient/dsp/lfo"
)

// Modulation targets: which bundle field a route rewrites.
const (
	TargetVolume  = "volume"
	TargetPan     = "pan"
	TargetLowpass = "lowpass"
)

// Route ties one oscillator to one bundle field.
type Route struct {
	Osc    *lfo.Oscillator
	Target string
}

// ModulationRouter steps a set of oscillators once per chunk and
// rewrites a copy of the parameter bundle before rendering. Unknown
// targets are ignored; their oscillators still advance.
type ModulationRouter struct {
	routes []Route
}

// NewModulationRouter creates a router over the given routes.
func NewModulationRouter(routes ...Route) *ModulationRouter {
	return &ModulationRouter{routes: routes}
}

// NewDefaultModulationRouter routes the stock compound oscillator
// rates: volume and pan always, a lowpass wobble when withTimbre is
// set.
func NewDefaultModulationRouter(withTimbre bool) *ModulationRouter {
	routes := []Route{
		{Osc: lfo.New(lfo.DefaultVolumeRateHz, lfo.DefaultVolumeDepth, lfo.WaveSine), Target: TargetVolume},
		{Osc: lfo.New(lfo.DefaultPanRateHz, lfo.DefaultPanDepth, lfo.WaveSine), Target: TargetPan},
	}
	if withTimbre {
		routes = append(routes, Route{
			Osc:    lfo.New(lfo.DefaultTimbreRateHz, lfo.DefaultTimbreDepth, lfo.WaveSine),
			Target: TargetLowpass,
		})
	}
	return &ModulationRouter{routes: routes}
}

// Apply steps every route's oscillator by dt, usually the chunk
// duration, and returns a rewritten copy of p. Volume and cutoff scale
// by (1 + value); pan offsets additively within [-1, 1].
func (m *ModulationRouter) Apply(p Params, dt float64) Params {
	for _, r := range m.routes {
		v := r.Osc.Step(dt)
		switch r.Target {
		case TargetVolume:
			p.MasterVolume *= 1 + v
			if p.MasterVolume < 0 {
				p.MasterVolume = 0
			}
		case TargetPan:
			p.PanOffset = core.Clamp(p.PanOffset+v, -1, 1)
		case TargetLowpass:
			p.LowpassHz *= 1 + v
		}
	}
	return p
}
