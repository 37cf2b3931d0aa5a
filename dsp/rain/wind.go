package rain

import (
	"math"

	"github.com/cwbudde/algo-rain/dsp/random"
)

// gust is a slow wind swell that replaces the background while it blows.
type gust struct {
	active bool
	rate   float64 // in (0, 1), sets both pitch and length
	length float64 // samples
	pos    int
}

// maybeStart is evaluated at droplet boundaries while no gust blows. A gust
// starts with probability perSecond/sampleRate. The rate draw is taken
// whether or not the gust starts; a zero rate starts nothing.
func (g *gust) maybeStart(rng *random.Stream, sampleRate, perSecond float64) {
	start := rng.Chance(perSecond / sampleRate)
	rate := rng.Unit()
	if !start || rate == 0 {
		return
	}
	g.active = true
	g.rate = rate
	g.length = sampleRate / rate
	g.pos = 0
}

// next returns the unscaled gust sample and advances the gust.
func (g *gust) next(rng *random.Stream, sampleRate float64) float64 {
	level := rng.Unit()
	swell := rng.Unit() * math.Sin(2*math.Pi*g.rate/sampleRate*float64(g.pos))
	g.pos++
	if float64(g.pos) >= g.length {
		g.active = false
	}
	return level + swell
}
