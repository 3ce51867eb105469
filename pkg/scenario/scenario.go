package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/aretw0/steer/pkg/config"
	"github.com/aretw0/steer/pkg/domain"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScenario is returned when a scenario file is malformed.
var ErrInvalidScenario = errors.New("invalid scenario")

// DefaultTickRate is used when the file does not set tick_rate.
const DefaultTickRate = 50

// DefaultPrecisionScale is the driver scale while precision mode is held.
const DefaultPrecisionScale = 0.5

// Keyframe sets a command that holds until the next keyframe.
type Keyframe struct {
	At      float64 `yaml:"at"`
	Lateral float64 `yaml:"lateral"`
	Axial   float64 `yaml:"axial"`
	Omega   float64 `yaml:"omega"`
}

// Command returns the keyframe value.
func (k Keyframe) Command() domain.Command {
	return domain.NewCommand(k.Lateral, k.Axial, k.Omega)
}

// HeadingKey sets the robot heading in radians from At onwards.
type HeadingKey struct {
	At    float64 `yaml:"at"`
	Value float64 `yaml:"value"`
}

// Window is the half-open interval [From, To) in seconds. A zero To is open-ended.
type Window struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// Contains reports whether the instant s falls inside the window.
func (w Window) Contains(s float64) bool {
	if s < w.From {
		return false
	}
	return w.To == 0 || s < w.To
}

// Assist scripts one assist branch.
type Assist struct {
	Name   string     `yaml:"name"`
	Role   string     `yaml:"role"`
	Weight *float64   `yaml:"weight"`
	Active []Window   `yaml:"active"`
	Output []Keyframe `yaml:"output"`
}

// Scenario is a scripted session.
type Scenario struct {
	Name           string         `yaml:"name"`
	TickRate       float64        `yaml:"tick_rate"`
	Ticks          int            `yaml:"ticks"`
	PrecisionScale float64        `yaml:"precision_scale"`
	Precision      []Window       `yaml:"precision"`
	Driver         []Keyframe     `yaml:"driver"`
	Heading        []HeadingKey   `yaml:"heading"`
	Assists        []Assist       `yaml:"assists"`
	Tuning         map[string]any `yaml:"tuning"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes scenario YAML, applies defaults and validates it.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}

	if s.TickRate == 0 {
		s.TickRate = DefaultTickRate
	}
	if s.PrecisionScale == 0 {
		s.PrecisionScale = DefaultPrecisionScale
	}
	if s.Ticks == 0 {
		s.Ticks = int(math.Ceil(s.Duration() * s.TickRate))
		if s.Ticks == 0 {
			s.Ticks = int(math.Ceil(s.TickRate))
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Duration returns the instant of the last scripted event, in seconds.
func (s *Scenario) Duration() float64 {
	end := 0.0
	for _, k := range s.Driver {
		end = math.Max(end, k.At)
	}
	for _, k := range s.Heading {
		end = math.Max(end, k.At)
	}
	for _, w := range s.Precision {
		end = math.Max(end, math.Max(w.From, w.To))
	}
	for _, a := range s.Assists {
		for _, w := range a.Active {
			end = math.Max(end, math.Max(w.From, w.To))
		}
		for _, k := range a.Output {
			end = math.Max(end, k.At)
		}
	}
	return end
}

// Validate checks rates, ordering and assist definitions.
func (s *Scenario) Validate() error {
	if !(s.TickRate > 0) || math.IsInf(s.TickRate, 0) {
		return fmt.Errorf("%w: tick_rate must be positive, got %v", ErrInvalidScenario, s.TickRate)
	}
	if s.Ticks < 0 {
		return fmt.Errorf("%w: ticks must not be negative", ErrInvalidScenario)
	}
	if err := ordered("driver", keyTimes(s.Driver)); err != nil {
		return err
	}
	headings := make([]float64, len(s.Heading))
	for i, h := range s.Heading {
		headings[i] = h.At
	}
	if err := ordered("heading", headings); err != nil {
		return err
	}
	if err := windows("precision", s.Precision); err != nil {
		return err
	}

	seen := map[string]bool{}
	for i, a := range s.Assists {
		if a.Name == "" {
			return fmt.Errorf("%w: assist #%d has no name", ErrInvalidScenario, i)
		}
		if seen[a.Name] {
			return fmt.Errorf("%w: assist %q declared twice", ErrInvalidScenario, a.Name)
		}
		seen[a.Name] = true

		if a.Role != "" {
			if _, err := domain.ParseAxisRole(a.Role); err != nil {
				return fmt.Errorf("%w: assist %q: %v", ErrInvalidScenario, a.Name, err)
			}
		}
		if a.Weight != nil && (*a.Weight < 0 || math.IsNaN(*a.Weight)) {
			return fmt.Errorf("%w: assist %q: weight must not be negative", ErrInvalidScenario, a.Name)
		}
		if err := ordered("assist "+a.Name, keyTimes(a.Output)); err != nil {
			return err
		}
		if err := windows("assist "+a.Name, a.Active); err != nil {
			return err
		}
	}
	return nil
}

// EffectiveTuning decodes the inline tuning overlay on top of config.Default.
func (s *Scenario) EffectiveTuning() (config.Tuning, error) {
	return config.Decode(s.Tuning)
}

func keyTimes(keys []Keyframe) []float64 {
	out := make([]float64, len(keys))
	for i, k := range keys {
		out[i] = k.At
	}
	return out
}

func ordered(what string, times []float64) error {
	for i, at := range times {
		if at < 0 || math.IsNaN(at) {
			return fmt.Errorf("%w: %s keyframe #%d has invalid time %v", ErrInvalidScenario, what, i, at)
		}
		if i > 0 && at < times[i-1] {
			return fmt.Errorf("%w: %s keyframes are not in time order", ErrInvalidScenario, what)
		}
	}
	return nil
}

func windows(what string, ws []Window) error {
	for i, w := range ws {
		if w.From < 0 || (w.To != 0 && w.To <= w.From) {
			return fmt.Errorf("%w: %s window #%d is empty or negative", ErrInvalidScenario, what, i)
		}
	}
	return nil
}
