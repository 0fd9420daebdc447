// Package preset loads named animation configurations from YAML, so an
// application can keep its motion design in a data file instead of code.
//
// A preset file maps preset names to specs:
//
//	card-enter:
//	  kind: fade
//	  duration: 150ms
//	list-move:
//	  kind: dynamics
//	  frequency: 2
//	  damping: 0.65
//	panel-swap:
//	  kind: tween
//	  duration: 300ms
//	  ease: out-bounce
package preset

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/anim"
)

// Spec is one preset as written in YAML. Which fields apply depends on Kind:
//
//   - fade: duration, easing
//   - slide: duration, easing
//   - dynamics: frequency, damping, response
//   - tween: duration, ease
type Spec struct {
	Kind     string   `yaml:"kind"`
	Duration Duration `yaml:"duration,omitempty"`
	// Easing is a raw CSS timing-function expression.
	Easing string `yaml:"easing,omitempty"`
	// Ease names a tween easing function, for example "out-quad".
	Ease      string  `yaml:"ease,omitempty"`
	Frequency float32 `yaml:"frequency,omitempty"`
	Damping   float32 `yaml:"damping,omitempty"`
	Response  float32 `yaml:"response,omitempty"`
}

// Duration unmarshals YAML duration strings like "200ms" or "1.5s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Entry is a resolved preset: the strategy wrappers a spec produced. Wrappers
// not supported by the spec's kind are zero; [anim.AnyEnter.IsZero] and
// friends report which apply.
type Entry struct {
	Enter  anim.AnyEnter
	Leave  anim.AnyLeave
	Move   anim.AnyMove
	Resize anim.AnyResize
}

// Table maps preset names to resolved entries.
type Table map[string]Entry

// Parse decodes a preset file and resolves every spec.
func Parse(data []byte) (Table, error) {
	var specs map[string]Spec
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	table := make(Table, len(specs))
	for name, spec := range specs {
		entry, err := Resolve(spec)
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
		table[name] = entry
	}
	return table, nil
}

// LoadFile reads and parses a preset file. A missing file yields an empty
// table.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Table{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Resolve builds the strategy wrappers for one spec.
func Resolve(spec Spec) (Entry, error) {
	switch spec.Kind {
	case "fade":
		f := anim.DefaultFade()
		if spec.Duration != 0 {
			f.Duration = time.Duration(spec.Duration)
		}
		if spec.Easing != "" {
			f.Easing = spec.Easing
		}
		return Entry{Enter: anim.Enter(f), Leave: anim.Leave(f)}, nil

	case "slide":
		s := anim.DefaultSliding()
		if spec.Duration != 0 {
			s.Duration = time.Duration(spec.Duration)
		}
		if spec.Easing != "" {
			s.Easing = spec.Easing
		}
		return Entry{Move: anim.Move(s), Resize: anim.Resize(s)}, nil

	case "dynamics":
		if spec.Frequency <= 0 {
			return Entry{}, fmt.Errorf("dynamics preset needs a positive frequency (got %v)", spec.Frequency)
		}
		d := anim.NewDynamics(spec.Frequency, spec.Damping, spec.Response)
		return Entry{Move: anim.Move(d), Resize: anim.Resize(d)}, nil

	case "tween":
		if spec.Duration == 0 {
			return Entry{}, errors.New("tween preset needs a duration")
		}
		fn, err := easeByName(spec.Ease)
		if err != nil {
			return Entry{}, err
		}
		t := anim.NewTween(time.Duration(spec.Duration), fn)
		return Entry{
			Enter:  anim.Enter(t),
			Leave:  anim.Leave(t),
			Move:   anim.Move(t),
			Resize: anim.Resize(t),
		}, nil

	case "":
		return Entry{}, errors.New("preset is missing a kind")
	default:
		return Entry{}, fmt.Errorf("unknown preset kind %q", spec.Kind)
	}
}

var eases = map[string]ease.TweenFunc{
	"linear":         ease.Linear,
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-quart":       ease.InQuart,
	"out-quart":      ease.OutQuart,
	"in-out-quart":   ease.InOutQuart,
	"in-quint":       ease.InQuint,
	"out-quint":      ease.OutQuint,
	"in-out-quint":   ease.InOutQuint,
	"in-sine":        ease.InSine,
	"out-sine":       ease.OutSine,
	"in-out-sine":    ease.InOutSine,
	"in-expo":        ease.InExpo,
	"out-expo":       ease.OutExpo,
	"in-out-expo":    ease.InOutExpo,
	"in-circ":        ease.InCirc,
	"out-circ":       ease.OutCirc,
	"in-out-circ":    ease.InOutCirc,
	"in-back":        ease.InBack,
	"out-back":       ease.OutBack,
	"in-out-back":    ease.InOutBack,
	"in-bounce":      ease.InBounce,
	"out-bounce":     ease.OutBounce,
	"in-out-bounce":  ease.InOutBounce,
	"in-elastic":     ease.InElastic,
	"out-elastic":    ease.OutElastic,
	"in-out-elastic": ease.InOutElastic,
}

func easeByName(name string) (ease.TweenFunc, error) {
	if name == "" {
		return ease.Linear, nil
	}
	fn, ok := eases[name]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}
	return fn, nil
}
