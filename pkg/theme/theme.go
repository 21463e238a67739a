// Package theme loads widget defaults from YAML configuration.
package theme

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/go-slate/slate/pkg/errors"
	"github.com/go-slate/slate/pkg/graphics"
	"github.com/go-slate/slate/pkg/widgets"
)

// Theme holds the optional widget defaults. Color values accept CSS color
// names and #RRGGBB / #AARRGGBB hex literals.
type Theme struct {
	PanelBackground string  `yaml:"panelBackground,omitempty"`
	StackSpacing    float64 `yaml:"stackSpacing,omitempty"`
}

// Parse decodes a theme from YAML. Unknown fields are rejected so typos
// surface instead of being silently ignored.
func Parse(data []byte) (*Theme, error) {
	var t Theme
	if err := unmarshalStrict(data, &t); err != nil {
		return nil, errors.Config("theme.Parse", fmt.Errorf("failed to parse theme: %w", err))
	}
	if t.StackSpacing < 0 {
		return nil, errors.Config("theme.Parse", fmt.Errorf("stackSpacing must not be negative, got %v", t.StackSpacing))
	}
	if t.PanelBackground != "" {
		if _, err := graphics.ParseColor(t.PanelBackground); err != nil {
			return nil, errors.Config("theme.Parse", err)
		}
	}
	return &t, nil
}

func unmarshalStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return err
	}
	return nil
}

// ApplyPanel sets the theme's background on the panel. Panels keep their
// current background when the theme does not define one.
func (t *Theme) ApplyPanel(p *widgets.Panel) {
	if t.PanelBackground == "" {
		return
	}
	// Parse validated the color already.
	c, err := graphics.ParseColor(t.PanelBackground)
	if err != nil {
		errors.Report(errors.Config("theme.ApplyPanel", err))
		return
	}
	p.SetBackground(graphics.NewSolidBrush(c))
}

// ApplyStack sets the theme's defaults on the stack.
func (t *Theme) ApplyStack(s *widgets.StackPanel) {
	t.ApplyPanel(&s.Panel)
	s.Spacing = t.StackSpacing
}
