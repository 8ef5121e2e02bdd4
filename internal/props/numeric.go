/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package props

import (
	"math"

	"gopropedit/internal/native"
	"gopropedit/internal/numedit"
)

// sliderHideWidth is the row width below which the slider is hidden.
const sliderHideWidth = 200

// IntConfig configures an integer property: a numeric text editor paired
// with a slider. Zero slider bounds default to [0, 10]; zero line bounds
// default to the full integer range.
type IntConfig struct {
	Name       string
	Label      string
	Default    int
	SliderMin  int
	SliderMax  int
	LineMin    int
	LineMax    int
	HideSlider bool
}

func (c IntConfig) PropertyName() string                  { return c.Name }
func (c IntConfig) build(f native.Factory) (Widget, error) { return NewInt(f, c) }

func (c *IntConfig) applyDefaults() {
	if c.SliderMin == 0 && c.SliderMax == 0 {
		c.SliderMax = 10
	}
	if c.LineMin == 0 && c.LineMax == 0 {
		c.LineMin = -numedit.MaxInt
		c.LineMax = numedit.MaxInt
	}
}

// Int is the integer property widget. Slider and text editor are kept
// numerically equal; double-click resets to the default.
type Int struct {
	base
	cfg    IntConfig
	value  int
	line   *lineEdit
	slider native.Slider
}

func NewInt(f native.Factory, cfg IntConfig) (*Int, error) {
	cfg.applyDefaults()
	b, err := newBase(cfg.Name, cfg.Label)
	if err != nil {
		return nil, err
	}
	if cfg.SliderMax <= cfg.SliderMin {
		return nil, configErr(cfg.Name, "slider range [%d, %d] is empty", cfg.SliderMin, cfg.SliderMax)
	}

	w := &Int{base: b, cfg: cfg, value: cfg.Default}
	w.line = newIntLine(f, cfg.LineMin, cfg.LineMax)
	w.slider = f.NewSlider()

	// step size and tick interval follow the slider range
	exponent := rangeExponent(float64(cfg.SliderMax - cfg.SliderMin))
	step := math.Pow(10, math.Max(float64(exponent-2), 0))
	w.slider.SetSteps(step, step*10)
	w.slider.SetRange(float64(cfg.SliderMin), float64(cfg.SliderMax))
	w.slider.SetVisible(!cfg.HideSlider)

	w.slider.OnChanged(func(v float64) {
		w.value = int(v)
		w.line.setValue(v, false)
		w.emit()
	})
	w.line.onChanged = func(v float64) {
		w.value = int(v)
		w.slider.SetValue(v, false)
		w.emit()
	}

	w.push(cfg.Default)
	return w, nil
}

func (w *Int) Value() any   { return w.value }
func (w *Int) Default() any { return w.cfg.Default }

// Config returns the full original configuration, for rebuilding an
// equivalent widget with overrides.
func (w *Int) Config() IntConfig { return w.cfg }

func (w *Int) SetValue(v any) error {
	n, ok := v.(int)
	if !ok {
		return typeErr(w.name, "int", v)
	}
	w.value = n
	w.push(n)
	w.emit()
	return nil
}

func (w *Int) push(n int) {
	w.slider.SetValue(float64(n), false)
	w.line.setValue(float64(n), false)
}

// Reset restores the default value; wired to double-click by the UI layer.
func (w *Int) Reset() { _ = w.SetValue(w.cfg.Default) }

// Resized hides the slider on narrow rows.
func (w *Int) Resized(width int) {
	w.slider.SetVisible(width > sliderHideWidth && !w.cfg.HideSlider)
}

func (w *Int) Clone(f native.Factory) (Widget, error) { return NewInt(f, w.cfg) }

func (w *Int) SetEnabled(enabled bool) {
	w.line.control().SetEnabled(enabled)
	w.slider.SetEnabled(enabled)
}

// Line exposes the text control for the rendering layer.
func (w *Int) Line() native.TextInput { return w.line.control() }

// Slider exposes the slider control for the rendering layer.
func (w *Int) Slider() native.Slider { return w.slider }

// FloatConfig configures a float property. A zero Decimals defaults to 4;
// slider and line bounds default as for IntConfig.
type FloatConfig struct {
	Name       string
	Label      string
	Default    float64
	SliderMin  float64
	SliderMax  float64
	LineMin    float64
	LineMax    float64
	Decimals   int
	HideSlider bool
}

func (c FloatConfig) PropertyName() string                  { return c.Name }
func (c FloatConfig) build(f native.Factory) (Widget, error) { return NewFloat(f, c) }

func (c *FloatConfig) applyDefaults() {
	if c.SliderMin == 0 && c.SliderMax == 0 {
		c.SliderMax = 10
	}
	if c.LineMin == 0 && c.LineMax == 0 {
		c.LineMin = -numedit.MaxInt
		c.LineMax = numedit.MaxInt
	}
	if c.Decimals == 0 {
		c.Decimals = 4
	}
}

// Float is the float property widget. The slider operates on a normalized
// integer range; values map in and out through min/max interpolation.
type Float struct {
	base
	cfg    FloatConfig
	value  float64
	line   *lineEdit
	slider native.Slider

	// normalized slider bounds
	sMin, sMax float64
}

func NewFloat(f native.Factory, cfg FloatConfig) (*Float, error) {
	cfg.applyDefaults()
	b, err := newBase(cfg.Name, cfg.Label)
	if err != nil {
		return nil, err
	}
	if cfg.SliderMax <= cfg.SliderMin {
		return nil, configErr(cfg.Name, "slider range [%g, %g] is empty", cfg.SliderMin, cfg.SliderMax)
	}

	w := &Float{base: b, cfg: cfg, value: cfg.Default}
	w.line = newFloatLine(f, cfg.LineMin, cfg.LineMax, cfg.Decimals)
	w.slider = f.NewSlider()

	// bring the float range onto an integer slider with steps locked to 1/10
	exponent := rangeExponent(cfg.SliderMax - cfg.SliderMin)
	normalize := math.Pow(10, -float64(exponent-2))
	w.sMin = cfg.SliderMin * normalize
	w.sMax = cfg.SliderMax * normalize
	w.slider.SetSteps(1, 10)
	w.slider.SetRange(w.sMin, w.sMax)
	w.slider.SetVisible(!cfg.HideSlider)

	w.slider.OnChanged(func(sv float64) {
		percentage := (sv - w.sMin) / (w.sMax - w.sMin)
		v := cfg.SliderMin + (cfg.SliderMax-cfg.SliderMin)*percentage
		w.value = v
		w.line.setValue(v, false)
		w.emit()
	})
	w.line.onChanged = func(v float64) {
		w.value = v
		w.pushSlider(v)
		w.emit()
	}

	w.push(cfg.Default)
	return w, nil
}

func (w *Float) Value() any   { return w.value }
func (w *Float) Default() any { return w.cfg.Default }

func (w *Float) Config() FloatConfig { return w.cfg }

// SetValue accepts a float64 or an int.
func (w *Float) SetValue(v any) error {
	x, ok := toFloat(v)
	if !ok {
		return typeErr(w.name, "float64 or int", v)
	}
	w.value = x
	w.push(x)
	w.emit()
	return nil
}

func (w *Float) push(v float64) {
	w.pushSlider(v)
	w.line.setValue(v, false)
}

func (w *Float) pushSlider(v float64) {
	percentage := (v - w.cfg.SliderMin) / (w.cfg.SliderMax - w.cfg.SliderMin)
	percentage = math.Min(math.Max(percentage, 0), 1)
	w.slider.SetValue(percentage*(w.sMax-w.sMin)+w.sMin, false)
}

func (w *Float) Reset() { _ = w.SetValue(w.cfg.Default) }

func (w *Float) Resized(width int) {
	w.slider.SetVisible(width > sliderHideWidth && !w.cfg.HideSlider)
}

func (w *Float) Clone(f native.Factory) (Widget, error) { return NewFloat(f, w.cfg) }

func (w *Float) SetEnabled(enabled bool) {
	w.line.control().SetEnabled(enabled)
	w.slider.SetEnabled(enabled)
}

func (w *Float) Line() native.TextInput { return w.line.control() }
func (w *Float) Slider() native.Slider  { return w.slider }

// rangeExponent picks the order of magnitude of a slider range, rounding
// the log10 up only when its fraction is above 0.8.
func rangeExponent(numRange float64) int {
	exponent := math.Log10(math.Abs(numRange))
	if exponent-math.Floor(exponent) > 0.8 {
		return int(math.Ceil(exponent))
	}
	return int(math.Floor(exponent))
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case int:
		return float64(x), true
	default:
		return 0, false
	}
}
