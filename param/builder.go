package param

// Builder provides a fluent API for creating parameters.
type Builder struct {
	param *Parameter
}

// New creates a builder for a [0, 1] parameter.
func New(id uint32, name string) *Builder {
	return &Builder{
		param: &Parameter{
			ID:   id,
			Name: name,
			Min:  0,
			Max:  1,
		},
	}
}

// Range sets the plain bounds.
func (b *Builder) Range(min, max float64) *Builder {
	b.param.Min = min
	b.param.Max = max
	return b
}

// Step sets the quantization interval; zero means continuous.
func (b *Builder) Step(step float64) *Builder {
	b.param.Step = step
	return b
}

// Default sets the plain default value.
func (b *Builder) Default(value float64) *Builder {
	b.param.Default = value
	return b
}

// Unit sets the unit label.
func (b *Builder) Unit(unit string) *Builder {
	b.param.Unit = unit
	return b
}

// Choices turns the parameter into an indexed list of labels.
func (b *Builder) Choices(labels ...string) *Builder {
	b.param.Choices = append([]string(nil), labels...)
	b.param.Min = 0
	b.param.Max = float64(len(labels) - 1)
	b.param.Step = 1
	return b
}

// Formatter sets custom formatting and parsing.
func (b *Builder) Formatter(format func(float64) string, parse func(string) (float64, error)) *Builder {
	b.param.formatFunc = format
	b.param.parseFunc = parse
	return b
}

// Build returns the parameter set to its default.
func (b *Builder) Build() *Parameter {
	b.param.Default = b.param.Quantize(b.param.Default)
	b.param.Reset()
	return b.param
}
