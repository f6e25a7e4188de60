package biquad

// Chain is an ordered cascade of biquad sections processed in series.
// Each section's output feeds the next. Any overall gain is expected to be
// folded into the section numerators by the designer.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade from zero or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade; an empty
// cascade passes samples through unchanged.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades input through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Order returns the filter order: 2 per full section, 1 per first-order
// section, 0 for pass-through sections.
func (c *Chain) Order() int {
	order := 0
	for i := range c.sections {
		s := c.sections[i].Coefficients
		switch {
		case s.A2 != 0 || s.B2 != 0:
			order += 2
		case s.A1 != 0 || s.B1 != 0:
			order++
		}
	}

	return order
}

// Coefficients returns a copy of the section coefficients in cascade order.
func (c *Chain) Coefficients() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].Coefficients
	}

	return out
}
