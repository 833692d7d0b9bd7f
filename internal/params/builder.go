package params

type (
	Builder struct {
		params Parameters
	}
)

func (b Builder) append(p *Parameter) Builder {
	// trim capacity so that builders forked from the same parent never share memory
	b.params = append(b.params[:len(b.params):len(b.params)], p)

	return b
}

func (b Builder) Build() *Parameters {
	params := make(Parameters, len(b.params))
	copy(params, b.params)

	return &params
}

func (b Builder) Param(name string) *Parameter {
	return &Parameter{
		parent: b,
		name:   name,
	}
}
