package params

// Producer computes parameter value at execution time
type Producer func() (any, error)

type (
	// Parameter is a named query binding. The value is either known at build time
	// or produced by a Producer when the command is executed.
	Parameter struct {
		parent   Builder
		name     string
		value    any
		producer Producer
	}
	Parameters []*Parameter
)

func Named(name string, value any) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

func Deferred(name string, producer Producer) *Parameter {
	return &Parameter{
		name:     name,
		producer: producer,
	}
}

func (p *Parameter) Name() string {
	return p.name
}

func (p *Parameter) IsDeferred() bool {
	return p.producer != nil
}

// Resolve returns the literal value or calls the producer.
// Producer error is returned as is.
func (p *Parameter) Resolve() (any, error) {
	if p.producer == nil {
		return p.value, nil
	}

	return p.producer()
}

func (p *Parameter) Value(v any) Builder {
	p.value = v

	return p.parent.append(p)
}

func (p *Parameter) Func(producer Producer) Builder {
	p.producer = producer

	return p.parent.append(p)
}

func (p *Parameters) Count() int {
	if p == nil {
		return 0
	}

	return len(*p)
}

func (p *Parameters) Add(params ...*Parameter) {
	*p = append(*p, params...)
}

// Names returns names of parameters in binding order
func (p *Parameters) Names() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(*p))
	for _, param := range *p {
		names = append(names, param.name)
	}

	return names
}
