package backend

type (
	// Param is a bound statement argument. Empty name means positional argument.
	Param struct {
		Name  string
		Value any
	}
	Statement struct {
		Text   string
		Params []Param
	}
)

func (s *Statement) AddParam(name string, value any) {
	s.Params = append(s.Params, Param{
		Name:  name,
		Value: value,
	})
}

// Param returns the first param with given name
func (s *Statement) Param(name string) (Param, bool) {
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}

	return Param{}, false
}

// Args returns params values in binding order
func (s *Statement) Args() []any {
	args := make([]any, len(s.Params))
	for i, p := range s.Params {
		args[i] = p.Value
	}

	return args
}
