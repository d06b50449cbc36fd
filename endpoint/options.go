package endpoint

type option struct {
	info Info
}

func newOption(fn any, opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	derived := infoOf(fn)
	if o.info.Name == "" {
		o.info.Name = derived.Name
	}
	if o.info.QualifiedName == "" {
		o.info.QualifiedName = derived.QualifiedName
	}
	return o
}

type Option func(*option)

// Name overrides the derived endpoint name.
func Name(name string) Option {
	return func(o *option) {
		o.info.Name = name
	}
}

// QualifiedName overrides the derived qualified name.
func QualifiedName(name string) Option {
	return func(o *option) {
		o.info.QualifiedName = name
	}
}

// Doc sets the endpoint documentation.
func Doc(doc string) Option {
	return func(o *option) {
		o.info.Doc = doc
	}
}
