package menu

// Set is a collection of named menus built for one request.
type Set struct {
	opts     []Option
	names    []string
	builders map[string]*Builder
}

// NewSet creates an empty set. opts are applied to every menu made by it.
func NewSet(opts ...Option) *Set {
	return &Set{
		opts:     opts,
		builders: make(map[string]*Builder),
	}
}

// Make creates the menu name, runs fn to populate it and stores it in the
// set, replacing any menu of the same name. Options in opts are applied after
// the options of the set.
func (s *Set) Make(name string, fn func(*Builder), opts ...Option) *Builder {
	all := make([]Option, 0, len(s.opts)+len(opts))
	all = append(all, s.opts...)
	all = append(all, opts...)

	b := New(name, all...)
	if fn != nil {
		fn(b)
	}

	if _, ok := s.builders[name]; !ok {
		s.names = append(s.names, name)
	}
	s.builders[name] = b

	return b
}

// Get returns the menu name, nil if it does not exist.
func (s *Set) Get(name string) *Builder {
	return s.builders[name]
}

// Names returns the menu names in the order they were made.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Shared returns the menus whose ViewShare option is set, in order.
func (s *Set) Shared() []*Builder {
	var out []*Builder
	for _, name := range s.names {
		if b := s.builders[name]; b.config.ViewShare {
			out = append(out, b)
		}
	}
	return out
}
