package model

// Flag is an optional boolean attribute. It remembers whether it was set,
// so an absent attribute stays absent when encoded again. Unset reads as false.
type Flag struct {
	value bool
	set   bool
}

func FlagOf(value bool) Flag {
	return Flag{value: value, set: true}
}

func (f Flag) Bool() bool {
	return f.value
}

func (f Flag) IsSet() bool {
	return f.set
}

func (f Flag) ptr() *bool {
	if !f.set {
		return nil
	}
	v := f.value
	return &v
}

func flagFrom(p *bool) Flag {
	if p == nil {
		return Flag{}
	}
	return FlagOf(*p)
}
