package domain

// Text forms let the enums round-trip through YAML and JSON by name.

func (r AxisRole) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *AxisRole) UnmarshalText(b []byte) error {
	v, err := ParseAxisRole(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func (s MixStrategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *MixStrategy) UnmarshalText(b []byte) error {
	v, err := ParseMixStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (p OutputLimitPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *OutputLimitPolicy) UnmarshalText(b []byte) error {
	v, err := ParseOutputLimitPolicy(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
