package audit

// CharClasses records which of the four character classes appear in a
// password. Classification is deliberately ASCII-only so results do not
// depend on locale or Unicode table versions: anything outside ASCII
// letters and digits counts as special, including spaces.
type CharClasses struct {
	Lower   bool `json:"lowercase"`
	Upper   bool `json:"uppercase"`
	Digit   bool `json:"digits"`
	Special bool `json:"special"`
}

// Classify reports which character classes appear in password. An empty
// password has no classes.
func Classify(password string) CharClasses {
	var c CharClasses
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			c.Lower = true
		case r >= 'A' && r <= 'Z':
			c.Upper = true
		case r >= '0' && r <= '9':
			c.Digit = true
		default:
			c.Special = true
		}
	}
	return c
}

// Count returns how many of the four classes are present.
func (c CharClasses) Count() int {
	n := 0
	for _, present := range []bool{c.Lower, c.Upper, c.Digit, c.Special} {
		if present {
			n++
		}
	}
	return n
}

// Active returns the names of the present classes, in a fixed order.
func (c CharClasses) Active() []string {
	var names []string
	if c.Lower {
		names = append(names, "lowercase")
	}
	if c.Upper {
		names = append(names, "uppercase")
	}
	if c.Digit {
		names = append(names, "digits")
	}
	if c.Special {
		names = append(names, "special")
	}
	return names
}
