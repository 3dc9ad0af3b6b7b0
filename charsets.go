package peg

// Byte-set builders shared by the textual builtin escapes and
// the programmatic preset shorthands.

func digitSet() *byteSet {
	s := newByteSet()
	s.addRange('0', '9')
	return s
}

func whitespaceSet() *byteSet {
	s := newByteSet()
	for _, b := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		s.add(b)
	}
	return s
}

func lettersSet() *byteSet {
	s := newByteSet()
	s.addRange('A', 'Z')
	s.addRange('a', 'z')
	return s
}

// identStartSet is also builtin `\w`: [A-Za-z_].
func identStartSet() *byteSet {
	s := lettersSet()
	s.add('_')
	return s
}

// identContSet additionally allows digits.
func identContSet() *byteSet {
	s := identStartSet()
	s.addRange('0', '9')
	return s
}
