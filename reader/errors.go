package reader

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// ClassificationError is reported if no classification rule matches at a
// non-whitespace input position.
type ClassificationError struct {
	Offset int  // byte offset into the input
	Char   rune // the offending character
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("cannot classify %q at offset %d", e.Char, e.Offset)
}

// Default error reporting function for readers
func logError(e error) {
	tracer().Errorf("reader error: %v", e)
}
