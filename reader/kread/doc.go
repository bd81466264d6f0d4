/*
Package kread/main provides a command line tool which reads a Knight program
and prints its syntax tree. Without arguments it reads a built-in sample
program. With flag -i, kread starts an interactive loop, reading one program
per input line.

	kread [-trace Debug|Info|Error] [-strict] [-tree] [-i] [-f file] [program …]

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'knight.kread'
func tracer() tracing.Trace {
	return tracing.Select("knight.kread")
}
