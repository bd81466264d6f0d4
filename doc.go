/*
Package knight is a reader for Knight, a tiny esoteric programming language
without brackets, statement separators or an operator stack.

Every Knight function name has a fixed arity. Reading a program therefore means
classifying the next lexical unit, then recursively reading exactly as many
operands as the unit demands. Package structure is as follows:

■ classify: Package classify maps lexical patterns to arity classes. It is
backed by a lexmachine DFA.

■ ast: Package ast defines the nodes of a Knight syntax tree: leafs, branches
and the absent node.

■ reader: Package reader implements the recursive reader, producing a syntax
tree from a source string.

The base package contains data types which are used throughout all the other packages.

Evaluation of Knight programs is not in the scope of this module.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package knight
