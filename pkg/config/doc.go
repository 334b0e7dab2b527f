/*
Package config manages configuration parsing and validation for pyfuture.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |           |           |
	+-----+-----+ +---+----+ +---+----+
	|   YAML    | |  JSON  | |  HCL   |
	| Parser    | | Parser | | Parser |
	+-----------+ +--------+ +--------+

🎯 Purpose:
- Loads the run configuration (directive, extension, ignore rules)
- Validates values and fills in built-in defaults
- Supports multiple config formats through a parser registry

🔄 Flow:
1. Looks for .pyfuture.{yaml,yml,json,hcl} at the run root
2. Picks the parser registered for the file's extension
3. Validates the parsed values, filling defaults for unset fields
4. Falls back to Default() when no config file exists

📝 Design Philosophy:
A run must work with zero configuration: every field has a sensible
default and a missing config file is not an error. Parsers reject unknown
fields so typos surface immediately instead of silently doing nothing.
*/
package config
