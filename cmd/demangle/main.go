// Demangle turns mangled Swift symbol names back into readable declarations.
//
// Usage:
//
//	# Demangle symbols given as arguments
//	demangle _TF4main3fooFT_T_
//
//	# Use as a filter: rewrite every mangled symbol in a stream
//	nm app | demangle
//
//	# Show the decoded structure of one symbol
//	demangle tree _TFC4main3FooCfMS0_FT_S0_
//
//	# Emit the decoded structure as JSON
//	demangle tree --json _TtGSaSi_
package main

func main() {
	Execute()
}
