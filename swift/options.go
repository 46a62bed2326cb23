package swift

// DemangleOptions controls how a demangled tree is rendered. The zero value
// disables everything; most callers want DefaultOptions.
type DemangleOptions struct {
	// SynthesizeSugarOnTypes renders known wrapper types with their
	// source-level shorthand: Swift.Array<T> as [T] and Swift.Optional<T>
	// as T?.
	SynthesizeSugarOnTypes bool

	// DisplayTypeOfIVarFieldOffset includes the declared type when
	// rendering a field offset record.
	DisplayTypeOfIVarFieldOffset bool
}

// DefaultOptions returns the standard rendering options: no sugar, field
// offsets shown with their declared type.
func DefaultOptions() DemangleOptions {
	return DemangleOptions{
		SynthesizeSugarOnTypes:       false,
		DisplayTypeOfIVarFieldOffset: true,
	}
}
