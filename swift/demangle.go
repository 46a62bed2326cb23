package swift

import (
	"strconv"
	"strings"

	"github.com/skdltmxn/demangle-go/internal/scanner"
)

// manglingPrefix marks candidate symbols in this encoding.
const manglingPrefix = "_T"

// maxDepth bounds recursion on pathologically nested input. Exceeding it
// aborts the decode with a Failure result instead of growing the stack
// without limit.
const maxDepth = 512

// IsMangled reports whether name carries the mangling prefix. It is a cheap
// pre-filter for display tooling; DemangleToTree itself accepts arbitrary
// input and reports anything undecodable with a Failure root.
func IsMangled(name string) bool {
	return strings.HasPrefix(name, manglingPrefix)
}

// DemangleToTree decodes a mangled symbol into its node tree. Decoding is
// total: every input terminates with exactly one tree, and input that cannot
// be parsed yields a root of KindFailure carrying the original text plus the
// byte offset where decoding diverged. Callers test success by checking the
// root kind.
func DemangleToTree(mangled string, opts DemangleOptions) *Node {
	d := newDemangler(mangled)
	root, err := d.demangleSymbol()
	if err != nil {
		return failureNode(mangled, d.sc.Offset())
	}
	return root
}

// Demangle decodes a mangled symbol and renders it in one step. Input that
// cannot be decoded renders back as itself, which makes Demangle safe to
// apply to arbitrary symbol listings.
func Demangle(mangled string, opts DemangleOptions) string {
	return NodeToString(DemangleToTree(mangled, opts), opts)
}

// DemangleSimple is Demangle with DefaultOptions.
func DemangleSimple(mangled string) string {
	return Demangle(mangled, DefaultOptions())
}

// failureNode builds the designated failure root: the original input as its
// text and the divergence offset as a Number child.
func failureNode(input string, offset int) *Node {
	n := NewTextNode(KindFailure, input)
	n.AddChild(NewTextNode(KindNumber, strconv.Itoa(offset)))
	return n
}

// demangler holds the state of one decode call: the scanner over the input,
// the substitution table, and the recursion budget. A demangler serves a
// single symbol and is never shared.
type demangler struct {
	sc    *scanner.Scanner
	subs  substitutionTable
	depth int
}

func newDemangler(input string) *demangler {
	return &demangler{sc: scanner.New(input)}
}

// enter charges one level of the recursion budget; leave refunds it.
func (d *demangler) enter() error {
	d.depth++
	if d.depth > maxDepth {
		return errTooDeep
	}
	return nil
}

func (d *demangler) leave() {
	d.depth--
}

// demangleSymbol parses the whole input: the mangling prefix, one global
// production, and nothing else. Leftover input is a structural error.
func (d *demangler) demangleSymbol() (*Node, error) {
	if !d.sc.Consume(manglingPrefix) {
		return nil, errStructural
	}
	n, err := d.demangleGlobal()
	if err != nil {
		return nil, err
	}
	if !d.sc.EOF() {
		return nil, errStructural
	}
	return n, nil
}

// demangleGlobal dispatches one global production on its leading character.
func (d *demangler) demangleGlobal() (*Node, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	if d.sc.EOF() {
		return nil, errStructural
	}
	switch d.sc.Peek() {
	case 'M':
		d.sc.Next()
		return d.demangleMetadata()
	case 'w':
		d.sc.Next()
		return d.demangleValueWitness()
	case 'W':
		d.sc.Next()
		return d.demangleWitnessTable()
	case 'T':
		d.sc.Next()
		return d.demangleGlobalAnnotation()
	case 't':
		d.sc.Next()
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		return NewNode(KindType).AddChild(t), nil
	case 'F', 'v':
		return d.demangleEntity()
	}
	return nil, errUnknownCode
}

// demangleMetadata parses the 'M' global family: generic metadata patterns,
// metaclasses, nominal type descriptors, and plain type metadata.
func (d *demangler) demangleMetadata() (*Node, error) {
	switch {
	case d.sc.NextIf('P'):
		dir, err := d.demangleDirectness()
		if err != nil {
			return nil, err
		}
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		return NewNode(KindGenericTypeMetadataPattern).AddChildren(dir, t), nil
	case d.sc.NextIf('m'):
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		return NewNode(KindMetaclass).AddChild(t), nil
	case d.sc.NextIf('n'):
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		return NewNode(KindNominalTypeDescriptor).AddChild(t), nil
	}
	dir, err := d.demangleDirectness()
	if err != nil {
		return nil, err
	}
	t, err := d.demangleType()
	if err != nil {
		return nil, err
	}
	return NewNode(KindTypeMetadata).AddChildren(dir, t), nil
}

// demangleDirectness parses the direct/indirect access flag.
func (d *demangler) demangleDirectness() (*Node, error) {
	c, err := d.sc.Next()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'd':
		return NewTextNode(KindDirectness, "direct"), nil
	case 'i':
		return NewTextNode(KindDirectness, "indirect"), nil
	}
	return nil, errUnknownCode
}

// valueWitnessKinds maps two-character witness codes to witness names.
var valueWitnessKinds = map[string]string{
	"al": "allocateBuffer",
	"ca": "assignWithCopy",
	"ta": "assignWithTake",
	"de": "deallocateBuffer",
	"xx": "destroy",
	"XX": "destroyBuffer",
	"CP": "initializeBufferWithCopyOfBuffer",
	"Cp": "initializeBufferWithCopy",
	"cp": "initializeWithCopy",
	"Tk": "initializeBufferWithTake",
	"tk": "initializeWithTake",
	"pr": "projectBuffer",
	"xs": "storeExtraInhabitant",
	"xg": "getExtraInhabitantIndex",
	"ug": "getEnumTag",
	"up": "destructiveProjectEnumData",
}

// demangleValueWitness parses a value witness function record: a
// two-character witness code followed by the witnessed type.
func (d *demangler) demangleValueWitness() (*Node, error) {
	c0, err := d.sc.Next()
	if err != nil {
		return nil, err
	}
	c1, err := d.sc.Next()
	if err != nil {
		return nil, err
	}
	name, ok := valueWitnessKinds[string([]byte{c0, c1})]
	if !ok {
		return nil, errUnknownCode
	}
	t, err := d.demangleType()
	if err != nil {
		return nil, err
	}
	return NewTextNode(KindValueWitnessKind, name).AddChild(t), nil
}

// demangleWitnessTable parses the 'W' global family of witness table and
// field offset records.
func (d *demangler) demangleWitnessTable() (*Node, error) {
	c, err := d.sc.Next()
	if err != nil {
		return nil, err
	}
	switch c {
	case 'V':
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		return NewNode(KindValueWitnessTable).AddChild(t), nil
	case 'o':
		e, err := d.demangleEntity()
		if err != nil {
			return nil, err
		}
		return NewNode(KindWitnessTableOffset).AddChild(e), nil
	case 'v':
		dir, err := d.demangleDirectness()
		if err != nil {
			return nil, err
		}
		e, err := d.demangleEntity()
		if err != nil {
			return nil, err
		}
		return NewNode(KindFieldOffset).AddChildren(dir, e), nil
	case 'P':
		return d.demangleConformanceRecord(KindProtocolWitnessTable)
	case 'Z':
		return d.demangleConformanceRecord(KindLazyProtocolWitnessTableAccessor)
	case 'z':
		return d.demangleConformanceRecord(KindLazyProtocolWitnessTableTemplate)
	case 'D':
		return d.demangleConformanceRecord(KindDependentProtocolWitnessTableGenerator)
	case 'd':
		return d.demangleConformanceRecord(KindDependentProtocolWitnessTableTemplate)
	}
	return nil, errUnknownCode
}

// demangleConformanceRecord parses a conformance and wraps it in the given
// record kind.
func (d *demangler) demangleConformanceRecord(kind NodeKind) (*Node, error) {
	conf, err := d.demangleConformance()
	if err != nil {
		return nil, err
	}
	return NewNode(kind).AddChild(conf), nil
}

// demangleGlobalAnnotation parses the 'T' global family: protocol
// witnesses, foreign attributes, and block bridges.
func (d *demangler) demangleGlobalAnnotation() (*Node, error) {
	switch {
	case d.sc.NextIf('W'):
		conf, err := d.demangleConformance()
		if err != nil {
			return nil, err
		}
		e, err := d.demangleEntity()
		if err != nil {
			return nil, err
		}
		return NewNode(KindProtocolWitness).AddChildren(conf, e), nil
	case d.sc.NextIf('o'):
		g, err := d.demangleGlobal()
		if err != nil {
			return nil, err
		}
		return NewNode(KindObjCAttribute).AddChild(g), nil
	case d.sc.NextIf('b'):
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		return NewNode(KindBridgeToBlockFunction).AddChild(t), nil
	}
	return nil, errUnknownCode
}

// demangleEntity parses a declared entity: 'F' (function-kind) or 'v'
// (variable-kind), its context, then either a constructor/destructor marker
// or a name and type. A trailing accessor marker wraps the result.
func (d *demangler) demangleEntity() (*Node, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	c, err := d.sc.Next()
	if err != nil {
		return nil, err
	}
	if c != 'F' && c != 'v' {
		return nil, errUnknownCode
	}

	ctx, err := d.demangleContext()
	if err != nil {
		return nil, err
	}

	var ent *Node
	switch {
	case d.sc.NextIf('C'):
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		ent = NewNode(KindAllocator).AddChildren(ctx, NewNode(KindType).AddChild(t))
	case d.sc.NextIf('c'):
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		ent = NewNode(KindConstructor).AddChildren(ctx, NewNode(KindType).AddChild(t))
	case d.sc.NextIf('D'):
		ent = NewNode(KindDeallocator).AddChild(ctx)
	case d.sc.NextIf('d'):
		ent = NewNode(KindDestructor).AddChild(ctx)
	default:
		name, err := d.demangleDeclName()
		if err != nil {
			return nil, err
		}
		path := d.subs.add(NewNode(KindPath).AddChildren(ctx, name))
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		ent = NewNode(KindDeclaration).AddChildren(path, NewNode(KindType).AddChild(t))
	}

	switch {
	case d.sc.NextIf('g'):
		return NewNode(KindGetter).AddChild(ent), nil
	case d.sc.NextIf('s'):
		return NewNode(KindSetter).AddChild(ent), nil
	case d.sc.NextIf('a'):
		return NewNode(KindAddressor).AddChild(ent), nil
	}
	return ent, nil
}

// demangleContext parses a declaration context: a module, a nominal type, a
// substitution of a previous context, or a full entity acting as a local
// scope. Completed contexts register for substitution.
func (d *demangler) demangleContext() (*Node, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	c := d.sc.Peek()
	switch {
	case c == 'S':
		return d.demangleSubstitution()
	case c == 'C' || c == 'V' || c == 'O':
		return d.demangleNominalType()
	case c == 'Z':
		d.sc.Next()
		e, err := d.demangleEntity()
		if err != nil {
			return nil, err
		}
		return d.subs.add(NewNode(KindDeclContext).AddChild(e)), nil
	case c >= '0' && c <= '9':
		name, err := d.sc.ReadLiteral()
		if err != nil {
			return nil, err
		}
		return d.subs.add(NewTextNode(KindModule, name)), nil
	}
	if d.sc.EOF() {
		return nil, errStructural
	}
	return nil, errUnknownCode
}

// demangleNominalType parses 'C' (class), 'V' (structure), or 'O' (enum)
// followed by context and name. The completed node registers for
// substitution after its context does, which is what assigns indices by
// completion order rather than nesting order.
func (d *demangler) demangleNominalType() (*Node, error) {
	c, err := d.sc.Next()
	if err != nil {
		return nil, err
	}
	var kind NodeKind
	switch c {
	case 'C':
		kind = KindClass
	case 'V':
		kind = KindStructure
	case 'O':
		kind = KindEnum
	default:
		return nil, errUnknownCode
	}
	ctx, err := d.demangleContext()
	if err != nil {
		return nil, err
	}
	name, err := d.sc.ReadLiteral()
	if err != nil {
		return nil, err
	}
	n := NewNode(kind).AddChildren(ctx, NewTextNode(KindIdentifier, name))
	return d.subs.add(n), nil
}

// demangleDeclName parses the name position of a declaration: a plain
// identifier, an operator, or a numbered local entity.
func (d *demangler) demangleDeclName() (*Node, error) {
	c := d.sc.Peek()
	switch {
	case c >= '0' && c <= '9':
		name, err := d.sc.ReadLiteral()
		if err != nil {
			return nil, err
		}
		return NewTextNode(KindIdentifier, name), nil
	case c == 'o':
		return d.demangleOperator()
	case c == 'L':
		d.sc.Next()
		num, err := d.sc.ReadNatural()
		if err != nil {
			return nil, err
		}
		if !d.sc.NextIf('_') {
			return nil, errStructural
		}
		name, err := d.sc.ReadLiteral()
		if err != nil {
			return nil, err
		}
		return NewNode(KindLocalEntity).AddChildren(
			NewTextNode(KindNumber, strconv.Itoa(num)),
			NewTextNode(KindIdentifier, name),
		), nil
	}
	if d.sc.EOF() {
		return nil, errStructural
	}
	return nil, errUnknownCode
}

// operatorChars translates mangled operator characters to their source
// spelling.
var operatorChars = map[byte]byte{
	'a': '&',
	'c': '@',
	'd': '/',
	'e': '=',
	'g': '>',
	'l': '<',
	'm': '*',
	'n': '!',
	'o': '|',
	'p': '+',
	'r': '%',
	's': '-',
	't': '~',
	'x': '^',
	'z': '.',
}

// demangleOperator parses 'o', a fixity marker, and a length-prefixed
// operator spelling in the translated alphabet.
func (d *demangler) demangleOperator() (*Node, error) {
	d.sc.Next()
	f, err := d.sc.Next()
	if err != nil {
		return nil, err
	}
	var kind NodeKind
	switch f {
	case 'p':
		kind = KindPrefixOperator
	case 'i':
		kind = KindInfixOperator
	case 'P':
		kind = KindPostfixOperator
	default:
		return nil, errUnknownCode
	}
	lit, err := d.sc.ReadLiteral()
	if err != nil {
		return nil, err
	}
	var spelling strings.Builder
	for i := 0; i < len(lit); i++ {
		t, ok := operatorChars[lit[i]]
		if !ok {
			return nil, errUnknownCode
		}
		spelling.WriteByte(t)
	}
	return NewTextNode(kind, spelling.String()), nil
}

// demangleConformance parses a protocol conformance: the conforming type,
// the protocol, and the module the conformance lives in.
func (d *demangler) demangleConformance() (*Node, error) {
	t, err := d.demangleType()
	if err != nil {
		return nil, err
	}
	p, err := d.demangleProtocolRef()
	if err != nil {
		return nil, err
	}
	m, err := d.demangleContext()
	if err != nil {
		return nil, err
	}
	return NewNode(KindProtocolConformance).AddChild(t).AddChild(p).AddChild(m), nil
}

// demangleProtocolRef parses a single protocol reference: a substitution of
// a previous protocol, a substituted module plus name, or a context plus
// name. Fresh protocols register like other nominals.
func (d *demangler) demangleProtocolRef() (*Node, error) {
	var ctx *Node
	if d.sc.Peek() == 'S' {
		sub, err := d.demangleSubstitution()
		if err != nil {
			return nil, err
		}
		switch sub.Kind() {
		case KindProtocol:
			return sub, nil
		case KindModule:
			ctx = sub
		default:
			return nil, errStructural
		}
	} else {
		c, err := d.demangleContext()
		if err != nil {
			return nil, err
		}
		ctx = c
	}
	name, err := d.sc.ReadLiteral()
	if err != nil {
		return nil, err
	}
	n := NewNode(KindProtocol).AddChildren(ctx, NewTextNode(KindIdentifier, name))
	return d.subs.add(n), nil
}

// knownSubstitutions builds the standard-library shorthand expansions.
// Expansions are fresh trees and do not occupy back-reference index space.
var knownSubstitutions = map[byte]func() *Node{
	's': func() *Node { return NewTextNode(KindModule, "Swift") },
	'o': func() *Node { return NewTextNode(KindModule, "ObjectiveC") },
	'a': func() *Node { return stdlibType(KindStructure, "Array") },
	'b': func() *Node { return stdlibType(KindStructure, "Bool") },
	'c': func() *Node { return stdlibType(KindStructure, "UnicodeScalar") },
	'd': func() *Node { return stdlibType(KindStructure, "Float64") },
	'f': func() *Node { return stdlibType(KindStructure, "Float32") },
	'i': func() *Node { return stdlibType(KindStructure, "Int64") },
	'u': func() *Node { return stdlibType(KindStructure, "UInt64") },
	'q': func() *Node { return stdlibType(KindEnum, "Optional") },
	'S': func() *Node { return stdlibType(KindStructure, "String") },
}

// stdlibType builds a nominal type rooted in the Swift module.
func stdlibType(kind NodeKind, name string) *Node {
	return NewNode(kind).AddChildren(
		NewTextNode(KindModule, "Swift"),
		NewTextNode(KindIdentifier, name),
	)
}

// demangleSubstitution parses 'S' followed by a back-reference index or a
// known shorthand code. Index 0 encodes as '_' and index n+1 as the numeral
// n; resolution clones the table entry.
func (d *demangler) demangleSubstitution() (*Node, error) {
	d.sc.Next()
	c := d.sc.Peek()
	switch {
	case c == '_':
		d.sc.Next()
		return d.subs.lookup(0)
	case c >= '0' && c <= '9':
		n, err := d.sc.ReadNatural()
		if err != nil {
			return nil, err
		}
		if !d.sc.NextIf('_') {
			return nil, errStructural
		}
		return d.subs.lookup(n + 1)
	}
	if build, ok := knownSubstitutions[c]; ok {
		d.sc.Next()
		return build(), nil
	}
	if d.sc.EOF() {
		return nil, errStructural
	}
	return nil, errUnknownCode
}

// demangleType parses one type production, dispatched on its leading
// character.
func (d *demangler) demangleType() (*Node, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()

	if d.sc.EOF() {
		return nil, errStructural
	}
	switch d.sc.Peek() {
	case 'A':
		d.sc.Next()
		num, err := d.sc.ReadNatural()
		if err != nil {
			return nil, err
		}
		elem, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		return NewNode(KindArrayType).AddChildren(
			NewTextNode(KindNumber, strconv.Itoa(num)), elem), nil
	case 'B':
		d.sc.Next()
		name, err := d.sc.ReadLiteral()
		if err != nil {
			return nil, err
		}
		return NewTextNode(KindBuiltinTypeName, name), nil
	case 'b':
		d.sc.Next()
		return d.demangleFunctionBody(KindObjCBlock)
	case 'C', 'V', 'O':
		return d.demangleNominalType()
	case 'E':
		d.sc.Next()
		if !d.sc.Consume("RR") {
			return nil, errUnknownCode
		}
		return NewNode(KindErrorType), nil
	case 'F':
		d.sc.Next()
		return d.demangleFunctionBody(KindFunctionType)
	case 'f':
		d.sc.Next()
		return d.demangleFunctionBody(KindUncurriedFunctionType)
	case 'G':
		d.sc.Next()
		return d.demangleBoundGeneric()
	case 'M':
		d.sc.Next()
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		return NewNode(KindMetaType).AddChild(t), nil
	case 'P':
		d.sc.Next()
		return d.demangleProtocolList()
	case 'Q':
		d.sc.Next()
		return d.demangleArchetype()
	case 'R':
		d.sc.Next()
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		return NewNode(KindInOut).AddChild(t), nil
	case 'S':
		return d.demangleSubstitution()
	case 'T':
		d.sc.Next()
		return d.demangleTuple(KindNonVariadicTuple)
	case 't':
		d.sc.Next()
		return d.demangleTuple(KindVariadicTuple)
	case 'U':
		d.sc.Next()
		return d.demangleGenericType()
	case 'X':
		d.sc.Next()
		switch {
		case d.sc.NextIf('w'):
			t, err := d.demangleType()
			if err != nil {
				return nil, err
			}
			return NewNode(KindWeak).AddChild(t), nil
		case d.sc.NextIf('o'):
			t, err := d.demangleType()
			if err != nil {
				return nil, err
			}
			return NewNode(KindUnowned).AddChild(t), nil
		}
		return nil, errUnknownCode
	}
	return nil, errUnknownCode
}

// demangleFunctionBody parses the two type children shared by function,
// uncurried function, and block types. The argument tuple child precedes
// the return type child; the printer depends on that order.
func (d *demangler) demangleFunctionBody(kind NodeKind) (*Node, error) {
	args, err := d.demangleType()
	if err != nil {
		return nil, err
	}
	ret, err := d.demangleType()
	if err != nil {
		return nil, err
	}
	return NewNode(kind).AddChildren(
		NewNode(KindArgumentTuple).AddChild(args),
		NewNode(KindReturnType).AddChild(ret),
	), nil
}

// demangleTuple parses tuple elements up to the '_' terminator. Each
// element carries an optional name and its type.
func (d *demangler) demangleTuple(kind NodeKind) (*Node, error) {
	n := NewNode(kind)
	for !d.sc.NextIf('_') {
		if d.sc.EOF() {
			return nil, errStructural
		}
		elem := NewNode(KindTupleElement)
		if c := d.sc.Peek(); c >= '0' && c <= '9' {
			name, err := d.sc.ReadLiteral()
			if err != nil {
				return nil, err
			}
			elem.AddChild(NewTextNode(KindTupleElementName, name))
		}
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		elem.AddChild(NewNode(KindTupleElementType).AddChild(t))
		n.AddChild(elem)
	}
	return n, nil
}

// demangleBoundGeneric parses a generic instantiation: the nominal base,
// then one or more argument types up to the '_' terminator. The base kind
// picks the bound-generic wrapper kind.
func (d *demangler) demangleBoundGeneric() (*Node, error) {
	base, err := d.demangleType()
	if err != nil {
		return nil, err
	}
	kind, ok := boundGenericKind(base.Kind())
	if !ok {
		return nil, errStructural
	}
	args := NewNode(KindTypeList)
	for !d.sc.NextIf('_') {
		if d.sc.EOF() {
			return nil, errStructural
		}
		t, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		args.AddChild(t)
	}
	if args.NumChildren() == 0 {
		return nil, errStructural
	}
	return NewNode(kind).AddChildren(base, args), nil
}

// demangleProtocolList parses a protocol composition. A single entry
// collapses to the protocol itself; zero entries is the empty composition.
func (d *demangler) demangleProtocolList() (*Node, error) {
	var protos []*Node
	for !d.sc.NextIf('_') {
		if d.sc.EOF() {
			return nil, errStructural
		}
		p, err := d.demangleProtocolRef()
		if err != nil {
			return nil, err
		}
		protos = append(protos, p)
	}
	if len(protos) == 1 {
		return protos[0], nil
	}
	list := NewNode(KindProtocolList)
	for _, p := range protos {
		list.AddChild(p)
	}
	return list, nil
}

// archetypeName returns the display name for archetype index i: A, A1, A2.
func archetypeName(i int) string {
	if i == 0 {
		return "A"
	}
	return "A" + strconv.Itoa(i)
}

// demangleArchetype parses the 'Q' family: archetype references, qualified
// archetypes, the Self reference, and associated type references.
func (d *demangler) demangleArchetype() (*Node, error) {
	c := d.sc.Peek()
	switch {
	case c == '_':
		d.sc.Next()
		return NewTextNode(KindArchetypeRef, archetypeName(0)), nil
	case c >= '0' && c <= '9':
		n, err := d.sc.ReadNatural()
		if err != nil {
			return nil, err
		}
		if !d.sc.NextIf('_') {
			return nil, errStructural
		}
		return NewTextNode(KindArchetypeRef, archetypeName(n+1)), nil
	case c == 'd':
		d.sc.Next()
		depth, err := d.sc.ReadNatural()
		if err != nil {
			return nil, err
		}
		if !d.sc.NextIf('_') {
			return nil, errStructural
		}
		index, err := d.sc.ReadNatural()
		if err != nil {
			return nil, err
		}
		if !d.sc.NextIf('_') {
			return nil, errStructural
		}
		return NewNode(KindQualifiedArchetype).AddChildren(
			NewTextNode(KindNumber, strconv.Itoa(depth)),
			NewTextNode(KindNumber, strconv.Itoa(index)),
		), nil
	case c == 's':
		d.sc.Next()
		return NewNode(KindSelfTypeRef), nil
	case c == 'a':
		d.sc.Next()
		base, err := d.demangleType()
		if err != nil {
			return nil, err
		}
		name, err := d.sc.ReadLiteral()
		if err != nil {
			return nil, err
		}
		return NewNode(KindAssociatedTypeRef).AddChildren(
			base, NewTextNode(KindIdentifier, name)), nil
	}
	if d.sc.EOF() {
		return nil, errStructural
	}
	return nil, errUnknownCode
}

// demangleGenericType parses 'U': the generic parameter list, then the
// underlying type. Parameters are 'x' (unconstrained) or 'X' plus a
// protocol constraint; archetype names are assigned positionally.
func (d *demangler) demangleGenericType() (*Node, error) {
	params := NewNode(KindArchetypeList)
	idx := 0
	for !d.sc.NextIf('_') {
		switch {
		case d.sc.NextIf('x'):
			params.AddChild(NewTextNode(KindArchetypeRef, archetypeName(idx)))
		case d.sc.NextIf('X'):
			p, err := d.demangleProtocolRef()
			if err != nil {
				return nil, err
			}
			params.AddChild(NewNode(KindArchetypeAndProtocol).AddChildren(
				NewTextNode(KindArchetypeRef, archetypeName(idx)), p))
		default:
			if d.sc.EOF() {
				return nil, errStructural
			}
			return nil, errUnknownCode
		}
		idx++
	}
	if params.NumChildren() == 0 {
		return nil, errStructural
	}
	t, err := d.demangleType()
	if err != nil {
		return nil, err
	}
	return NewNode(KindGenericType).AddChildren(params, NewNode(KindType).AddChild(t)), nil
}
