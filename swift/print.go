package swift

import "strings"

// NodeToString renders a node tree to its display form. Rendering is a pure
// function of the tree and the options: it never mutates the tree, never
// fails, and renders something for every kind, including trees assembled by
// hand in shapes the demangler would not produce.
func NodeToString(root *Node, opts DemangleOptions) string {
	if root == nil {
		return ""
	}
	p := &printer{opts: opts}
	p.print(root)
	return p.buf.String()
}

type printer struct {
	buf  strings.Builder
	opts DemangleOptions
}

// childAt returns the i-th child of n, or nil when n is nil or the index is
// out of range. The printer never trusts a node to be well formed.
func childAt(n *Node, i int) *Node {
	if n == nil || i < 0 || i >= n.NumChildren() {
		return nil
	}
	return n.Child(i)
}

// typeChild unwraps a Type wrapper down to the wrapped type node.
func typeChild(n *Node) *Node {
	if n != nil && n.Kind() == KindType {
		return childAt(n, 0)
	}
	return n
}

// isFunctionShaped reports whether a declared type abuts its declaration
// path directly instead of taking the " : " separator.
func isFunctionShaped(k NodeKind) bool {
	switch k {
	case KindFunctionType, KindUncurriedFunctionType, KindGenericType:
		return true
	}
	return false
}

// hasOperatorName reports whether the name position of a path is an
// operator, which takes a space before a directly abutting type.
func hasOperatorName(path *Node) bool {
	name := childAt(path, 1)
	if name == nil {
		return false
	}
	switch name.Kind() {
	case KindPrefixOperator, KindInfixOperator, KindPostfixOperator:
		return true
	}
	return false
}

// stdlibName returns the unqualified name of a nominal type declared
// directly in the Swift module, or "" for anything else.
func stdlibName(n *Node) string {
	if n == nil || !isNominal(n.Kind()) {
		return ""
	}
	ctx := childAt(n, 0)
	name := childAt(n, 1)
	if ctx == nil || ctx.Kind() != KindModule || ctx.Text() != "Swift" {
		return ""
	}
	if name == nil || name.Kind() != KindIdentifier {
		return ""
	}
	return name.Text()
}

func (p *printer) print(n *Node) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case KindFailure:
		if n.Text() == "" {
			p.buf.WriteString("<failure>")
		} else {
			p.buf.WriteString(n.Text())
		}
	case KindUnknown:
		if n.Text() == "" {
			p.buf.WriteString("<unknown>")
		} else {
			p.buf.WriteString(n.Text())
		}

	case KindIdentifier, KindModule, KindNumber, KindBuiltinTypeName,
		KindArchetypeRef, KindDirectness, KindTupleElementName:
		p.buf.WriteString(n.Text())

	case KindPrefixOperator:
		p.buf.WriteString(n.Text())
		p.buf.WriteString(" prefix")
	case KindInfixOperator:
		p.buf.WriteString(n.Text())
		p.buf.WriteString(" infix")
	case KindPostfixOperator:
		p.buf.WriteString(n.Text())
		p.buf.WriteString(" postfix")

	case KindClass, KindStructure, KindEnum, KindProtocol, KindPath,
		KindAssociatedTypeRef:
		p.printQualified(n)
	case KindLocalEntity:
		p.print(childAt(n, 1))
		p.buf.WriteString(" #")
		p.print(childAt(n, 0))
	case KindDeclContext:
		p.print(childAt(n, 0))

	case KindDeclaration, KindGetter, KindSetter, KindAddressor,
		KindAllocator, KindConstructor, KindDestructor, KindDeallocator:
		p.printEntity(n, false)

	case KindType, KindReturnType, KindTupleElementType:
		p.print(childAt(n, 0))
	case KindArgumentTuple:
		inner := childAt(n, 0)
		if inner != nil && (inner.Kind() == KindNonVariadicTuple || inner.Kind() == KindVariadicTuple) {
			p.print(inner)
		} else {
			p.buf.WriteByte('(')
			p.print(inner)
			p.buf.WriteByte(')')
		}
	case KindNonVariadicTuple, KindVariadicTuple:
		p.buf.WriteByte('(')
		p.printChildren(n, ", ")
		if n.Kind() == KindVariadicTuple {
			p.buf.WriteString("...")
		}
		p.buf.WriteByte(')')
	case KindTupleElement:
		c0 := childAt(n, 0)
		if c0 != nil && c0.Kind() == KindTupleElementName {
			p.print(c0)
			p.buf.WriteString(" : ")
			p.print(childAt(n, 1))
		} else {
			p.print(c0)
		}

	case KindFunctionType:
		p.print(childAt(n, 0))
		p.buf.WriteString(" -> ")
		p.print(childAt(n, 1))
	case KindUncurriedFunctionType:
		p.print(childAt(n, 0))
		p.print(childAt(n, 1))
	case KindObjCBlock:
		p.buf.WriteString("@objc_block ")
		p.print(childAt(n, 0))
		p.buf.WriteString(" -> ")
		p.print(childAt(n, 1))

	case KindGenericType:
		p.print(childAt(n, 0))
		p.print(childAt(n, 1))
	case KindArchetypeList:
		p.buf.WriteByte('<')
		p.printChildren(n, ", ")
		p.buf.WriteByte('>')
	case KindArchetypeAndProtocol:
		p.print(childAt(n, 0))
		p.buf.WriteString(" : ")
		p.print(childAt(n, 1))
	case KindQualifiedArchetype:
		p.buf.WriteByte('A')
		p.print(childAt(n, 1))
		p.buf.WriteByte('@')
		p.print(childAt(n, 0))
	case KindSelfTypeRef:
		p.buf.WriteString("Self")

	case KindBoundGenericClass, KindBoundGenericStructure, KindBoundGenericEnum:
		p.printBoundGeneric(n)
	case KindTypeList:
		p.printChildren(n, ", ")
	case KindProtocolList:
		p.buf.WriteString("protocol<")
		p.printChildren(n, ", ")
		p.buf.WriteByte('>')

	case KindMetaType:
		p.print(childAt(n, 0))
		p.buf.WriteString(".Type")
	case KindInOut:
		p.buf.WriteString("inout ")
		p.print(childAt(n, 0))
	case KindWeak:
		p.buf.WriteString("weak ")
		p.print(childAt(n, 0))
	case KindUnowned:
		p.buf.WriteString("unowned ")
		p.print(childAt(n, 0))
	case KindArrayType:
		p.print(childAt(n, 1))
		p.buf.WriteByte('[')
		p.print(childAt(n, 0))
		p.buf.WriteByte(']')
	case KindErrorType:
		p.buf.WriteString("<ERROR TYPE>")

	case KindTypeMetadata:
		p.print(childAt(n, 0))
		p.buf.WriteString(" type metadata for ")
		p.print(childAt(n, 1))
	case KindGenericTypeMetadataPattern:
		p.print(childAt(n, 0))
		p.buf.WriteString(" generic type metadata pattern for ")
		p.print(childAt(n, 1))
	case KindMetaclass:
		p.buf.WriteString("metaclass for ")
		p.print(childAt(n, 0))
	case KindNominalTypeDescriptor:
		p.buf.WriteString("nominal type descriptor for ")
		p.print(childAt(n, 0))
	case KindValueWitnessKind:
		p.buf.WriteString(n.Text())
		p.buf.WriteString(" value witness for ")
		p.print(childAt(n, 0))
	case KindValueWitnessTable:
		p.buf.WriteString("value witness table for ")
		p.print(childAt(n, 0))
	case KindWitnessTableOffset:
		p.buf.WriteString("witness table offset for ")
		p.printEntity(childAt(n, 0), false)
	case KindFieldOffset:
		p.print(childAt(n, 0))
		p.buf.WriteString(" field offset for ")
		p.printEntity(childAt(n, 1), !p.opts.DisplayTypeOfIVarFieldOffset)
	case KindProtocolWitnessTable:
		p.buf.WriteString("protocol witness table for ")
		p.print(childAt(n, 0))
	case KindLazyProtocolWitnessTableAccessor:
		p.buf.WriteString("lazy protocol witness table accessor for ")
		p.print(childAt(n, 0))
	case KindLazyProtocolWitnessTableTemplate:
		p.buf.WriteString("lazy protocol witness table template for ")
		p.print(childAt(n, 0))
	case KindDependentProtocolWitnessTableGenerator:
		p.buf.WriteString("dependent protocol witness table generator for ")
		p.print(childAt(n, 0))
	case KindDependentProtocolWitnessTableTemplate:
		p.buf.WriteString("dependent protocol witness table template for ")
		p.print(childAt(n, 0))
	case KindProtocolConformance:
		p.print(childAt(n, 0))
		p.buf.WriteString(" : ")
		p.print(childAt(n, 1))
		p.buf.WriteString(" in ")
		p.print(childAt(n, 2))
	case KindProtocolWitness:
		p.buf.WriteString("protocol witness for ")
		p.printEntity(childAt(n, 1), false)
		p.buf.WriteString(" in conformance ")
		p.print(childAt(n, 0))
	case KindObjCAttribute:
		p.buf.WriteString("@objc ")
		p.print(childAt(n, 0))
	case KindBridgeToBlockFunction:
		p.buf.WriteString("bridge-to-block function for ")
		p.print(childAt(n, 0))

	default:
		p.buf.WriteString(n.Text())
	}
}

// printChildren renders n's children separated by sep.
func (p *printer) printChildren(n *Node, sep string) {
	first := true
	for c := range n.Children() {
		if !first {
			p.buf.WriteString(sep)
		}
		first = false
		p.print(c)
	}
}

// printQualified renders context '.' name.
func (p *printer) printQualified(n *Node) {
	if ctx := childAt(n, 0); ctx != nil {
		p.print(ctx)
		p.buf.WriteByte('.')
	}
	p.print(childAt(n, 1))
}

// printEntity renders a declared entity. suppressType drops the declared
// type tail, which field offset records do when DisplayTypeOfIVarFieldOffset
// is off.
func (p *printer) printEntity(n *Node, suppressType bool) {
	if n == nil {
		return
	}
	switch n.Kind() {
	case KindDeclaration:
		p.printDeclaration(n, "", suppressType)
	case KindGetter:
		p.printAccessor(n, ".getter", suppressType)
	case KindSetter:
		p.printAccessor(n, ".setter", suppressType)
	case KindAddressor:
		p.printAccessor(n, ".addressor", suppressType)
	case KindAllocator:
		p.printSpecialEntity(n, ".__allocating_constructor", true, suppressType)
	case KindConstructor:
		p.printSpecialEntity(n, ".constructor", true, suppressType)
	case KindDestructor:
		p.printSpecialEntity(n, ".destructor", false, suppressType)
	case KindDeallocator:
		p.printSpecialEntity(n, ".__deallocating_destructor", false, suppressType)
	default:
		p.print(n)
	}
}

// printDeclaration renders a declaration path, an optional accessor suffix,
// and the declared type tail. Function-shaped types abut the path directly;
// everything else takes " : ".
func (p *printer) printDeclaration(n *Node, suffix string, suppressType bool) {
	path := childAt(n, 0)
	p.print(path)
	p.buf.WriteString(suffix)
	if suppressType {
		return
	}
	t := typeChild(childAt(n, 1))
	if t == nil {
		return
	}
	if isFunctionShaped(t.Kind()) {
		if hasOperatorName(path) {
			p.buf.WriteByte(' ')
		}
		p.print(t)
		return
	}
	p.buf.WriteString(" : ")
	p.print(t)
}

// printAccessor renders an accessor wrapper by splicing its suffix between
// the inner declaration's path and type tail.
func (p *printer) printAccessor(n *Node, suffix string, suppressType bool) {
	inner := childAt(n, 0)
	if inner != nil && inner.Kind() == KindDeclaration {
		p.printDeclaration(inner, suffix, suppressType)
		return
	}
	p.printEntity(inner, true)
	p.buf.WriteString(suffix)
}

// printSpecialEntity renders constructor and destructor family entities:
// the context, the marker suffix, and for constructors the type tail.
func (p *printer) printSpecialEntity(n *Node, suffix string, hasType, suppressType bool) {
	p.print(childAt(n, 0))
	p.buf.WriteString(suffix)
	if !hasType || suppressType {
		return
	}
	p.print(typeChild(childAt(n, 1)))
}

// printBoundGeneric renders a generic instantiation, applying Array and
// Optional sugar when SynthesizeSugarOnTypes is set.
func (p *printer) printBoundGeneric(n *Node) {
	base := childAt(n, 0)
	args := childAt(n, 1)
	if p.opts.SynthesizeSugarOnTypes && args != nil && args.NumChildren() == 1 {
		switch {
		case n.Kind() == KindBoundGenericStructure && stdlibName(base) == "Array":
			p.buf.WriteByte('[')
			p.print(childAt(args, 0))
			p.buf.WriteByte(']')
			return
		case n.Kind() == KindBoundGenericEnum && stdlibName(base) == "Optional":
			p.print(childAt(args, 0))
			p.buf.WriteByte('?')
			return
		}
	}
	p.print(base)
	p.buf.WriteByte('<')
	if args != nil {
		p.printChildren(args, ", ")
	}
	p.buf.WriteByte('>')
}
