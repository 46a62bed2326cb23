package swift

import "fmt"

// NodeKind identifies which grammar production a Node represents.
type NodeKind int

// The closed set of node kinds. Decoding and printing both dispatch
// exhaustively over these.
const (
	KindFailure NodeKind = iota
	KindAddressor
	KindAllocator
	KindArchetypeAndProtocol
	KindArchetypeList
	KindArchetypeRef
	KindArgumentTuple
	KindArrayType
	KindAssociatedTypeRef
	KindBoundGenericClass
	KindBoundGenericEnum
	KindBoundGenericStructure
	KindBridgeToBlockFunction
	KindBuiltinTypeName
	KindClass
	KindConstructor
	KindDeallocator
	KindDeclaration
	KindDeclContext
	KindDependentProtocolWitnessTableGenerator
	KindDependentProtocolWitnessTableTemplate
	KindDestructor
	KindDirectness
	KindEnum
	KindErrorType
	KindFieldOffset
	KindFunctionType
	KindGenericType
	KindGenericTypeMetadataPattern
	KindGetter
	KindIdentifier
	KindInOut
	KindInfixOperator
	KindLazyProtocolWitnessTableAccessor
	KindLazyProtocolWitnessTableTemplate
	KindLocalEntity
	KindMetaType
	KindMetaclass
	KindModule
	KindNominalTypeDescriptor
	KindNonVariadicTuple
	KindNumber
	KindObjCAttribute
	KindObjCBlock
	KindPath
	KindPostfixOperator
	KindPrefixOperator
	KindProtocol
	KindProtocolConformance
	KindProtocolList
	KindProtocolWitness
	KindProtocolWitnessTable
	KindQualifiedArchetype
	KindReturnType
	KindSelfTypeRef
	KindSetter
	KindStructure
	KindTupleElement
	KindTupleElementName
	KindTupleElementType
	KindType
	KindTypeList
	KindTypeMetadata
	KindUncurriedFunctionType
	KindUnknown
	KindUnowned
	KindValueWitnessKind
	KindValueWitnessTable
	KindVariadicTuple
	KindWeak
	KindWitnessTableOffset
)

var kindNames = map[NodeKind]string{
	KindFailure:                                "Failure",
	KindAddressor:                              "Addressor",
	KindAllocator:                              "Allocator",
	KindArchetypeAndProtocol:                   "ArchetypeAndProtocol",
	KindArchetypeList:                          "ArchetypeList",
	KindArchetypeRef:                           "ArchetypeRef",
	KindArgumentTuple:                          "ArgumentTuple",
	KindArrayType:                              "ArrayType",
	KindAssociatedTypeRef:                      "AssociatedTypeRef",
	KindBoundGenericClass:                      "BoundGenericClass",
	KindBoundGenericEnum:                       "BoundGenericEnum",
	KindBoundGenericStructure:                  "BoundGenericStructure",
	KindBridgeToBlockFunction:                  "BridgeToBlockFunction",
	KindBuiltinTypeName:                        "BuiltinTypeName",
	KindClass:                                  "Class",
	KindConstructor:                            "Constructor",
	KindDeallocator:                            "Deallocator",
	KindDeclaration:                            "Declaration",
	KindDeclContext:                            "DeclContext",
	KindDependentProtocolWitnessTableGenerator: "DependentProtocolWitnessTableGenerator",
	KindDependentProtocolWitnessTableTemplate:  "DependentProtocolWitnessTableTemplate",
	KindDestructor:                             "Destructor",
	KindDirectness:                             "Directness",
	KindEnum:                                   "Enum",
	KindErrorType:                              "ErrorType",
	KindFieldOffset:                            "FieldOffset",
	KindFunctionType:                           "FunctionType",
	KindGenericType:                            "GenericType",
	KindGenericTypeMetadataPattern:             "GenericTypeMetadataPattern",
	KindGetter:                                 "Getter",
	KindIdentifier:                             "Identifier",
	KindInOut:                                  "InOut",
	KindInfixOperator:                          "InfixOperator",
	KindLazyProtocolWitnessTableAccessor:       "LazyProtocolWitnessTableAccessor",
	KindLazyProtocolWitnessTableTemplate:       "LazyProtocolWitnessTableTemplate",
	KindLocalEntity:                            "LocalEntity",
	KindMetaType:                               "MetaType",
	KindMetaclass:                              "Metaclass",
	KindModule:                                 "Module",
	KindNominalTypeDescriptor:                  "NominalTypeDescriptor",
	KindNonVariadicTuple:                       "NonVariadicTuple",
	KindNumber:                                 "Number",
	KindObjCAttribute:                          "ObjCAttribute",
	KindObjCBlock:                              "ObjCBlock",
	KindPath:                                   "Path",
	KindPostfixOperator:                        "PostfixOperator",
	KindPrefixOperator:                         "PrefixOperator",
	KindProtocol:                               "Protocol",
	KindProtocolConformance:                    "ProtocolConformance",
	KindProtocolList:                           "ProtocolList",
	KindProtocolWitness:                        "ProtocolWitness",
	KindProtocolWitnessTable:                   "ProtocolWitnessTable",
	KindQualifiedArchetype:                     "QualifiedArchetype",
	KindReturnType:                             "ReturnType",
	KindSelfTypeRef:                            "SelfTypeRef",
	KindSetter:                                 "Setter",
	KindStructure:                              "Structure",
	KindTupleElement:                           "TupleElement",
	KindTupleElementName:                       "TupleElementName",
	KindTupleElementType:                       "TupleElementType",
	KindType:                                   "Type",
	KindTypeList:                               "TypeList",
	KindTypeMetadata:                           "TypeMetadata",
	KindUncurriedFunctionType:                  "UncurriedFunctionType",
	KindUnknown:                                "Unknown",
	KindUnowned:                                "Unowned",
	KindValueWitnessKind:                       "ValueWitnessKind",
	KindValueWitnessTable:                      "ValueWitnessTable",
	KindVariadicTuple:                          "VariadicTuple",
	KindWeak:                                   "Weak",
	KindWitnessTableOffset:                     "WitnessTableOffset",
}

var kindsByName = func() map[string]NodeKind {
	m := make(map[string]NodeKind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// String returns the kind's canonical name.
func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("NodeKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k NodeKind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("swift: invalid node kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *NodeKind) UnmarshalText(text []byte) error {
	v, ok := kindsByName[string(text)]
	if !ok {
		return fmt.Errorf("swift: unknown node kind %q", string(text))
	}
	*k = v
	return nil
}

// Kinds returns all node kinds in declaration order.
func Kinds() []NodeKind {
	ks := make([]NodeKind, 0, len(kindNames))
	for k := KindFailure; int(k) < len(kindNames); k++ {
		ks = append(ks, k)
	}
	return ks
}

// isNominal reports whether k names a nominal type declaration.
func isNominal(k NodeKind) bool {
	switch k {
	case KindClass, KindStructure, KindEnum, KindProtocol:
		return true
	}
	return false
}

// boundGenericKind maps a nominal base kind to its bound-generic wrapper.
// The second result is false for bases that cannot be bound.
func boundGenericKind(base NodeKind) (NodeKind, bool) {
	switch base {
	case KindClass:
		return KindBoundGenericClass, true
	case KindStructure:
		return KindBoundGenericStructure, true
	case KindEnum:
		return KindBoundGenericEnum, true
	}
	return KindFailure, false
}
