package types

// PathKind is the classification of a load target.
type PathKind int

const (
	// KindAny asks the classifier to determine the kind itself.
	KindAny PathKind = iota
	KindDomain
	KindPackage
	KindDirectory
)

func (k PathKind) String() string {
	switch k {
	case KindDomain:
		return "domain"
	case KindPackage:
		return "package"
	case KindDirectory:
		return "directory"
	default:
		return "path"
	}
}
