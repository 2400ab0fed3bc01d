package stats

// Kind names one change-statistic. The zero value is not a valid Kind;
// callers build a statistic list from the named constants below.
type Kind int

const (
	_ Kind = iota
	Arc
	Reciprocity
	AltInStars
	AltOutStars
	AltKTrianglesT
	AltKTrianglesC
	AltTwoPathsT
	AltTwoPathsD
	AltTwoPathsTD
	Sender
	Receiver
	Interaction
	Matching
	MatchingReciprocity
	Mismatching
	MismatchingReciprocity
)

var kindNames = map[Kind]string{
	Arc:                     "Arc",
	Reciprocity:             "Reciprocity",
	AltInStars:              "AltInStars",
	AltOutStars:             "AltOutStars",
	AltKTrianglesT:          "AltKTrianglesT",
	AltKTrianglesC:          "AltKTrianglesC",
	AltTwoPathsT:            "AltTwoPathsT",
	AltTwoPathsD:            "AltTwoPathsD",
	AltTwoPathsTD:           "AltTwoPathsTD",
	Sender:                  "Sender",
	Receiver:                "Receiver",
	Interaction:             "Interaction",
	Matching:                "Matching",
	MatchingReciprocity:     "MatchingReciprocity",
	Mismatching:             "Mismatching",
	MismatchingReciprocity:  "MismatchingReciprocity",
}

var namesToKind = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// String returns the statistic's canonical name, or "Kind(?)" if k is not
// one of the declared constants.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}

// ParseKind maps a canonical name (as used on the --stats CLI flag and in
// trace file headers) back to its Kind. Complexity: O(1).
func ParseKind(name string) (Kind, error) {
	k, ok := namesToKind[name]
	if !ok {
		return 0, ErrUnknownKind
	}
	return k, nil
}

// requiresBinAttr reports whether k needs Graph.BinAttr to be loaded.
func (k Kind) requiresBinAttr() bool {
	switch k {
	case Sender, Receiver, Interaction:
		return true
	default:
		return false
	}
}

// requiresCatAttr reports whether k needs Graph.CatAttr to be loaded.
func (k Kind) requiresCatAttr() bool {
	switch k {
	case Matching, MatchingReciprocity, Mismatching, MismatchingReciprocity:
		return true
	default:
		return false
	}
}
