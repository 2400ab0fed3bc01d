package stats

import "github.com/katalvlaran/ergmee/digraph"

// Bind resolves a list of Kind values into concrete Func values against a
// specific graph, checking once, up front, that every attribute-dependent
// statistic has its backing table loaded. The returned name slice is in the
// same order as kinds and fns, suitable for trace file headers.
//
// Resolving kinds into closures here (rather than dispatching on Kind inside
// the sampler's inner loop) keeps the per-proposal cost to a slice of direct
// calls, with no type switch repeated millions of times.
func Bind(kinds []Kind, g *digraph.Graph, lambda float64) ([]Func, []string, error) {
	fns := make([]Func, 0, len(kinds))
	names := make([]string, 0, len(kinds))

	for _, k := range kinds {
		if k.requiresBinAttr() && !g.HasBinAttr() {
			return nil, nil, ErrAttributeRequired
		}
		if k.requiresCatAttr() && !g.HasCatAttr() {
			return nil, nil, ErrAttributeRequired
		}

		fn, err := lookup(k, lambda)
		if err != nil {
			return nil, nil, err
		}
		fns = append(fns, fn)
		names = append(names, k.String())
	}
	return fns, names, nil
}

// lookup dispatches a single Kind to its concrete Func, instantiating
// lambda-parameterized statistics as needed.
func lookup(k Kind, lambda float64) (Func, error) {
	switch k {
	case Arc:
		return deltaArc, nil
	case Reciprocity:
		return deltaReciprocity, nil
	case AltInStars:
		return newAltInStars(lambda), nil
	case AltOutStars:
		return newAltOutStars(lambda), nil
	case AltKTrianglesT:
		return newAltKTrianglesT(lambda), nil
	case AltKTrianglesC:
		return newAltKTrianglesC(lambda), nil
	case AltTwoPathsT:
		return newAltTwoPathsT(lambda), nil
	case AltTwoPathsD:
		return newAltTwoPathsD(lambda), nil
	case AltTwoPathsTD:
		return newAltTwoPathsTD(lambda), nil
	case Sender:
		return deltaSender, nil
	case Receiver:
		return deltaReceiver, nil
	case Interaction:
		return deltaInteraction, nil
	case Matching:
		return deltaMatching, nil
	case MatchingReciprocity:
		return deltaMatchingReciprocity, nil
	case Mismatching:
		return deltaMismatching, nil
	case MismatchingReciprocity:
		return deltaMismatchingReciprocity, nil
	default:
		return nil, ErrUnknownKind
	}
}
