package harvest

import "github.com/RoaringBitmap/roaring"

// postingSet pairs a term's postings with a roaring bitmap of its
// doc_ids, so candidate-set union/intersection (§4.8 step 4) can be
// computed with roaring's bitmap ops instead of hand-rolled set code.
type postingSet struct {
	term     string
	postings []Posting
	bitmap   *roaring.Bitmap
	isNgram  bool
}

func newPostingSet(term string, postings []Posting, isNgram bool) postingSet {
	bm := roaring.New()
	for _, p := range postings {
		bm.Add(p.DocID)
	}
	return postingSet{term: term, postings: postings, bitmap: bm, isNgram: isNgram}
}

// unionCandidates returns the bitmap of doc_ids present in any of sets.
func unionCandidates(sets []postingSet) *roaring.Bitmap {
	out := roaring.New()
	for _, s := range sets {
		out.Or(s.bitmap)
	}
	return out
}

// intersectCandidates returns the bitmap of doc_ids present in every
// one of sets. An empty input yields an empty bitmap (there is no
// universe to intersect against).
func intersectCandidates(sets []postingSet) *roaring.Bitmap {
	if len(sets) == 0 {
		return roaring.New()
	}
	out := sets[0].bitmap.Clone()
	for _, s := range sets[1:] {
		out.And(s.bitmap)
	}
	return out
}
