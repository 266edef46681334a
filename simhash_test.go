package harvest

import "testing"

func TestHammingDistanceSymmetric(t *testing.T) {
	a := Fingerprint(map[string]*TokenCounts{
		"gaza":   {Normal: 3},
		"report": {Normal: 1},
	})
	b := Fingerprint(map[string]*TokenCounts{
		"gaza":   {Normal: 3},
		"report": {Normal: 1},
		"update": {Normal: 1},
	})

	d1 := HammingDistance(a, b)
	d2 := HammingDistance(b, a)
	if d1 != d2 {
		t.Errorf("HammingDistance not symmetric: %d vs %d", d1, d2)
	}
}

func TestFingerprintIdenticalTokensMatch(t *testing.T) {
	tokens := map[string]*TokenCounts{"gaza": {Normal: 2}, "news": {Important: 4}}
	a := Fingerprint(tokens)
	b := Fingerprint(tokens)
	if a != b {
		t.Errorf("identical token tables produced different fingerprints: %d vs %d", a, b)
	}
	if HammingDistance(a, b) != 0 {
		t.Error("identical fingerprints should have Hamming distance 0")
	}
}

func TestFingerprintEmptyTokensIsZero(t *testing.T) {
	fp := Fingerprint(map[string]*TokenCounts{})
	if fp != 0 {
		t.Errorf("Fingerprint of empty token table = %d, want 0", fp)
	}
}

func TestNearDuplicateDetectorThreshold(t *testing.T) {
	d := NewNearDuplicateDetector(3)
	fpA := Fingerprint(map[string]*TokenCounts{"cats": {Normal: 5}, "sleep": {Normal: 5}})
	d.Add(1, fpA)

	isDup, matches := d.IsNearDuplicate(fpA)
	if !isDup {
		t.Fatal("expected exact-fingerprint match to be a near-duplicate")
	}
	if len(matches) != 1 || matches[0] != 1 {
		t.Errorf("matches = %v, want [1]", matches)
	}

	far := Fingerprint(map[string]*TokenCounts{"completely": {Normal: 9}, "different": {Normal: 9}, "content": {Normal: 9}})
	isDup, _ = d.IsNearDuplicate(far)
	if HammingDistance(fpA, far) > 3 && isDup {
		t.Error("fingerprint beyond threshold reported as near-duplicate")
	}
}
