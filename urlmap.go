package harvest

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// mersenne31 is 2^31 - 1, the modulus for the URL polynomial hash.
const mersenne31 = (1 << 31) - 1

// URLMapper maintains the bidirectional url<->doc_id mapping (§4.3). A
// doc_id is a positive 32-bit integer; 0 is reserved and never
// assigned. Collisions from the polynomial hash are resolved by linear
// probing, so the mapping is a bijection on the assigned set.
//
// ═══════════════════════════════════════════════════════════════════
// EXAMPLE
// ═══════════════════════════════════════════════════════════════════
// rolling hash of "http://e.com/a" mod (2^31 - 1) = 1234567 (say)
// polynomialHash returns 1234568 (+1, to keep doc_id positive and nonzero)
// IDFor assigns 1234568; if that slot is taken, it tries 1234569,
// 1234570, ... until free.
type URLMapper struct {
	urlToID map[string]uint32
	idToURL map[uint32]string
}

// NewURLMapper returns an empty mapper.
func NewURLMapper() *URLMapper {
	return &URLMapper{
		urlToID: make(map[string]uint32),
		idToURL: make(map[uint32]string),
	}
}

// polynomialHash implements §4.3's rolling hash: h = 0; for each byte c
// of url, h = (h*31 + c) mod (2^31 - 1); returned value is |h| + 1 so
// it is never zero.
func polynomialHash(url string) uint32 {
	var h int64
	for i := 0; i < len(url); i++ {
		h = (h*31 + int64(url[i])) % mersenne31
	}
	return uint32(h) + 1
}

// IDFor returns the existing doc_id for url if already assigned;
// otherwise it computes the polynomial hash, linear-probes past any
// occupied id (wrapping into [1, mersenne31]), assigns the first free
// id, records both directions, and returns it.
func (m *URLMapper) IDFor(url string) uint32 {
	if id, ok := m.urlToID[url]; ok {
		return id
	}
	id := polynomialHash(url)
	for {
		if id == 0 {
			id = 1
		}
		if _, taken := m.idToURL[id]; !taken {
			break
		}
		if id == mersenne31 {
			id = 1
		} else {
			id++
		}
	}
	m.urlToID[url] = id
	m.idToURL[id] = url
	return id
}

// URLFor returns the url assigned to id, if any.
func (m *URLMapper) URLFor(id uint32) (string, bool) {
	u, ok := m.idToURL[id]
	return u, ok
}

// Len returns the number of assigned ids, i.e. N in §4.8's idf formula.
func (m *URLMapper) Len() int {
	return len(m.idToURL)
}

// Save persists the mapping as url_mapping.txt: one line per id,
// sorted ascending, format "doc_id:url\n".
func (m *URLMapper) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSpillIO, err)
	}
	defer f.Close()

	ids := make([]uint32, 0, len(m.idToURL))
	for id := range m.idToURL {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	w := bufio.NewWriter(f)
	for _, id := range ids {
		if _, err := fmt.Fprintf(w, "%d:%s\n", id, m.idToURL[id]); err != nil {
			return fmt.Errorf("%w: %v", ErrSpillIO, err)
		}
	}
	return w.Flush()
}

// LoadURLMapper reads a url_mapping.txt file written by Save.
func LoadURLMapper(path string) (*URLMapper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrURLMappingNotFound, err)
	}
	defer f.Close()

	m := NewURLMapper()
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		idStr, url, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			continue
		}
		m.urlToID[url] = uint32(id)
		m.idToURL[uint32(id)] = url
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrURLMappingNotFound, err)
	}
	return m, nil
}

