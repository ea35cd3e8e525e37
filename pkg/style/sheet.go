package style

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ResetClass is the class every reset-enabled compilation carries. Its rule
// is emitted ahead of all generated rules so generated declarations can
// override it.
const ResetClass = "bk-reset"

const resetRule = ".bk-reset{box-sizing:border-box}"

// Sheet turns a style declaration into a stable class identifier. Identical
// declarations must yield identical identifiers across calls; an empty
// declaration yields "".
//
// StyleSheet is the default implementation; hosts with their own CSS
// pipeline supply their own.
type Sheet interface {
	ClassFor(d Decl) string
}

// StyleSheet is an in-memory Sheet. It serializes declarations canonically,
// derives class identifiers from a hash of the serialized body, deduplicates
// concurrent first computations, and can dump everything it has issued as a
// CSS document.
type StyleSheet struct {
	group singleflight.Group

	mu      sync.RWMutex
	byBody  map[string]string // serialized body -> class
	byClass map[string]string // class -> serialized body, for collision checks
	order   []string          // bodies in first-issue order
	reset   bool
}

// NewStyleSheet returns an empty sheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{
		byBody:  make(map[string]string),
		byClass: make(map[string]string),
	}
}

// ClassFor returns the class identifier for d, issuing a new rule on first
// sight. Concurrent calls with the same declaration compute the rule once.
func (s *StyleSheet) ClassFor(d Decl) string {
	body := Serialize(d)
	if body == "" {
		return ""
	}

	s.mu.RLock()
	class, ok := s.byBody[body]
	s.mu.RUnlock()
	if ok {
		return class
	}

	v, _, _ := s.group.Do(body, func() (any, error) {
		return s.issue(body), nil
	})
	return v.(string)
}

func (s *StyleSheet) issue(body string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if class, ok := s.byBody[body]; ok {
		return class
	}

	class := className(body)
	// Distinct bodies hashing to the same class get a numeric suffix.
	for n := 2; ; n++ {
		owner, taken := s.byClass[class]
		if !taken || owner == body {
			break
		}
		class = fmt.Sprintf("%s-%d", className(body), n)
	}

	s.byBody[body] = class
	s.byClass[class] = body
	s.order = append(s.order, body)
	return class
}

// EnsureReset marks the sheet so its CSS dump carries the reset rule.
func (s *StyleSheet) EnsureReset() {
	s.mu.Lock()
	s.reset = true
	s.mu.Unlock()
}

// CSS renders every issued rule as a stylesheet, one rule per line, in
// first-issue order, with the reset rule first when requested.
func (s *StyleSheet) CSS() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	if s.reset {
		b.WriteString(resetRule)
		b.WriteByte('\n')
	}
	for _, body := range s.order {
		b.WriteByte('.')
		b.WriteString(s.byBody[body])
		b.WriteByte('{')
		b.WriteString(body)
		b.WriteByte('}')
		b.WriteByte('\n')
	}
	return b.String()
}

// Len reports how many distinct rules the sheet has issued.
func (s *StyleSheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Clear forgets every issued rule and the reset mark.
func (s *StyleSheet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byBody = make(map[string]string)
	s.byClass = make(map[string]string)
	s.order = nil
	s.reset = false
}

// className derives the identifier for a serialized body: FNV-1a, base36,
// "bk-" prefix.
func className(body string) string {
	h := fnv.New64a()
	h.Write([]byte(body))
	return "bk-" + strconv.FormatUint(h.Sum64(), 36)
}
