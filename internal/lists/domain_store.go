package lists

import (
	"sort"
)

// DomainStore accumulates the unique accepted domains of a single run.
type DomainStore struct {
	domains map[string]struct{}
}

func CreateDomainStore() *DomainStore {
	return &DomainStore{
		domains: make(map[string]struct{}),
	}
}

// Add inserts a domain into the store and reports whether it was new.
func (s *DomainStore) Add(domain string) bool {
	if _, ok := s.domains[domain]; ok {
		return false
	}
	s.domains[domain] = struct{}{}
	return true
}

func (s *DomainStore) Contains(domain string) bool {
	_, ok := s.domains[domain]
	return ok
}

func (s *DomainStore) Count() int {
	return len(s.domains)
}

// Sorted returns the stored domains in lexicographic byte order.
func (s *DomainStore) Sorted() []string {
	domains := make([]string, 0, len(s.domains))
	for domain := range s.domains {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	return domains
}
