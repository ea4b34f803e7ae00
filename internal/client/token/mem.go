package token

// MemStore is an in-memory Store for tests.
type MemStore struct {
	tok string
	ok  bool
}

func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Get() (string, bool) { return s.tok, s.ok }

func (s *MemStore) Set(token string) error {
	s.tok, s.ok = token, true
	return nil
}

func (s *MemStore) Clear() error {
	s.tok, s.ok = "", false
	return nil
}
