package sync

// Status is the connectivity state reported to the dashboard. The
// machine goes from online through synchronizing and back to online on
// success, or to offline when initialization fails. There is no
// automatic path out of offline short of a restart.
type Status string

const (
	StatusOnline        Status = "online"
	StatusSynchronizing Status = "synchronizing"
	StatusOffline       Status = "offline"
)

func (s *Service) setStatus(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// Status returns the current connectivity state.
func (s *Service) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
