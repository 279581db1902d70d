package session

// Flash is a one-shot notice carried across a redirect.
type Flash struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Flash categories, mirroring the severity classes the views style on.
const (
	FlashSuccess = "success"
	FlashDanger  = "danger"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// State is the server-held session payload: the authenticated identity plus
// queued flash notices. An anonymous session has an empty role.
type State struct {
	Role    string  `json:"role,omitempty"`
	UserID  uint    `json:"user_id,omitempty"`
	Flashes []Flash `json:"flashes,omitempty"`
}

func (s *State) LoggedIn() bool {
	return s.Role != "" && s.UserID != 0
}

func (s *State) SetIdentity(role string, userID uint) {
	s.Role = role
	s.UserID = userID
}

// Reset drops identity and any queued flashes.
func (s *State) Reset() {
	s.Role = ""
	s.UserID = 0
	s.Flashes = nil
}

func (s *State) AddFlash(message, category string) {
	s.Flashes = append(s.Flashes, Flash{Message: message, Category: category})
}

// PopFlashes drains the queue; flashes render once and are gone.
func (s *State) PopFlashes() []Flash {
	out := s.Flashes
	s.Flashes = nil
	return out
}
