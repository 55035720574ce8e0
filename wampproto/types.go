package wampproto

// SessionDetails describes a joined session, populated by the Joiner once
// WELCOME arrives.
type SessionDetails struct {
	SessionID       int64
	Realm           string
	AuthID          string
	AuthRole        string
	StaticSerializer bool
}

func NewSessionDetails(sessionID int64, realm, authid, authrole string, staticSerializer bool) *SessionDetails {
	return &SessionDetails{
		SessionID:        sessionID,
		Realm:            realm,
		AuthID:           authid,
		AuthRole:         authrole,
		StaticSerializer: staticSerializer,
	}
}
