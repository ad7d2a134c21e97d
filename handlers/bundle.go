package handlers

import "safebridge/services/session"

// HandlerBundle groups the assembled handlers plus the session service the
// auth middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	Sessions  session.SessionService
	Session   *SessionHandler
	Directory *DirectoryHandler
	Cases     *CaseHandler
	Admin     *AdminHandler
}
