package model

// ClientAction is a decoded request from a client
//
//sumtype:decl
type ClientAction interface {
	isClientAction()
}

type Register struct {
	Name string
}

type HostGame struct {
	Player PlayerID
}

type JoinGame struct {
	Player   PlayerID
	GameName string
}

type IncreaseScore struct {
	Player PlayerID
}

type StateCheck struct {
	Player PlayerID
}

func (Register) isClientAction()      {}
func (HostGame) isClientAction()      {}
func (JoinGame) isClientAction()      {}
func (IncreaseScore) isClientAction() {}
func (StateCheck) isClientAction()    {}

// ServerAction is the reply to a ClientAction
//
//sumtype:decl
type ServerAction interface {
	isServerAction()
}

type RegisterResponse struct {
	ID PlayerID
}

type HostGameResponse struct {
	ID       MatchID
	GameName string
}

// JoinGameResponse carries GameID 0 when the join failed
type JoinGameResponse struct {
	Success bool
	GameID  MatchID
}

// Steady acknowledges an action that has nothing to report
type Steady struct{}

type StateCheckResponse struct {
	Result StateCheckResult
}

// BadRequest is returned for a state check on a player that is in no match.
// It is a normal reply, not a transport error.
type BadRequest struct{}

func (RegisterResponse) isServerAction()   {}
func (HostGameResponse) isServerAction()   {}
func (JoinGameResponse) isServerAction()   {}
func (Steady) isServerAction()             {}
func (StateCheckResponse) isServerAction() {}
func (BadRequest) isServerAction()         {}
