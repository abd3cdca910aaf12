package model

// StateCheckResult describes where a player currently stands
//
//sumtype:decl
type StateCheckResult interface {
	isStateCheckResult()
}

// InGame means the player is in an active match
type InGame struct {
	Role   Role
	Scores Scores
}

// Waiting means the player is hosting a match nobody has joined yet
type Waiting struct {
	MatchName string
}

// NotFound means the player is in no match at all
type NotFound struct{}

func (InGame) isStateCheckResult()   {}
func (Waiting) isStateCheckResult()  {}
func (NotFound) isStateCheckResult() {}
