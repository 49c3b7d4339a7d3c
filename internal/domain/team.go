package domain

// TeamSize is the number of members an activated team must have.
const TeamSize = 4

// Team represents a team as returned by the Teams Service.
type Team struct {
	ID      string   `json:"id"`
	Members []string `json:"members"`
}

// ActivateTeamRequest is the payload sent to the Teams Service to activate a team.
// Members keep the order in which they were resolved from the command.
type ActivateTeamRequest struct {
	From    string   `json:"from"`
	Members []string `json:"members"`
}

// DeactivateTeamRequest is the payload sent to the Teams Service to deactivate a team.
type DeactivateTeamRequest struct {
	UUID string `json:"uuid"`
}
