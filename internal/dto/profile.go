package dto

// ProfileDTO represents the profile endpoint response
type ProfileDTO struct {
	Username string `json:"username"`
	GitPAC   string `json:"git_pac"`
}
