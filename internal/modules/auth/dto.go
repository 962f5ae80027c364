package auth

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AssessRequest carries a candidate credential pair for strength
// feedback. Fields are optional so empty input gets graded too.
type AssessRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
