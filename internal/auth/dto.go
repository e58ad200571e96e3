package auth

// LoginInput carries the credentials posted to the login endpoint.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResult is returned on a successful authentication.
type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	UserID   uint64 `json:"user_id"`
}

// CreateOperatorInput carries the payload for provisioning a new operator.
type CreateOperatorInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=12"`
}

// OperatorResult is the public projection of an operator row.
type OperatorResult struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// ChangePasswordInput carries an authenticated password rotation request.
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=12"`
}

// ChangePasswordResult returns the fresh token minted after rotation.
type ChangePasswordResult struct {
	Token string `json:"token"`
}
