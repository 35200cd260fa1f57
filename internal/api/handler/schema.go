package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse confirms a completed mutation.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	// Role is normalised by the service; empty defaults to "user".
	Role string `json:"role,omitempty"`
}

type signupResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// --- Catalog ---

// Ativo is a pointer so "false" and "missing" are distinguishable: the flag
// is a required field on both resources.
type typeProductRequest struct {
	Nome   string `json:"nome"   validate:"required"`
	Codigo string `json:"codigo" validate:"required"`
	Ativo  *bool  `json:"ativo"  validate:"required"`
}

type produtoRequest struct {
	Nome        string `json:"nome"         validate:"required"`
	TipoProduto int64  `json:"tipo_produto" validate:"required"`
	Ativo       *bool  `json:"ativo"        validate:"required"`
}
