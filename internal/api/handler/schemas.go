package handler

// Form-bound request types. Validation happens once at the service boundary;
// these only carry the raw field values out of the request body.

type registerRequest struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

type loginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

type createArticleRequest struct {
	Title string `form:"title"`
	Body  string `form:"body"`
}

// deleteFileResponse is the JSON envelope of the file manager delete call.
type deleteFileResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
