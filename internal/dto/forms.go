package dto

// Form field names follow the original page markup.

// RegisterForm is the registration form.
type RegisterForm struct {
	Username        string `form:"lietotajvards" binding:"required"`
	Email           string `form:"epasts" binding:"required"`
	Password        string `form:"parole" binding:"required"`
	ConfirmPassword string `form:"atkartotparoli" binding:"required"`
}

// LoginForm is the login form, shared by the user and admin login pages.
type LoginForm struct {
	Username string `form:"lietotajvards" binding:"required"`
	Password string `form:"parole" binding:"required"`
}

// TaskForm is the add-task form. No fields are required here: the
// storage constraints are the only gate, as in the original.
type TaskForm struct {
	Title       string `form:"nosaukums"`
	Description string `form:"apraksts"`
	Priority    string `form:"prioritate"`
	DueDate     string `form:"beigu_datums"`
}
