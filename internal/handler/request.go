package handler

// SlashCommandRequest represents the form slack posts for a slash command.
type SlashCommandRequest struct {
	UserName string `form:"user_name" binding:"required"`
	Text     string `form:"text"`
}
