package entity

// Mark is what a player leaves in a cell. EmptyCell doubles as "no winner".
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)
