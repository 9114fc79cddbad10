package rules

const (
	// DeathCauseWallCollision is when the snake runs into the border
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the snake runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
	// DeathCauseBoardFull is when there is no free cell left to place food on
	DeathCauseBoardFull = "board-full"
	// DeathCauseQuit is when the player asked to stop
	DeathCauseQuit = "quit"
)
