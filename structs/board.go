package structs

import "time"

// BoardType controls who may write to a board. Enforced upstream.
type BoardType string

const (
	BoardTypeGeneral BoardType = "general"
	BoardTypeNotice  BoardType = "notice"
	BoardTypeBot     BoardType = "bot"
)

// Board is a discussion board.
type Board struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        BoardType `json:"type"`
	CategoryID  string    `json:"categoryId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Category groups boards.
type Category struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Order  int     `json:"order"`
	Boards []Board `json:"boards,omitempty"`
}

// BoardBody board create/update form
type BoardBody struct {
	Slug        string    `json:"slug" validate:"omitempty,min=2,max=50"`
	Name        string    `json:"name" validate:"required,min=1,max=50"`
	Description string    `json:"description" validate:"max=200"`
	Type        BoardType `json:"type" validate:"required,oneof=general notice bot"`
	CategoryID  string    `json:"categoryId" validate:"required"`
}

// CategoryBody category create/update form
type CategoryBody struct {
	Name  string `json:"name" validate:"required,min=1,max=30"`
	Order int    `json:"order" validate:"gte=0"`
}

// BoardQuery board list filter
type BoardQuery struct {
	CategoryID string `url:"categoryId,omitempty" form:"categoryId"`
}
