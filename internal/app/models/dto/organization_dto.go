package dto

// CreateSectionRequest represents the request to create an Exco section
type CreateSectionRequest struct {
	Category string `json:"category" binding:"required"`
}

// CreateMemberRequest represents the request to add a committee member to a
// section. When IsHead is set the member is installed as the section head.
type CreateMemberRequest struct {
	Name     string  `json:"name" binding:"required"`
	Position string  `json:"position" binding:"required"`
	Image    *string `json:"image,omitempty"`
	IsHead   bool    `json:"isHead"`
	Order    int     `json:"order"`
}
