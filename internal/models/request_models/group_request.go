package request_models

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120"`
}

type AddGroupMemberRequest struct {
	Email string  `json:"email" binding:"required,email"`
	Role  *string `json:"role" binding:"omitempty,oneof=owner member"`
}
