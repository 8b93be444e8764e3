package dto

type ChangeUserStatusRequest struct {
	UserID uint `json:"userId" binding:"required"`
	Status int  `json:"status"`
}

type ChangeUserRoleRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

type SetGuideLanguagesRequest struct {
	UserID    uint     `json:"userId" binding:"required"`
	Languages []string `json:"languages" binding:"required"`
}
