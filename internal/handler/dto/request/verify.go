package request

import "strings"

type VerifyRequest struct {
	Code  string `json:"code" binding:"required,min=4,max=9"`
	Name  string `json:"name" binding:"required,max=120"`
	Phone string `json:"phone" binding:"omitempty,max=20"`
}

func (r *VerifyRequest) GetCode() string {
	return strings.TrimSpace(r.Code)
}
