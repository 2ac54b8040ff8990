package dto

type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

func (UpdateStatusRequest) ValidationMessages() map[string]string {
	return map[string]string{"isActive": "isActive wajib diisi (true/false)"}
}
