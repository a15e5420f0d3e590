package request

type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Mobile  string `json:"mobile" validate:"required,len=10,numeric"`
	Address string `json:"address" validate:"required,min=10"`
}
