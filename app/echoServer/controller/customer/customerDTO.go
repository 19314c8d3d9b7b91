package customer

type CustomerReq struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,min=11"`
	CPF      string `json:"cpf" validate:"required,min=11"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
}
