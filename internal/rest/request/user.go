package request

type RegisterUser struct {
	Username string `json:"username" binding:"required,notblank,max=50,alphanum"`
	Password string `json:"password" binding:"required,notblank"`
	Fullname string `json:"fullname" binding:"required,notblank"`
}

type LoginUser struct {
	Username string `json:"username" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}
