package model

type TokenClaim struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginInput struct {
	UserName string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type PricesInput struct {
	Prices PriceConfig `json:"prices" validate:"required"`
}
