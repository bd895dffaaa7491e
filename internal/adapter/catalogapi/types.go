package catalogapi

type (
	product struct {
		ID           int       `json:"id"`
		Name         string    `json:"name"`
		Description  *string   `json:"description"`
		CategoryID   *int      `json:"category_id"`
		CategoryName *string   `json:"category_name"`
		Status       string    `json:"status"`
		Image        string    `json:"image"`
		ImageURL     string    `json:"image_url"`
		Variants     []variant `json:"variants"`
	}

	variant struct {
		ID        int     `json:"id"`
		ProductID int     `json:"product_id"`
		Color     string  `json:"color"`
		Size      *int    `json:"size"`
		Price     float64 `json:"price"`
		Amount    int     `json:"amount"`
	}
)

type review struct {
	ID           int     `json:"id"`
	ProductName  *string `json:"product_name"`
	CustomerName *string `json:"customer_name"`
	Content      *string `json:"content"`
	Rating       any     `json:"rating"`
	Date         *string `json:"date"`
}

type (
	loginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	tokenResponse struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}

	signupRequest struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Username    string `json:"username"`
		Password    string `json:"password"`
		PhoneNumber string `json:"phone_number"`
		Address     string `json:"address"`
	}
)

type searchResult struct {
	ProductID    any     `json:"product_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	CategoryName *string `json:"category_name"`
	Score        float64 `json:"score"`
}

func deref[T any](p *T) (v T) {
	if p != nil {
		v = *p
	}
	return v
}
