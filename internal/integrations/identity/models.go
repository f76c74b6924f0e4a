package identity

// staffModel модель сотрудника из IdentityService
type staffModel struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// staffListResponse ответ со списком сотрудников
type staffListResponse struct {
	Staff []staffModel `json:"staff"`
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
