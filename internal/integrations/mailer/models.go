package mailer

// Message письмо для отправки через почтовый сервис
type Message struct {
	To       string            `json:"to"`
	ToName   string            `json:"to_name,omitempty"`
	Subject  string            `json:"subject"`
	HTMLBody string            `json:"html_body"`
	Headers  map[string]string `json:"headers,omitempty"`
}

// sendRequest тело запроса на отправку письма
type sendRequest struct {
	MessageID string `json:"message_id"`
	Message
}

// sendResponse ответ почтового сервиса
type sendResponse struct {
	MessageID string `json:"message_id"`
	Accepted  bool   `json:"accepted"`
}

// ErrorResponse модель ошибки от почтового сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
