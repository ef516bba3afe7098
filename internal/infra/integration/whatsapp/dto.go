package whatsapp

type SendMessageInput struct {
	PhoneNumber  string
	TemplateName string
	Parameters   []string
}

type apiParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}
