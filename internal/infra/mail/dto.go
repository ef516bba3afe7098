package mail

type DueNoticeData struct {
	Name    string
	Value   string
	DueDate string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}
