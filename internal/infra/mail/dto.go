package mail

type EnrollmentEmailData struct {
	Name          string
	CourseTitle   string
	TransactionID string
	Amount        string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
